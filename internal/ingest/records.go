package ingest

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rshade/carboncalc/internal/greenops"
	"github.com/rshade/carboncalc/internal/model"
)

// recordID returns the record's own ID or a name-based UUID derived from its
// kind, position and name, so the same document always yields the same IDs.
func recordID(c *coercer, name string) string {
	if id, ok := c.str("id"); ok {
		return id
	}
	key := fmt.Sprintf("carboncalc:%s:%d:%s", c.kind, c.index, name)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String()
}

// coerceMaterial turns a raw material into a typed one.
//
// carbonFootprint is read in the unit named by carbonUnit (kg CO2e when
// absent) and stored in kg CO2e. An unrecognized carbonUnit leaves the value
// as given.
func coerceMaterial(c *coercer) model.Material {
	m := model.Material{
		Name:            c.strOr("name", DefaultMaterialName),
		Category:        c.strOr("category", DefaultCategory),
		CarbonFootprint: c.nonNegativeOr("carbonFootprint", DefaultCarbonFootprint),
		Quantity:        c.nonNegativeOr("quantity", DefaultQuantity),
		Unit:            c.strOr("unit", DefaultMaterialUnit),

		Recyclable:       c.optFlag("recyclable"),
		RecycledContent:  c.optPercent("recycledContent"),
		LocallySourced:   c.optFlag("locallySourced"),
		EmbodiedCarbon:   c.optNonNegative("embodiedCarbon"),
		WaterFootprint:   c.optNonNegative("waterFootprint"),
		Recyclability:    c.optPercent("recyclability"),
		RenewableContent: c.optPercent("renewableContent"),
		Biodegradable:    c.optFlag("biodegradable"),
		Lifespan:         c.optNonNegative("lifespan"),

		Certifications: c.strList("certifications"),
		Supplier:       c.strOr("supplier", ""),
	}

	if unit, ok := c.str("carbonUnit"); ok {
		kg, err := greenops.NormalizeToKg(m.CarbonFootprint, unit)
		if err != nil {
			c.warn("carbonUnit", "%v; value kept as kg CO2e", err)
		} else {
			m.CarbonFootprint = kg
		}
	}

	m.ID = recordID(c, m.Name)
	return m
}

// coerceTransport turns a raw transport leg into a typed one. Missing
// distance and weight are 0.
func coerceTransport(c *coercer) model.TransportItem {
	t := model.TransportItem{
		Type:            c.strOr("type", DefaultTransportType),
		Distance:        c.nonNegativeOr("distance", 0),
		Weight:          c.nonNegativeOr("weight", 0),
		FuelType:        c.strOr("fuelType", DefaultFuelType),
		EmissionsFactor: c.nonNegativeOr("emissionsFactor", DefaultTransportFactor),

		IsElectric:        c.optFlag("isElectric"),
		RouteOptimization: c.optFlag("routeOptimization"),
		Efficiency:        c.optRatio("efficiency"),
		IdlingTime:        c.optNonNegative("idlingTime"),
		OperatingHours:    c.optNonNegative("operatingHours"),
		MaintenanceStatus: c.optStr("maintenanceStatus"),
		PeakTime:          c.optFlag("peakTime"),
		FrequentStops:     c.optFlag("frequentStops"),
	}
	t.ID = recordID(c, t.Type)
	return t
}

// coerceEnergy turns a raw energy supply into a typed one. A missing quantity is 0.
func coerceEnergy(c *coercer) model.EnergyItem {
	e := model.EnergyItem{
		Source:          c.strOr("source", DefaultEnergySource),
		Quantity:        c.nonNegativeOr("quantity", 0),
		Unit:            c.strOr("unit", DefaultEnergyUnit),
		EmissionsFactor: c.nonNegativeOr("emissionsFactor", DefaultEnergyFactor),

		Renewable:       c.optFlag("renewable"),
		CarbonIntensity: c.optNonNegative("carbonIntensity"),
		Efficiency:      c.optRatio("efficiency"),
		PeakDemand:      c.optRatio("peakDemand"),
		SmartMonitoring: c.optFlag("smartMonitoring"),
		DemandResponse:  c.optFlag("demandResponse"),
		BackupSystem:    c.optFlag("backupSystem"),
		StorageCapacity: c.optNonNegative("storageCapacity"),
		TimeOfUse:       c.optStr("timeOfUse"),
	}
	e.ID = recordID(c, e.Source)
	return e
}
