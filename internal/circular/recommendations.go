package circular

// Recommendation is a circular economy action.
type Recommendation struct {
	Recommendation           string   `json:"recommendation"`
	Impact                   string   `json:"impact"`
	ImplementationDifficulty string   `json:"implementationDifficulty"`
	Timeframe                string   `json:"timeframe"`
	PotentialBenefits        []string `json:"potentialBenefits"`
}

// rule fires its recommendation when the selected metric is below threshold.
type rule struct {
	metric    func(Metrics) float64
	threshold float64
	rec       Recommendation
}

// rules are evaluated in order; the output preserves this order.
//
//nolint:gochecknoglobals // Constant lookup table.
var rules = []rule{
	{
		metric:    func(m Metrics) float64 { return m.ResourceReuseRate },
		threshold: ReuseRateThreshold,
		rec: Recommendation{
			Recommendation:           "Establish an on-site material reuse program for formwork, pallets and offcuts",
			Impact:                   LevelHigh,
			ImplementationDifficulty: LevelMedium,
			Timeframe:                "3-6 months",
			PotentialBenefits:        []string{"Lower virgin material demand", "Reduced procurement cost", "Less waste hauled off site"},
		},
	},
	{
		metric:    func(m Metrics) float64 { return m.WasteRecyclingRate },
		threshold: WasteRecyclingThreshold,
		rec: Recommendation{
			Recommendation:           "Segregate construction waste streams at source and contract certified recyclers",
			Impact:                   LevelHigh,
			ImplementationDifficulty: LevelLow,
			Timeframe:                "1-3 months",
			PotentialBenefits:        []string{"Higher landfill diversion", "Lower disposal fees", "Credits toward green building certification"},
		},
	},
	{
		metric:    func(m Metrics) float64 { return m.ClosedLoopPotential },
		threshold: ClosedLoopThreshold,
		rec: Recommendation{
			Recommendation:           "Negotiate supplier take-back agreements for packaging and surplus materials",
			Impact:                   LevelMedium,
			ImplementationDifficulty: LevelMedium,
			Timeframe:                "6-12 months",
			PotentialBenefits:        []string{"Closed material loops", "Stronger supplier relationships"},
		},
	},
	{
		metric:    func(m Metrics) float64 { return m.MaterialCircularityIndex },
		threshold: CircularityIndexThreshold,
		rec: Recommendation{
			Recommendation:           "Specify materials with higher recycled content and verified recyclability",
			Impact:                   LevelHigh,
			ImplementationDifficulty: LevelMedium,
			Timeframe:                "3-6 months",
			PotentialBenefits:        []string{"Lower embodied carbon", "Improved material circularity index"},
		},
	},
	{
		metric:    func(m Metrics) float64 { return m.DesignForDisassembly },
		threshold: DesignForDisassemblyThreshold,
		rec: Recommendation{
			Recommendation:           "Adopt design-for-disassembly with mechanical fixings and documented material passports",
			Impact:                   LevelMedium,
			ImplementationDifficulty: LevelHigh,
			Timeframe:                "12+ months",
			PotentialBenefits:        []string{"Recoverable components at end of life", "Easier refurbishment"},
		},
	},
	{
		metric:    func(m Metrics) float64 { return m.RemanufacturingPotential },
		threshold: RemanufacturingThreshold,
		rec: Recommendation{
			Recommendation:           "Prefer modular, repairable building systems with spare part availability",
			Impact:                   LevelMedium,
			ImplementationDifficulty: LevelMedium,
			Timeframe:                "6-12 months",
			PotentialBenefits:        []string{"Longer service life", "Remanufacturing revenue"},
		},
	},
}

// fallbackRecommendation is appended when fewer than MinRecommendations rules fire.
func fallbackRecommendation() Recommendation {
	return Recommendation{
		Recommendation:           "Conduct a circular economy audit of material flows across the project",
		Impact:                   LevelMedium,
		ImplementationDifficulty: LevelLow,
		Timeframe:                "1-3 months",
		PotentialBenefits:        []string{"Baseline for circularity targets", "Identification of quick wins"},
	}
}

// GenerateCircularEconomyRecommendations applies the threshold rules to m.
// The result is never empty: when fewer than three rules fire a generic audit
// recommendation is appended.
func GenerateCircularEconomyRecommendations(m Metrics) []Recommendation {
	recs := make([]Recommendation, 0, len(rules)+1)
	for _, r := range rules {
		if r.metric(m) < r.threshold {
			recs = append(recs, cloneRecommendation(r.rec))
		}
	}
	if len(recs) < MinRecommendations {
		recs = append(recs, fallbackRecommendation())
	}
	return recs
}

func cloneRecommendation(r Recommendation) Recommendation {
	benefits := make([]string, len(r.PotentialBenefits))
	copy(benefits, r.PotentialBenefits)
	r.PotentialBenefits = benefits
	return r
}
