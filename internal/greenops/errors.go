package greenops

// constError is a string error usable as a constant sentinel.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned by normalization and equivalency calculation.
// Compare with errors.Is.
var (
	// ErrInvalidUnit is returned for a carbon unit NormalizeToKg does not know.
	ErrInvalidUnit = constError("invalid carbon unit")

	// ErrNegativeValue is returned for a negative carbon quantity.
	ErrNegativeValue = constError("negative carbon value")

	// ErrCalculationOverflow is returned when an input or result is not finite.
	ErrCalculationOverflow = constError("calculation overflow")

	// ErrUnknownEquivalencyType is returned when decoding an unrecognized type name.
	ErrUnknownEquivalencyType = constError("unknown equivalency type")
)
