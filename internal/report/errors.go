package report

// constError is a string error usable as a constant sentinel.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrInsufficientData is returned by Generate when the input completeness
	// score is below the assembler's minimum.
	ErrInsufficientData = constError("insufficient data for report generation")

	// ErrInvalidCostParameters is returned by Generate when the supplied cost
	// parameters fail validation.
	ErrInvalidCostParameters = constError("invalid cost parameters")
)
