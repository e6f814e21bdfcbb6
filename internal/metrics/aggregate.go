package metrics

// averager accumulates a mean over only the values that were present.
type averager struct {
	sum   float64
	count int
}

// add includes v when it is non-nil.
func (a *averager) add(v *float64) {
	if v == nil {
		return
	}
	a.sum += *v
	a.count++
}

// mean returns the average of the observed values, or 0 when none were observed.
func (a averager) mean() float64 {
	if a.count == 0 {
		return 0
	}
	return a.sum / float64(a.count)
}

// meanPtr returns the average, or nil when none were observed.
func (a averager) meanPtr() *float64 {
	if a.count == 0 {
		return nil
	}
	m := a.sum / float64(a.count)
	return &m
}

// sumPtr returns the sum, or nil when none were observed.
func (a averager) sumPtr() *float64 {
	if a.count == 0 {
		return nil
	}
	s := a.sum
	return &s
}

// percentOf returns matching/total × 100, or 0 when total is 0.
func percentOf(matching, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(matching) / float64(total) * PercentageMultiplier
}

// ratio returns num/den, or 0 when den is 0.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// clamp01 limits v to [0,1].
func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
