package ingest

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// record is one raw, untyped input record as decoded from JSON or YAML.
type record map[string]any

// coercer reads typed values out of a record and collects a warning for every
// value that is present but unusable.
type coercer struct {
	kind     string
	index    int
	rec      record
	warnings []string
}

func (c *coercer) warn(key string, format string, args ...any) {
	c.warnings = append(c.warnings,
		fmt.Sprintf("%s[%d].%s: %s", c.kind, c.index, key, fmt.Sprintf(format, args...)))
}

// str returns the trimmed text of key. Numbers are accepted and printed.
func (c *coercer) str(key string) (string, bool) {
	v, ok := c.rec[key]
	if !ok || v == nil {
		return "", false
	}
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		return s, s != ""
	case int, int64, uint64, float64, json.Number:
		return fmt.Sprint(t), true
	default:
		c.warn(key, "expected text, got %T", v)
		return "", false
	}
}

func (c *coercer) strOr(key, def string) string {
	if s, ok := c.str(key); ok {
		return s
	}
	return def
}

// num returns key as a finite number. Numeric strings are parsed.
func (c *coercer) num(key string) (float64, bool) {
	v, ok := c.rec[key]
	if !ok || v == nil {
		return 0, false
	}
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case uint64:
		f = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			c.warn(key, "invalid number %q", t.String())
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			c.warn(key, "invalid number %q", t)
			return 0, false
		}
		f = parsed
	default:
		c.warn(key, "expected a number, got %T", v)
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		c.warn(key, "number is not finite")
		return 0, false
	}
	return f, true
}

// nonNegativeOr returns key when it is a number >= 0, otherwise def.
func (c *coercer) nonNegativeOr(key string, def float64) float64 {
	f, ok := c.num(key)
	if !ok {
		return def
	}
	if f < 0 {
		c.warn(key, "negative value %g replaced by %g", f, def)
		return def
	}
	return f
}

// positiveOr returns key when it is a number > 0, otherwise def.
func (c *coercer) positiveOr(key string, def float64) float64 {
	f, ok := c.num(key)
	if !ok {
		return def
	}
	if f <= 0 {
		c.warn(key, "non-positive value %g replaced by %g", f, def)
		return def
	}
	return f
}

func (c *coercer) optNum(key string) *float64 {
	f, ok := c.num(key)
	if !ok {
		return nil
	}
	return &f
}

// optNonNegative drops negative values.
func (c *coercer) optNonNegative(key string) *float64 {
	p := c.optNum(key)
	if p != nil && *p < 0 {
		c.warn(key, "negative value %g ignored", *p)
		return nil
	}
	return p
}

// optClamped clamps a present value into [lo, hi].
func (c *coercer) optClamped(key string, lo, hi float64) *float64 {
	p := c.optNum(key)
	if p == nil {
		return nil
	}
	if *p < lo || *p > hi {
		clamped := math.Max(lo, math.Min(hi, *p))
		c.warn(key, "value %g clamped to %g", *p, clamped)
		*p = clamped
	}
	return p
}

func (c *coercer) optPercent(key string) *float64 {
	return c.optClamped(key, 0, MaxPercent)
}

func (c *coercer) optRatio(key string) *float64 {
	return c.optClamped(key, 0, 1)
}

// optFlag accepts booleans and boolean strings ("true", "false", "1", "0").
func (c *coercer) optFlag(key string) *bool {
	v, ok := c.rec[key]
	if !ok || v == nil {
		return nil
	}
	switch t := v.(type) {
	case bool:
		return &t
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		if err != nil {
			c.warn(key, "invalid boolean %q", t)
			return nil
		}
		return &b
	default:
		c.warn(key, "expected a boolean, got %T", v)
		return nil
	}
}

func (c *coercer) optStr(key string) *string {
	s, ok := c.str(key)
	if !ok {
		return nil
	}
	return &s
}

// strList accepts a list of strings or a single comma-separated string.
func (c *coercer) strList(key string) []string {
	v, ok := c.rec[key]
	if !ok || v == nil {
		return nil
	}
	var out []string
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			if s, isStr := item.(string); isStr && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
	case string:
		for _, s := range strings.Split(t, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	default:
		c.warn(key, "expected a list of text, got %T", v)
	}
	return out
}
