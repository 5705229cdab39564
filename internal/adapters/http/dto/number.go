package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a lenient numeric field. It accepts a JSON number or a numeric
// string; anything else, including null, decodes to an absent value rather
// than failing the whole request, so the timesheet rules can report it.
type Number struct {
	v *float64
}

// NewNumber returns a present Number.
func NewNumber(v float64) Number {
	return Number{v: &v}
}

// Ptr returns the value, or nil when absent.
func (n Number) Ptr() *float64 {
	return n.v
}

// UnmarshalJSON implements json.Unmarshaler. It never returns an error.
func (n *Number) UnmarshalJSON(data []byte) error {
	n.v = nil
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		n.v = &f
		return nil
	}

	var s string
	if bytes.HasPrefix(data, []byte(`"`)) && json.Unmarshal(data, &s) == nil {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			n.v = &f
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler. An absent value encodes as null.
func (n Number) MarshalJSON() ([]byte, error) {
	if n.v == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.v)
}
