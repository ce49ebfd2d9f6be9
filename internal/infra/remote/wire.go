package remote

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// The remote API returns numbers, booleans and lists in whatever shape the
// underlying database driver produced. These types accept all of them and
// fall back to zero values instead of failing the whole record.

// Number accepts 12, 12.5, "12.5", null, true. Malformed input, NaN and
// infinities become 0.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	*n = 0
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		*n = Number(parseFloat(s))
	case 't':
		*n = 1
	case 'f':
	default:
		*n = Number(parseFloat(string(b)))
	}
	return nil
}

func (n Number) Float() float64 { return float64(n) }

func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(n), 'f', -1, 64)), nil
}

func (n Number) Int() int { return int(n) }

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Bool accepts true, 1, "1", "true", "yes". Zero, "", "0", "false", "no",
// "off" and null are false.
type Bool bool

func (v *Bool) UnmarshalJSON(b []byte) error {
	*v = false
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}
	switch b[0] {
	case 'n', 'f':
		return nil
	case 't':
		*v = true
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "", "0", "false", "no", "off":
		default:
			*v = true
		}
	default:
		*v = parseFloat(string(b)) != 0
	}
	return nil
}

// MarshalJSON writes 1 or 0, the form the remote API stores.
func (v Bool) MarshalJSON() ([]byte, error) {
	if v {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// Text accepts strings and bare numbers, keeping the number literal as is.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	*t = ""
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		*t = Text(s)
		return nil
	}
	*t = Text(b)
	return nil
}

// StringList accepts a JSON array or a string holding a JSON array.
// Anything unparsable becomes an empty list.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	*l = StringList{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		b = []byte(strings.TrimSpace(s))
		if len(b) == 0 {
			return nil
		}
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}
	out := make(StringList, 0, len(raw))
	for _, r := range raw {
		var t Text
		_ = t.UnmarshalJSON(r)
		out = append(out, string(t))
	}
	*l = out
	return nil
}

// MarshalJSON writes the list as a string holding a JSON array, the form
// the remote API stores list columns in.
func (l StringList) MarshalJSON() ([]byte, error) {
	inner, err := json.Marshal(l.Strings())
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(inner))
}

func (l StringList) Strings() []string {
	if l == nil {
		return []string{}
	}
	return []string(l)
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Time accepts RFC 3339, MySQL DATETIME and DATE strings. Anything else,
// including the zero date, leaves it unset.
type Time struct {
	t *time.Time
}

func (v *Time) UnmarshalJSON(b []byte) error {
	v.t = nil
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "0000-00-00") {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			v.t = &t
			return nil
		}
	}
	return nil
}

func (v Time) Ptr() *time.Time { return v.t }

func (v Time) MarshalJSON() ([]byte, error) {
	if v.t == nil {
		return []byte("null"), nil
	}
	return json.Marshal(v.t.Format("2006-01-02 15:04:05"))
}

func timeOf(t *time.Time) Time {
	if t == nil {
		return Time{}
	}
	c := *t
	return Time{t: &c}
}
