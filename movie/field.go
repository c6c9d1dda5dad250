package movie

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"moviedb/errs"
)

// Presence tells whether a payload key was sent and carried a usable value.
type Presence int

const (
	Absent Presence = iota
	Empty
	Present
)

func (p Presence) String() string {
	switch p {
	case Empty:
		return "empty"
	case Present:
		return "present"
	}
	return "absent"
}

// Field is a loosely typed payload value. JSON strings and numbers are both
// accepted; null and blank strings count as Empty. Objects, arrays and
// booleans are rejected. A key that never reaches UnmarshalJSON stays Absent.
type Field struct {
	value string
	state Presence
}

func NewField(value string) Field {
	if strings.TrimSpace(value) == "" {
		return Field{value: value, state: Empty}
	}
	return Field{value: value, state: Present}
}

func (f *Field) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = Field{state: Empty}
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = NewField(s)
	case len(data) > 0 && (data[0] == '-' || (data[0] >= '0' && data[0] <= '9')):
		*f = NewField(string(data))
	default:
		return ErrInvalidValue
	}
	return nil
}

func (f Field) State() Presence { return f.state }

func (f Field) IsPresent() bool { return f.state == Present }

// String returns the raw value, or "" unless the field is Present.
func (f Field) String() string {
	if f.state != Present {
		return ""
	}
	return f.value
}

func (f Field) Float(name string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(f.value), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errs.Errorf(errs.EINVALID, "validation error: %s must be a number", name)
	}
	return v, nil
}

func (f Field) Int(name string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(f.value), 10, 64)
	if err != nil {
		// accept integral floats such as 155.0
		fv, ferr := strconv.ParseFloat(strings.TrimSpace(f.value), 64)
		if ferr != nil || fv != float64(int64(fv)) {
			return 0, errs.Errorf(errs.EINVALID, "validation error: %s must be an integer", name)
		}
		v = int64(fv)
	}
	return v, nil
}

// Date accepts YYYY-MM-DD as well as full RFC 3339 timestamps.
func (f Field) Date(name string) (time.Time, error) {
	raw := strings.TrimSpace(f.value)
	if d, err := time.Parse(DateLayout, raw); err == nil {
		return d, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errs.Errorf(errs.EINVALID, "validation error: %s must be a date (YYYY-MM-DD)", name)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
