package models

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"
)

const dateTimeLayout = "2006-01-02T15:04:05.999999"

var dateTimeInputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// DateTime is a campaign schedule timestamp. It accepts RFC 3339 as well as naive
// ISO-8601 input, is held in UTC and is written back without a zone suffix.
type DateTime struct {
	time.Time
}

// NewDateTime wraps t, normalised to UTC.
func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t.UTC()}
}

// ParseDateTime parses s using the accepted input layouts.
func ParseDateTime(s string) (DateTime, error) {
	for _, layout := range dateTimeInputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewDateTime(t), nil
		}
	}
	return DateTime{}, fmt.Errorf("invalid datetime %q", s)
}

// UnmarshalJSON reports unparseable input as a *json.UnmarshalTypeError so the
// decoder attaches the offending field name.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &json.UnmarshalTypeError{Value: "non-string", Type: reflect.TypeFor[DateTime]()}
	}
	parsed, err := ParseDateTime(s)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "string " + s, Type: reflect.TypeFor[DateTime]()}
	}
	*d = parsed
	return nil
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.UTC().Format(dateTimeLayout))
}
