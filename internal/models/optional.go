package models

import (
	"bytes"
	"encoding/json"
)

// Optional tracks whether a JSON field was supplied at all and whether it was supplied as null.
// A zero Optional means the field was absent from the payload.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// some returns a supplied, non-null Optional.
func some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// null returns an Optional supplied as an explicit null.
func null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// Present reports whether the field was supplied with a non-null value.
func (o Optional[T]) Present() bool {
	return o.Set && !o.Null
}

// IsZero lets `omitzero` drop absent fields when marshalling.
func (o Optional[T]) IsZero() bool {
	return !o.Set
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Value = zero
		o.Null = true
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
