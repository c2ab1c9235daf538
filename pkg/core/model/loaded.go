package model

import "encoding/json"

// Loaded wraps a field that list endpoints omit entirely and detail
// endpoints serve explicitly, possibly as null. It keeps "not fetched yet"
// apart from "fetched and absent": a zero Loaded means the field was never
// present in the payload, while an explicit null decodes to a known zero
// value.
type Loaded[T any] struct {
	known bool
	value T
}

// Known builds a Loaded that carries the given value
func Known[T any](v T) Loaded[T] {
	return Loaded[T]{known: true, value: v}
}

// IsKnown reports whether the field was present in the source payload
func (l Loaded[T]) IsKnown() bool {
	return l.known
}

// Value returns the carried value and whether it was loaded at all
func (l Loaded[T]) Value() (T, bool) {
	return l.value, l.known
}

// UnmarshalJSON is only invoked for keys present in the payload, so its
// mere execution marks the field as loaded.
func (l *Loaded[T]) UnmarshalJSON(data []byte) error {
	l.known = true
	return json.Unmarshal(data, &l.value)
}

func (l Loaded[T]) MarshalJSON() ([]byte, error) {
	if !l.known {
		return []byte("null"), nil
	}
	return json.Marshal(l.value)
}
