// Package nullable distinguishes an absent JSON field from an explicit null.
package nullable

import (
	"bytes"
	"encoding/json"
)

// Field is an optional, nullable JSON value. Set is true when the key was
// present in the payload; Value is nil when the payload carried null.
type Field[T any] struct {
	Set   bool
	Value *T
}

// Of returns a set field holding v.
func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: &v}
}

// Null returns a set field holding null.
func Null[T any]() Field[T] {
	return Field[T]{Set: true}
}

// UnmarshalJSON is only invoked for keys present in the payload.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.Value = &v
	return nil
}

// MarshalJSON renders the value or null.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*f.Value)
}
