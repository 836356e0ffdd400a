package dto

import (
	"bytes"
	"encoding/json"
)

// Optional is a field of an update payload that can be in one of three
// states: absent from the JSON body, present but null, or present with
// a value. A plain pointer cannot tell the first two apart, and telling
// them apart is what makes partial updates safe — only absent fields
// keep their old value.
type Optional[T any] struct {
	Value T
	Set   bool // key was present in the payload
	Null  bool // key was present and explicitly null
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// Some returns an Optional holding v, as written by a client that sent
// the field. Used by tests.
func Some[T any](v T) Optional[T] { return Optional[T]{Value: v, Set: true} }

// Null returns an Optional for an explicit JSON null. Used by tests.
func Null[T any]() Optional[T] { return Optional[T]{Set: true, Null: true} }
