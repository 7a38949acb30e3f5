// Package optional provides a field-level "set or leave untouched" value for
// partial updates.
package optional

import (
	"bytes"
	"encoding/json"
)

// Option holds a value that may or may not have been supplied by the caller.
// A JSON key that is absent or null decodes to an unset Option.
type Option[T any] struct {
	value T
	set   bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, set: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSet() bool {
	return o.set
}

// Get returns the value and whether it was set.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.set
}

// OrElse returns the value if set, otherwise def.
func (o Option[T]) OrElse(def T) T {
	if o.set {
		return o.value
	}
	return def
}

func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Option[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
