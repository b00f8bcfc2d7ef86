// Package patch distingue "campo ausente" de "campo en null" al decodificar
// JSON, para PATCH y para campos opcionales que se pueden limpiar.
package patch

import (
	"bytes"
	"encoding/json"
)

type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(b, &f.Value)
}

// Present: vino en el body con un valor no nulo.
func (f Field[T]) Present() bool { return f.Set && !f.Null }

func Of[T any](v T) Field[T] { return Field[T]{Set: true, Value: v} }

func Null[T any]() Field[T] { return Field[T]{Set: true, Null: true} }
