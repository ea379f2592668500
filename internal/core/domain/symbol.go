// Package domain contains the core domain types for semantic metadata.
package domain

import "unique"

// Symbol is an interned member or module name.
// Names repeat heavily across snapshots (the same stdlib types show up as
// forward references in many modules), so they are interned via the unique
// package and compared by handle.
type Symbol struct {
	h unique.Handle[string]
}

// Sym creates a Symbol from a string, interning it.
func Sym(s string) Symbol {
	return Symbol{h: unique.Make(s)}
}

// String returns the underlying string value.
func (s Symbol) String() string {
	var zero unique.Handle[string]
	if s.h == zero {
		return ""
	}
	return s.h.Value()
}

// IsZero reports whether the symbol is the zero Symbol.
func (s Symbol) IsZero() bool {
	var zero unique.Handle[string]
	return s.h == zero
}

// MarshalText implements encoding.TextMarshaler.
func (s Symbol) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Symbol) UnmarshalText(text []byte) error {
	s.h = unique.Make(string(text))
	return nil
}
