package domain

import "unique"

// InternedString wraps a unique.Handle[string] so that frequently repeated
// strings such as target names and directory paths share storage and compare
// in constant time.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString interns s and returns its handle.
func NewInternedString(s string) InternedString {
	return InternedString{h: unique.Make(s)}
}

// String returns the underlying string value. The zero value yields "".
func (is InternedString) String() string {
	var zero unique.Handle[string]
	if is.h == zero {
		return ""
	}
	return is.h.Value()
}
