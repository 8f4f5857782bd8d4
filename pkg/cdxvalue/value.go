// Package cdxvalue implements the value codec: for every concrete CDX
// attribute value kind, a pair of binary decode/encode functions and a
// textual parse/format pair for the CDXML attribute syntax.
//
// Kind dispatch is a closed Go sum type, not a string-keyed registry
// of classes: Kind is an interface, every
// concrete kind is a named singleton implementing it, and
// KindByName resolves a catalog.ValueKind to one of them through an
// exhaustive switch so an unhandled kind fails at test time rather than
// with a silent map miss at runtime.
package cdxvalue

import (
	"fmt"

	"github.com/dimelords/cdxlib/internal/cdxerr"
)

// Value is a decoded attribute value: it knows how to turn itself back
// into the CDX binary payload and into CDXML attribute text.
type Value interface {
	EncodeBinary() ([]byte, error)
	FormatText() string
}

// Kind is a value kind's codec: decode a binary payload (the caller has
// already stripped the tag/length prefix) or parse CDXML attribute
// text, in both cases producing a Value of the matching concrete type.
type Kind interface {
	Name() string
	DecodeBinary(b []byte) (Value, error)
	ParseText(s string) (Value, error)
}

// errInvalidLength builds a consistent message for fixed-width kinds
// handed a slice of the wrong length.
func errInvalidLength(kind string, want, got int) error {
	return fmt.Errorf("%s: want %d bytes, got %d: %w", kind, want, got, cdxerr.ErrInvalidLength)
}

// errOutOfRange builds a consistent message for a value that doesn't
// fit its kind's representable range.
func errOutOfRange(kind string, v any) error {
	return fmt.Errorf("%s: value %v out of range: %w", kind, v, cdxerr.ErrOutOfRange)
}

// errUnknownEnum builds a consistent message for an enum value with no
// matching name or number.
func errUnknownEnum(kind, s string) error {
	return fmt.Errorf("%s: %q: %w", kind, s, cdxerr.ErrUnknownEnumValue)
}
