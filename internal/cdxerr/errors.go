// Package cdxerr provides the structured error type shared by every
// cdxlib package: the binary reader/writer, the value codec, the XML
// surface and the styler all wrap failures the same way so callers can
// use errors.Is/errors.As regardless of which layer raised them.
package cdxerr

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes the codec distinguishes.
var (
	// ErrNotACDXFile is returned when the 22-byte header doesn't match.
	ErrNotACDXFile = errors.New("not a cdx file")

	// ErrTruncated is returned when the stream ends before a length
	// prefix or fixed-width value is fully readable.
	ErrTruncated = errors.New("truncated cdx stream")

	// ErrInvalidLength is returned when a value kind is handed a byte
	// slice whose length it cannot decode.
	ErrInvalidLength = errors.New("invalid length for value kind")

	// ErrOutOfRange is returned when a value does not fit its kind.
	ErrOutOfRange = errors.New("value out of range")

	// ErrUnknownEnumValue is returned when an enumerated value's
	// numeric or symbolic form is not recognized.
	ErrUnknownEnumValue = errors.New("unknown enum value")

	// ErrCharset is returned when text cannot be encoded or decoded in
	// its declared charset.
	ErrCharset = errors.New("charset error")

	// ErrNoCoordinates is returned by the styler when a fragment's atom
	// is missing a position attribute.
	ErrNoCoordinates = errors.New("fragment has no coordinates")

	// ErrNoAtoms is returned by the styler for a fragment with zero
	// atom children.
	ErrNoAtoms = errors.New("fragment has no atoms")

	// ErrUnknownPreset is returned for a style preset name or source
	// document that doesn't resolve to a complete parameter set.
	ErrUnknownPreset = errors.New("unknown style preset")

	// ErrUnknownObjectTag is returned when a catalog miss cannot be
	// recovered from (desynchronized stream).
	ErrUnknownObjectTag = errors.New("unknown object tag")
)

// Error is the structured error type used across cdxlib. It records
// which component and operation failed, along with the underlying
// cause, without losing the ability to match sentinels via errors.Is.
type Error struct {
	// Component identifies the package where the error originated,
	// e.g. "cdx", "cdxvalue", "cdxml", "styler".
	Component string

	// Op describes the operation being performed, e.g. "decode",
	// "write object", "parse preset".
	Op string

	// Detail is optional free-form context, e.g. a tag id or element
	// name, appended to the message when non-empty.
	Detail string

	// Err is the underlying error or sentinel.
	Err error
}

func (e *Error) Error() string {
	msg := e.Component
	if e.Op != "" {
		if msg != "" {
			msg += ": "
		}
		msg += e.Op
	}
	if e.Detail != "" {
		msg += " " + e.Detail
	}
	if e.Err != nil {
		if msg != "" {
			msg += ": "
		}
		msg += e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New wraps err with component/op/detail context. Returns nil if err is nil.
func New(component, op, detail string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Component: component, Op: op, Detail: detail, Err: err}
}

// Newf is a convenience for New where detail needs formatting.
func Newf(component, op string, err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{Component: component, Op: op, Detail: fmt.Sprintf(format, args...), Err: err}
}
