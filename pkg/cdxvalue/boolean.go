package cdxvalue

import "fmt"

// Boolean is a CDXBoolean: one byte in binary (0 = no, else yes),
// "yes"/"no" in text. Unlike BooleanImplied, a false value is still
// written out - presence of the property doesn't by itself carry
// meaning.
type Boolean struct {
	V bool
}

func (b Boolean) EncodeBinary() ([]byte, error) {
	if b.V {
		return []byte{1}, nil
	}
	return []byte{0}, nil
}

func (b Boolean) FormatText() string {
	if b.V {
		return "yes"
	}
	return "no"
}

type booleanKind struct{}

func (booleanKind) Name() string { return "CDXBoolean" }

func (booleanKind) DecodeBinary(b []byte) (Value, error) {
	if len(b) != 1 {
		return nil, errInvalidLength("CDXBoolean", 1, len(b))
	}
	return Boolean{V: b[0] != 0}, nil
}

func (booleanKind) ParseText(s string) (Value, error) {
	switch s {
	case "yes":
		return Boolean{V: true}, nil
	case "no":
		return Boolean{V: false}, nil
	default:
		return nil, errUnknownEnum("CDXBoolean", s)
	}
}

// KindBoolean is the CDXBoolean value kind.
var KindBoolean Kind = booleanKind{}

// BooleanImplied is a CDXBooleanImplied: zero-length payload means
// true, absence from the stream means false. A BooleanImplied with
// logical value false must never appear in the binary stream, so
// EncodeBinary on a false value fails the write rather than emitting
// anything.
type BooleanImplied struct {
	V bool
}

func (b BooleanImplied) EncodeBinary() ([]byte, error) {
	if !b.V {
		return nil, fmt.Errorf("CDXBooleanImplied: false value must not be written to cdx stream")
	}
	return []byte{}, nil
}

func (b BooleanImplied) FormatText() string {
	if b.V {
		return "yes"
	}
	return "no"
}

type booleanImpliedKind struct{}

func (booleanImpliedKind) Name() string { return "CDXBooleanImplied" }

func (booleanImpliedKind) DecodeBinary(b []byte) (Value, error) {
	if len(b) != 0 {
		return nil, errInvalidLength("CDXBooleanImplied", 0, len(b))
	}
	return BooleanImplied{V: true}, nil
}

func (booleanImpliedKind) ParseText(s string) (Value, error) {
	switch s {
	case "yes":
		return BooleanImplied{V: true}, nil
	case "no":
		return BooleanImplied{V: false}, nil
	default:
		return nil, errUnknownEnum("CDXBooleanImplied", s)
	}
}

// KindBooleanImplied is the CDXBooleanImplied value kind.
var KindBooleanImplied Kind = booleanImpliedKind{}
