package cdxvalue

import (
	"encoding/binary"
	"strconv"
	"strings"
)

// EnumPair is one symbolic-name/numeric-value mapping for an enum kind.
type EnumPair struct {
	Name  string
	Value int64
}

// EnumValue is a decoded plain (non-bitflag) enumeration: exactly one
// symbolic name per numeric value.
type EnumValue struct {
	kind  string
	width int
	name  string
	value int64
}

func (e EnumValue) Int64() int64  { return e.value }
func (e EnumValue) String() string { return e.name }

func (e EnumValue) EncodeBinary() ([]byte, error) {
	return encodeSignedWidth(e.value, e.width), nil
}

func (e EnumValue) FormatText() string { return e.name }

func encodeSignedWidth(v int64, width int) []byte {
	b := make([]byte, width)
	switch width {
	case 1:
		b[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(b, uint32(v))
	}
	return b
}

func decodeSignedWidth(b []byte) int64 {
	switch len(b) {
	case 1:
		return int64(int8(b[0]))
	case 2:
		return int64(int16(binary.LittleEndian.Uint16(b)))
	case 4:
		return int64(int32(binary.LittleEndian.Uint32(b)))
	}
	return 0
}

type enumKind struct {
	name    string
	width   int
	byName  map[string]int64
	byValue map[int64]string
}

func (k enumKind) Name() string { return k.name }

func (k enumKind) DecodeBinary(b []byte) (Value, error) {
	if len(b) != k.width {
		return nil, errInvalidLength(k.name, k.width, len(b))
	}
	v := decodeSignedWidth(b)
	name, ok := k.byValue[v]
	if !ok {
		return nil, errUnknownEnum(k.name, strconv.FormatInt(v, 10))
	}
	return EnumValue{kind: k.name, width: k.width, name: name, value: v}, nil
}

func (k enumKind) ParseText(s string) (Value, error) {
	v, ok := k.byName[s]
	if !ok {
		return nil, errUnknownEnum(k.name, s)
	}
	return EnumValue{kind: k.name, width: k.width, name: s, value: v}, nil
}

// NewEnumKind builds a plain enumeration Kind from its symbolic-name
// table. width is the binary encoding width in bytes (1, 2 or 4).
func NewEnumKind(name string, width int, pairs []EnumPair) Kind {
	byName := make(map[string]int64, len(pairs))
	byValue := make(map[int64]string, len(pairs))
	for _, p := range pairs {
		byName[p.Name] = p.Value
		byValue[p.Value] = p.Name
	}
	return enumKind{name: name, width: width, byName: byName, byValue: byValue}
}

// BitflagValue is a decoded bit-flag composite enum (CDXArrowType,
// CDXOvalType, CDXFillType, ...): the raw integer may have more than
// one recognized bit set, and is formatted as the space-joined list of
// the canonical flag names whose bit is set, in catalog order.
type BitflagValue struct {
	kind  string
	width int
	names []string
	value int64
}

func (b BitflagValue) Int64() int64 { return b.value }

func (b BitflagValue) EncodeBinary() ([]byte, error) {
	return encodeSignedWidth(b.value, b.width), nil
}

func (b BitflagValue) FormatText() string {
	if len(b.names) == 0 {
		return "0"
	}
	return strings.Join(b.names, " ")
}

type bitflagKind struct {
	name    string
	width   int
	byName  map[string]int64
	byValue map[int64]string
	order   []string
}

func (k bitflagKind) Name() string { return k.name }

func (k bitflagKind) DecodeBinary(b []byte) (Value, error) {
	if len(b) != k.width {
		return nil, errInvalidLength(k.name, k.width, len(b))
	}
	v := decodeSignedWidth(b)
	return BitflagValue{kind: k.name, width: k.width, names: k.namesForValue(v), value: v}, nil
}

func (k bitflagKind) namesForValue(v int64) []string {
	var names []string
	for _, name := range k.order {
		bit := k.byName[name]
		if bit != 0 && v&bit == bit {
			names = append(names, name)
		}
	}
	return names
}

func (k bitflagKind) ParseText(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "0" || s == "" {
		return BitflagValue{kind: k.name, width: k.width}, nil
	}
	var v int64
	var names []string
	for _, part := range strings.Fields(s) {
		bit, ok := k.byName[part]
		if !ok {
			return nil, errUnknownEnum(k.name, part)
		}
		v |= bit
		names = append(names, part)
	}
	return BitflagValue{kind: k.name, width: k.width, names: names, value: v}, nil
}

// NewBitflagKind builds a bit-flag composite enum Kind. pairs order is
// preserved as the canonical name order used when formatting a value
// with more than one bit set.
func NewBitflagKind(name string, width int, pairs []EnumPair) Kind {
	byName := make(map[string]int64, len(pairs))
	byValue := make(map[int64]string, len(pairs))
	order := make([]string, len(pairs))
	for i, p := range pairs {
		byName[p.Name] = p.Value
		byValue[p.Value] = p.Name
		order[i] = p.Name
	}
	return bitflagKind{name: name, width: width, byName: byName, byValue: byValue, order: order}
}
