package cdxvalue

import (
	"encoding/binary"
	"strconv"
	"strings"
)

// IDArray is a CDXObjectIDArray: a flat list of 32-bit object ids, used
// e.g. for bond/atom membership lists.
type IDArray struct {
	IDs []uint32
}

func (a IDArray) EncodeBinary() ([]byte, error) {
	b := make([]byte, 4*len(a.IDs))
	for i, id := range a.IDs {
		binary.LittleEndian.PutUint32(b[i*4:i*4+4], id)
	}
	return b, nil
}

func (a IDArray) FormatText() string {
	parts := make([]string, len(a.IDs))
	for i, id := range a.IDs {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, " ")
}

type idArrayKind struct{}

func (idArrayKind) Name() string { return "CDXObjectIDArray" }

func (idArrayKind) DecodeBinary(b []byte) (Value, error) {
	if len(b)%4 != 0 {
		return nil, errInvalidLength("CDXObjectIDArray", len(b)-len(b)%4, len(b))
	}
	n := len(b) / 4
	ids := make([]uint32, n)
	for i := 0; i < n; i++ {
		ids[i] = binary.LittleEndian.Uint32(b[i*4 : i*4+4])
	}
	return IDArray{IDs: ids}, nil
}

func (idArrayKind) ParseText(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return IDArray{}, nil
	}
	fields := strings.Fields(s)
	ids := make([]uint32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return nil, errOutOfRange("CDXObjectIDArray", f)
		}
		ids[i] = uint32(v)
	}
	return IDArray{IDs: ids}, nil
}

// KindIDArray is the CDXObjectIDArray value kind.
var KindIDArray Kind = idArrayKind{}

// Int16ListWithCounts is the INT16ListWithCounts value: a u16 count
// followed by that many u16 entries.
type Int16ListWithCounts struct {
	Values []uint16
}

func (l Int16ListWithCounts) EncodeBinary() ([]byte, error) {
	b := make([]byte, 2+2*len(l.Values))
	binary.LittleEndian.PutUint16(b[0:2], uint16(len(l.Values)))
	for i, v := range l.Values {
		binary.LittleEndian.PutUint16(b[2+i*2:4+i*2], v)
	}
	return b, nil
}

func (l Int16ListWithCounts) FormatText() string {
	parts := make([]string, len(l.Values))
	for i, v := range l.Values {
		parts[i] = strconv.FormatUint(uint64(v), 10)
	}
	return strings.Join(parts, " ")
}

type int16ListWithCountsKind struct{}

func (int16ListWithCountsKind) Name() string { return "INT16ListWithCounts" }

func (int16ListWithCountsKind) DecodeBinary(b []byte) (Value, error) {
	if len(b) < 2 {
		return nil, errInvalidLength("INT16ListWithCounts", 2, len(b))
	}
	count := int(binary.LittleEndian.Uint16(b[0:2]))
	want := 2 + 2*count
	if len(b) != want {
		return nil, errInvalidLength("INT16ListWithCounts", want, len(b))
	}
	values := make([]uint16, count)
	for i := 0; i < count; i++ {
		values[i] = binary.LittleEndian.Uint16(b[2+i*2 : 4+i*2])
	}
	return Int16ListWithCounts{Values: values}, nil
}

func (int16ListWithCountsKind) ParseText(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Int16ListWithCounts{}, nil
	}
	fields := strings.Fields(s)
	values := make([]uint16, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 16)
		if err != nil {
			return nil, errOutOfRange("INT16ListWithCounts", f)
		}
		values[i] = uint16(v)
	}
	return Int16ListWithCounts{Values: values}, nil
}

// KindInt16ListWithCounts is the INT16ListWithCounts value kind.
var KindInt16ListWithCounts Kind = int16ListWithCountsKind{}
