package cdxvalue

import (
	"encoding/binary"
	"log/slog"
	"strconv"
)

// ColorIndex is a CDXColorIndex: a UINT16 index into the document's
// color table. Real files have been observed writing this property as
// 4 bytes instead of the documented 2; when that happens
// only the first two bytes carry the index and the repair is logged.
type ColorIndex struct {
	v uint16
}

func (c ColorIndex) EncodeBinary() ([]byte, error) {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, c.v)
	return b, nil
}

func (c ColorIndex) FormatText() string {
	return strconv.FormatUint(uint64(c.v), 10)
}

type colorIndexKind struct{}

func (colorIndexKind) Name() string { return "CDXColorIndex" }

func (colorIndexKind) DecodeBinary(b []byte) (Value, error) {
	switch len(b) {
	case 2:
		return ColorIndex{v: binary.LittleEndian.Uint16(b)}, nil
	case 4:
		slog.Warn("cdxvalue: repairing 4-byte color property, using first 2 bytes", "bytes", b)
		return ColorIndex{v: binary.LittleEndian.Uint16(b[:2])}, nil
	default:
		return nil, errInvalidLength("CDXColorIndex", 2, len(b))
	}
}

func (colorIndexKind) ParseText(s string) (Value, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return nil, errOutOfRange("CDXColorIndex", s)
	}
	return ColorIndex{v: uint16(v)}, nil
}

// KindColorIndex is the CDXColorIndex value kind.
var KindColorIndex Kind = colorIndexKind{}
