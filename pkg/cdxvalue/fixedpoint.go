package cdxvalue

import (
	"encoding/binary"
	"strconv"
)

// FixedPoint16 is a percentage-style value stored as a 16-bit integer
// in tenths of a percent (the CDXBondSpacing-typed attributes,
// BondSpacing and BS, use this encoding: the binary value 180 means
// 18.0%).
type FixedPoint16 struct {
	TenthsOfPercent int64
}

func (fp FixedPoint16) EncodeBinary() ([]byte, error) {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, uint16(fp.TenthsOfPercent))
	return b, nil
}

func (fp FixedPoint16) Percent() float64 { return float64(fp.TenthsOfPercent) / 10.0 }

func (fp FixedPoint16) FormatText() string {
	return strconv.FormatFloat(round2(fp.Percent()), 'f', -1, 64)
}

type fixedPoint16Kind struct{ name string }

func (k fixedPoint16Kind) Name() string { return k.name }

func (k fixedPoint16Kind) DecodeBinary(b []byte) (Value, error) {
	if len(b) != 2 {
		return nil, errInvalidLength(k.name, 2, len(b))
	}
	return FixedPoint16{TenthsOfPercent: int64(binary.LittleEndian.Uint16(b))}, nil
}

func (k fixedPoint16Kind) ParseText(s string) (Value, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errOutOfRange(k.name, s)
	}
	return FixedPoint16{TenthsOfPercent: int64(f * 10)}, nil
}

// KindFixedPoint16 is the shared Kind for the CDXBondSpacing-typed
// attributes (BondSpacing, BS).
var KindFixedPoint16 Kind = fixedPoint16Kind{name: "FixedPoint16"}
