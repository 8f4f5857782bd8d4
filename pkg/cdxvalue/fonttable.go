package cdxvalue

import (
	"encoding/binary"
	"strconv"
	"strings"
)

// Font is one entry of a CDXFontTable.
type Font struct {
	ID      uint16
	Charset uint16
	Name    string
}

// FontTable is the CDXFontTable value: a platform id plus the list of
// fonts referenced by FontStyle.FontID elsewhere in the document. It
// is a document-level attribute in binary but a <fonttable> child
// element with <font> children in CDXML; pkg/cdx handles that
// structural fold, this type only carries the decoded table.
type FontTable struct {
	Platform uint16
	Fonts    []Font
}

func (ft FontTable) EncodeBinary() ([]byte, error) {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint16(buf[0:2], ft.Platform)
	binary.LittleEndian.PutUint16(buf[2:4], uint16(len(ft.Fonts)))
	for _, f := range ft.Fonts {
		nameBytes := []byte(f.Name)
		entry := make([]byte, 6+len(nameBytes))
		binary.LittleEndian.PutUint16(entry[0:2], f.ID)
		binary.LittleEndian.PutUint16(entry[2:4], f.Charset)
		binary.LittleEndian.PutUint16(entry[4:6], uint16(len(nameBytes)))
		copy(entry[6:], nameBytes)
		buf = append(buf, entry...)
	}
	return buf, nil
}

// FormatText has no natural single-string CDXML rendering; FontTable
// is always folded to <fonttable>/<font> children by pkg/cdx rather
// than written as an attribute value.
func (ft FontTable) FormatText() string { return "" }

type fontTableKind struct{}

func (fontTableKind) Name() string { return "CDXFontTable" }

func (fontTableKind) DecodeBinary(b []byte) (Value, error) {
	if len(b) < 4 {
		return nil, errInvalidLength("CDXFontTable", 4, len(b))
	}
	platform := binary.LittleEndian.Uint16(b[0:2])
	count := int(binary.LittleEndian.Uint16(b[2:4]))
	fonts := make([]Font, 0, count)
	off := 4
	for i := 0; i < count; i++ {
		if len(b) < off+6 {
			return nil, errInvalidLength("CDXFontTable entry header", 6, len(b)-off)
		}
		id := binary.LittleEndian.Uint16(b[off : off+2])
		charset := binary.LittleEndian.Uint16(b[off+2 : off+4])
		nameLen := int(binary.LittleEndian.Uint16(b[off+4 : off+6]))
		off += 6
		if len(b) < off+nameLen {
			return nil, errInvalidLength("CDXFontTable entry name", nameLen, len(b)-off)
		}
		name := string(b[off : off+nameLen])
		off += nameLen
		fonts = append(fonts, Font{ID: id, Charset: charset, Name: name})
	}
	return FontTable{Platform: platform, Fonts: fonts}, nil
}

func (fontTableKind) ParseText(s string) (Value, error) {
	return FontTable{}, nil
}

// KindFontTable is the CDXFontTable value kind.
var KindFontTable Kind = fontTableKind{}

// Color is one entry of a CDXColorTable: red/green/blue components in
// binary are u16 (0..65535); in CDXML they are floats in [0,1].
type Color struct {
	R, G, B uint16
}

func (c Color) EncodeBinary() ([]byte, error) {
	b := make([]byte, 6)
	binary.LittleEndian.PutUint16(b[0:2], c.R)
	binary.LittleEndian.PutUint16(b[2:4], c.G)
	binary.LittleEndian.PutUint16(b[4:6], c.B)
	return b, nil
}

// FormatAttrs renders the r/g/b floats for a <color> element.
func (c Color) FormatAttrs() string {
	return `r="` + formatColorComponent(c.R) +
		`" g="` + formatColorComponent(c.G) +
		`" b="` + formatColorComponent(c.B) + `"`
}

func (c Color) FormatText() string { return c.FormatAttrs() }

func formatColorComponent(v uint16) string {
	return strconv.FormatFloat(round2(float64(v)/65535.0), 'f', -1, 64)
}

// FormatColorComponentText renders a single u16 color component as the
// CDXML unit-float text, exported for pkg/cdx's colortable folding.
func FormatColorComponentText(v uint16) string {
	return formatColorComponent(v)
}

func parseColorComponent(s string) (uint16, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errOutOfRange("CDXColor component", s)
	}
	return uint16(f * 65535), nil
}

// ColorFromAttrs builds a Color from a <color> element's r/g/b
// attribute text.
func ColorFromAttrs(r, g, b string) (Color, error) {
	rv, err := parseColorComponent(r)
	if err != nil {
		return Color{}, err
	}
	gv, err := parseColorComponent(g)
	if err != nil {
		return Color{}, err
	}
	bv, err := parseColorComponent(b)
	if err != nil {
		return Color{}, err
	}
	return Color{R: rv, G: gv, B: bv}, nil
}

// ColorTable is the CDXColorTable value: same document/attribute vs.
// child-element structural mismatch as FontTable.
type ColorTable struct {
	Colors []Color
}

func (ct ColorTable) EncodeBinary() ([]byte, error) {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, uint16(len(ct.Colors)))
	for _, c := range ct.Colors {
		cb, err := c.EncodeBinary()
		if err != nil {
			return nil, err
		}
		buf = append(buf, cb...)
	}
	return buf, nil
}

func (ct ColorTable) FormatText() string { return "" }

type colorTableKind struct{}

func (colorTableKind) Name() string { return "CDXColorTable" }

func (colorTableKind) DecodeBinary(b []byte) (Value, error) {
	if len(b) < 2 {
		return nil, errInvalidLength("CDXColorTable", 2, len(b))
	}
	count := int(binary.LittleEndian.Uint16(b[0:2]))
	const entrySize = 6
	want := 2 + count*entrySize
	if len(b) < want {
		return nil, errInvalidLength("CDXColorTable", want, len(b))
	}
	colors := make([]Color, 0, count)
	off := 2
	for i := 0; i < count; i++ {
		colors = append(colors, Color{
			R: binary.LittleEndian.Uint16(b[off : off+2]),
			G: binary.LittleEndian.Uint16(b[off+2 : off+4]),
			B: binary.LittleEndian.Uint16(b[off+4 : off+6]),
		})
		off += entrySize
	}
	return ColorTable{Colors: colors}, nil
}

func (colorTableKind) ParseText(s string) (Value, error) {
	return ColorTable{}, nil
}

// KindColorTable is the CDXColorTable value kind.
var KindColorTable Kind = colorTableKind{}
