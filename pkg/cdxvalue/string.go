package cdxvalue

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/dimelords/cdxlib/internal/cdxerr"
)

// FontStyle is the 8-byte tuple attached to each run of a CDXString and
// to the CDXFontStyle-kinded LabelStyle/CaptionStyle attributes:
// font id, face bit flags, size in 1/20 pt, and a color table index.
type FontStyle struct {
	FontID uint16
	Face   uint16
	Size   uint16 // 1/20 pt
	Color  uint16
}

// DefaultFontSize is 12pt expressed in 1/20pt units, used whenever a
// run or style omits its size.
const DefaultFontSize uint16 = 12 * 20

func (fs FontStyle) SizePoints() float64 {
	return float64(fs.Size) / 20.0
}

func (fs FontStyle) EncodeBinary() ([]byte, error) {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint16(b[0:2], fs.FontID)
	binary.LittleEndian.PutUint16(b[2:4], fs.Face)
	binary.LittleEndian.PutUint16(b[4:6], fs.Size)
	binary.LittleEndian.PutUint16(b[6:8], fs.Color)
	return b, nil
}

func (fs FontStyle) FormatText() string {
	return fs.FormatAttrs()
}

// FormatAttrs is the CDXFontStyle's property-value form used when
// LabelStyle/CaptionStyle is emitted as a single synthetic value
// (rather than folded into font/size/face/color attributes on an <s>).
func (fs FontStyle) FormatAttrs() string {
	return `font="` + strconv.FormatUint(uint64(fs.FontID), 10) +
		`" size="` + formatFontSize(fs.Size) +
		`" face="` + strconv.FormatUint(uint64(fs.Face), 10) +
		`" color="` + strconv.FormatUint(uint64(fs.Color), 10) + `"`
}

func formatFontSize(size1_20 uint16) string {
	return strconv.FormatFloat(float64(size1_20)/20.0, 'f', -1, 64)
}

// FormatFontSizeText renders a 1/20pt font size as CDXML point text,
// exported for pkg/cdx's LabelStyle/CaptionStyle/run-folding logic.
func FormatFontSizeText(size1_20 uint16) string {
	return formatFontSize(size1_20)
}

func decodeFontStyle(b []byte) (FontStyle, error) {
	if len(b) != 8 {
		return FontStyle{}, errInvalidLength("CDXFontStyle", 8, len(b))
	}
	return FontStyle{
		FontID: binary.LittleEndian.Uint16(b[0:2]),
		Face:   binary.LittleEndian.Uint16(b[2:4]),
		Size:   binary.LittleEndian.Uint16(b[4:6]),
		Color:  binary.LittleEndian.Uint16(b[6:8]),
	}, nil
}

// FontStyleFromRunAttrs builds a FontStyle from an <s> element's font,
// size, face and color attributes. Missing attributes get ChemDraw's
// defaults: face=0 (plain), size=DefaultFontSize, color=0 (black).
// font is required.
func FontStyleFromRunAttrs(font string, size, face, color *string) (FontStyle, error) {
	fontID, err := strconv.ParseUint(font, 10, 16)
	if err != nil {
		return FontStyle{}, errOutOfRange("CDXFontStyle.font", font)
	}
	fs := FontStyle{FontID: uint16(fontID), Face: 0, Size: DefaultFontSize, Color: 0}
	if face != nil {
		v, err := strconv.ParseUint(*face, 10, 16)
		if err != nil {
			return FontStyle{}, errOutOfRange("CDXFontStyle.face", *face)
		}
		fs.Face = uint16(v)
	}
	if size != nil {
		v, err := strconv.ParseFloat(*size, 64)
		if err != nil {
			return FontStyle{}, errOutOfRange("CDXFontStyle.size", *size)
		}
		fs.Size = uint16(v * 20)
	}
	if color != nil {
		v, err := strconv.ParseUint(*color, 10, 16)
		if err != nil {
			return FontStyle{}, errOutOfRange("CDXFontStyle.color", *color)
		}
		fs.Color = uint16(v)
	}
	return fs, nil
}

type fontStyleKind struct{}

func (fontStyleKind) Name() string { return "CDXFontStyle" }

func (fontStyleKind) DecodeBinary(b []byte) (Value, error) {
	return decodeFontStyle(b)
}

func (fontStyleKind) ParseText(s string) (Value, error) {
	// Only used when LabelStyle/CaptionStyle is addressed directly as a
	// property value rather than folded; accepts the same font="" size=""
	// face="" color="" attribute syntax FormatAttrs produces.
	attrs := map[string]string{}
	for _, kv := range strings.Fields(s) {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		attrs[parts[0]] = strings.Trim(parts[1], `"`)
	}
	font, ok := attrs["font"]
	if !ok {
		return nil, errOutOfRange("CDXFontStyle", s)
	}
	var size, face, color *string
	if v, ok := attrs["size"]; ok {
		size = &v
	}
	if v, ok := attrs["face"]; ok {
		face = &v
	}
	if v, ok := attrs["color"]; ok {
		color = &v
	}
	return FontStyleFromRunAttrs(font, size, face, color)
}

// KindFontStyle is the CDXFontStyle value kind.
var KindFontStyle Kind = fontStyleKind{}

// Run is one styled span of a CDXString: it covers the text starting
// at StartIndex up to the next run's StartIndex (or end of text), with
// Style applied throughout.
type Run struct {
	StartIndex int
	Style      FontStyle
}

// StyledString is a CDXString: flat text plus a parallel, nondecreasing
// sequence of (start, style) runs. A StyledString with zero runs is
// valid as a bare property value (e.g. UTF8Text is never rendered as
// runs); a <t> element with zero <s> children is not a valid source to
// fold back into one.
type StyledString struct {
	Text    string
	Runs    []Run
	Charset string // "iso-8859-1" (default) or "utf-8"
}

func (ss StyledString) EncodeBinary() ([]byte, error) {
	var buf []byte
	runCount := make([]byte, 2)
	binary.LittleEndian.PutUint16(runCount, uint16(len(ss.Runs)))
	buf = append(buf, runCount...)
	for _, r := range ss.Runs {
		start := make([]byte, 2)
		binary.LittleEndian.PutUint16(start, uint16(r.StartIndex))
		buf = append(buf, start...)
		sb, err := r.Style.EncodeBinary()
		if err != nil {
			return nil, err
		}
		buf = append(buf, sb...)
	}
	textBytes, err := encodeText(ss.Text, ss.Charset)
	if err != nil {
		return nil, err
	}
	return append(buf, textBytes...), nil
}

func (ss StyledString) FormatText() string {
	return ss.Text
}

func encodeText(s, charset string) ([]byte, error) {
	if charset == "" {
		charset = "iso-8859-1"
	}
	if charset == "utf-8" {
		return []byte(s), nil
	}
	enc := charmap.ISO8859_1.NewEncoder()
	b, err := enc.Bytes([]byte(s))
	if err != nil {
		slog.Warn("cdxvalue: CDXString not representable in declared charset, falling back to UTF-8", "charset", charset, "error", err)
		return []byte(s), nil
	}
	return b, nil
}

func decodeText(b []byte, charset string) (string, error) {
	if charset == "utf-8" {
		return string(b), nil
	}
	dec := charmap.ISO8859_1.NewDecoder()
	out, err := dec.Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decode %s text: %v: %w", charset, err, cdxerr.ErrCharset)
	}
	return string(out), nil
}

// DecodeStyledString decodes a CDXString payload. charset selects the
// text decoding: "iso-8859-1" for the Text property, "utf-8" for the
// UTF8Text mirror property.
func DecodeStyledString(b []byte, charset string) (StyledString, error) {
	if len(b) < 2 {
		return StyledString{}, errInvalidLength("CDXString", 2, len(b))
	}
	runCount := int(binary.LittleEndian.Uint16(b[0:2]))
	const bytesPerRun = 10 // 2-byte start + 8-byte style
	headerLen := 2 + runCount*bytesPerRun
	if len(b) < headerLen {
		return StyledString{}, errInvalidLength("CDXString", headerLen, len(b))
	}
	runs := make([]Run, 0, runCount)
	off := 2
	for i := 0; i < runCount; i++ {
		start := int(binary.LittleEndian.Uint16(b[off : off+2]))
		style, err := decodeFontStyle(b[off+2 : off+10])
		if err != nil {
			return StyledString{}, err
		}
		runs = append(runs, Run{StartIndex: start, Style: style})
		off += bytesPerRun
	}
	text, err := decodeText(b[headerLen:], charset)
	if err != nil {
		return StyledString{}, err
	}
	return StyledString{Text: text, Runs: runs, Charset: charset}, nil
}

type styledStringKind struct {
	charset string
}

func (k styledStringKind) Name() string {
	if k.charset == "utf-8" {
		return "UTF8CDXString"
	}
	return "CDXString"
}

func (k styledStringKind) DecodeBinary(b []byte) (Value, error) {
	ss, err := DecodeStyledString(b, k.charset)
	if err != nil {
		return nil, err
	}
	return ss, nil
}

func (k styledStringKind) ParseText(s string) (Value, error) {
	return StyledString{Text: s, Charset: k.charset}, nil
}

// KindString is the CDXString value kind (iso-8859-1 charset).
var KindString Kind = styledStringKind{charset: "iso-8859-1"}

// KindUTF8String is the UTF8Text mirror of CDXString.
var KindUTF8String Kind = styledStringKind{charset: "utf-8"}
