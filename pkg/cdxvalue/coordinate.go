package cdxvalue

import (
	"encoding/binary"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// coordinateUnitsPerPoint is the CDX fixed-point scale: one CDX unit is
// 1/65536 of a point.
const coordinateUnitsPerPoint = 65536

const (
	coordMax = 1<<31 - 1
	coordMin = -1 << 31
)

// Coordinate is a single CDXCoordinate: a signed 32-bit fixed-point
// distance, 1 unit = 1/65536 pt in binary, decimal points in text.
type Coordinate struct {
	units int64 // pre-saturation value; saturated on EncodeBinary
}

func NewCoordinate(units int64) Coordinate { return Coordinate{units: units} }

func (c Coordinate) Units() int64 { return c.units }

func (c Coordinate) EncodeBinary() ([]byte, error) {
	v := c.units
	if v > coordMax {
		slog.Warn("cdxvalue: coordinate exceeds maximum, saturating", "value", v, "max", coordMax)
		v = coordMax
	} else if v < coordMin {
		slog.Warn("cdxvalue: coordinate exceeds minimum, saturating", "value", v, "min", coordMin)
		v = coordMin
	}
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(int32(v)))
	return b, nil
}

func (c Coordinate) FormatText() string {
	return formatCoordinatePoints(c.units)
}

func formatCoordinatePoints(units int64) string {
	pts := float64(units) / coordinateUnitsPerPoint
	return strconv.FormatFloat(round2(pts), 'f', -1, 64)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type coordinateKind struct{}

func (coordinateKind) Name() string { return "CDXCoordinate" }

func (coordinateKind) DecodeBinary(b []byte) (Value, error) {
	if len(b) != 4 {
		return nil, errInvalidLength("CDXCoordinate", 4, len(b))
	}
	v := int32(binary.LittleEndian.Uint32(b))
	return Coordinate{units: int64(v)}, nil
}

func (coordinateKind) ParseText(s string) (Value, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, errOutOfRange("CDXCoordinate", s)
	}
	units := int64(f * coordinateUnitsPerPoint)
	return Coordinate{units: units}, nil
}

// KindCoordinate is the CDXCoordinate value kind.
var KindCoordinate Kind = coordinateKind{}

func decodeCoordinateSlice(b []byte) (Coordinate, error) {
	v, err := KindCoordinate.DecodeBinary(b)
	if err != nil {
		return Coordinate{}, err
	}
	return v.(Coordinate), nil
}

func parseCoordinateText(s string) (Coordinate, error) {
	v, err := KindCoordinate.ParseText(s)
	if err != nil {
		return Coordinate{}, err
	}
	return v.(Coordinate), nil
}

// Point2D is a CDXPoint2D: binary order is y then x; textual order is
// "x y". The axis inversion between the two forms is an intentional
// part of the on-wire contract, not an oversight.
type Point2D struct {
	X, Y Coordinate
}

func (p Point2D) EncodeBinary() ([]byte, error) {
	yb, err := p.Y.EncodeBinary()
	if err != nil {
		return nil, err
	}
	xb, err := p.X.EncodeBinary()
	if err != nil {
		return nil, err
	}
	return append(yb, xb...), nil
}

func (p Point2D) FormatText() string {
	return p.X.FormatText() + " " + p.Y.FormatText()
}

type point2DKind struct{}

func (point2DKind) Name() string { return "CDXPoint2D" }

func (point2DKind) DecodeBinary(b []byte) (Value, error) {
	if len(b) != 8 {
		return nil, errInvalidLength("CDXPoint2D", 8, len(b))
	}
	y, err := decodeCoordinateSlice(b[0:4])
	if err != nil {
		return nil, err
	}
	x, err := decodeCoordinateSlice(b[4:8])
	if err != nil {
		return nil, err
	}
	return Point2D{X: x, Y: y}, nil
}

func (point2DKind) ParseText(s string) (Value, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return nil, errOutOfRange("CDXPoint2D", s)
	}
	x, err := parseCoordinateText(parts[0])
	if err != nil {
		return nil, err
	}
	y, err := parseCoordinateText(parts[1])
	if err != nil {
		return nil, err
	}
	return Point2D{X: x, Y: y}, nil
}

// KindPoint2D is the CDXPoint2D value kind.
var KindPoint2D Kind = point2DKind{}

// Point3D is a CDXPoint3D. Binary order is z,y,x; the textual form is
// "x y z" in both directions, matching the established Point2D
// convention and real ChemDraw CDXML output (the published format
// documentation is ambiguous on the textual order; see DESIGN.md).
type Point3D struct {
	X, Y, Z Coordinate
}

func (p Point3D) EncodeBinary() ([]byte, error) {
	zb, err := p.Z.EncodeBinary()
	if err != nil {
		return nil, err
	}
	yb, err := p.Y.EncodeBinary()
	if err != nil {
		return nil, err
	}
	xb, err := p.X.EncodeBinary()
	if err != nil {
		return nil, err
	}
	out := append(zb, yb...)
	return append(out, xb...), nil
}

func (p Point3D) FormatText() string {
	return p.X.FormatText() + " " + p.Y.FormatText() + " " + p.Z.FormatText()
}

type point3DKind struct{}

func (point3DKind) Name() string { return "CDXPoint3D" }

func (point3DKind) DecodeBinary(b []byte) (Value, error) {
	if len(b) != 12 {
		return nil, errInvalidLength("CDXPoint3D", 12, len(b))
	}
	z, err := decodeCoordinateSlice(b[0:4])
	if err != nil {
		return nil, err
	}
	y, err := decodeCoordinateSlice(b[4:8])
	if err != nil {
		return nil, err
	}
	x, err := decodeCoordinateSlice(b[8:12])
	if err != nil {
		return nil, err
	}
	return Point3D{X: x, Y: y, Z: z}, nil
}

func (point3DKind) ParseText(s string) (Value, error) {
	parts := strings.Fields(s)
	if len(parts) != 3 {
		return nil, errOutOfRange("CDXPoint3D", s)
	}
	x, err := parseCoordinateText(parts[0])
	if err != nil {
		return nil, err
	}
	y, err := parseCoordinateText(parts[1])
	if err != nil {
		return nil, err
	}
	z, err := parseCoordinateText(parts[2])
	if err != nil {
		return nil, err
	}
	return Point3D{X: x, Y: y, Z: z}, nil
}

// KindPoint3D is the CDXPoint3D value kind.
var KindPoint3D Kind = point3DKind{}

// Rectangle is a CDXRectangle. Binary order is top,left,bottom,right;
// textual order is "left top right bottom" - again an intentional
// axis/order inversion between the two forms.
type Rectangle struct {
	Top, Left, Bottom, Right Coordinate
}

func (r Rectangle) EncodeBinary() ([]byte, error) {
	var out []byte
	for _, c := range []Coordinate{r.Top, r.Left, r.Bottom, r.Right} {
		b, err := c.EncodeBinary()
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

func (r Rectangle) FormatText() string {
	return strings.Join([]string{
		r.Left.FormatText(), r.Top.FormatText(), r.Right.FormatText(), r.Bottom.FormatText(),
	}, " ")
}

type rectangleKind struct{}

func (rectangleKind) Name() string { return "CDXRectangle" }

func (rectangleKind) DecodeBinary(b []byte) (Value, error) {
	if len(b) != 16 {
		return nil, errInvalidLength("CDXRectangle", 16, len(b))
	}
	top, err := decodeCoordinateSlice(b[0:4])
	if err != nil {
		return nil, err
	}
	left, err := decodeCoordinateSlice(b[4:8])
	if err != nil {
		return nil, err
	}
	bottom, err := decodeCoordinateSlice(b[8:12])
	if err != nil {
		return nil, err
	}
	right, err := decodeCoordinateSlice(b[12:16])
	if err != nil {
		return nil, err
	}
	return Rectangle{Top: top, Left: left, Bottom: bottom, Right: right}, nil
}

func (rectangleKind) ParseText(s string) (Value, error) {
	parts := strings.Fields(s)
	if len(parts) != 4 {
		return nil, errOutOfRange("CDXRectangle", s)
	}
	left, err := parseCoordinateText(parts[0])
	if err != nil {
		return nil, err
	}
	top, err := parseCoordinateText(parts[1])
	if err != nil {
		return nil, err
	}
	right, err := parseCoordinateText(parts[2])
	if err != nil {
		return nil, err
	}
	bottom, err := parseCoordinateText(parts[3])
	if err != nil {
		return nil, err
	}
	return Rectangle{Top: top, Left: left, Bottom: bottom, Right: right}, nil
}

// KindRectangle is the CDXRectangle value kind.
var KindRectangle Kind = rectangleKind{}
