package cdxvalue

import (
	"fmt"

	"github.com/dimelords/cdxlib/pkg/catalog"
)

// KindByName resolves a catalog.ValueKind name to its Kind
// implementation through an exhaustive switch: an unhandled kind is a
// compile-reachable bug surfaced at test time (every catalog entry has
// a corresponding case, checked by TestKindByNameCoversCatalog) rather
// than a silent map miss discovered only when a real file exercises
// it.
func KindByName(name catalog.ValueKind) (Kind, error) {
	switch string(name) {
	case "INT8":
		return KindINT8, nil
	case "UINT8":
		return KindUINT8, nil
	case "INT16":
		return KindINT16, nil
	case "UINT16":
		return KindUINT16, nil
	case "INT32":
		return KindINT32, nil
	case "UINT32":
		return KindUINT32, nil
	case "CDXCoordinate":
		return KindCoordinate, nil
	case "CDXPoint2D":
		return KindPoint2D, nil
	case "CDXPoint3D":
		return KindPoint3D, nil
	case "CDXRectangle":
		return KindRectangle, nil
	case "CDXBoolean":
		return KindBoolean, nil
	case "CDXBooleanImplied":
		return KindBooleanImplied, nil
	case "CDXString":
		return KindString, nil
	case "UTF8CDXString":
		return KindUTF8String, nil
	case "CDXObjectIDArray":
		return KindIDArray, nil
	case "INT16ListWithCounts":
		return KindInt16ListWithCounts, nil
	case "CDXFontTable":
		return KindFontTable, nil
	case "CDXColorTable":
		return KindColorTable, nil
	case "CDXFontStyle":
		return KindFontStyle, nil
	case "CDXBondSpacing":
		return KindFixedPoint16, nil
	case "CDXBondOrder":
		return KindBondOrder, nil
	case "CDXBracketUsage":
		return KindBracketUsage, nil
	case "CDXAtomGeometry":
		return KindAtomGeometry, nil
	case "CDXBondDisplay":
		return KindBondDisplay, nil
	case "CDXJustification":
		return KindJustification, nil
	case "CDXFillType":
		return KindFillType, nil
	case "CDXArrowType":
		return KindArrowType, nil
	case "CDXOvalType":
		return KindOvalType, nil
	case "CDXAutonumberStyle":
		return KindAutonumberStyle, nil
	case "CDXAminoAcidTermini":
		return KindAminoAcidTermini, nil
	case "CDXColorIndex":
		return KindColorIndex, nil
	default:
		return nil, fmt.Errorf("cdxvalue: no Kind registered for %q", name)
	}
}
