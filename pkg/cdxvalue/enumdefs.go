package cdxvalue

// This file instantiates the plain and bit-flag enum kinds the
// catalog's attribute table references. The symbolic tables are a
// representative subset of the published ChemDraw tag catalog,
// sufficient to exercise every operation the codec defines; see
// DESIGN.md for the scoping decision.

// KindAtomGeometry is CDXAtomGeometry: the coordination geometry
// implied at a node (Unknown, 1Ligand through several named
// polyhedra).
var KindAtomGeometry Kind = NewEnumKind("CDXAtomGeometry", 1, []EnumPair{
	{Name: "Unknown", Value: 0},
	{Name: "1Ligand", Value: 1},
	{Name: "Linear", Value: 2},
	{Name: "Bent", Value: 3},
	{Name: "TrigonalPlanar", Value: 4},
	{Name: "TrigonalPyramidal", Value: 5},
	{Name: "SquarePlanar", Value: 6},
	{Name: "Tetrahedral", Value: 7},
	{Name: "TrigonalBipyramidal", Value: 8},
	{Name: "SquarePyramidal", Value: 9},
	{Name: "Octahedral", Value: 10},
})

// KindBondDisplay is CDXBondDisplay: how a bond is rendered (plain
// line, wedge, hash, bold, and the various dashed/ambiguous forms).
var KindBondDisplay Kind = NewEnumKind("CDXBondDisplay", 1, []EnumPair{
	{Name: "Solid", Value: 0},
	{Name: "Dash", Value: 1},
	{Name: "Hash", Value: 2},
	{Name: "WedgedHashBegin", Value: 3},
	{Name: "WedgedHashEnd", Value: 4},
	{Name: "Bold", Value: 5},
	{Name: "WedgeBegin", Value: 6},
	{Name: "WedgeEnd", Value: 7},
	{Name: "Wavy", Value: 8},
	{Name: "HashDashed", Value: 9},
	{Name: "DashDoubled", Value: 10},
	{Name: "BoldDoubled", Value: 11},
})

// KindJustification is CDXJustification: used for LabelJustification
// and LabelAlignment.
var KindJustification Kind = NewEnumKind("CDXJustification", 1, []EnumPair{
	{Name: "Right", Value: 0},
	{Name: "Left", Value: 1},
	{Name: "Center", Value: 2},
	{Name: "Above", Value: 3},
	{Name: "Below", Value: 4},
	{Name: "Auto", Value: 5},
	{Name: "BestInPlace", Value: 6},
})

// KindFillType is CDXFillType: a bit-flag composite (a shape can be
// unfilled, solid, hatched and shadowed in combination).
var KindFillType Kind = NewBitflagKind("CDXFillType", 2, []EnumPair{
	{Name: "Unspecified", Value: 0},
	{Name: "None", Value: 1},
	{Name: "Solid", Value: 2},
	{Name: "Hatch", Value: 4},
	{Name: "Shadow", Value: 8},
	{Name: "GradientVert", Value: 16},
	{Name: "GradientHorz", Value: 32},
})

// KindArrowType is CDXArrowType: a bit-flag composite describing
// arrowhead shape, line style and the set of heads present.
var KindArrowType Kind = NewBitflagKind("CDXArrowType", 2, []EnumPair{
	{Name: "NoHead", Value: 0},
	{Name: "Solid", Value: 1},
	{Name: "Hollow", Value: 2},
	{Name: "FullHead", Value: 4},
	{Name: "HalfHead", Value: 8},
	{Name: "Resonance", Value: 16},
	{Name: "Equilibrium", Value: 32},
	{Name: "Dipole", Value: 64},
})

// KindOvalType is CDXOvalType: a bit-flag composite describing oval
// rendering (circle vs. ellipse, shaded, dashed, shadowed).
var KindOvalType Kind = NewBitflagKind("CDXOvalType", 2, []EnumPair{
	{Name: "Circle", Value: 1},
	{Name: "Dashed", Value: 2},
	{Name: "Bold", Value: 4},
	{Name: "Shaded", Value: 8},
	{Name: "Shadowed", Value: 16},
})

// KindAutonumberStyle is CDXAutonumberStyle: how generated atom/bond
// numbering labels are rendered.
var KindAutonumberStyle Kind = NewEnumKind("CDXAutonumberStyle", 1, []EnumPair{
	{Name: "Roman", Value: 0},
	{Name: "Arabic", Value: 1},
	{Name: "Alphabetic", Value: 2},
})

// KindAminoAcidTermini is CDXAminoAcidTermini: how a peptide
// fragment's N/C termini are labeled.
var KindAminoAcidTermini Kind = NewEnumKind("CDXAminoAcidTermini", 1, []EnumPair{
	{Name: "HOrOH", Value: 0},
	{Name: "NH2OrCOOH", Value: 1},
	{Name: "Ascii", Value: 2},
})
