// Package styler implements the CDXML normalizer: it rescales every
// drawing fragment of an element tree to a target mean bond length,
// recenters it, rewrites per-atom label styling, optionally toggles
// implicit-hydrogen rendering, and scrubs bond/node attributes so
// document-level defaults take effect. It operates purely on the
// element tree shared with pkg/cdx and pkg/cdxml; it never touches
// bytes or XML text directly.
package styler

import (
	"fmt"

	"github.com/dimelords/cdxlib/internal/cdxerr"
	"github.com/dimelords/cdxlib/pkg/tree"
)

// Preset is a flat style parameter set: the eleven document-level
// drawing parameters the styler recognizes. Every string field keeps the
// exact textual form that is written to the root element's attributes
// (HideImplicitHydrogens is a bool, written as "yes" or "no"),
// matching the ChemDraw convention that these are stored as plain
// CDXML attribute text rather than re-derived from a typed value.
type Preset struct {
	BondSpacing           string
	BondLength            string
	BoldWidth             string
	LineWidth             string
	MarginWidth           string
	HashSpacing           string
	CaptionSize           string
	LabelSize             string
	LabelFont             string
	LabelFace             string
	HideImplicitHydrogens bool
}

// presetKeys lists the root attributes a preset governs.
var presetKeys = []string{
	"BondSpacing", "BondLength", "BoldWidth", "LineWidth", "MarginWidth",
	"HashSpacing", "CaptionSize", "LabelSize", "LabelFace", "LabelFont",
	"HideImplicitHydrogens",
}

// ACS1996 is the built-in "ACS 1996" preset.
func ACS1996() Preset {
	return Preset{
		BondSpacing: "18", BondLength: "14.40", BoldWidth: "2", LineWidth: "0.60",
		MarginWidth: "1.60", HashSpacing: "2.50", CaptionSize: "10", LabelSize: "10",
		LabelFont: "3", LabelFace: "96", HideImplicitHydrogens: false,
	}
}

// Wiley is the built-in "Wiley" preset.
func Wiley() Preset {
	return Preset{
		BondSpacing: "18", BondLength: "17", BoldWidth: "2.6", LineWidth: "0.75",
		MarginWidth: "2", HashSpacing: "2.6", CaptionSize: "12", LabelSize: "12",
		LabelFont: "3", LabelFace: "96", HideImplicitHydrogens: false,
	}
}

// BuiltinPreset resolves a built-in preset by name ("ACS 1996" or
// "Wiley"). Any other name is ErrUnknownPreset.
func BuiltinPreset(name string) (Preset, error) {
	switch name {
	case "ACS 1996":
		return ACS1996(), nil
	case "Wiley":
		return Wiley(), nil
	default:
		return Preset{}, cdxerr.New("styler", "builtin preset", name, cdxerr.ErrUnknownPreset)
	}
}

// PresetFromDocument reads the eleven recognized keys off another
// document's root element - any CDXML document can serve as a style
// source, not only the two built-ins.
func PresetFromDocument(root *tree.Element) (Preset, error) {
	get := func(name string) (string, error) {
		v, ok := root.Attr(name)
		if !ok {
			return "", cdxerr.Newf("styler", "preset from document", cdxerr.ErrUnknownPreset, "missing %s", name)
		}
		return v, nil
	}
	var p Preset
	var err error
	if p.BondSpacing, err = get("BondSpacing"); err != nil {
		return Preset{}, err
	}
	if p.BondLength, err = get("BondLength"); err != nil {
		return Preset{}, err
	}
	if p.BoldWidth, err = get("BoldWidth"); err != nil {
		return Preset{}, err
	}
	if p.LineWidth, err = get("LineWidth"); err != nil {
		return Preset{}, err
	}
	if p.MarginWidth, err = get("MarginWidth"); err != nil {
		return Preset{}, err
	}
	if p.HashSpacing, err = get("HashSpacing"); err != nil {
		return Preset{}, err
	}
	if p.CaptionSize, err = get("CaptionSize"); err != nil {
		return Preset{}, err
	}
	if p.LabelSize, err = get("LabelSize"); err != nil {
		return Preset{}, err
	}
	if p.LabelFace, err = get("LabelFace"); err != nil {
		return Preset{}, err
	}
	if p.LabelFont, err = get("LabelFont"); err != nil {
		return Preset{}, err
	}
	if hide, ok := root.Attr("HideImplicitHydrogens"); ok {
		p.HideImplicitHydrogens = hide == "yes"
	}
	return p, nil
}

// attrs returns the preset's root-level attribute assignments in
// presetKeys order.
func (p Preset) attrs() []tree.Attr {
	hide := "no"
	if p.HideImplicitHydrogens {
		hide = "yes"
	}
	values := map[string]string{
		"BondSpacing": p.BondSpacing, "BondLength": p.BondLength, "BoldWidth": p.BoldWidth,
		"LineWidth": p.LineWidth, "MarginWidth": p.MarginWidth, "HashSpacing": p.HashSpacing,
		"CaptionSize": p.CaptionSize, "LabelSize": p.LabelSize, "LabelFace": p.LabelFace,
		"LabelFont": p.LabelFont, "HideImplicitHydrogens": hide,
	}
	out := make([]tree.Attr, 0, len(presetKeys))
	for _, k := range presetKeys {
		out = append(out, tree.Attr{Name: k, Value: values[k]})
	}
	return out
}

func (p Preset) String() string {
	return fmt.Sprintf("Preset{BondLength=%s LabelSize=%s HideImplicitHydrogens=%v}",
		p.BondLength, p.LabelSize, p.HideImplicitHydrogens)
}
