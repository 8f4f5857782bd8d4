package styler

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/dimelords/cdxlib/internal/cdxerr"
	"github.com/dimelords/cdxlib/pkg/tree"
)

// bondAttrs is the whitelist a <b> element's attribute set is reduced
// to: everything else is document-level default territory once the
// style is applied.
var bondAttrs = map[string]bool{
	"id": true, "Z": true, "B": true, "E": true, "BS": true,
	"Order": true, "BondCircularOrdering": true, "Display": true,
}

// nodeAttrs is the whitelist a <n> element's attribute set is reduced to.
var nodeAttrs = map[string]bool{
	"id": true, "p": true, "Z": true, "AS": true, "Element": true,
	"NumHydrogens": true, "Geometry": true, "NeedsClean": true,
}

// tAttrs is the whitelist a <t> element's attribute set is reduced to.
var tAttrs = map[string]bool{
	"p": true, "BoundingBox": true, "LabelJustification": true, "LabelAlignment": true,
}

// Option configures a Styler.
type Option func(*Styler)

// WithLogger overrides the default slog logger, which receives the
// Debug messages about implicit-hydrogen label rewrites.
func WithLogger(l *slog.Logger) Option {
	return func(s *Styler) { s.log = l }
}

// Styler rewrites the visual styling of a CDXML element tree to a
// chosen preset: rescaling, recentering, relabeling and scrubbing
// nonessential attributes so document-level defaults take effect.
type Styler struct {
	preset Preset
	log    *slog.Logger
}

// New builds a Styler for the given preset.
func New(preset Preset, opts ...Option) *Styler {
	s := &Styler{preset: preset, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Apply rewrites root's styling per the configured preset and returns
// a new tree; root itself is never mutated, consistent with the
// element tree's immutability invariant.
func (s *Styler) Apply(root *tree.Element) (*tree.Element, error) {
	out := root.Clone()

	prevHide := false
	if v, ok := out.Attr("HideImplicitHydrogens"); ok {
		prevHide = v == "yes"
	}

	for _, a := range s.preset.attrs() {
		out.SetAttr(a.Name, a.Value)
	}

	targetBondLength, err := strconv.ParseFloat(strings.TrimSpace(s.preset.BondLength), 64)
	if err != nil {
		return nil, cdxerr.New("styler", "apply", "BondLength", cdxerr.ErrUnknownPreset)
	}

	for _, frag := range out.Descendants("fragment") {
		if err := s.styleFragment(frag, targetBondLength, prevHide); err != nil {
			return nil, err
		}
	}
	return out, nil
}

type point struct{ X, Y float64 }

func (s *Styler) styleFragment(frag *tree.Element, targetBondLength float64, prevHide bool) error {
	atoms := frag.Descendants("n")
	if len(atoms) == 0 {
		return cdxerr.New("styler", "style fragment", frag.Tag, cdxerr.ErrNoAtoms)
	}

	positions := make([]point, len(atoms))
	byID := make(map[uint32]int, len(atoms))
	for i, n := range atoms {
		p, ok := n.Attr("p")
		if !ok {
			return cdxerr.New("styler", "style fragment", "atom missing p", cdxerr.ErrNoCoordinates)
		}
		x, y, err := parsePoint(p)
		if err != nil {
			return cdxerr.New("styler", "style fragment", "atom p", cdxerr.ErrNoCoordinates)
		}
		positions[i] = point{X: x, Y: y}
		byID[n.ID] = i
	}

	// Single-node fragments - standalone labels, counterions - only get
	// their run styling refreshed; their attributes and text are left
	// alone.
	if len(atoms) == 1 {
		s.restyleRuns(atoms[0])
		return nil
	}

	type bondEndpoints struct{ start, end int }
	var bonds []bondEndpoints
	for _, b := range frag.Descendants("b") {
		startAttr, hasStart := b.Attr("B")
		endAttr, hasEnd := b.Attr("E")
		if hasStart && hasEnd {
			startID, err1 := strconv.ParseUint(startAttr, 10, 32)
			endID, err2 := strconv.ParseUint(endAttr, 10, 32)
			if err1 == nil && err2 == nil {
				if si, ok := byID[uint32(startID)]; ok {
					if ei, ok := byID[uint32(endID)]; ok {
						bonds = append(bonds, bondEndpoints{start: si, end: ei})
					}
				}
			}
		}
		b.KeepAttrs(bondAttrs)
	}

	scale := 1.0
	if len(bonds) > 0 {
		var sum float64
		for _, b := range bonds {
			sum += distance(positions[b.start], positions[b.end])
		}
		meanBondLength := round1(sum / float64(len(bonds)))
		if meanBondLength > 0 {
			scale = targetBondLength / meanBondLength
		}
	}

	// Atoms pivot on the midpoint of their own coordinate bounding box,
	// never the fragment's BoundingBox attribute (which encloses labels
	// and margins, so its midpoint sits elsewhere).
	center := midpoint(boundingBoxOf(positions))
	for i := range positions {
		positions[i] = scaleAbout(positions[i], center, scale)
	}
	for i, n := range atoms {
		n.SetAttr("p", formatPoint(positions[i].X, positions[i].Y))
	}

	// Label texts pivot on the midpoint of the label coordinates, a
	// separate set from the atom coordinates.
	var labels []*tree.Element
	var labelPts []point
	for _, n := range atoms {
		if t := n.Find("t"); t != nil {
			if p, ok := t.Attr("p"); ok {
				if x, y, err := parsePoint(p); err == nil {
					labels = append(labels, t)
					labelPts = append(labelPts, point{X: x, Y: y})
				}
			}
		}
	}
	if len(labels) > 0 {
		labelCenter := midpoint(boundingBoxOf(labelPts))
		for i, t := range labels {
			np := scaleAbout(labelPts[i], labelCenter, scale)
			t.SetAttr("p", formatPoint(np.X, np.Y))
			if bb, ok := t.Attr("BoundingBox"); ok {
				if nb, err := scaleRectangle(bb, labelCenter, scale); err == nil {
					t.SetAttr("BoundingBox", nb)
				}
			}
		}
	}

	// The fragment BoundingBox rescales about its own midpoint.
	if bb, ok := frag.Attr("BoundingBox"); ok {
		if left, top, right, bottom, err := parseRectangle(bb); err == nil {
			own := point{X: (left + right) / 2, Y: (top + bottom) / 2}
			if nb, err := scaleRectangle(bb, own, scale); err == nil {
				frag.SetAttr("BoundingBox", nb)
			}
		}
	} else {
		frag.SetAttr("BoundingBox", formatRectangle(boundingBoxOf(positions)))
	}

	newHide := s.preset.HideImplicitHydrogens
	for _, n := range atoms {
		s.restyleAtom(n, prevHide, newHide)
		n.KeepAttrs(nodeAttrs)
	}

	return nil
}

func midpoint(b box) point {
	return point{X: (b.left + b.right) / 2, Y: (b.top + b.bottom) / 2}
}

func scaleAbout(p, center point, scale float64) point {
	return point{
		X: center.X + (p.X-center.X)*scale,
		Y: center.Y + (p.Y-center.Y)*scale,
	}
}

type box struct{ left, top, right, bottom float64 }

func boundingBoxOf(positions []point) box {
	b := box{left: math.Inf(1), top: math.Inf(1), right: math.Inf(-1), bottom: math.Inf(-1)}
	for _, p := range positions {
		b.left = math.Min(b.left, p.X)
		b.right = math.Max(b.right, p.X)
		b.top = math.Min(b.top, p.Y)
		b.bottom = math.Max(b.bottom, p.Y)
	}
	return b
}

func scaleRectangle(s string, center point, scale float64) (string, error) {
	left, top, right, bottom, err := parseRectangle(s)
	if err != nil {
		return "", err
	}
	nl := center.X + (left-center.X)*scale
	nr := center.X + (right-center.X)*scale
	nt := center.Y + (top-center.Y)*scale
	nb := center.Y + (bottom-center.Y)*scale
	return formatRectangle(box{left: nl, top: nt, right: nr, bottom: nb}), nil
}

func parseRectangle(s string) (left, top, right, bottom float64, err error) {
	parts := strings.Fields(s)
	if len(parts) != 4 {
		return 0, 0, 0, 0, cdxerr.ErrInvalidLength
	}
	if left, err = strconv.ParseFloat(parts[0], 64); err != nil {
		return
	}
	if top, err = strconv.ParseFloat(parts[1], 64); err != nil {
		return
	}
	if right, err = strconv.ParseFloat(parts[2], 64); err != nil {
		return
	}
	bottom, err = strconv.ParseFloat(parts[3], 64)
	return
}

func formatRectangle(b box) string {
	return formatFloat(round2(b.left)) + " " + formatFloat(round2(b.top)) + " " +
		formatFloat(round2(b.right)) + " " + formatFloat(round2(b.bottom))
}

func parsePoint(s string) (x, y float64, err error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return 0, 0, cdxerr.ErrInvalidLength
	}
	if x, err = strconv.ParseFloat(parts[0], 64); err != nil {
		return
	}
	y, err = strconv.ParseFloat(parts[1], 64)
	return
}

func formatPoint(x, y float64) string {
	return formatFloat(round2(x)) + " " + formatFloat(round2(y))
}

func distance(a, b point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// restyleRuns refreshes the preset label styling on every <s> run
// under n's <t> child, touching nothing else.
func (s *Styler) restyleRuns(n *tree.Element) {
	t := n.Find("t")
	if t == nil {
		return
	}
	for _, run := range t.FindAll("s") {
		run.SetAttr("size", s.preset.LabelSize)
		run.SetAttr("face", s.preset.LabelFace)
		run.SetAttr("font", s.preset.LabelFont)
	}
}

// restyleAtom applies the preset's label styling to every <s> run
// under n's <t> child, and rewrites the run text when the preset's
// implicit-hydrogen visibility differs from the document's previous
// value.
func (s *Styler) restyleAtom(n *tree.Element, prevHide, newHide bool) {
	t := n.Find("t")
	if t == nil {
		return
	}
	t.KeepAttrs(tAttrs)

	runs := t.FindAll("s")
	for _, run := range runs {
		run.SetAttr("size", s.preset.LabelSize)
		run.SetAttr("face", s.preset.LabelFace)
		run.SetAttr("font", s.preset.LabelFont)
	}

	if prevHide == newHide || len(runs) == 0 {
		return
	}
	numH := atomHydrogenCount(n)
	last := runs[len(runs)-1]
	if !newHide {
		if numH <= 0 {
			return
		}
		suffix := "H"
		if numH > 1 {
			suffix = "H" + strconv.Itoa(numH)
		}
		last.Text = last.Text + suffix
		s.log.LogAttrs(context.Background(), slog.LevelDebug, "styler: added implicit hydrogens to label",
			slog.String("text", last.Text))
	} else {
		last.Text = leadingSymbol(last.Text)
		s.log.LogAttrs(context.Background(), slog.LevelDebug, "styler: removed implicit hydrogens from label",
			slog.String("text", last.Text))
	}
}

func atomHydrogenCount(n *tree.Element) int {
	v, ok := n.Attr("NumHydrogens")
	if !ok {
		return 0
	}
	num, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return num
}

// leadingSymbol returns the leading element symbol of a label: one
// uppercase letter, plus a following lowercase letter if present
// (e.g. "ClH" -> "Cl", "OH2" -> "O").
func leadingSymbol(text string) string {
	if len(text) == 0 {
		return text
	}
	if len(text) >= 2 {
		c := text[1]
		if c >= 'a' && c <= 'z' {
			return text[:2]
		}
	}
	return text[:1]
}
