package styler_test

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/dimelords/cdxlib/internal/cdxerr"
	"github.com/dimelords/cdxlib/pkg/cdxml"
	"github.com/dimelords/cdxlib/pkg/styler"
	"github.com/dimelords/cdxlib/pkg/tree"
)

func fragment(t *testing.T, ids []uint32, positions []string, bondStartEnd [][2]uint32) *tree.Element {
	t.Helper()
	frag := tree.New("fragment")
	for i, id := range ids {
		n := tree.New("n")
		n.HasID, n.ID = true, id
		n.SetAttr("p", positions[i])
		frag.AppendChild(n)
	}
	for _, se := range bondStartEnd {
		b := tree.New("b")
		b.SetAttr("B", strconv.FormatUint(uint64(se[0]), 10))
		b.SetAttr("E", strconv.FormatUint(uint64(se[1]), 10))
		frag.AppendChild(b)
	}
	return frag
}

func TestApplyScalesAndRecentersTwoAtomFragment(t *testing.T) {
	root := tree.New("CDXML")
	root.HasID, root.ID = true, 1
	frag := fragment(t, []uint32{1, 2}, []string{"0 0", "10 0"}, [][2]uint32{{1, 2}})
	root.AppendChild(frag)

	out, err := styler.New(styler.ACS1996()).Apply(root)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	got := out.Descendants("fragment")[0].Descendants("n")
	p0, _ := got[0].Attr("p")
	p1, _ := got[1].Attr("p")
	if p0 != "-2.2 0" {
		t.Errorf("atom 0 p = %q, want %q", p0, "-2.2 0")
	}
	if p1 != "12.2 0" {
		t.Errorf("atom 1 p = %q, want %q", p1, "12.2 0")
	}

	if v, _ := out.Attr("BondLength"); v != "14.40" {
		t.Errorf("root BondLength = %q, want 14.40", v)
	}
}

func TestApplyStripsBondAttributesToWhitelist(t *testing.T) {
	root := tree.New("CDXML")
	frag := fragment(t, []uint32{1, 2}, []string{"0 0", "10 0"}, [][2]uint32{{1, 2}})
	b := frag.Find("b")
	b.SetAttr("Z", "99")
	b.SetAttr("SomeOtherAttr", "x")
	root.AppendChild(frag)

	out, err := styler.New(styler.Wiley()).Apply(root)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	ob := out.Descendants("fragment")[0].Find("b")
	for _, a := range ob.Attrs {
		switch a.Name {
		case "B", "E", "Z":
		default:
			t.Errorf("unexpected bond attribute survived stripping: %s", a.Name)
		}
	}
}

func TestApplyNoAtomsIsError(t *testing.T) {
	root := tree.New("CDXML")
	root.AppendChild(tree.New("fragment"))

	_, err := styler.New(styler.ACS1996()).Apply(root)
	if !errors.Is(err, cdxerr.ErrNoAtoms) {
		t.Fatalf("err = %v, want ErrNoAtoms", err)
	}
}

func TestApplyMissingCoordinatesIsError(t *testing.T) {
	root := tree.New("CDXML")
	frag := tree.New("fragment")
	n := tree.New("n")
	n.HasID, n.ID = true, 1
	frag.AppendChild(n)
	root.AppendChild(frag)

	_, err := styler.New(styler.ACS1996()).Apply(root)
	if !errors.Is(err, cdxerr.ErrNoCoordinates) {
		t.Fatalf("err = %v, want ErrNoCoordinates", err)
	}
}

func TestApplySingleAtomFragmentOnlyRestylesRuns(t *testing.T) {
	root := tree.New("CDXML")
	root.SetAttr("HideImplicitHydrogens", "yes")
	frag := fragment(t, []uint32{1}, []string{"0 0"}, nil)
	n := frag.Find("n")
	n.SetAttr("NumHydrogens", "1")
	n.SetAttr("SomeVendorAttr", "kept")
	tEl := tree.New("t")
	s := tree.New("s")
	s.Text = "HCl"
	tEl.AppendChild(s)
	n.AppendChild(tEl)
	root.AppendChild(frag)

	preset := styler.ACS1996()
	preset.HideImplicitHydrogens = false
	out, err := styler.New(preset).Apply(root)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	on := out.Descendants("fragment")[0].Find("n")
	if _, ok := on.Attr("SomeVendorAttr"); !ok {
		t.Error("single-atom fragment node attributes must not be scrubbed")
	}
	run := on.Find("t").Find("s")
	if run.Text != "HCl" {
		t.Errorf("label text = %q, want %q (no implicit-H rewrite on single-atom fragments)", run.Text, "HCl")
	}
	if size, _ := run.Attr("size"); size != "10" {
		t.Errorf("run size = %q, want preset value 10", size)
	}
}

func TestApplyRecentersAtomsOnAtomBoxNotBoundingBoxAttr(t *testing.T) {
	root := tree.New("CDXML")
	frag := fragment(t, []uint32{1, 2}, []string{"0 0", "10 0"}, [][2]uint32{{1, 2}})
	// A real fragment's BoundingBox encloses labels and margins, so its
	// midpoint sits away from the atom midpoint; atoms must still pivot
	// on their own coordinate box.
	frag.SetAttr("BoundingBox", "-20 -5 30 5")
	root.AppendChild(frag)

	out, err := styler.New(styler.ACS1996()).Apply(root)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	got := out.Descendants("fragment")[0].Descendants("n")
	p0, _ := got[0].Attr("p")
	p1, _ := got[1].Attr("p")
	if p0 != "-2.2 0" || p1 != "12.2 0" {
		t.Errorf("atom positions = %q, %q, want -2.2 0 and 12.2 0 (pivot on atom box midpoint)", p0, p1)
	}

	// The BoundingBox attribute itself rescales about its own midpoint:
	// center (5, 0), scale 1.44.
	bb, _ := out.Descendants("fragment")[0].Attr("BoundingBox")
	if bb != "-31 -7.2 41 7.2" {
		t.Errorf("BoundingBox = %q, want %q", bb, "-31 -7.2 41 7.2")
	}
}

func TestApplyTogglesImplicitHydrogensOn(t *testing.T) {
	root := tree.New("CDXML")
	root.SetAttr("HideImplicitHydrogens", "yes")
	frag := fragment(t, []uint32{1, 2}, []string{"0 0", "10 0"}, nil)
	n := frag.Find("n")
	n.SetAttr("NumHydrogens", "2")
	tEl := tree.New("t")
	s := tree.New("s")
	s.Text = "O"
	tEl.AppendChild(s)
	n.AppendChild(tEl)
	root.AppendChild(frag)

	preset := styler.ACS1996()
	preset.HideImplicitHydrogens = false
	out, err := styler.New(preset).Apply(root)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	got := out.Descendants("fragment")[0].Find("n").Find("t").Find("s").Text
	if got != "OH2" {
		t.Errorf("label text = %q, want OH2", got)
	}
}

func TestApplyTogglesImplicitHydrogensOff(t *testing.T) {
	root := tree.New("CDXML")
	root.SetAttr("HideImplicitHydrogens", "no")
	frag := fragment(t, []uint32{1, 2}, []string{"0 0", "10 0"}, nil)
	n := frag.Find("n")
	n.SetAttr("NumHydrogens", "2")
	tEl := tree.New("t")
	s := tree.New("s")
	s.Text = "OH2"
	tEl.AppendChild(s)
	n.AppendChild(tEl)
	root.AppendChild(frag)

	preset := styler.ACS1996()
	preset.HideImplicitHydrogens = true
	out, err := styler.New(preset).Apply(root)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	got := out.Descendants("fragment")[0].Find("n").Find("t").Find("s").Text
	if got != "O" {
		t.Errorf("label text = %q, want O", got)
	}
}

func TestApplyTwoLetterSymbolRoundTrips(t *testing.T) {
	root := tree.New("CDXML")
	root.SetAttr("HideImplicitHydrogens", "yes")
	frag := fragment(t, []uint32{1, 2}, []string{"0 0", "10 0"}, nil)
	n := frag.Find("n")
	n.SetAttr("NumHydrogens", "1")
	tEl := tree.New("t")
	s := tree.New("s")
	s.Text = "Cl"
	tEl.AppendChild(s)
	n.AppendChild(tEl)
	root.AppendChild(frag)

	shown := styler.ACS1996()
	shown.HideImplicitHydrogens = false
	out, err := styler.New(shown).Apply(root)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	s1 := out.Descendants("fragment")[0].Find("n").Find("t").Find("s")
	if s1.Text != "ClH" {
		t.Fatalf("label text = %q, want ClH", s1.Text)
	}

	hidden := styler.ACS1996()
	hidden.HideImplicitHydrogens = true
	out2, err := styler.New(hidden).Apply(out)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	s2 := out2.Descendants("fragment")[0].Find("n").Find("t").Find("s")
	if s2.Text != "Cl" {
		t.Errorf("label text = %q, want Cl", s2.Text)
	}
}

func TestApplyPreservesElementCountsAndMeanBondLength(t *testing.T) {
	root := tree.New("CDXML")
	frag := fragment(t,
		[]uint32{1, 2, 3, 4},
		[]string{"0 0", "10 0", "20 0", "30 0"},
		[][2]uint32{{1, 2}, {2, 3}, {3, 4}},
	)
	for _, n := range frag.FindAll("n") {
		tEl := tree.New("t")
		s := tree.New("s")
		s.Text = "C"
		s.SetAttr("font", "1")
		tEl.AppendChild(s)
		n.AppendChild(tEl)
	}
	root.AppendChild(frag)

	count := func(e *tree.Element, tag string) int { return len(e.Descendants(tag)) }
	wantN, wantB := count(root, "n"), count(root, "b")
	wantT, wantS := count(root, "t"), count(root, "s")

	out, err := styler.New(styler.ACS1996()).Apply(root)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if got := count(out, "n"); got != wantN {
		t.Errorf("n count = %d, want %d", got, wantN)
	}
	if got := count(out, "b"); got != wantB {
		t.Errorf("b count = %d, want %d", got, wantB)
	}
	if got := count(out, "t"); got != wantT {
		t.Errorf("t count = %d, want %d", got, wantT)
	}
	if got := count(out, "s"); got != wantS {
		t.Errorf("s count = %d, want %d", got, wantS)
	}

	atoms := out.Descendants("fragment")[0].FindAll("n")
	pos := make(map[uint32][2]float64, len(atoms))
	for _, n := range atoms {
		p, _ := n.Attr("p")
		var x, y float64
		if _, err := fmt.Sscanf(p, "%f %f", &x, &y); err != nil {
			t.Fatalf("parse p %q: %v", p, err)
		}
		pos[n.ID] = [2]float64{x, y}
	}
	var sum float64
	bonds := out.Descendants("fragment")[0].FindAll("b")
	for _, b := range bonds {
		bAttr, _ := b.Attr("B")
		eAttr, _ := b.Attr("E")
		bid, _ := strconv.ParseUint(bAttr, 10, 32)
		eid, _ := strconv.ParseUint(eAttr, 10, 32)
		p1, p2 := pos[uint32(bid)], pos[uint32(eid)]
		dx, dy := p1[0]-p2[0], p1[1]-p2[1]
		sum += math.Sqrt(dx*dx + dy*dy)
	}
	mean := sum / float64(len(bonds))
	if math.Abs(mean-14.4) > 0.1 {
		t.Errorf("mean bond length after styling = %.2f, want 14.4 within 0.1", mean)
	}
}

func TestBuiltinPresetUnknownName(t *testing.T) {
	_, err := styler.BuiltinPreset("Nonexistent")
	if !errors.Is(err, cdxerr.ErrUnknownPreset) {
		t.Fatalf("err = %v, want ErrUnknownPreset", err)
	}
}

func TestPresetFromDocumentRoundTrips(t *testing.T) {
	donor := tree.New("CDXML")
	wiley := styler.Wiley()
	donor.SetAttr("BondSpacing", wiley.BondSpacing)
	donor.SetAttr("BondLength", wiley.BondLength)
	donor.SetAttr("BoldWidth", wiley.BoldWidth)
	donor.SetAttr("LineWidth", wiley.LineWidth)
	donor.SetAttr("MarginWidth", wiley.MarginWidth)
	donor.SetAttr("HashSpacing", wiley.HashSpacing)
	donor.SetAttr("CaptionSize", wiley.CaptionSize)
	donor.SetAttr("LabelSize", wiley.LabelSize)
	donor.SetAttr("LabelFace", wiley.LabelFace)
	donor.SetAttr("LabelFont", wiley.LabelFont)
	donor.SetAttr("HideImplicitHydrogens", "no")

	p, err := styler.PresetFromDocument(donor)
	if err != nil {
		t.Fatalf("PresetFromDocument: %v", err)
	}
	if p.BondLength != "17" {
		t.Errorf("BondLength = %q, want 17", p.BondLength)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	root := tree.New("CDXML")
	frag := fragment(t, []uint32{1, 2}, []string{"0 0", "10 0"}, [][2]uint32{{1, 2}})
	root.AppendChild(frag)

	before, err := cdxml.Format(root)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if _, err := styler.New(styler.Wiley()).Apply(root); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	after, err := cdxml.Format(root)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if string(before) != string(after) {
		t.Errorf("Apply mutated its input tree:\nbefore:\n%s\nafter:\n%s", before, after)
	}
}
