package cdx

import (
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dimelords/cdxlib/pkg/tree"
)

// buildFragment assembles a fragment with two atoms at (x1,y1)/(x2,y2)
// and a bond between them, mirroring buildSampleDocument's shape but
// with generated coordinates and element numbers.
func buildFragment(x1, y1, x2, y2, elem1, elem2 int) *tree.Element {
	root := tree.New("CDXML")
	root.HasID = true
	root.ID = 1
	root.SetAttr("BondLength", "30")

	page := tree.New("page")
	page.HasID = true
	page.ID = 2
	root.AppendChild(page)

	fragment := tree.New("fragment")
	fragment.HasID = true
	fragment.ID = 3
	page.AppendChild(fragment)

	n1 := tree.New("n")
	n1.HasID = true
	n1.ID = 4
	n1.SetAttr("p", strconv.Itoa(x1)+" "+strconv.Itoa(y1))
	n1.SetAttr("Element", strconv.Itoa(elem1))
	fragment.AppendChild(n1)

	n2 := tree.New("n")
	n2.HasID = true
	n2.ID = 5
	n2.SetAttr("p", strconv.Itoa(x2)+" "+strconv.Itoa(y2))
	n2.SetAttr("Element", strconv.Itoa(elem2))
	fragment.AppendChild(n2)

	b := tree.New("b")
	b.HasID = true
	b.ID = 6
	b.SetAttr("B", "4")
	b.SetAttr("E", "5")
	b.SetAttr("Order", "Single")
	fragment.AppendChild(b)

	return root
}

// TestRoundTripPreservesAtomsAndBonds checks that writing a generated
// two-atom fragment to CDX binary and reading it back preserves both
// atoms' positions and element numbers, and the bond's endpoints, for
// any coordinate pair within the point range the coordinate codec
// accepts without saturating.
func TestRoundTripPreservesAtomsAndBonds(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("atoms and bonds survive a binary round trip", prop.ForAll(
		func(x1, y1, x2, y2, elem1, elem2 int) bool {
			root := buildFragment(x1, y1, x2, y2, elem1, elem2)

			data, err := Write(root, tree.NewIDGenerator())
			if err != nil {
				return false
			}
			doc, err := Read(data)
			if err != nil {
				return false
			}

			atoms := doc.Descendants("n")
			if len(atoms) != 2 {
				return false
			}
			wantP1 := strconv.Itoa(x1) + " " + strconv.Itoa(y1)
			wantP2 := strconv.Itoa(x2) + " " + strconv.Itoa(y2)
			gotP1, _ := atoms[0].Attr("p")
			gotP2, _ := atoms[1].Attr("p")
			if gotP1 != wantP1 || gotP2 != wantP2 {
				return false
			}
			gotE1, _ := atoms[0].Attr("Element")
			gotE2, _ := atoms[1].Attr("Element")
			if gotE1 != strconv.Itoa(elem1) || gotE2 != strconv.Itoa(elem2) {
				return false
			}

			bonds := doc.Descendants("b")
			if len(bonds) != 1 {
				return false
			}
			bVal, _ := bonds[0].Attr("B")
			eVal, _ := bonds[0].Attr("E")
			return bVal == "4" && eVal == "5"
		},
		gen.IntRange(-30000, 30000),
		gen.IntRange(-30000, 30000),
		gen.IntRange(-30000, 30000),
		gen.IntRange(-30000, 30000),
		gen.IntRange(1, 35),
		gen.IntRange(1, 35),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// TestRoundTripPreservesStyledText checks that an arbitrary short run
// of text in a single styled run survives the Text fold/expand.
func TestRoundTripPreservesStyledText(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("a single styled run's text survives a binary round trip", prop.ForAll(
		func(text string) bool {
			root := tree.New("CDXML")
			root.HasID = true
			root.ID = 1
			label := tree.New("t")
			label.HasID = true
			label.ID = 2
			run := tree.New("s")
			run.Text = text
			run.SetAttr("font", "1")
			run.SetAttr("size", "10")
			run.SetAttr("face", "0")
			run.SetAttr("color", "0")
			label.AppendChild(run)
			root.AppendChild(label)

			data, err := Write(root, tree.NewIDGenerator())
			if err != nil {
				return false
			}
			doc, err := Read(data)
			if err != nil {
				return false
			}
			labels := doc.Descendants("t")
			if len(labels) != 1 {
				return false
			}
			runs := labels[0].FindAll("s")
			if len(runs) != 1 {
				return false
			}
			return runs[0].Text == text
		},
		gen.RegexMatch(`[A-Za-z0-9 ]{0,24}`),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// TestRoundTripAssignsSequentialIDsToUnidentifiedElements checks that
// when none of a fragment's elements carry an id, the reader observes
// strictly increasing ids assigned by the writer's IDGenerator.
func TestRoundTripAssignsSequentialIDsToUnidentifiedElements(t *testing.T) {
	root := tree.New("CDXML")
	page := tree.New("page")
	root.AppendChild(page)
	fragment := tree.New("fragment")
	page.AppendChild(fragment)
	for i := 0; i < 3; i++ {
		atom := tree.New("n")
		atom.SetAttr("p", "0 0")
		atom.SetAttr("Element", "6")
		fragment.AppendChild(atom)
	}

	data, err := Write(root, tree.NewIDGenerator())
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	doc, err := Read(data)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	atoms := doc.Descendants("n")
	if len(atoms) != 3 {
		t.Fatalf("got %d atoms, want 3", len(atoms))
	}
	for i := 1; i < len(atoms); i++ {
		if atoms[i].ID <= atoms[i-1].ID {
			t.Errorf("atom ids not strictly increasing: %d then %d", atoms[i-1].ID, atoms[i].ID)
		}
	}
}
