package cdx

import "github.com/dimelords/cdxlib/pkg/tree"

// buildSampleDocument constructs a small but structurally complete
// document: a fragment with two atoms and a bond, a fonttable and
// colortable at the root, and a labeled text object exercising the
// LabelStyle fold and the styled-run Text fold.
func buildSampleDocument() *tree.Element {
	root := tree.New("CDXML")
	root.HasID = true
	root.ID = 1
	root.SetAttr("BondLength", "30")

	fonttable := tree.New("fonttable")
	font := tree.New("font")
	font.SetAttr("id", "1")
	font.SetAttr("charset", "0")
	font.SetAttr("name", "Arial")
	fonttable.AppendChild(font)
	root.AppendChild(fonttable)

	colortable := tree.New("colortable")
	black := tree.New("color")
	black.SetAttr("r", "0")
	black.SetAttr("g", "0")
	black.SetAttr("b", "0")
	colortable.AppendChild(black)
	root.AppendChild(colortable)

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
	n1.SetAttr("p", "0 0")
	n1.SetAttr("Element", "6")
	fragment.AppendChild(n1)

	n2 := tree.New("n")
	n2.HasID = true
	n2.ID = 5
	n2.SetAttr("p", "30 0")
	n2.SetAttr("Element", "8")
	fragment.AppendChild(n2)

	b := tree.New("b")
	b.HasID = true
	b.ID = 6
	b.SetAttr("B", "4")
	b.SetAttr("E", "5")
	b.SetAttr("Order", "Single")
	fragment.AppendChild(b)

	label := tree.New("t")
	label.HasID = true
	label.ID = 7
	label.SetAttr("LabelFont", "1")
	label.SetAttr("LabelSize", "10")
	label.SetAttr("LabelFace", "0")
	run := tree.New("s")
	run.Text = "O"
	run.SetAttr("font", "1")
	run.SetAttr("size", "10")
	run.SetAttr("face", "0")
	run.SetAttr("color", "0")
	label.AppendChild(run)
	fragment.AppendChild(label)

	return root
}
