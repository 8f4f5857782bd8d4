// Package cdxml converts between the element tree shared by the whole
// module and its CDXML text form, using etree as the underlying
// generic XML tree.
package cdxml

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/dimelords/cdxlib/internal/cdxerr"
	"github.com/dimelords/cdxlib/pkg/tree"
)

// preamble is the literal CDXML prologue every serialized document
// starts with: an XML declaration plus the fixed, non-validating
// DOCTYPE every ChemDraw CDXML file carries.
const preamble = "<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n" +
	"<!DOCTYPE CDXML SYSTEM \"http://www.cambridgesoft.com/xml/cdxml.dtd\" >\n"

// Parse reads CDXML text into an element tree. The DOCTYPE is accepted
// but ignored; element and attribute order are preserved exactly as
// etree presents them, which for a well-formed document is document
// order.
func Parse(data []byte) (*tree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, cdxerr.New("cdxml", "parse", "", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, cdxerr.New("cdxml", "parse", "document has no root element", cdxerr.ErrInvalidLength)
	}
	return fromEtree(root), nil
}

func fromEtree(e *etree.Element) *tree.Element {
	elem := tree.New(e.Tag)
	for _, a := range e.Attr {
		if a.Key == "id" {
			continue
		}
		elem.SetAttr(a.Key, a.Value)
	}
	if id, ok := findAttr(e, "id"); ok {
		if v, ok2 := parseID(id); ok2 {
			elem.ID = v
			elem.HasID = true
		}
	}
	children := e.ChildElements()
	// Indentation around child elements is serialization whitespace,
	// not character content.
	if text := e.Text(); !(len(children) > 0 && strings.TrimSpace(text) == "") {
		elem.Text = text
	}
	for _, c := range children {
		elem.AppendChild(fromEtree(c))
	}
	return elem
}

func findAttr(e *etree.Element, key string) (string, bool) {
	for _, a := range e.Attr {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

func parseID(s string) (uint32, bool) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// Format renders an element tree as CDXML text, with the fixed
// preamble prepended verbatim.
func Format(root *tree.Element) ([]byte, error) {
	doc := etree.NewDocument()
	doc.Indent(2)
	toEtree(doc, root)

	body, err := doc.WriteToBytes()
	if err != nil {
		return nil, cdxerr.New("cdxml", "format", "", err)
	}
	var out strings.Builder
	out.WriteString(preamble)
	out.Write(body)
	return []byte(out.String()), nil
}

func toEtree(parent etreeParent, elem *tree.Element) {
	e := parent.CreateElement(elem.Tag)
	if elem.HasID {
		e.CreateAttr("id", formatID(elem.ID))
	}
	for _, a := range elem.Attrs {
		e.CreateAttr(a.Name, a.Value)
	}
	if elem.Text != "" {
		e.SetText(elem.Text)
	}
	for _, c := range elem.Children {
		toEtree(e, c)
	}
}

// etreeParent is the subset of *etree.Document / *etree.Element that
// CreateElement needs, so toEtree can recurse into the document root
// without a type switch.
type etreeParent interface {
	CreateElement(tag string) *etree.Element
}

func formatID(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}
