package cdx

import (
	"encoding/binary"
	"log/slog"
	"sort"

	"github.com/dimelords/cdxlib/internal/cdxerr"
	"github.com/dimelords/cdxlib/pkg/catalog"
	"github.com/dimelords/cdxlib/pkg/cdxvalue"
	"github.com/dimelords/cdxlib/pkg/tree"
)

// suppressedChildTags are folded into an attribute of their parent (or,
// for "s", into the parent <t>'s Text property) rather than emitted as
// standalone objects during the depth-first walk.
var suppressedChildTags = map[string]bool{
	"s": true, "font": true, "color": true, "fonttable": true, "colortable": true,
}

// Write encodes an element tree to the CDX binary form. idgen supplies
// ids for any element (including root) whose HasID is false.
func Write(root *tree.Element, idgen *tree.IDGenerator) ([]byte, error) {
	w := &writer{idgen: idgen}
	return w.writeDocument(root)
}

type writer struct {
	buf   []byte
	idgen *tree.IDGenerator
}

func (w *writer) writeDocument(root *tree.Element) ([]byte, error) {
	w.buf = append(w.buf, header...)
	w.buf = append(w.buf, leU16(docTagModern)...)
	w.buf = append(w.buf, leU32(w.idFor(root))...)

	if err := w.writeAttributes(root); err != nil {
		return nil, cdxerr.New("cdx", "write root attributes", "", err)
	}
	if err := w.writeObjectChildren(root); err != nil {
		return nil, cdxerr.New("cdx", "write object tree", "", err)
	}
	// Two zero words close the stream: one pops the root object itself
	// (symmetric with every other object's single closing 0x0000), the
	// second is the document-end marker the reader never needs to
	// consume but real CDX files always carry.
	w.buf = append(w.buf, leU16(0)...)
	w.buf = append(w.buf, leU16(0)...)

	return w.buf, nil
}

func (w *writer) idFor(elem *tree.Element) uint32 {
	if elem.HasID {
		return elem.ID
	}
	return w.idgen.Next()
}

func (w *writer) writeObjectChildren(elem *tree.Element) error {
	for _, child := range elem.Children {
		if suppressedChildTags[child.Tag] {
			continue
		}
		desc, ok := catalog.ObjectByName(child.Tag)
		if !ok {
			return cdxerr.Newf("cdx", "write object", cdxerr.ErrUnknownObjectTag, "element %q", child.Tag)
		}
		w.buf = append(w.buf, leU16(desc.Tag)...)
		w.buf = append(w.buf, leU32(w.idFor(child))...)

		if err := w.writeAttributes(child); err != nil {
			return cdxerr.New("cdx", "write attributes", child.Tag, err)
		}
		if err := w.writeObjectChildren(child); err != nil {
			return err
		}
		w.buf = append(w.buf, leU16(0)...) // end of this object
	}
	return nil
}

// styleFoldSpec names the attribute quartet folded into a single
// CDXFontStyle-kinded property (LabelStyle, CaptionStyle).
type styleFoldSpec struct {
	fontAttr, sizeAttr, faceAttr, colorAttr string
	propertyName                            string
}

var labelStyleFold = styleFoldSpec{"LabelFont", "LabelSize", "LabelFace", "LabelColor", "LabelStyle"}
var captionStyleFold = styleFoldSpec{"CaptionFont", "CaptionSize", "CaptionFace", "CaptionColor", "CaptionStyle"}

// writeAttributes writes elem's attribute tag=value pairs, folding the
// Label*/Caption* quartets into their single CDXFontStyle property. These
// regular attributes go out in ascending catalog tag order. After them
// come, in this order, the Text property folded from a <t>'s <s> run
// children and the fonttable/colortable properties folded from those
// child elements (only ever present on the document root), per the
// binary form's structural mismatch with the XML child-element form.
func (w *writer) writeAttributes(elem *tree.Element) error {
	type pending struct {
		tag     uint16
		payload []byte
	}
	var items []pending

	consumed := map[string]bool{}
	for _, fold := range []styleFoldSpec{labelStyleFold, captionStyleFold} {
		fs, present := w.foldStyle(elem, fold)
		if present {
			desc, ok := catalog.AttributeByName(fold.propertyName)
			if !ok {
				return cdxerr.Newf("cdx", "fold style", cdxerr.ErrUnknownObjectTag, "%s not in catalog", fold.propertyName)
			}
			payload, err := fs.EncodeBinary()
			if err != nil {
				return err
			}
			items = append(items, pending{tag: desc.Tag, payload: payload})
		}
		consumed[fold.fontAttr] = true
		consumed[fold.sizeAttr] = true
		consumed[fold.faceAttr] = true
		consumed[fold.colorAttr] = true
	}

	for _, a := range elem.Attrs {
		if consumed[a.Name] {
			continue
		}
		desc, ok := catalog.AttributeByName(a.Name)
		if !ok {
			slog.Warn("cdx: skipping attribute with no catalog entry", "name", a.Name)
			continue
		}
		kind, err := cdxvalue.KindByName(desc.Kind)
		if err != nil {
			return cdxerr.New("cdx", "resolve kind", a.Name, err)
		}
		v, err := kind.ParseText(a.Value)
		if err != nil {
			return cdxerr.New("cdx", "parse attribute", a.Name, err)
		}
		payload, err := v.EncodeBinary()
		if err != nil {
			return cdxerr.New("cdx", "encode attribute", a.Name, err)
		}
		items = append(items, pending{tag: desc.Tag, payload: payload})
	}

	// The folded Text property and the re-homed font/color tables come
	// after the element's regular attributes: Text follows a <t>'s own
	// attributes, and the tables sit between the root's attributes and
	// its first child object.
	var trailing []pending

	if elem.Tag == "t" {
		ss, err := w.foldText(elem)
		if err != nil {
			return err
		}
		desc, _ := catalog.AttributeByName("Text")
		payload, err := ss.EncodeBinary()
		if err != nil {
			return err
		}
		trailing = append(trailing, pending{tag: desc.Tag, payload: payload})
	}

	if ft := elem.Find("fonttable"); ft != nil {
		fv, err := foldFontTable(ft)
		if err != nil {
			return err
		}
		desc, _ := catalog.AttributeByName("fonttable")
		payload, err := fv.EncodeBinary()
		if err != nil {
			return err
		}
		trailing = append(trailing, pending{tag: desc.Tag, payload: payload})
	}
	if ct := elem.Find("colortable"); ct != nil {
		cv, err := foldColorTable(ct)
		if err != nil {
			return err
		}
		desc, _ := catalog.AttributeByName("colortable")
		payload, err := cv.EncodeBinary()
		if err != nil {
			return err
		}
		trailing = append(trailing, pending{tag: desc.Tag, payload: payload})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].tag < items[j].tag })
	for _, it := range append(items, trailing...) {
		w.buf = append(w.buf, leU16(it.tag)...)
		w.buf = append(w.buf, w.lengthPrefix(len(it.payload))...)
		w.buf = append(w.buf, it.payload...)
	}
	return nil
}

// foldStyle builds the CDXFontStyle for a Label*/Caption* quartet.
// Defaults (font=1, size=12pt, face=plain, color=0) are applied
// whenever the quartet is only partially present; a warning is logged
// when font, size or face is missing (a missing color alone is not
// logged).
func (w *writer) foldStyle(elem *tree.Element, fold styleFoldSpec) (cdxvalue.FontStyle, bool) {
	fontText, hasFont := elem.Attr(fold.fontAttr)
	sizeText, hasSize := elem.Attr(fold.sizeAttr)
	faceText, hasFace := elem.Attr(fold.faceAttr)
	colorText, hasColor := elem.Attr(fold.colorAttr)
	if !hasFont && !hasSize && !hasFace && !hasColor {
		return cdxvalue.FontStyle{}, false
	}
	if !hasFont || !hasSize || !hasFace {
		slog.Warn("cdx: partial style quartet, applying defaults", "property", fold.propertyName)
	}
	var size *string
	if hasSize {
		size = &sizeText
	}
	var face *string
	if hasFace {
		face = &faceText
	}
	var color *string
	if hasColor {
		color = &colorText
	}
	if !hasFont {
		fontText = "1"
	}
	fs, err := cdxvalue.FontStyleFromRunAttrs(fontText, size, face, color)
	if err != nil {
		slog.Warn("cdx: invalid style quartet, using defaults", "property", fold.propertyName, "error", err)
		return cdxvalue.FontStyle{FontID: 1, Size: cdxvalue.DefaultFontSize}, true
	}
	return fs, true
}

// foldText concatenates a <t> element's <s> run children back into a
// single StyledString, recomputing each run's start index from the
// accumulated text length.
func (w *writer) foldText(t *tree.Element) (cdxvalue.StyledString, error) {
	if len(t.Children) == 0 {
		return cdxvalue.StyledString{}, cdxerr.New("cdx", "fold text", "<t> has no <s> children", cdxerr.ErrInvalidLength)
	}
	var text string
	var runs []cdxvalue.Run
	for _, s := range t.Children {
		if s.Tag != "s" {
			continue
		}
		fontText, _ := s.Attr("font")
		var size, face, color *string
		if v, ok := s.Attr("size"); ok {
			size = &v
		}
		if v, ok := s.Attr("face"); ok {
			face = &v
		}
		if v, ok := s.Attr("color"); ok {
			color = &v
		}
		fs, err := cdxvalue.FontStyleFromRunAttrs(fontText, size, face, color)
		if err != nil {
			return cdxvalue.StyledString{}, err
		}
		runs = append(runs, cdxvalue.Run{StartIndex: len([]rune(text)), Style: fs})
		text += s.Text
	}
	return cdxvalue.StyledString{Text: text, Runs: runs, Charset: "iso-8859-1"}, nil
}

func foldFontTable(elem *tree.Element) (cdxvalue.FontTable, error) {
	ft := cdxvalue.FontTable{Platform: 1}
	for _, f := range elem.FindAll("font") {
		idText, _ := f.Attr("id")
		charsetText, _ := f.Attr("charset")
		name, _ := f.Attr("name")
		id, err := parseUint16(idText)
		if err != nil {
			return cdxvalue.FontTable{}, err
		}
		charset, err := parseUint16(charsetText)
		if err != nil {
			return cdxvalue.FontTable{}, err
		}
		ft.Fonts = append(ft.Fonts, cdxvalue.Font{ID: id, Charset: charset, Name: name})
	}
	return ft, nil
}

func foldColorTable(elem *tree.Element) (cdxvalue.ColorTable, error) {
	ct := cdxvalue.ColorTable{}
	for _, c := range elem.FindAll("color") {
		rText, _ := c.Attr("r")
		gText, _ := c.Attr("g")
		bText, _ := c.Attr("b")
		color, err := cdxvalue.ColorFromAttrs(rText, gText, bText)
		if err != nil {
			return cdxvalue.ColorTable{}, err
		}
		ct.Colors = append(ct.Colors, color)
	}
	return ct, nil
}

func parseUint16(s string) (uint16, error) {
	v, err := cdxvalue.KindUINT16.ParseText(s)
	if err != nil {
		return 0, err
	}
	return uint16(v.(cdxvalue.IntValue).Int64()), nil
}

func (w *writer) lengthPrefix(n int) []byte {
	if n < lengthExtended {
		return leU16(uint16(n))
	}
	out := leU16(lengthExtended)
	return append(out, leU32(uint32(n))...)
}

func leU16(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

func leU32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}
