package cdx

import (
	"bytes"
	"log/slog"

	"github.com/dimelords/cdxlib/internal/cdxerr"
	"github.com/dimelords/cdxlib/pkg/catalog"
	"github.com/dimelords/cdxlib/pkg/cdxvalue"
	"github.com/dimelords/cdxlib/pkg/tree"
)

const lengthExtended = 0xFFFF

// Read decodes a complete CDX binary document into an element tree.
func Read(data []byte) (*tree.Element, error) {
	r := &reader{cur: newCursor(data)}
	return r.readDocument()
}

type reader struct {
	cur *cursor
}

func (r *reader) readDocument() (*tree.Element, error) {
	if err := r.readHeader(); err != nil {
		return nil, err
	}

	docTag, err := r.cur.readUint16()
	if err != nil {
		return nil, cdxerr.New("cdx", "read document tag", "", err)
	}

	root := tree.New("CDXML")
	if docTag == docTagModern {
		id, err := r.cur.readUint32()
		if err != nil {
			return nil, cdxerr.New("cdx", "read document id", "", err)
		}
		root.ID = id
		root.HasID = true
	} else {
		// Legacy document: the 2 bytes just read were not the modern
		// tag. Consume one more byte before the id, then 23 bytes of
		// unknown meaning after it.
		if _, err := r.cur.readBytes(1); err != nil {
			return nil, cdxerr.New("cdx", "read legacy marker", "", err)
		}
		id, err := r.cur.readUint32()
		if err != nil {
			return nil, cdxerr.New("cdx", "read legacy document id", "", err)
		}
		root.ID = id
		root.HasID = true
		if _, err := r.cur.readBytes(legacyExtraBytes); err != nil {
			return nil, cdxerr.New("cdx", "read legacy trailer", "", err)
		}
		slog.Warn("cdx: legacy document header detected", "id", id)
	}

	if _, err := r.attrLoop(root); err != nil {
		return nil, cdxerr.New("cdx", "read root attributes", "", err)
	}

	if err := r.objectLoop(root); err != nil {
		return nil, cdxerr.New("cdx", "read object tree", "", err)
	}

	return root, nil
}

func (r *reader) readHeader() error {
	b, err := r.cur.readBytes(headerLen)
	if err != nil {
		return cdxerr.New("cdx", "read header", "", cdxerr.ErrNotACDXFile)
	}
	if !bytes.Equal(b, header) {
		return cdxerr.New("cdx", "read header", "", cdxerr.ErrNotACDXFile)
	}
	return nil
}

// objectLoop maintains a parent stack seeded with root and consumes
// object/end-of-object tags until the stack empties.
func (r *reader) objectLoop(root *tree.Element) error {
	stack := []*tree.Element{root}

	for len(stack) > 0 {
		if r.cur.atEnd() {
			return nil
		}
		tag, err := r.cur.readUint16()
		if err != nil {
			return err
		}

		switch {
		case tag == 0:
			stack = stack[:len(stack)-1]

		case catalog.IsObjectTag(tag):
			desc, ok := catalog.ObjectByTag(tag)
			if !ok {
				return cdxerr.Newf("cdx", "read object", cdxerr.ErrUnknownObjectTag, "tag 0x%04X", tag)
			}
			id, err := r.cur.readUint32()
			if err != nil {
				return err
			}
			elem := tree.New(desc.ElementName)
			elem.ID = id
			elem.HasID = true

			parent := stack[len(stack)-1]
			parent.AppendChild(elem)

			if _, err := r.attrLoop(elem); err != nil {
				return err
			}
			stack = append(stack, elem)

		default:
			return cdxerr.Newf("cdx", "read object", cdxerr.ErrUnknownObjectTag, "attribute tag 0x%04X outside attribute loop", tag)
		}
	}
	return nil
}

// attrLoop reads attribute tag/length/payload triples and applies them
// to elem until it sees an object tag or the end-of-object sentinel,
// at which point it unreads that tag and returns it to the caller.
func (r *reader) attrLoop(elem *tree.Element) (uint16, error) {
	for {
		if r.cur.atEnd() {
			return 0, nil
		}
		tag, err := r.cur.readUint16()
		if err != nil {
			return 0, err
		}
		if tag == 0 || catalog.IsObjectTag(tag) {
			r.cur.unreadUint16()
			return tag, nil
		}

		desc, ok := catalog.AttributeByTag(tag)
		if !ok {
			if err := r.skipUnknownAttribute(tag); err != nil {
				return 0, err
			}
			continue
		}

		payload, err := r.readPayload()
		if err != nil {
			return 0, err
		}

		if err := r.applyAttribute(elem, desc, payload); err != nil {
			return 0, err
		}
	}
}

func (r *reader) skipUnknownAttribute(tag uint16) error {
	n, err := r.readLength()
	if err != nil {
		return err
	}
	if _, err := r.cur.readBytes(n); err != nil {
		return err
	}
	slog.Warn("cdx: skipping unknown attribute tag", "tag", tag, "length", n)
	return nil
}

func (r *reader) readLength() (int, error) {
	n16, err := r.cur.readUint16()
	if err != nil {
		return 0, err
	}
	if n16 != lengthExtended {
		return int(n16), nil
	}
	n32, err := r.cur.readUint32()
	if err != nil {
		return 0, err
	}
	return int(n32), nil
}

func (r *reader) readPayload() ([]byte, error) {
	n, err := r.readLength()
	if err != nil {
		return nil, err
	}
	return r.cur.readBytes(n)
}

func (r *reader) applyAttribute(elem *tree.Element, desc catalog.AttributeDescriptor, payload []byte) error {
	switch desc.Name {
	case "fonttable":
		v, err := cdxvalue.KindFontTable.DecodeBinary(payload)
		if err != nil {
			return cdxerr.New("cdx", "decode fonttable", "", err)
		}
		elem.AppendChild(fontTableElement(v.(cdxvalue.FontTable)))
		return nil

	case "colortable":
		v, err := cdxvalue.KindColorTable.DecodeBinary(payload)
		if err != nil {
			return cdxerr.New("cdx", "decode colortable", "", err)
		}
		elem.AppendChild(colorTableElement(v.(cdxvalue.ColorTable)))
		return nil

	case "LabelStyle":
		return r.applyFoldedStyle(elem, payload, "LabelFont", "LabelSize", "LabelFace", "LabelColor")

	case "CaptionStyle":
		return r.applyFoldedStyle(elem, payload, "CaptionFont", "CaptionSize", "CaptionFace", "CaptionColor")

	case "Text":
		ss, err := cdxvalue.DecodeStyledString(payload, "iso-8859-1")
		if err != nil {
			return cdxerr.New("cdx", "decode Text", "", err)
		}
		expandRuns(elem, ss)
		return nil

	case "UTF8Text":
		// Decoded to validate but intentionally not stored: it mirrors
		// Text and the element tree keeps a single text representation.
		if _, err := cdxvalue.DecodeStyledString(payload, "utf-8"); err != nil {
			return cdxerr.New("cdx", "decode UTF8Text", "", err)
		}
		return nil

	default:
		kind, err := cdxvalue.KindByName(desc.Kind)
		if err != nil {
			return cdxerr.New("cdx", "resolve kind", desc.Name, err)
		}
		v, err := kind.DecodeBinary(payload)
		if err != nil {
			return cdxerr.New("cdx", "decode attribute", desc.Name, err)
		}
		elem.SetAttr(desc.Name, v.FormatText())
		return nil
	}
}

func (r *reader) applyFoldedStyle(elem *tree.Element, payload []byte, fontAttr, sizeAttr, faceAttr, colorAttr string) error {
	v, err := cdxvalue.KindFontStyle.DecodeBinary(payload)
	if err != nil {
		return cdxerr.New("cdx", "decode font style", "", err)
	}
	fs := v.(cdxvalue.FontStyle)
	elem.SetAttr(fontAttr, cdxvalue.NewInt("UINT16", 2, false, int64(fs.FontID)).FormatText())
	elem.SetAttr(sizeAttr, cdxvalue.FormatFontSizeText(fs.Size))
	elem.SetAttr(faceAttr, cdxvalue.NewInt("UINT16", 2, false, int64(fs.Face)).FormatText())
	elem.SetAttr(colorAttr, cdxvalue.NewInt("UINT16", 2, false, int64(fs.Color)).FormatText())
	return nil
}

func expandRuns(t *tree.Element, ss cdxvalue.StyledString) {
	runs := ss.Runs
	if len(runs) == 0 {
		run := tree.New("s")
		run.Text = ss.Text
		t.AppendChild(run)
		return
	}
	text := []rune(ss.Text)
	for i, run := range runs {
		end := len(text)
		if i+1 < len(runs) {
			end = runs[i+1].StartIndex
		}
		s := tree.New("s")
		s.Text = string(text[run.StartIndex:end])
		s.SetAttr("font", cdxvalue.NewInt("UINT16", 2, false, int64(run.Style.FontID)).FormatText())
		s.SetAttr("size", cdxvalue.FormatFontSizeText(run.Style.Size))
		s.SetAttr("face", cdxvalue.NewInt("UINT16", 2, false, int64(run.Style.Face)).FormatText())
		s.SetAttr("color", cdxvalue.NewInt("UINT16", 2, false, int64(run.Style.Color)).FormatText())
		t.AppendChild(s)
	}
}

func fontTableElement(ft cdxvalue.FontTable) *tree.Element {
	e := tree.New("fonttable")
	for _, f := range ft.Fonts {
		fe := tree.New("font")
		fe.SetAttr("id", cdxvalue.NewInt("UINT16", 2, false, int64(f.ID)).FormatText())
		fe.SetAttr("charset", cdxvalue.NewInt("UINT16", 2, false, int64(f.Charset)).FormatText())
		fe.SetAttr("name", f.Name)
		e.AppendChild(fe)
	}
	return e
}

func colorTableElement(ct cdxvalue.ColorTable) *tree.Element {
	e := tree.New("colortable")
	for _, c := range ct.Colors {
		ce := tree.New("color")
		ce.SetAttr("r", cdxvalue.FormatColorComponentText(c.R))
		ce.SetAttr("g", cdxvalue.FormatColorComponentText(c.G))
		ce.SetAttr("b", cdxvalue.FormatColorComponentText(c.B))
		e.AppendChild(ce)
	}
	return e
}
