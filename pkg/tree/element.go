// Package tree defines the in-memory element tree shared by the CDX
// binary codec, the CDXML surface, and the styler. The same tree type
// is produced by the binary reader and the XML parser, and consumed by
// the binary writer, the XML serializer, and the styler, so none of
// those components need to know which surface form a document came
// from.
package tree

// Attr is a single name/value attribute, kept in document order the
// way the source (binary or XML) presented it.
type Attr struct {
	Name  string
	Value string
}

// Element is a single node of the element tree: an object tag name, an
// optional document-unique id, an ordered attribute list, and ordered
// children. Every node - whether it models a well known CDX object like
// <fragment> or an element the catalog doesn't describe - uses this one
// representation; there is no per-tag struct family.
type Element struct {
	Tag      string
	ID       uint32
	HasID    bool
	Attrs    []Attr
	Children []*Element
	// Text is the element's direct character content, used by leaf
	// nodes like an <s> style run whose text is not an attribute (most
	// CDX objects carry no Text and leave this empty).
	Text string
}

// New creates an element with the given tag and no id assigned yet.
func New(tag string) *Element {
	return &Element{Tag: tag}
}

// Attr returns the value of the named attribute and whether it was present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets the named attribute, replacing any existing value while
// preserving its original position, or appending it at the end if new.
func (e *Element) SetAttr(name, value string) {
	for i, a := range e.Attrs {
		if a.Name == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// DeleteAttr removes the named attribute if present.
func (e *Element) DeleteAttr(name string) {
	for i, a := range e.Attrs {
		if a.Name == name {
			e.Attrs = append(e.Attrs[:i], e.Attrs[i+1:]...)
			return
		}
	}
}

// KeepAttrs removes every attribute whose name is not in the allow set,
// preserving order of the survivors. Used by the styler to enforce the
// bond/node/text attribute whitelists.
func (e *Element) KeepAttrs(allow map[string]bool) {
	kept := e.Attrs[:0]
	for _, a := range e.Attrs {
		if allow[a.Name] {
			kept = append(kept, a)
		}
	}
	e.Attrs = kept
}

// AppendChild appends a child element, preserving document order.
func (e *Element) AppendChild(child *Element) {
	e.Children = append(e.Children, child)
}

// Find returns the first direct child with the given tag, or nil.
func (e *Element) Find(tag string) *Element {
	for _, c := range e.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// FindAll returns every direct child with the given tag.
func (e *Element) FindAll(tag string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// Walk calls fn for e and every descendant, depth-first, in document order.
func (e *Element) Walk(fn func(*Element)) {
	fn(e)
	for _, c := range e.Children {
		c.Walk(fn)
	}
}

// Descendants returns every node with the given tag anywhere under e,
// in document order, e itself included if it matches.
func (e *Element) Descendants(tag string) []*Element {
	var out []*Element
	e.Walk(func(n *Element) {
		if n.Tag == tag {
			out = append(out, n)
		}
	})
	return out
}

// Clone returns a deep copy of e and its subtree. Element trees are
// treated as immutable once built, so any component that rewrites a
// tree - the styler in particular - clones first and mutates the copy,
// never the caller's original.
func (e *Element) Clone() *Element {
	clone := &Element{
		Tag:   e.Tag,
		ID:    e.ID,
		HasID: e.HasID,
		Text:  e.Text,
	}
	if e.Attrs != nil {
		clone.Attrs = make([]Attr, len(e.Attrs))
		copy(clone.Attrs, e.Attrs)
	}
	if e.Children != nil {
		clone.Children = make([]*Element, len(e.Children))
		for i, c := range e.Children {
			clone.Children[i] = c.Clone()
		}
	}
	return clone
}
