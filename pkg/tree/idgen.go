package tree

// IDGenerator hands out document-unique object ids: a single
// document's generator starts at firstGeneratedID and counts up, used
// to assign ids to elements parsed from XML that never had one (the
// XML form allows an omitted id; the binary form does not).
const firstGeneratedID = 5000

// NewIDGenerator returns a generator seeded so the first call to Next
// returns firstGeneratedID, avoiding collisions with small ids already
// present in a real document.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{next: firstGeneratedID}
}

// IDGenerator is owned by exactly one document; it is not safe to share
// across documents processed concurrently.
type IDGenerator struct {
	next uint32
}

// Next returns the next unused id and advances the sequence.
func (g *IDGenerator) Next() uint32 {
	id := g.next
	g.next++
	return id
}
