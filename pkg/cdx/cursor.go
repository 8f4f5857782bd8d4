package cdx

import (
	"encoding/binary"

	"github.com/dimelords/cdxlib/internal/cdxerr"
)

// cursor wraps a byte slice with an explicit read offset, passed by
// reference to every decode helper rather than hidden behind a stream
// the reader closes over.
type cursor struct {
	data []byte
	pos  int
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data}
}

func (c *cursor) remaining() int { return len(c.data) - c.pos }

func (c *cursor) readBytes(n int) ([]byte, error) {
	if n < 0 || c.remaining() < n {
		return nil, cdxerr.New("cdx", "read", "unexpected end of input", cdxerr.ErrTruncated)
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *cursor) readUint16() (uint16, error) {
	b, err := c.readBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *cursor) readUint32() (uint32, error) {
	b, err := c.readBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// unreadUint16 rewinds the cursor by 2 bytes, used when the attribute
// loop peeks a tag that turns out to belong to the object loop.
func (c *cursor) unreadUint16() {
	c.pos -= 2
}

func (c *cursor) atEnd() bool { return c.remaining() == 0 }
