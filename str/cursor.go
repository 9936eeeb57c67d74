package str

import "github.com/joshuapare/libx/status"

// Cursor walks a String forward, yielding delimiter-separated segments.
//
//	c := str.NewCursor(line)
//	for !c.Exhausted() {
//	    field := c.Next(',')
//	    ...
//	}
//
// The last segment is returned together with the exhausted flag, so the loop
// must test Exhausted before calling Next, not after.
type Cursor struct {
	src       String
	pos       int
	exhausted bool
}

// NewCursor opens a cursor at the start of s. A cursor over a failed String
// starts exhausted and yields that failure.
func NewCursor(s String) *Cursor {
	return &Cursor{src: s, exhausted: !s.Ok()}
}

// Cursor opens a cursor at the start of s.
func (s String) Cursor() *Cursor { return NewCursor(s) }

// Next returns the bytes from the cursor up to the next delim and moves past
// the delimiter. When no delimiter remains it returns the trailing segment,
// which may be empty, and marks the cursor exhausted. Calling Next on an
// exhausted cursor returns a String with status IteratorExhausted.
func (c *Cursor) Next(delim byte) String {
	if c == nil {
		return Failed(status.NullInput)
	}
	if c.exhausted {
		if !c.src.Ok() {
			return c.src
		}
		return Failed(status.IteratorExhausted)
	}

	b := c.src.b
	start := c.pos
	for i := start; i < len(b); i++ {
		if b[i] == delim {
			c.pos = i + 1
			return String{b: b[start:i:i]}
		}
	}
	c.pos = len(b)
	c.exhausted = true
	return String{b: b[start:len(b):len(b)]}
}

// Exhausted reports whether the final segment has been returned.
func (c *Cursor) Exhausted() bool { return c == nil || c.exhausted }

// Pos is the offset of the next unread byte.
func (c *Cursor) Pos() int { return c.pos }

// Rest returns the unread remainder without advancing.
func (c *Cursor) Rest() String {
	if !c.src.Ok() {
		return c.src
	}
	return String{b: c.src.b[c.pos:]}
}
