package ring

import "container/list"

// State tags how a cursor got to its position.
type State uint8

const (
	// StateDefault marks a cursor freshly obtained from Begin.
	StateDefault State = iota
	// StateInc marks a cursor that was moved with Next or Prev at least once.
	StateInc
	// StateEnd marks the end sentinel returned by End.
	StateEnd
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateDefault:
		return "default"
	case StateInc:
		return "inc"
	case StateEnd:
		return "end"
	default:
		return "unknown"
	}
}

// position addresses one slot of a sequence. The array backend uses index,
// the list backend uses elem, where a nil elem is the end position.
type position struct {
	index int
	elem  *list.Element
}

// slots is the narrow view a cursor has of its sequence.
type slots[T any] interface {
	headPos() position
	tailPos() position
	next(p position) position
	prev(p position) position
	at(p position) *T
	// distance counts forward steps from one raw position to another.
	distance(from, to position) int
}

// cursor implements the traversal rules shared by Cursor and ConstCursor.
//
// The tail position is also where a cursor lands after stepping past the
// newest element. Such a cursor is tagged StateInc, compares equal to End()
// and reads the element at head, which keeps forward and backward walks
// cyclic across the seam.
type cursor[T any] struct {
	s     slots[T]
	pos   position
	state State
}

func (c cursor[T]) next() cursor[T] {
	if c.pos == c.s.tailPos() {
		c.pos = c.s.next(c.s.headPos())
	} else {
		c.pos = c.s.next(c.pos)
	}
	c.state = StateInc
	return c
}

func (c cursor[T]) prev() cursor[T] {
	if c.pos == c.s.headPos() {
		c.pos = c.s.prev(c.s.tailPos())
	} else {
		c.pos = c.s.prev(c.pos)
	}
	c.state = StateInc
	return c
}

func (c cursor[T]) ptr() *T {
	if c.state == StateEnd {
		panic("ring: dereference of end cursor")
	}
	if c.state == StateInc && c.pos == c.s.tailPos() {
		return c.s.at(c.s.headPos())
	}
	return c.s.at(c.pos)
}

// equal reports matching positions unless exactly one side is the end
// sentinel and the other was never moved.
func (c cursor[T]) equal(o cursor[T]) bool {
	if c.pos != o.pos {
		return false
	}
	if c.state == StateEnd && o.state == StateDefault {
		return false
	}
	if c.state == StateDefault && o.state == StateEnd {
		return false
	}
	return true
}

func (c cursor[T]) sub(o cursor[T]) int {
	return c.s.distance(o.pos, c.pos)
}

// Cursor is a bidirectional read-write cursor over a Sequence.
//
// Cursors are values: Next and Prev return the moved cursor and leave the
// receiver unchanged.
type Cursor[T any] struct {
	cursor[T]
}

// Next returns the cursor advanced by one element.
func (c Cursor[T]) Next() Cursor[T] { return Cursor[T]{c.next()} }

// Prev returns the cursor moved back by one element. Prev of End() is the
// newest element; Prev of the oldest element wraps to the newest.
func (c Cursor[T]) Prev() Cursor[T] { return Cursor[T]{c.prev()} }

// Value returns the element the cursor denotes. It panics on End().
func (c Cursor[T]) Value() T { return *c.ptr() }

// Ptr returns a pointer to the element the cursor denotes. It panics on End().
func (c Cursor[T]) Ptr() *T { return c.ptr() }

// Set replaces the element the cursor denotes. It panics on End().
func (c Cursor[T]) Set(v T) { *c.ptr() = v }

// Equal reports whether both cursors denote the same position.
func (c Cursor[T]) Equal(o Cursor[T]) bool { return c.equal(o.cursor) }

// Sub returns the forward distance from o to c modulo the storage size.
// It is not a signed distance: it is only meaningful when both cursors lie
// within one traversal window that does not cross the seam twice.
func (c Cursor[T]) Sub(o Cursor[T]) int { return c.sub(o.cursor) }

// State returns the traversal state tag.
func (c Cursor[T]) State() State { return c.state }

// Const returns a read-only cursor at the same position with the same state.
func (c Cursor[T]) Const() ConstCursor[T] { return ConstCursor[T]{c.cursor} }

// ConstCursor is a bidirectional read-only cursor over a Sequence.
type ConstCursor[T any] struct {
	cursor[T]
}

// Next returns the cursor advanced by one element.
func (c ConstCursor[T]) Next() ConstCursor[T] { return ConstCursor[T]{c.next()} }

// Prev returns the cursor moved back by one element.
func (c ConstCursor[T]) Prev() ConstCursor[T] { return ConstCursor[T]{c.prev()} }

// Value returns the element the cursor denotes. It panics on CEnd().
func (c ConstCursor[T]) Value() T { return *c.ptr() }

// Equal reports whether both cursors denote the same position.
func (c ConstCursor[T]) Equal(o ConstCursor[T]) bool { return c.equal(o.cursor) }

// Sub returns the forward distance from o to c. See Cursor.Sub.
func (c ConstCursor[T]) Sub(o ConstCursor[T]) int { return c.sub(o.cursor) }

// State returns the traversal state tag.
func (c ConstCursor[T]) State() State { return c.state }
