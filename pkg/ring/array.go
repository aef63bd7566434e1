package ring

import "iter"

// Array is a Sequence backed by a fixed slice of N slots.
//
// Retained elements occupy the slots [head, head+count) modulo N, and tail is
// the next write slot. When the array is full head and tail coincide.
type Array[T any] struct {
	buf   []T
	head  int
	tail  int
	count int
	evict func(T)
}

// NewArray creates an Array with capacity n. It panics if n is not positive.
func NewArray[T any](n int, opts ...Option[T]) *Array[T] {
	mustCapacity(n)
	o := applyOptions(opts)
	return &Array[T]{
		buf:   make([]T, n),
		evict: o.evict,
	}
}

// PushBack appends v. If the array is full the front element is overwritten.
func (a *Array[T]) PushBack(v T) {
	n := len(a.buf)
	if a.count == n {
		old := a.buf[a.head]
		a.buf[a.head] = v
		a.head = (a.head + 1) % n
		a.tail = (a.tail + 1) % n
		if a.evict != nil {
			a.evict(old)
		}
		return
	}
	a.buf[a.tail] = v
	a.tail = (a.tail + 1) % n
	a.count++
}

// PopFront removes the front element. No-op if the array is empty.
func (a *Array[T]) PopFront() {
	if a.count == 0 {
		return
	}
	a.head = (a.head + 1) % len(a.buf)
	a.count--
}

// Clear resets the bookkeeping. Slots keep their stale values until they are
// written again; they are never observable through the public API.
func (a *Array[T]) Clear() {
	a.head = 0
	a.tail = 0
	a.count = 0
}

func (a *Array[T]) Front() (v T, ok bool) {
	if a.count == 0 {
		return v, false
	}
	return a.buf[a.head], true
}

func (a *Array[T]) Back() (v T, ok bool) {
	if a.count == 0 {
		return v, false
	}
	return a.buf[(a.head+a.count-1)%len(a.buf)], true
}

func (a *Array[T]) Len() int    { return a.count }
func (a *Array[T]) Cap() int    { return len(a.buf) }
func (a *Array[T]) Empty() bool { return a.count == 0 }
func (a *Array[T]) Full() bool  { return a.count == len(a.buf) }

func (a *Array[T]) Begin() Cursor[T] {
	if a.count == 0 {
		return a.End()
	}
	return Cursor[T]{cursor[T]{s: a, pos: position{index: a.head}, state: StateDefault}}
}

func (a *Array[T]) End() Cursor[T] {
	return Cursor[T]{cursor[T]{s: a, pos: position{index: a.tail}, state: StateEnd}}
}

func (a *Array[T]) CBegin() ConstCursor[T] { return a.Begin().Const() }
func (a *Array[T]) CEnd() ConstCursor[T]   { return a.End().Const() }

func (a *Array[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		n := len(a.buf)
		for i := range a.count {
			if !yield(a.buf[(a.head+i)%n]) {
				return
			}
		}
	}
}

func (a *Array[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		n := len(a.buf)
		for i := a.count - 1; i >= 0; i-- {
			if !yield(a.buf[(a.head+i)%n]) {
				return
			}
		}
	}
}

// Slot accessors for cursors.

func (a *Array[T]) headPos() position { return position{index: a.head} }
func (a *Array[T]) tailPos() position { return position{index: a.tail} }

func (a *Array[T]) next(p position) position {
	return position{index: (p.index + 1) % len(a.buf)}
}

func (a *Array[T]) prev(p position) position {
	n := len(a.buf)
	return position{index: (p.index + n - 1) % n}
}

func (a *Array[T]) at(p position) *T { return &a.buf[p.index] }

func (a *Array[T]) distance(from, to position) int {
	n := len(a.buf)
	return (to.index - from.index + n) % n
}

var _ Sequence[int] = (*Array[int])(nil)
