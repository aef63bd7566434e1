package ring

import (
	"container/list"
	"iter"
)

// List is a Sequence backed by a doubly-linked list that never holds more
// than its capacity. Each push allocates one node; once the list is full each
// push also releases the front node.
type List[T any] struct {
	items *list.List // of *T
	n     int
	evict func(T)
}

// NewList creates a List with capacity n. It panics if n is not positive.
func NewList[T any](n int, opts ...Option[T]) *List[T] {
	mustCapacity(n)
	o := applyOptions(opts)
	return &List[T]{
		items: list.New(),
		n:     n,
		evict: o.evict,
	}
}

// PushBack appends v and drops the front node if the list grew past capacity.
func (l *List[T]) PushBack(v T) {
	l.items.PushBack(&v)
	if l.items.Len() <= l.n {
		return
	}
	old := l.items.Remove(l.items.Front()).(*T)
	if l.evict != nil {
		l.evict(*old)
	}
}

// PopFront removes the front node. No-op if the list is empty.
func (l *List[T]) PopFront() {
	if e := l.items.Front(); e != nil {
		l.items.Remove(e)
	}
}

func (l *List[T]) Clear() { l.items.Init() }

func (l *List[T]) Front() (v T, ok bool) {
	e := l.items.Front()
	if e == nil {
		return v, false
	}
	return *e.Value.(*T), true
}

func (l *List[T]) Back() (v T, ok bool) {
	e := l.items.Back()
	if e == nil {
		return v, false
	}
	return *e.Value.(*T), true
}

func (l *List[T]) Len() int    { return l.items.Len() }
func (l *List[T]) Cap() int    { return l.n }
func (l *List[T]) Empty() bool { return l.items.Len() == 0 }
func (l *List[T]) Full() bool  { return l.items.Len() == l.n }

func (l *List[T]) Begin() Cursor[T] {
	e := l.items.Front()
	if e == nil {
		return l.End()
	}
	return Cursor[T]{cursor[T]{s: l, pos: position{elem: e}, state: StateDefault}}
}

// End returns the sentinel, which sits on the nil element past the back.
func (l *List[T]) End() Cursor[T] {
	return Cursor[T]{cursor[T]{s: l, state: StateEnd}}
}

func (l *List[T]) CBegin() ConstCursor[T] { return l.Begin().Const() }
func (l *List[T]) CEnd() ConstCursor[T]   { return l.End().Const() }

func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.items.Front(); e != nil; e = e.Next() {
			if !yield(*e.Value.(*T)) {
				return
			}
		}
	}
}

func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.items.Back(); e != nil; e = e.Prev() {
			if !yield(*e.Value.(*T)) {
				return
			}
		}
	}
}

// Slot accessors for cursors. The positions form a cycle of Len()+1 slots:
// the elements followed by the nil end position.

func (l *List[T]) headPos() position { return position{elem: l.items.Front()} }
func (l *List[T]) tailPos() position { return position{} }

func (l *List[T]) next(p position) position {
	if p.elem == nil {
		return position{elem: l.items.Front()}
	}
	return position{elem: p.elem.Next()}
}

func (l *List[T]) prev(p position) position {
	if p.elem == nil {
		return position{elem: l.items.Back()}
	}
	return position{elem: p.elem.Prev()}
}

func (l *List[T]) at(p position) *T {
	if p.elem == nil {
		panic("ring: dereference of end position")
	}
	return p.elem.Value.(*T)
}

func (l *List[T]) distance(from, to position) int {
	p := from
	for i := 0; i <= l.items.Len(); i++ {
		if p == to {
			return i
		}
		p = l.next(p)
	}
	return -1
}

var _ Sequence[int] = (*List[int])(nil)
