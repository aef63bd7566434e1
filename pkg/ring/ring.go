package ring

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Sentinel errors.
var (
	// ErrInvalidCapacity is returned when a sequence is requested with a
	// capacity below one.
	ErrInvalidCapacity = errors.New("ring: invalid capacity")

	// ErrUnknownBackend is returned for a Backend that is neither
	// BackendArray nor BackendList.
	ErrUnknownBackend = errors.New("ring: unknown backend")
)

// Sequence is a bounded FIFO sequence. PushBack on a full sequence evicts
// the oldest element; PopFront on an empty sequence does nothing.
type Sequence[T any] interface {
	// PushBack appends v, evicting the front element if the sequence is full.
	PushBack(v T)

	// PopFront removes the front element. No-op if the sequence is empty.
	PopFront()

	// Clear removes all elements.
	Clear()

	// Front returns the oldest element. ok is false if the sequence is empty.
	Front() (v T, ok bool)

	// Back returns the newest element. ok is false if the sequence is empty.
	Back() (v T, ok bool)

	// Len returns the number of retained elements.
	Len() int

	// Cap returns the fixed capacity.
	Cap() int

	// Empty reports whether Len() == 0.
	Empty() bool

	// Full reports whether Len() == Cap().
	Full() bool

	// Begin returns a cursor at the front element, or End() if empty.
	Begin() Cursor[T]

	// End returns the end sentinel.
	End() Cursor[T]

	// CBegin is the read-only counterpart of Begin.
	CBegin() ConstCursor[T]

	// CEnd is the read-only counterpart of End.
	CEnd() ConstCursor[T]

	// All yields the elements from oldest to newest.
	All() iter.Seq[T]

	// Backward yields the elements from newest to oldest.
	Backward() iter.Seq[T]
}

// Backend selects the storage strategy of a Sequence.
type Backend string

const (
	// BackendArray stores elements in a fixed slice addressed modulo capacity.
	BackendArray Backend = "array"
	// BackendList stores elements in a doubly-linked list capped at capacity.
	BackendList Backend = "list"
)

// ParseBackend parses a backend name, case-insensitively.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case BackendArray, BackendList:
		return b, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
	}
}

// New creates a sequence with the given backend and capacity.
func New[T any](backend Backend, capacity int, opts ...Option[T]) (Sequence[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	switch backend {
	case BackendArray:
		return NewArray(capacity, opts...), nil
	case BackendList:
		return NewList(capacity, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// Values returns a copy of the elements of seq from oldest to newest.
func Values[T any](seq Sequence[T]) []T {
	out := make([]T, 0, seq.Len())
	for v := range seq.All() {
		out = append(out, v)
	}
	return out
}

// Option configures a sequence.
type Option[T any] func(*options[T])

type options[T any] struct {
	evict func(T)
}

// WithEvict sets a function that receives the element displaced when
// PushBack is called on a full sequence. PopFront and Clear do not call it.
func WithEvict[T any](fn func(v T)) Option[T] {
	return func(o *options[T]) {
		o.evict = fn
	}
}

func applyOptions[T any](opts []Option[T]) options[T] {
	var o options[T]
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func mustCapacity(n int) {
	if n <= 0 {
		panic(fmt.Sprintf("ring: capacity must be positive, got %d", n))
	}
}
