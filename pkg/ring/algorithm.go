package ring

// Stepper is the forward-walking part of Cursor and ConstCursor.
type Stepper[C any] interface {
	Next() C
	Equal(C) bool
}

// Walker is a Stepper that can also move backward.
type Walker[C any] interface {
	Stepper[C]
	Prev() C
}

// Iterator is satisfied by Cursor[T] and ConstCursor[T].
type Iterator[T, C any] interface {
	Walker[C]
	Value() T
}

// Find returns the first cursor in [first, last) whose value equals v, or
// last if there is none.
func Find[T comparable, C Iterator[T, C]](first, last C, v T) C {
	return FindFunc(first, last, func(x T) bool { return x == v })
}

// FindFunc returns the first cursor in [first, last) whose value satisfies
// match, or last if there is none.
func FindFunc[T any, C Iterator[T, C]](first, last C, match func(T) bool) C {
	for c := first; !c.Equal(last); c = c.Next() {
		if match(c.Value()) {
			return c
		}
	}
	return last
}

// Distance counts the Next steps needed to go from first to last. last must
// be reachable from first.
func Distance[C Stepper[C]](first, last C) int {
	n := 0
	for c := first; !c.Equal(last); c = c.Next() {
		n++
	}
	return n
}

// Advance moves c by n steps, forward for n > 0 and backward for n < 0.
func Advance[C Walker[C]](c C, n int) C {
	for ; n > 0; n-- {
		c = c.Next()
	}
	for ; n < 0; n++ {
		c = c.Prev()
	}
	return c
}
