package ring

import (
	"slices"
	"testing"
)

func TestCursorState(t *testing.T) {
	forEachBackend(t, func(t *testing.T, newSeq newFunc) {
		seq := newSeq(3)
		if s := seq.Begin().State(); s != StateEnd {
			t.Errorf("empty begin state=%v, want end", s)
		}

		pushAll(seq, 1, 2)
		if s := seq.Begin().State(); s != StateDefault {
			t.Errorf("begin state=%v, want default", s)
		}
		if s := seq.End().State(); s != StateEnd {
			t.Errorf("end state=%v, want end", s)
		}
		if s := seq.Begin().Next().State(); s != StateInc {
			t.Errorf("begin+1 state=%v, want inc", s)
		}
		if s := seq.CEnd().Prev().State(); s != StateInc {
			t.Errorf("end-1 state=%v, want inc", s)
		}
		if s := seq.Begin().Const().State(); s != StateDefault {
			t.Errorf("Const() changed state to %v", s)
		}
	})
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{
		StateDefault: "default",
		StateInc:     "inc",
		StateEnd:     "end",
		State(9):     "unknown",
	} {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", s, got, want)
		}
	}
}

// On a full sequence the array's head and tail share a slot, so only the
// state tags keep a fresh Begin() apart from End().
func TestCursorFullSequenceTags(t *testing.T) {
	forEachBackend(t, func(t *testing.T, newSeq newFunc) {
		seq := newSeq(4)
		pushAll(seq, 1, 2, 3, 4, 5, 6)

		begin, end := seq.Begin(), seq.End()
		if begin.Equal(end) {
			t.Errorf("begin == end on full sequence")
		}
		if end.Equal(begin) {
			t.Errorf("end == begin on full sequence")
		}

		c := begin
		for range seq.Len() {
			c = c.Next()
		}
		if !c.Equal(end) || !end.Equal(c) {
			t.Errorf("cursor stepped %d times is not end", seq.Len())
		}
		if !c.Prev().Equal(end.Prev()) {
			t.Errorf("prev of walked cursor differs from prev of end")
		}
		if got := end.Prev().Value(); got != 6 {
			t.Errorf("end-1=%d, want 6", got)
		}
	})
}

func TestCursorFullArraySharedSlot(t *testing.T) {
	a := NewArray[int](4)
	pushAll(a, 1, 2, 3, 4, 5, 6)
	if a.head != a.tail {
		t.Fatalf("head=%d tail=%d, want equal on full array", a.head, a.tail)
	}
	if a.Begin().pos != a.End().pos {
		t.Fatalf("begin and end positions differ")
	}
	if a.Begin().Equal(a.End()) {
		t.Errorf("begin == end")
	}
}

// A cursor stepped past the newest element sits on the tail position and
// reads the front element, so repeated stepping cycles through the contents.
func TestCursorSeam(t *testing.T) {
	forEachBackend(t, func(t *testing.T, newSeq newFunc) {
		seq := newSeq(3)
		pushAll(seq, 1, 2)

		past := seq.Begin().Next().Next()
		if !past.Equal(seq.End()) {
			t.Fatalf("begin+2 is not end")
		}
		if got := past.Value(); got != 1 {
			t.Errorf("value at seam=%d, want front 1", got)
		}

		var got []int
		c := seq.CBegin()
		for range 6 {
			got = append(got, c.Value())
			c = c.Next()
		}
		if want := []int{1, 2, 1, 2, 1, 2}; !slices.Equal(got, want) {
			t.Errorf("forward cycle=%v, want %v", got, want)
		}

		got = got[:0]
		c = seq.CBegin()
		for range 6 {
			got = append(got, c.Value())
			c = c.Prev()
		}
		if want := []int{1, 2, 1, 2, 1, 2}; !slices.Equal(got, want) {
			t.Errorf("backward cycle=%v, want %v", got, want)
		}
	})
}

func TestCursorEndDereferencePanics(t *testing.T) {
	forEachBackend(t, func(t *testing.T, newSeq newFunc) {
		seq := newSeq(2)
		seq.PushBack(1)
		for name, fn := range map[string]func(){
			"value": func() { seq.End().Value() },
			"ptr":   func() { seq.End().Ptr() },
			"set":   func() { seq.End().Set(3) },
			"const": func() { seq.CEnd().Value() },
		} {
			t.Run(name, func(t *testing.T) {
				defer func() {
					if recover() == nil {
						t.Errorf("expected panic")
					}
				}()
				fn()
			})
		}
	})
}

func TestCursorMutation(t *testing.T) {
	forEachBackend(t, func(t *testing.T, newSeq newFunc) {
		seq := newSeq(3)
		pushAll(seq, 1, 2, 3, 4)

		seq.Begin().Set(20)
		*seq.Begin().Next().Ptr() += 10
		seq.End().Prev().Set(40)

		if got := Values(seq); !slices.Equal(got, []int{20, 13, 40}) {
			t.Errorf("values=%v", got)
		}
		if got := mustFront(t, seq); got != 20 {
			t.Errorf("front=%d", got)
		}
		if got := mustBack(t, seq); got != 40 {
			t.Errorf("back=%d", got)
		}
	})
}

func TestCursorSub(t *testing.T) {
	forEachBackend(t, func(t *testing.T, newSeq newFunc) {
		seq := newSeq(5)
		pushAll(seq, 1, 2, 3, 4, 5, 6, 7)
		seq.PopFront()
		seq.PopFront()

		begin := seq.Begin()
		six := Find(begin, seq.End(), 6)
		if d := six.Sub(begin); d != 1 {
			t.Errorf("six-begin=%d, want 1", d)
		}
		if d := seq.End().Sub(begin); d != seq.Len() {
			t.Errorf("end-begin=%d, want %d", d, seq.Len())
		}
		if d := begin.Sub(begin); d != 0 {
			t.Errorf("begin-begin=%d, want 0", d)
		}
		if d := seq.CEnd().Prev().Sub(seq.CBegin()); d != 2 {
			t.Errorf("back-begin=%d, want 2", d)
		}
	})
}

// Sub is modulo the number of slots: on a full array end and begin share a
// slot and their difference wraps to zero.
func TestCursorSubFullArrayWraps(t *testing.T) {
	a := NewArray[int](3)
	pushAll(a, 1, 2, 3)
	if d := a.End().Sub(a.Begin()); d != 0 {
		t.Errorf("end-begin=%d, want 0", d)
	}
	if d := Distance(a.Begin(), a.End()); d != 3 {
		t.Errorf("Distance(begin, end)=%d, want 3", d)
	}
}
