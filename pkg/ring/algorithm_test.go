package ring

import "testing"

func TestFind(t *testing.T) {
	forEachBackend(t, func(t *testing.T, newSeq newFunc) {
		seq := newSeq(4)
		pushAll(seq, 1, 2, 3, 4, 5, 6)

		if c := Find(seq.CBegin(), seq.CEnd(), 5); c.Equal(seq.CEnd()) || c.Value() != 5 {
			t.Errorf("Find(5) did not find 5")
		}
		if c := Find(seq.CBegin(), seq.CEnd(), 1); !c.Equal(seq.CEnd()) {
			t.Errorf("Find(1) found an evicted element")
		}
		if c := Find(seq.Begin(), seq.End(), 3); Distance(seq.Begin(), c) != 0 {
			t.Errorf("Find(3) is not the front")
		}

		even := FindFunc(seq.CBegin(), seq.CEnd(), func(v int) bool { return v%2 == 0 })
		if even.Equal(seq.CEnd()) || even.Value() != 4 {
			t.Errorf("FindFunc(even) did not find 4")
		}

		empty := newSeq(2)
		if c := Find(empty.CBegin(), empty.CEnd(), 0); !c.Equal(empty.CEnd()) {
			t.Errorf("Find on empty sequence is not end")
		}
	})
}

func TestDistance(t *testing.T) {
	forEachBackend(t, func(t *testing.T, newSeq newFunc) {
		seq := newSeq(3)
		for i := range 7 {
			if d := Distance(seq.CBegin(), seq.CEnd()); d != seq.Len() {
				t.Fatalf("after %d pushes: distance=%d, len=%d", i, d, seq.Len())
			}
			seq.PushBack(i)
		}
		if d := Distance(seq.Begin(), seq.Begin()); d != 0 {
			t.Errorf("Distance(begin, begin)=%d", d)
		}
	})
}

func TestAdvance(t *testing.T) {
	forEachBackend(t, func(t *testing.T, newSeq newFunc) {
		seq := newSeq(5)
		pushAll(seq, 10, 20, 30, 40, 50, 60)

		if got := Advance(seq.CBegin(), 2).Value(); got != 40 {
			t.Errorf("begin+2=%d, want 40", got)
		}
		if got := Advance(seq.CEnd(), -1).Value(); got != 60 {
			t.Errorf("end-1=%d, want 60", got)
		}
		if got := Advance(seq.CEnd(), -5).Value(); got != 20 {
			t.Errorf("end-5=%d, want 20", got)
		}
		if c := Advance(seq.Begin(), seq.Len()); !c.Equal(seq.End()) {
			t.Errorf("begin+len is not end")
		}
		if c := Advance(seq.Begin(), 0); c.State() != StateDefault {
			t.Errorf("Advance by 0 changed state to %v", c.State())
		}
	})
}
