// Package ring provides fixed-capacity circular sequences that overwrite the
// oldest element when full.
//
// Two storage strategies implement the same Sequence interface:
//
//   - Array: one pre-sized slice of N slots addressed modulo N. Push and pop
//     are O(1) and never allocate after construction.
//
//   - List: a doubly-linked list capped at N nodes. Pushing into a full list
//     appends a node and removes the front one.
//
// Both expose bidirectional cursors. Cursor gives read-write access to the
// element it denotes and ConstCursor gives read-only access. A cursor carries
// a State tag that tells a freshly obtained position (StateDefault), a
// position reached by stepping (StateInc) and the end sentinel (StateEnd)
// apart. On a full array head and tail share a slot, so the tag is what keeps
// Begin() unequal to End() while a cursor that walked all the way around
// still compares equal to End().
//
// Example usage:
//
//	seq := ring.NewArray[int](5)
//	for i := 1; i <= 7; i++ {
//		seq.PushBack(i) // 1 and 2 are evicted
//	}
//
//	// Forward walk: 3 4 5 6 7
//	for c := seq.CBegin(); !c.Equal(seq.CEnd()); c = c.Next() {
//		fmt.Println(c.Value())
//	}
//
//	// Reverse walk: 7 6 5 4 3
//	for v := range seq.Backward() {
//		fmt.Println(v)
//	}
//
// Sequences and cursors are not safe for concurrent use. A cursor is
// invalidated by PushBack, PopFront and Clear on its sequence.
package ring
