// Package ringscript replays scripted push/pop/clear operations against a
// ring.Sequence and captures the resulting contents as a Snapshot.
//
// A script is usually loaded from YAML:
//
//	backend: list
//	capacity: 3
//	ops:
//	  - push: "a"
//	  - push: "b"
//	  - pop: true
//	  - clear: true
package ringscript

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/haivivi/ringseq/pkg/ring"
)

// ErrInvalidOp is returned when an op sets zero or several actions.
var ErrInvalidOp = errors.New("ringscript: invalid op")

// Op is one script step. Exactly one field must be set.
type Op struct {
	Push  *string `yaml:"push,omitempty" json:"push,omitempty"`
	Pop   bool    `yaml:"pop,omitempty" json:"pop,omitempty"`
	Clear bool    `yaml:"clear,omitempty" json:"clear,omitempty"`
}

// Kind returns "push", "pop" or "clear".
func (o Op) Kind() (string, error) {
	var kind string
	n := 0
	if o.Push != nil {
		kind = "push"
		n++
	}
	if o.Pop {
		kind = "pop"
		n++
	}
	if o.Clear {
		kind = "clear"
		n++
	}
	if n != 1 {
		return "", fmt.Errorf("%w: %d actions set", ErrInvalidOp, n)
	}
	return kind, nil
}

// PushOp returns an op that pushes v.
func PushOp(v string) Op { return Op{Push: &v} }

// Script is a sequence of ops to apply to a fresh ring.
type Script struct {
	// Backend is "array" or "list". Empty uses the runner default.
	Backend string `yaml:"backend,omitempty" json:"backend,omitempty"`

	// Capacity is the ring capacity. Zero uses the runner default.
	Capacity int `yaml:"capacity,omitempty" json:"capacity,omitempty"`

	Ops []Op `yaml:"ops" json:"ops"`
}

// Snapshot is the observable state of a ring after a script ran.
type Snapshot struct {
	Backend  string   `yaml:"backend" json:"backend"`
	Capacity int      `yaml:"capacity" json:"capacity"`
	Len      int      `yaml:"len" json:"len"`
	Full     bool     `yaml:"full" json:"full"`
	Front    *string  `yaml:"front,omitempty" json:"front,omitempty"`
	Back     *string  `yaml:"back,omitempty" json:"back,omitempty"`
	Values   []string `yaml:"values" json:"values"`
	Reverse  []string `yaml:"reverse" json:"reverse"`
	Evicted  []string `yaml:"evicted,omitempty" json:"evicted,omitempty"`
}

// NewSnapshot captures seq. Values are read with a forward cursor walk and
// Reverse with a backward walk from the end sentinel.
func NewSnapshot(backend ring.Backend, seq ring.Sequence[string], evicted []string) *Snapshot {
	s := &Snapshot{
		Backend:  string(backend),
		Capacity: seq.Cap(),
		Len:      seq.Len(),
		Full:     seq.Full(),
		Values:   make([]string, 0, seq.Len()),
		Reverse:  make([]string, 0, seq.Len()),
		Evicted:  evicted,
	}
	if v, ok := seq.Front(); ok {
		s.Front = &v
	}
	if v, ok := seq.Back(); ok {
		s.Back = &v
	}
	for c := seq.CBegin(); !c.Equal(seq.CEnd()); c = c.Next() {
		s.Values = append(s.Values, c.Value())
	}
	c := seq.CEnd()
	for range seq.Len() {
		c = c.Prev()
		s.Reverse = append(s.Reverse, c.Value())
	}
	return s
}

// Runner applies scripts.
type Runner struct {
	// Backend is used when a script leaves Backend empty.
	Backend ring.Backend

	// Capacity is used when a script leaves Capacity zero.
	Capacity int

	// Logger receives a debug record per op and an info record per eviction.
	// slog.Default() is used if nil.
	Logger *slog.Logger
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

// Resolve returns the backend and capacity a script runs with.
func (r *Runner) Resolve(s *Script) (ring.Backend, int, error) {
	backend := r.Backend
	if s.Backend != "" {
		b, err := ring.ParseBackend(s.Backend)
		if err != nil {
			return "", 0, fmt.Errorf("ringscript: %w", err)
		}
		backend = b
	}
	if backend == "" {
		backend = ring.BackendArray
	}
	capacity := r.Capacity
	if s.Capacity != 0 {
		capacity = s.Capacity
	}
	return backend, capacity, nil
}

// Run validates s, applies its ops to a new ring and returns the snapshot.
// ctx is checked between ops.
func (r *Runner) Run(ctx context.Context, s *Script) (*Snapshot, error) {
	kinds := make([]string, len(s.Ops))
	for i, op := range s.Ops {
		k, err := op.Kind()
		if err != nil {
			return nil, fmt.Errorf("ringscript: op %d: %w", i, err)
		}
		kinds[i] = k
	}

	backend, capacity, err := r.Resolve(s)
	if err != nil {
		return nil, err
	}

	log := r.logger().With("backend", backend, "capacity", capacity)
	var evicted []string
	seq, err := ring.New(backend, capacity, ring.WithEvict(func(v string) {
		evicted = append(evicted, v)
		log.Info("evicted", "value", v)
	}))
	if err != nil {
		return nil, fmt.Errorf("ringscript: %w", err)
	}

	for i, op := range s.Ops {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("ringscript: op %d: %w", i, err)
		}
		switch kinds[i] {
		case "push":
			seq.PushBack(*op.Push)
		case "pop":
			seq.PopFront()
		case "clear":
			seq.Clear()
		}
		log.Debug("applied", "op", i, "kind", kinds[i], "len", seq.Len())
	}

	return NewSnapshot(backend, seq, evicted), nil
}
