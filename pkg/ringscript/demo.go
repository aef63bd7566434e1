package ringscript

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/haivivi/ringseq/pkg/ring"
)

// ErrDemoFailed is returned by Demo when at least one check does not hold.
var ErrDemoFailed = errors.New("ringscript: demo failed")

// DemoCapacity is the capacity the demo expectations are written for.
const DemoCapacity = 5

// Check is one expectation evaluated by Demo.
type Check struct {
	Step string `yaml:"step" json:"step"`
	Expr string `yaml:"expr" json:"expr"`
	Got  string `yaml:"got" json:"got"`
	Want string `yaml:"want" json:"want"`
	OK   bool   `yaml:"ok" json:"ok"`
}

type demo struct {
	seq    ring.Sequence[int]
	step   string
	checks []Check
	log    *slog.Logger
}

func (d *demo) expect(expr string, got, want any) {
	c := Check{
		Step: d.step,
		Expr: expr,
		Got:  fmt.Sprint(got),
		Want: fmt.Sprint(want),
	}
	c.OK = c.Got == c.Want
	if c.OK {
		d.log.Debug("check passed", "step", c.Step, "expr", c.Expr, "got", c.Got)
	} else {
		d.log.Warn("check failed", "step", c.Step, "expr", c.Expr, "got", c.Got, "want", c.Want)
	}
	d.checks = append(d.checks, c)
}

func (d *demo) front() any {
	v, ok := d.seq.Front()
	if !ok {
		return "<empty>"
	}
	return v
}

func (d *demo) back() any {
	v, ok := d.seq.Back()
	if !ok {
		return "<empty>"
	}
	return v
}

// Demo runs the reference push/pop/iterate scenario on a ring of capacity
// DemoCapacity with the given backend and returns every check it made. The
// error wraps ErrDemoFailed if any check failed.
func Demo(backend ring.Backend, log *slog.Logger) ([]Check, error) {
	if log == nil {
		log = slog.Default()
	}
	seq, err := ring.New[int](backend, DemoCapacity)
	if err != nil {
		return nil, fmt.Errorf("ringscript: %w", err)
	}
	d := &demo{seq: seq, log: log.With("backend", backend)}

	d.step = "push 1 2 3"
	for _, v := range []int{1, 2, 3} {
		seq.PushBack(v)
	}
	d.expect("front", d.front(), 1)
	d.expect("back", d.back(), 3)
	d.expect("len", seq.Len(), 3)

	d.step = "push 4 5"
	seq.PushBack(4)
	seq.PushBack(5)
	d.expect("full", seq.Full(), true)
	d.expect("front", d.front(), 1)
	d.expect("back", d.back(), 5)

	d.step = "push 6 7"
	seq.PushBack(6)
	seq.PushBack(7)
	d.expect("front", d.front(), 3)
	d.expect("back", d.back(), 7)
	d.expect("values", ring.Values(seq), []int{3, 4, 5, 6, 7})

	d.step = "pop 2"
	seq.PopFront()
	seq.PopFront()
	d.expect("front", d.front(), 5)
	d.expect("back", d.back(), 7)

	d.step = "find 6"
	it := ring.Find(seq.Begin(), seq.End(), 6)
	d.expect("distance(begin, find(6))", ring.Distance(seq.Begin(), it), 1)

	d.step = "reverse 15"
	var got []int
	c := seq.CEnd().Prev()
	for range 15 {
		got = append(got, c.Value())
		c = c.Prev()
	}
	d.expect("values", got, slices.Repeat([]int{7, 6, 5}, 5))

	failed := 0
	for _, c := range d.checks {
		if !c.OK {
			failed++
		}
	}
	if failed > 0 {
		return d.checks, fmt.Errorf("%w: %d of %d checks", ErrDemoFailed, failed, len(d.checks))
	}
	return d.checks, nil
}
