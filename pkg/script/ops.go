package script

import (
	"fmt"
	"iter"
	"log/slog"
	"strconv"
	"strings"

	"github.com/haivivi/containers/pkg/array"
	"github.com/haivivi/containers/pkg/list"
	"github.com/haivivi/containers/pkg/precond"
	"github.com/haivivi/containers/pkg/queue"
	"github.com/haivivi/containers/pkg/stack"
	"github.com/haivivi/containers/pkg/vector"
)

// op is one scripted operation. Params has one letter per argument, i for
// an integer, n for a size no larger than MaxSize and s for a string; a
// trailing * repeats the last letter one or more times.
type op struct {
	params string
	fn     func(a args) any
}

type args []string

func (a args) int(i int) int {
	n, _ := strconv.Atoi(a[i])
	return n
}

func (o op) check(a []string) error {
	p := o.params
	variadic := strings.HasSuffix(p, "*")
	p = strings.TrimSuffix(p, "*")
	switch {
	case variadic && len(a) < len(p):
		return fmt.Errorf("want at least %d arguments, got %d", len(p), len(a))
	case !variadic && len(a) != len(p):
		return fmt.Errorf("want %d arguments, got %d", len(p), len(a))
	}
	for i, arg := range a {
		kind := p[min(i, len(p)-1)]
		if kind == 's' {
			continue
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("argument %d: %q is not an integer", i+1, arg)
		}
		if kind == 'n' && n > MaxSize {
			return fmt.Errorf("argument %d: size %d exceeds %d", i+1, n, MaxSize)
		}
	}
	return nil
}

// target is a container under script control.
type target interface {
	ops() map[string]op
	snapshot() Snapshot
}

func newTarget(k Kind, capacity int, gf float64, log *slog.Logger) target {
	var vopts []vector.Option
	qopts := []queue.Option{queue.WithCapacity(capacity), queue.WithLogger(log)}
	if gf != 0 {
		vopts = append(vopts, vector.WithGrowthFactor(gf))
		qopts = append(qopts, queue.WithGrowthFactor(gf))
	}
	vopts = append(vopts, vector.WithCapacity(capacity), vector.WithLogger(log))

	switch k {
	case KindVector:
		return vectorTarget{vector.New[string](vopts...)}
	case KindList:
		return listTarget{list.New[string]()}
	case KindQueue:
		return queueTarget{queue.New[string](qopts...)}
	case KindBoundedQueue:
		return queueTarget{queue.NewBounded[string](capacity)}
	case KindStack:
		return stackTarget{stack.New[string](vopts...)}
	case KindBoundedStack:
		return stackTarget{stack.NewBounded[string](capacity)}
	case KindArray:
		return arrayTarget{array.New[string](capacity)}
	}
	panic("script: unknown kind " + string(k))
}

// apply runs o, converting a precondition violation into an error.
func apply(o op, a []string) (res any, err error) {
	defer precond.Recover(&err)
	return o.fn(a), nil
}

func items(seq iter.Seq2[int, string]) []string {
	out := []string{}
	for _, v := range seq {
		out = append(out, v)
	}
	return out
}

type vectorTarget struct{ v *vector.Vector[string] }

func (t vectorTarget) ops() map[string]op {
	v := t.v
	return map[string]op{
		"push_back": {"s*", func(a args) any {
			for _, x := range a {
				v.PushBack(x)
			}
			return nil
		}},
		"pop_back":      {"", func(args) any { return v.PopBack() }},
		"insert":        {"is", func(a args) any { return v.Insert(a.int(0), a[1]) }},
		"erase":         {"i", func(a args) any { return v.Erase(a.int(0)) }},
		"erase_range":   {"ii", func(a args) any { return v.EraseRange(a.int(0), a.int(1)) }},
		"at":            {"i", func(a args) any { return v.At(a.int(0)) }},
		"set":           {"is", func(a args) any { v.Set(a.int(0), a[1]); return nil }},
		"front":         {"", func(args) any { return v.Front() }},
		"back":          {"", func(args) any { return v.Back() }},
		"resize":        {"n", func(a args) any { v.Resize(a.int(0)); return nil }},
		"reserve":       {"n", func(a args) any { v.Reserve(a.int(0)); return nil }},
		"shrink_to_fit": {"", func(args) any { v.ShrinkToFit(); return nil }},
		"clear":         {"", func(args) any { v.Clear(); return nil }},
		"fill":          {"s", func(a args) any { v.Fill(a[0]); return nil }},
		"reset":         {"", func(args) any { v.Reset(); return nil }},
	}
}

func (t vectorTarget) snapshot() Snapshot {
	return Snapshot{
		Kind:     KindVector,
		Len:      t.v.Len(),
		Cap:      t.v.Cap(),
		Reallocs: t.v.Reallocs(),
		Items:    items(t.v.All()),
	}
}

type listTarget struct{ l *list.List[string] }

// iter returns the position of element i; i == Len() is End.
func (t listTarget) iter(op string, i int) list.Iter[string] {
	precond.Position(op, i, t.l.Len())
	it := t.l.Begin()
	for range i {
		it = it.Next()
	}
	return it
}

func (t listTarget) ops() map[string]op {
	l := t.l
	return map[string]op{
		"push_back": {"s*", func(a args) any {
			for _, x := range a {
				l.PushBack(x)
			}
			return nil
		}},
		"push_front": {"s*", func(a args) any {
			for _, x := range a {
				l.PushFront(x)
			}
			return nil
		}},
		"pop_back":  {"", func(args) any { return l.PopBack() }},
		"pop_front": {"", func(args) any { return l.PopFront() }},
		"insert": {"is", func(a args) any {
			l.Insert(t.iter("list.Insert", a.int(0)), a[1])
			return a.int(0)
		}},
		"erase": {"i", func(a args) any {
			precond.Index("list.Erase", a.int(0), l.Len())
			l.Erase(t.iter("list.Erase", a.int(0)))
			return a.int(0)
		}},
		"at":     {"i", func(a args) any { return l.At(a.int(0)) }},
		"front":  {"", func(args) any { return l.Front() }},
		"back":   {"", func(args) any { return l.Back() }},
		"resize": {"n", func(a args) any { l.Resize(a.int(0)); return nil }},
		"clear":  {"", func(args) any { l.Clear(); return nil }},
		"fill":   {"s", func(a args) any { l.Fill(a[0]); return nil }},
		"reset":  {"", func(args) any { l.Reset(); return nil }},
		"splice": {"is*", func(a args) any {
			l.Splice(t.iter("list.Splice", a.int(0)), list.Of(a[1:]...))
			return nil
		}},
	}
}

func (t listTarget) snapshot() Snapshot {
	return Snapshot{
		Kind:  KindList,
		Len:   t.l.Len(),
		Cap:   t.l.Len(),
		Items: items(t.l.All()),
	}
}

type queueTarget struct{ q *queue.Queue[string] }

func (t queueTarget) ops() map[string]op {
	q := t.q
	return map[string]op{
		"enqueue": {"s*", func(a args) any {
			for _, x := range a {
				q.Enqueue(x)
			}
			return nil
		}},
		"dequeue": {"", func(args) any { return q.Dequeue() }},
		"front":   {"", func(args) any { return q.Front() }},
		"back":    {"", func(args) any { return q.Back() }},
		"at":      {"i", func(a args) any { return q.At(a.int(0)) }},
		"full":    {"", func(args) any { return q.Full() }},
		"clear":   {"", func(args) any { q.Clear(); return nil }},
	}
}

func (t queueTarget) snapshot() Snapshot {
	k := KindQueue
	if t.q.Bounded() {
		k = KindBoundedQueue
	}
	return Snapshot{
		Kind:     k,
		Len:      t.q.Len(),
		Cap:      t.q.Cap(),
		Reallocs: t.q.Reallocs(),
		Items:    items(t.q.All()),
	}
}

type stackTarget struct{ s *stack.Stack[string] }

func (t stackTarget) ops() map[string]op {
	s := t.s
	return map[string]op{
		"push": {"s*", func(a args) any {
			for _, x := range a {
				s.Push(x)
			}
			return nil
		}},
		"pop":   {"", func(args) any { return s.Pop() }},
		"top":   {"", func(args) any { return s.Top() }},
		"full":  {"", func(args) any { return s.Full() }},
		"clear": {"", func(args) any { s.Clear(); return nil }},
	}
}

func (t stackTarget) snapshot() Snapshot {
	k := KindStack
	if t.s.Bounded() {
		k = KindBoundedStack
	}
	return Snapshot{
		Kind:     k,
		Len:      t.s.Len(),
		Cap:      t.s.Cap(),
		Reallocs: t.s.Reallocs(),
		Items:    items(t.s.All()),
	}
}

type arrayTarget struct{ a *array.Array[string] }

func (t arrayTarget) ops() map[string]op {
	arr := t.a
	return map[string]op{
		"at":    {"i", func(a args) any { return arr.At(a.int(0)) }},
		"set":   {"is", func(a args) any { arr.Set(a.int(0), a[1]); return nil }},
		"front": {"", func(args) any { return arr.Front() }},
		"back":  {"", func(args) any { return arr.Back() }},
		"fill":  {"s", func(a args) any { arr.Fill(a[0]); return nil }},
		"reset": {"", func(args) any { arr.Reset(); return nil }},
	}
}

func (t arrayTarget) snapshot() Snapshot {
	return Snapshot{
		Kind:  KindArray,
		Len:   t.a.Len(),
		Cap:   t.a.Len(),
		Items: items(t.a.All()),
	}
}
