package main

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/kamstrup/intmap"
	"github.com/plus3/fixcap/vec"
)

// runner applies the same random operation stream to a Vec and to a
// plain append-slice model, and reports the first divergence between
// the two.
type runner struct {
	v     *vec.Vec[int64]
	model []int64
	rng   *rand.Rand

	opCounts      map[string]int64
	verifications int64
}

func newRunner(capacity int, seed int64) *runner {
	return &runner{
		v:        vec.New[int64](capacity),
		model:    make([]int64, 0, capacity),
		rng:      rand.New(rand.NewSource(seed)),
		opCounts: make(map[string]int64),
	}
}

func (r *runner) full() bool { return len(r.model) == cap(r.model) }

// expectCapacity checks that the vector reported *CapacityError exactly
// when the model says the operation cannot fit.
func expectCapacity(op string, err error, wantFull bool) error {
	var capErr *vec.CapacityError
	gotFull := errors.As(err, &capErr)
	if gotFull != wantFull {
		return fmt.Errorf("%s: capacity error mismatch: vec=%v model-full=%v", op, err, wantFull)
	}
	if !wantFull && err != nil {
		return fmt.Errorf("%s: unexpected error: %v", op, err)
	}
	return nil
}

// step applies one named operation to both the vector and the model.
func (r *runner) step(op string) error {
	r.opCounts[op]++

	switch op {
	case "push":
		val := r.rng.Int63n(1 << 16)
		wantFull := r.full()
		err := r.v.Push(val)
		if !wantFull {
			r.model = append(r.model, val)
		}
		return expectCapacity(op, err, wantFull)

	case "pop":
		got, ok := r.v.Pop()
		if len(r.model) == 0 {
			if ok {
				return fmt.Errorf("pop: vec yielded %d from an empty model", got)
			}
			return nil
		}
		want := r.model[len(r.model)-1]
		r.model = r.model[:len(r.model)-1]
		if !ok || got != want {
			return fmt.Errorf("pop: got (%d, %v), want (%d, true)", got, ok, want)
		}

	case "insert":
		val := r.rng.Int63n(1 << 16)
		// +2 so the out-of-range branch gets exercised as well
		idx := r.rng.Intn(len(r.model) + 2)
		err := r.v.Insert(idx, val)
		switch {
		case idx > len(r.model):
			if !errors.Is(err, vec.ErrOutOfRange) {
				return fmt.Errorf("insert: index %d beyond length %d: got %v, want ErrOutOfRange", idx, len(r.model), err)
			}
		case r.full():
			return expectCapacity(op, err, true)
		default:
			if err != nil {
				return fmt.Errorf("insert: unexpected error: %v", err)
			}
			r.model = slices.Insert(r.model, idx, val)
		}

	case "pop_at":
		idx := r.rng.Intn(len(r.model) + 1)
		got, ok := r.v.PopAt(idx)
		if idx >= len(r.model) {
			if ok {
				return fmt.Errorf("pop_at: index %d out of range but vec yielded %d", idx, got)
			}
			return nil
		}
		want := r.model[idx]
		r.model = slices.Delete(r.model, idx, idx+1)
		if !ok || got != want {
			return fmt.Errorf("pop_at: got (%d, %v), want (%d, true)", got, ok, want)
		}

	case "swap_pop":
		idx := r.rng.Intn(len(r.model) + 1)
		got, ok := r.v.SwapPop(idx)
		if idx >= len(r.model) {
			if ok {
				return fmt.Errorf("swap_pop: index %d out of range but vec yielded %d", idx, got)
			}
			return nil
		}
		want := r.model[idx]
		last := len(r.model) - 1
		r.model[idx] = r.model[last]
		r.model = r.model[:last]
		if !ok || got != want {
			return fmt.Errorf("swap_pop: got (%d, %v), want (%d, true)", got, ok, want)
		}

	case "append":
		count := r.rng.Intn(cap(r.model)/4 + 2)
		vals := make([]int64, count)
		for i := range vals {
			vals[i] = r.rng.Int63n(1 << 16)
		}
		err := r.v.Append(vals...)
		wantFull := count > cap(r.model)-len(r.model)
		if !wantFull {
			r.model = append(r.model, vals...)
		}
		return expectCapacity(op, err, wantFull)

	case "retain":
		pivot := r.rng.Int63n(1 << 16)
		r.v.Retain(func(x int64) bool { return x >= pivot })
		kept := r.model[:0]
		for _, x := range r.model {
			if x >= pivot {
				kept = append(kept, x)
			}
		}
		r.model = kept

	case "truncate":
		n := r.rng.Intn(len(r.model) + 2)
		r.v.Truncate(n)
		if n < len(r.model) {
			r.model = r.model[:n]
		}

	case "drain":
		start := r.rng.Intn(len(r.model) + 1)
		end := start + r.rng.Intn(len(r.model)-start+1)
		want := slices.Clone(r.model[start:end])
		var got []int64

		// Consume fully most of the time; sometimes abandon the loop
		// early to exercise compaction-on-abandon.
		abandonAfter := -1
		if end > start && r.rng.Intn(4) == 0 {
			abandonAfter = r.rng.Intn(end - start)
		}
		for x := range r.v.Drain(start, end).Values() {
			got = append(got, x)
			if abandonAfter >= 0 && len(got) > abandonAfter {
				break
			}
		}

		if abandonAfter < 0 && !slices.Equal(got, want) {
			return fmt.Errorf("drain [%d,%d): yielded %v, want %v", start, end, got, want)
		}
		// Compaction is the same whether or not the loop finished
		r.model = slices.Delete(r.model, start, end)

	case "iterate":
		var sum, wantSum int64
		for _, x := range r.v.Iter() {
			sum += x
		}
		for _, x := range r.model {
			wantSum += x
		}
		if sum != wantSum {
			return fmt.Errorf("iterate: sum %d, want %d", sum, wantSum)
		}

	case "clear":
		r.v.Clear()
		r.model = r.model[:0]

	default:
		return fmt.Errorf("unknown op %q", op)
	}

	return nil
}

// verify does a full structural comparison between the vector and the
// model: lengths, element order, and a frequency cross-check through an
// integer-keyed map.
func (r *runner) verify() error {
	r.verifications++

	if r.v.Len() != len(r.model) {
		return fmt.Errorf("verify: length %d, model %d", r.v.Len(), len(r.model))
	}
	if r.v.Remaining() != cap(r.model)-len(r.model) {
		return fmt.Errorf("verify: remaining %d, model %d", r.v.Remaining(), cap(r.model)-len(r.model))
	}
	if !slices.Equal(r.v.Slice(), r.model) {
		return fmt.Errorf("verify: contents diverged:\n  vec:   %v\n  model: %v", r.v.Slice(), r.model)
	}

	counts := intmap.New[int64, int64](2*len(r.model) + 1)
	for _, x := range r.v.Slice() {
		c, _ := counts.Get(x)
		counts.Put(x, c+1)
	}
	for _, x := range r.model {
		c, ok := counts.Get(x)
		if !ok || c == 0 {
			return fmt.Errorf("verify: model value %d missing from vec frequency table", x)
		}
		if c == 1 {
			counts.Del(x)
		} else {
			counts.Put(x, c-1)
		}
	}
	if counts.Len() != 0 {
		return fmt.Errorf("verify: vec holds %d values not present in model", counts.Len())
	}

	return nil
}
