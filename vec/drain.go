package vec

import (
	"fmt"
	"iter"
)

// Drain is an in-progress removal of the contiguous index range
// [origin, limit) of one Vec. While a Drain is active it holds
// exclusive access to its Vec: every mutator and view constructor on
// the Vec panics until Close has run.
//
// Elements are yielded in index order by Next. Close finalizes the
// drain: it discards whatever the caller did not consume and compacts
// the vector by shifting the elements after the range down over the
// gap, preserving the survivors' relative order. Close must run on
// every exit path; use Values for a loop that guarantees that even on
// an early break.
type Drain[T any] struct {
	v      *Vec[T]
	origin int // start of the removed range, fixed
	cursor int // next yield position, origin <= cursor <= limit
	limit  int // exclusive end of the removed range, fixed
	closed bool
}

// Drain starts removing the range [start, end) and returns the view
// over it. Requires 0 <= start <= end <= Len(); an invalid range is a
// programmer error and panics. start == end is a legal empty drain
// whose Close is a no-op on the contents.
//
// The vector's length is untouched until Close runs.
func (v *Vec[T]) Drain(start, end int) *Drain[T] {
	if start < 0 || start > end || end > v.n {
		panic(fmt.Sprintf("vec: invalid drain range [%d, %d) with length %d", start, end, v.n))
	}
	v.acquire("drain")
	return &Drain[T]{v: v, origin: start, cursor: start, limit: end}
}

// Next moves the element at the cursor out of the vector and returns
// it. Once the range is exhausted (or the drain closed) it returns
// false forever.
func (d *Drain[T]) Next() (T, bool) {
	var zero T
	if d.closed || d.cursor >= d.limit {
		return zero, false
	}
	out := d.v.buf[d.cursor]
	d.cursor++
	return out, true
}

// Close finalizes the drain. Unconsumed elements in [cursor, limit) are
// discarded (lazily, like Truncate), the elements after the range shift
// down to close the gap, the vector's length shrinks by limit-origin,
// and the vector becomes usable again. Idempotent; calling it twice is
// safe.
func (d *Drain[T]) Close() {
	if d.closed {
		return
	}
	d.closed = true
	v := d.v
	copy(v.buf[d.origin:], v.buf[d.limit:v.n])
	v.n -= d.limit - d.origin
	v.release()
}

// Values returns the remaining drained elements as a one-shot sequence
// that closes the drain when the loop exits, including on an early
// break or a panic in the loop body. This is the recommended way to
// consume a drain:
//
//	for x := range v.Drain(2, 5).Values() {
//		use(x)
//	}
func (d *Drain[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer d.Close()
		for {
			out, ok := d.Next()
			if !ok {
				return
			}
			if !yield(out) {
				return
			}
		}
	}
}
