package vec

import "fmt"

// Vec is a fixed-capacity vector. The capacity is set at construction
// and never changes: the backing storage is allocated (or adopted, see
// Wrap) exactly once and no operation ever reallocates it. Mutating
// inserts that would exceed the capacity fail with *CapacityError
// instead of growing.
//
// Only the live prefix [0, Len()) holds valid elements. Slots past the
// live prefix are never read and, because removal is lazy, may still
// hold stale copies of previously stored values (see Truncate).
type Vec[T any] struct {
	buf []T // backing storage, len(buf) == capacity, never reallocated
	n   int // live prefix length, 0 <= n <= len(buf)

	// Non-empty while an exclusive view (Drain, Refs, Consume) is
	// outstanding. Mutation and view creation panic until it clears.
	lock string

	// Number of read-only iterations (Iter, Values) currently in
	// flight. Read views coexist with each other, but mutation and
	// exclusive views panic while any reader is active.
	readers int
}

// New creates an empty Vec with the given fixed capacity.
// Panics if capacity is negative.
func New[T any](capacity int) *Vec[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("vec: negative capacity %d", capacity))
	}
	return &Vec[T]{buf: make([]T, capacity)}
}

// Wrap builds a Vec on top of caller-provided storage: the slice's
// length becomes the live prefix and its capacity becomes the fixed
// capacity. This is the allocation-free construction path; the caller
// can hand in a slice of a stack-resident array:
//
//	var storage [16]Point
//	v := vec.Wrap(storage[:0])
//
// The Vec takes exclusive ownership of the storage; the caller must not
// touch buf through the original slice afterwards.
func Wrap[T any](buf []T) *Vec[T] {
	return &Vec[T]{buf: buf[:cap(buf)], n: len(buf)}
}

// FromSlice creates a Vec with the given capacity holding a copy of
// items. Returns *CapacityError when len(items) > capacity.
func FromSlice[T any](capacity int, items []T) (*Vec[T], error) {
	if len(items) > capacity {
		return nil, &CapacityError{Cap: capacity, Need: len(items)}
	}
	v := New[T](capacity)
	v.n = copy(v.buf, items)
	return v, nil
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int { return v.n }

// Cap returns the fixed capacity.
func (v *Vec[T]) Cap() int { return len(v.buf) }

// Remaining returns how many more elements fit before the vector is full.
func (v *Vec[T]) Remaining() int { return len(v.buf) - v.n }

// IsEmpty reports whether the vector holds no elements.
func (v *Vec[T]) IsEmpty() bool { return v.n == 0 }

// IsFull reports whether the live prefix has reached the capacity.
func (v *Vec[T]) IsFull() bool { return v.n == len(v.buf) }

// guard panics if an exclusive view is outstanding. Read-only
// operations use it directly so they can coexist with each other.
func (v *Vec[T]) guard() {
	if v.lock != "" {
		panic("vec: " + v.lock + " is still active; finish it before touching the vector")
	}
}

// mutGuard panics if any view, exclusive or read-only, is outstanding.
// Every mutator goes through it.
func (v *Vec[T]) mutGuard() {
	v.guard()
	if v.readers > 0 {
		panic("vec: read iteration is still active; finish it before mutating the vector")
	}
}

// acquire takes the exclusive-view lock on behalf of the named view.
func (v *Vec[T]) acquire(view string) {
	v.mutGuard()
	v.lock = view
}

func (v *Vec[T]) release() { v.lock = "" }

// Push appends value at the end of the live prefix.
// Returns *CapacityError when the vector is full; the vector is unchanged.
func (v *Vec[T]) Push(value T) error {
	v.mutGuard()
	if v.n == len(v.buf) {
		return &CapacityError{Cap: len(v.buf), Need: v.n + 1}
	}
	v.buf[v.n] = value
	v.n++
	return nil
}

// MustPush is Push for call sites that treat a full vector as a logic
// error: it panics on *CapacityError instead of returning it.
func (v *Vec[T]) MustPush(value T) {
	if err := v.Push(value); err != nil {
		panic(err)
	}
}

// PushUnchecked appends value without the capacity check. The caller
// guarantees Len() < Cap(); violating that corrupts no memory in Go but
// is still a contract violation and panics on the slice bounds instead
// of returning *CapacityError. Reserved for hot paths that have already
// checked Remaining().
func (v *Vec[T]) PushUnchecked(value T) {
	v.buf[v.n] = value
	v.n++
}

// Pop removes and returns the last element. The second return is false
// when the vector is empty.
func (v *Vec[T]) Pop() (T, bool) {
	v.mutGuard()
	var zero T
	if v.n == 0 {
		return zero, false
	}
	v.n--
	// The slot keeps its stale copy; removal is lazy.
	return v.buf[v.n], true
}

// Insert shifts [index, Len()) one slot up and writes value at index.
// Insert at index == Len() behaves as Push. Returns ErrOutOfRange when
// index > Len() and *CapacityError when the vector is full; the range
// check runs first, so an out-of-range insert on a full vector reports
// the more specific misuse. O(Len() - index).
func (v *Vec[T]) Insert(index int, value T) error {
	v.mutGuard()
	if index < 0 || index > v.n {
		return ErrOutOfRange
	}
	if v.n == len(v.buf) {
		return &CapacityError{Cap: len(v.buf), Need: v.n + 1}
	}
	copy(v.buf[index+1:v.n+1], v.buf[index:v.n])
	v.buf[index] = value
	v.n++
	return nil
}

// MustInsert is Insert for call sites that treat a bad index or a full
// vector as a logic error: it panics instead of returning the error.
func (v *Vec[T]) MustInsert(index int, value T) {
	if err := v.Insert(index, value); err != nil {
		panic(err)
	}
}

// PopAt removes and returns the element at index, shifting the elements
// after it one slot down. The second return is false when index is out
// of range. O(Len() - index). Built on a single-element drain, so it
// shares Drain's compaction behavior exactly.
func (v *Vec[T]) PopAt(index int) (T, bool) {
	var zero T
	if index < 0 || index >= v.n {
		return zero, false
	}
	d := v.Drain(index, index+1)
	out, _ := d.Next()
	d.Close()
	return out, true
}

// Remove is PopAt for call sites that treat an out-of-range index as a
// logic error: it panics instead of reporting absence.
func (v *Vec[T]) Remove(index int) T {
	out, ok := v.PopAt(index)
	if !ok {
		panic(fmt.Sprintf("vec: remove index %d out of range with length %d", index, v.n))
	}
	return out
}

// SwapPop removes and returns the element at index in O(1) by moving
// the last element into its slot. Does not preserve order. The second
// return is false when index is out of range.
func (v *Vec[T]) SwapPop(index int) (T, bool) {
	v.mutGuard()
	var zero T
	if index < 0 || index >= v.n {
		return zero, false
	}
	out := v.buf[index]
	v.n--
	v.buf[index] = v.buf[v.n]
	return out, true
}

// SwapRemove is SwapPop for call sites that treat an out-of-range index
// as a logic error: it panics instead of reporting absence.
func (v *Vec[T]) SwapRemove(index int) T {
	out, ok := v.SwapPop(index)
	if !ok {
		panic(fmt.Sprintf("vec: swap-remove index %d out of range with length %d", index, v.n))
	}
	return out
}

// Truncate cuts the live prefix down to length. A no-op when length >=
// Len(). Truncation is lazy: the dropped slots are not zeroed, so the
// old values stay reachable for the garbage collector until the slots
// are overwritten. Callers holding resources in T should use
// TruncateFunc instead.
func (v *Vec[T]) Truncate(length int) {
	v.mutGuard()
	if length < 0 {
		length = 0
	}
	if length < v.n {
		v.n = length
	}
}

// TruncateFunc calls release once per dropped element, in ascending
// index order, then truncates. Use it when T holds resources (open
// handles, reference counts) that the lazy Truncate would leak.
func (v *Vec[T]) TruncateFunc(length int, release func(T)) {
	v.mutGuard()
	if length < 0 {
		length = 0
	}
	for i := length; i < v.n; i++ {
		release(v.buf[i])
	}
	if length < v.n {
		v.n = length
	}
}

// Clear removes all elements. Like Truncate, it is lazy and does not
// zero the storage.
func (v *Vec[T]) Clear() {
	v.Truncate(0)
}

// ClearFunc calls release once per element in ascending index order,
// then removes all elements.
func (v *Vec[T]) ClearFunc(release func(T)) {
	v.TruncateFunc(0, release)
}

// Retain keeps, in their original order, exactly the elements for which
// keep returns true. Single left-to-right pass: each kept element moves
// down by the number of rejected elements seen so far. O(Len()) moves,
// O(1) extra space. Rejected elements are dropped lazily.
func (v *Vec[T]) Retain(keep func(T) bool) {
	v.mutGuard()
	deleted := 0
	for i := 0; i < v.n; i++ {
		if !keep(v.buf[i]) {
			deleted++
		} else if deleted > 0 {
			v.buf[i-deleted] = v.buf[i]
		}
	}
	v.n -= deleted
}

// Append pushes all items. All-or-nothing: when they do not fit in the
// remaining capacity it returns *CapacityError and the vector is
// unchanged.
func (v *Vec[T]) Append(items ...T) error {
	v.mutGuard()
	if len(items) > len(v.buf)-v.n {
		return &CapacityError{Cap: len(v.buf), Need: v.n + len(items)}
	}
	v.n += copy(v.buf[v.n:], items)
	return nil
}

// Get returns the element at index. The second return is false when
// index is out of range.
func (v *Vec[T]) Get(index int) (T, bool) {
	v.guard()
	var zero T
	if index < 0 || index >= v.n {
		return zero, false
	}
	return v.buf[index], true
}

// Set overwrites the element at index and reports whether index was in
// range.
func (v *Vec[T]) Set(index int, value T) bool {
	v.mutGuard()
	if index < 0 || index >= v.n {
		return false
	}
	v.buf[index] = value
	return true
}

// Slice returns the live prefix as a plain slice sharing the backing
// storage. Reads and writes through it are visible in the vector.
// The slice is invalidated by any operation that changes Len().
func (v *Vec[T]) Slice() []T {
	v.guard()
	return v.buf[:v.n:v.n]
}

// SetLen overwrites the live length without initializing or dropping
// anything. The caller guarantees length <= Cap() and that the slots
// [0, length) hold values it considers initialized. Escape hatch for
// storage filled out-of-band, e.g. through the slice handed out by a
// previous SetLen + Slice round trip; pairs with PushUnchecked-style
// reasoning.
func (v *Vec[T]) SetLen(length int) {
	v.mutGuard()
	v.n = length
}

// Clone returns a new Vec with the same capacity and a copy of the live
// prefix.
func (v *Vec[T]) Clone() *Vec[T] {
	v.guard()
	out := New[T](len(v.buf))
	out.n = copy(out.buf, v.buf[:v.n])
	return out
}
