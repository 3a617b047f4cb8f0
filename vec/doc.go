// Package vec implements a fixed-capacity vector: a sequence container
// with a hard capacity ceiling set at construction.
//
// # Overview
//
// Vec behaves like a dynamic array up to its capacity and then stops:
// Push, Insert and Append fail with *CapacityError instead of growing,
// and the backing storage is never reallocated. That makes it useful
// where append's amortized growth is the wrong tool:
//
//   - Bounded queues and scratch buffers with a known worst case
//   - Hot paths that must not allocate after setup
//   - Embedding in larger structs with predictable memory layout
//   - Callers that want "full" to be an explicit, handleable condition
//
// # Basic Usage
//
//	v := vec.New[int](8)
//	if err := v.Push(42); err != nil {
//		// the vector was full; it is unchanged
//	}
//	last, ok := v.Pop()
//
// Wrap builds a Vec over caller-provided storage without allocating,
// which permits stack-resident backing arrays:
//
//	var storage [16]Request
//	pending := vec.Wrap(storage[:0])
//
// # Removal Protocols
//
// Order-preserving removal of a contiguous range goes through Drain,
// a view that yields the removed elements and compacts the vector when
// it is closed. Drain.Values ties the close to loop exit:
//
//	for x := range v.Drain(2, 5).Values() {
//		// x was at index 2, 3, 4
//	}
//	// survivors shifted down, length reduced by 3
//
// PopAt and Remove are single-element drains. SwapPop and SwapRemove
// trade order preservation for O(1) removal. Retain keeps exactly the
// elements matching a predicate, stably, in one pass.
//
// # Lazy Removal
//
// Truncate, Clear, Pop, Retain and closed drains only move the length
// (and survivors); they never zero the vacated slots. Values removed
// this way therefore stay reachable for the garbage collector until
// their slots are overwritten, and no per-element cleanup runs. This
// is deliberate: callers that truncate in hot loops must not pay for
// cleanup they do not need. When T holds resources, use TruncateFunc
// or ClearFunc, which invoke a release callback once per dropped
// element in ascending index order.
//
// # Aliasing Discipline
//
// Vec performs no internal synchronization and is meant to be owned by
// one goroutine at a time, like a plain slice. Within that owner, the
// exclusive views (Drain, Refs, Consume) lock the vector for their
// lifetime: any mutator or view constructor called while one is
// outstanding panics. Read-only views (Iter, Values, Slice, Get) may
// freely coexist with each other, but while an Iter or Values loop is
// running the vector counts as read-borrowed and mutation panics too:
// at any moment there is either one exclusive view or any number of
// readers, never both.
//
// # Unchecked Fast Paths
//
// PushUnchecked and SetLen skip validation; the precondition (capacity
// already checked, slots already initialized) is the caller's
// obligation. They exist for call sites that have hoisted the checks
// out of a loop, and they are the only operations that can leave the
// container inconsistent when misused.
package vec
