package vec

import "iter"

// Iter returns an iterator over (index, element) pairs of the live
// prefix, in index order. The sequence is finite and one-shot; call
// Iter again for a fresh traversal. Iterating an empty vector yields
// nothing.
//
// While the loop runs the vector counts as read-borrowed: other read
// views may coexist with it, but mutators and exclusive views panic
// until the loop exits.
func (v *Vec[T]) Iter() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		v.guard()
		v.readers++
		defer func() { v.readers-- }()
		for i := 0; i < v.n; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over just the elements, in index order.
// It read-borrows the vector for the duration of the loop, like Iter.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		v.guard()
		v.readers++
		defer func() { v.readers-- }()
		for i := 0; i < v.n; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// Refs returns an iterator over pointers to the live elements, for
// in-place mutation. It is an exclusive view: the vector is locked for
// the duration of the loop, and the yielded pointer must not be used
// after the loop advances.
func (v *Vec[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		v.acquire("mutable iteration")
		defer v.release()
		for i := 0; i < v.n; i++ {
			if !yield(&v.buf[i]) {
				return
			}
		}
	}
}

// Consume returns an iterator that moves the elements out of the
// vector, in index order. When the loop exits, including on an early
// break, the vector is left empty; elements the loop never reached are
// discarded lazily. The vector is locked for the duration of the loop.
func (v *Vec[T]) Consume() iter.Seq[T] {
	return func(yield func(T) bool) {
		v.acquire("consuming iteration")
		defer func() {
			v.n = 0
			v.release()
		}()
		for i := 0; i < v.n; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}
