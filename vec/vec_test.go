package vec_test

import (
	"fmt"
	"testing"

	"github.com/plus3/fixcap/vec"
	"github.com/stretchr/testify/assert"
)

func TestNewQueries(t *testing.T) {
	v := vec.New[int](4)

	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 4, v.Cap())
	assert.Equal(t, 4, v.Remaining())
	assert.True(t, v.IsEmpty())
	assert.False(t, v.IsFull())
}

func TestNewNegativeCapacityPanics(t *testing.T) {
	assert.Panics(t, func() { vec.New[int](-1) })
}

func TestNewZeroCapacity(t *testing.T) {
	v := vec.New[int](0)

	assert.True(t, v.IsEmpty())
	assert.True(t, v.IsFull())

	err := v.Push(1)
	var capErr *vec.CapacityError
	assert.ErrorAs(t, err, &capErr)
}

func TestPushOrder(t *testing.T) {
	v := vec.New[int](8)
	for i := 1; i <= 5; i++ {
		assert.NoError(t, v.Push(i))
		assert.Equal(t, i, v.Len())
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5}, v.Slice())
	assert.Equal(t, 3, v.Remaining())
}

func TestPushAtCapacity(t *testing.T) {
	v := vec.New[int](3)
	assert.NoError(t, v.Append(10, 20, 30))
	assert.True(t, v.IsFull())

	err := v.Push(40)

	var capErr *vec.CapacityError
	assert.ErrorAs(t, err, &capErr)
	assert.Equal(t, 3, capErr.Cap)
	assert.Equal(t, 4, capErr.Need)

	// Failed push leaves the vector untouched
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []int{10, 20, 30}, v.Slice())
}

func TestPushPopIdentity(t *testing.T) {
	v := vec.New[string](2)
	assert.NoError(t, v.Push("a"))

	before := v.Len()
	assert.NoError(t, v.Push("b"))
	got, ok := v.Pop()

	assert.True(t, ok)
	assert.Equal(t, "b", got)
	assert.Equal(t, before, v.Len())
}

func TestPopEmpty(t *testing.T) {
	v := vec.New[int](4)

	got, ok := v.Pop()

	assert.False(t, ok)
	assert.Zero(t, got)
}

func TestMustPushPanicsWhenFull(t *testing.T) {
	v := vec.New[int](1)
	v.MustPush(1)

	assert.Panics(t, func() { v.MustPush(2) })
}

func TestPushUnchecked(t *testing.T) {
	v := vec.New[int](4)
	for i := 0; i < v.Cap(); i++ {
		v.PushUnchecked(i)
	}

	assert.Equal(t, []int{0, 1, 2, 3}, v.Slice())
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name  string
		start []int
		index int
		value int
		want  []int
	}{
		{"front", []int{2, 3}, 0, 1, []int{1, 2, 3}},
		{"middle", []int{1, 3}, 1, 2, []int{1, 2, 3}},
		{"end behaves as push", []int{1, 2}, 2, 3, []int{1, 2, 3}},
		{"empty vector", nil, 0, 1, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := vec.FromSlice(8, tt.start)
			assert.NoError(t, err)

			assert.NoError(t, v.Insert(tt.index, tt.value))
			assert.Equal(t, tt.want, v.Slice())
		})
	}
}

func TestInsertOutOfRange(t *testing.T) {
	v, _ := vec.FromSlice(8, []int{1, 2})

	assert.ErrorIs(t, v.Insert(3, 9), vec.ErrOutOfRange)
	assert.ErrorIs(t, v.Insert(-1, 9), vec.ErrOutOfRange)
	assert.Equal(t, []int{1, 2}, v.Slice())
}

func TestInsertFull(t *testing.T) {
	v, _ := vec.FromSlice(2, []int{1, 2})

	var capErr *vec.CapacityError
	assert.ErrorAs(t, v.Insert(1, 9), &capErr)

	// The range check runs first: an out-of-range index on a full
	// vector reports the more specific misuse.
	assert.ErrorIs(t, v.Insert(5, 9), vec.ErrOutOfRange)
}

func TestMustInsert(t *testing.T) {
	v, _ := vec.FromSlice(4, []int{1, 3})

	v.MustInsert(1, 2)
	assert.Equal(t, []int{1, 2, 3}, v.Slice())

	assert.Panics(t, func() { v.MustInsert(9, 4) })

	v.MustInsert(3, 4)
	assert.True(t, v.IsFull())
	assert.Panics(t, func() { v.MustInsert(0, 5) })
}

func TestPopAt(t *testing.T) {
	v, _ := vec.FromSlice(8, []int{0, 1, 2, 3, 4})

	got, ok := v.PopAt(1)

	assert.True(t, ok)
	assert.Equal(t, 1, got)
	assert.Equal(t, []int{0, 2, 3, 4}, v.Slice())

	_, ok = v.PopAt(4)
	assert.False(t, ok)
	_, ok = v.PopAt(-1)
	assert.False(t, ok)
}

func TestRemovePanicsOutOfRange(t *testing.T) {
	v, _ := vec.FromSlice(4, []int{1})

	assert.Equal(t, 1, v.Remove(0))
	assert.Panics(t, func() { v.Remove(0) })
}

func TestSwapPop(t *testing.T) {
	v, _ := vec.FromSlice(8, []int{10, 20, 30, 40})

	got, ok := v.SwapPop(1)

	assert.True(t, ok)
	assert.Equal(t, 20, got)
	// The previously-last element now occupies the vacated slot
	assert.Equal(t, []int{10, 40, 30}, v.Slice())

	// Swap-popping the last element is a plain pop
	got, ok = v.SwapPop(2)
	assert.True(t, ok)
	assert.Equal(t, 30, got)
	assert.Equal(t, []int{10, 40}, v.Slice())

	_, ok = v.SwapPop(5)
	assert.False(t, ok)
}

func TestSwapRemovePanicsOutOfRange(t *testing.T) {
	v := vec.New[int](2)

	assert.Panics(t, func() { v.SwapRemove(0) })
}

func TestTruncate(t *testing.T) {
	v, _ := vec.FromSlice(8, []int{1, 2, 3, 4, 5})

	v.Truncate(2)
	assert.Equal(t, []int{1, 2}, v.Slice())

	// Truncating above the length is a no-op
	v.Truncate(7)
	assert.Equal(t, 2, v.Len())

	v.Truncate(-3)
	assert.Equal(t, 0, v.Len())
}

func TestTruncateFuncAscendingOrder(t *testing.T) {
	v, _ := vec.FromSlice(8, []int{1, 2, 3, 4, 5})

	var released []int
	v.TruncateFunc(2, func(x int) { released = append(released, x) })

	assert.Equal(t, []int{3, 4, 5}, released)
	assert.Equal(t, []int{1, 2}, v.Slice())

	// Nothing dropped, nothing released
	released = nil
	v.TruncateFunc(5, func(x int) { released = append(released, x) })
	assert.Empty(t, released)
	assert.Equal(t, 2, v.Len())
}

func TestClearFunc(t *testing.T) {
	v, _ := vec.FromSlice(4, []string{"a", "b"})

	var released []string
	v.ClearFunc(func(s string) { released = append(released, s) })

	assert.Equal(t, []string{"a", "b"}, released)
	assert.True(t, v.IsEmpty())
}

func TestRetain(t *testing.T) {
	tests := []struct {
		name  string
		start []int
		keep  func(int) bool
		want  []int
	}{
		{"keep greater than five", []int{1, 2, 3, 4, 5, 6}, func(x int) bool { return x > 5 }, []int{6}},
		{"keep even, order preserved", []int{1, 2, 3, 4, 5, 6}, func(x int) bool { return x%2 == 0 }, []int{2, 4, 6}},
		{"keep all", []int{1, 2, 3}, func(int) bool { return true }, []int{1, 2, 3}},
		{"keep none", []int{1, 2, 3}, func(int) bool { return false }, nil},
		{"empty vector", nil, func(int) bool { return true }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := vec.FromSlice(8, tt.start)
			assert.NoError(t, err)

			v.Retain(tt.keep)

			assert.Equal(t, len(tt.want), v.Len())
			if len(tt.want) > 0 {
				assert.Equal(t, tt.want, v.Slice())
			}
		})
	}
}

func TestAppendAllOrNothing(t *testing.T) {
	v, _ := vec.FromSlice(4, []int{1, 2})

	err := v.Append(3, 4, 5)

	var capErr *vec.CapacityError
	assert.ErrorAs(t, err, &capErr)
	assert.Equal(t, 5, capErr.Need)
	// Bit-for-bit identical to before the call
	assert.Equal(t, []int{1, 2}, v.Slice())

	assert.NoError(t, v.Append(3, 4))
	assert.Equal(t, []int{1, 2, 3, 4}, v.Slice())
}

func TestAppendNothing(t *testing.T) {
	v := vec.New[int](0)
	assert.NoError(t, v.Append())
}

func TestGetSet(t *testing.T) {
	v, _ := vec.FromSlice(4, []int{10, 20})

	got, ok := v.Get(1)
	assert.True(t, ok)
	assert.Equal(t, 20, got)

	_, ok = v.Get(2)
	assert.False(t, ok)

	assert.True(t, v.Set(0, 11))
	assert.False(t, v.Set(2, 99))
	assert.Equal(t, []int{11, 20}, v.Slice())
}

func TestSliceSharesStorage(t *testing.T) {
	v, _ := vec.FromSlice(4, []int{1, 2, 3})

	s := v.Slice()
	s[1] = 9

	got, _ := v.Get(1)
	assert.Equal(t, 9, got)
}

func TestSetLenLazySlots(t *testing.T) {
	v, _ := vec.FromSlice(8, []int{1, 2, 3})

	// Removal is lazy, so cutting the length and restoring it brings
	// the old values back unchanged.
	v.SetLen(1)
	assert.Equal(t, []int{1}, v.Slice())

	v.SetLen(3)
	assert.Equal(t, []int{1, 2, 3}, v.Slice())
}

func TestFromSliceRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 4, 8} {
		t.Run(fmt.Sprintf("len-%d", n), func(t *testing.T) {
			src := make([]int, n)
			for i := range src {
				src[i] = i * i
			}

			v, err := vec.FromSlice(8, src)
			assert.NoError(t, err)
			assert.Equal(t, n, v.Len())
			if n > 0 {
				assert.Equal(t, src, v.Slice())
			}
		})
	}
}

func TestFromSliceOverCapacity(t *testing.T) {
	v, err := vec.FromSlice(2, []int{1, 2, 3})

	var capErr *vec.CapacityError
	assert.ErrorAs(t, err, &capErr)
	assert.Nil(t, v)
}

func TestFromSliceCopies(t *testing.T) {
	src := []int{1, 2}
	v, _ := vec.FromSlice(4, src)

	src[0] = 9

	got, _ := v.Get(0)
	assert.Equal(t, 1, got)
}

func TestWrap(t *testing.T) {
	storage := make([]int, 3, 8)
	storage[0], storage[1], storage[2] = 1, 2, 3

	v := vec.Wrap(storage)

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 8, v.Cap())
	assert.Equal(t, []int{1, 2, 3}, v.Slice())

	assert.NoError(t, v.Push(4))
	assert.Equal(t, 4, v.Len())
}

func TestWrapStackArray(t *testing.T) {
	var storage [4]int

	v := vec.Wrap(storage[:0])
	assert.NoError(t, v.Append(1, 2, 3, 4))

	assert.True(t, v.IsFull())
	var capErr *vec.CapacityError
	assert.ErrorAs(t, v.Push(5), &capErr)
}

func TestClone(t *testing.T) {
	v, _ := vec.FromSlice(4, []int{1, 2})

	c := v.Clone()
	c.MustPush(3)
	assert.True(t, c.Set(0, 9))

	assert.Equal(t, []int{1, 2}, v.Slice())
	assert.Equal(t, []int{9, 2, 3}, c.Slice())
	assert.Equal(t, v.Cap(), c.Cap())
}
