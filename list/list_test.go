package list

import (
	"reflect"
	"testing"

	"github.com/joshuapare/libx/arena"
	"github.com/joshuapare/libx/internal/testutil"
	"github.com/joshuapare/libx/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int32
}

// TestList_ThirdAppendDropped tests the three-append scenario under every
// policy: length never exceeds capacity.
func TestList_ThirdAppendDropped(t *testing.T) {
	tests := []struct {
		policy  Policy
		wantErr bool
		want    []int32
	}{
		{DropNewest, false, []int32{10, 20}},
		{Reject, true, []int32{10, 20}},
		{ReplaceOldest, false, []int32{20, 30}},
	}
	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			l := New[int32](2, WithPolicy(tt.policy))
			assert.Equal(t, 4, l.ElemSize())
			require.NoError(t, l.Append(10))
			require.NoError(t, l.Append(20))

			err := l.Append(30)
			if tt.wantErr {
				assert.ErrorIs(t, err, status.ErrCapacityExceeded)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, 2, l.Len())
			assert.Equal(t, 2, l.Cap())
			assert.True(t, l.Full())
			assert.Equal(t, tt.want, l.Items())
		})
	}
}

func TestList_DefaultPolicy(t *testing.T) {
	l := New[byte](1)
	assert.Equal(t, Reject, l.Policy())
	require.NoError(t, l.Append('a'))
	assert.ErrorIs(t, l.Append('b'), status.ErrCapacityExceeded)
}

func TestList_Pop(t *testing.T) {
	l := New[point](3)
	require.NoError(t, l.Append(point{1, 2}))
	require.NoError(t, l.Append(point{3, 4}))

	p, ok := l.Pop()
	require.True(t, ok)
	assert.Equal(t, point{3, 4}, *p)
	assert.Equal(t, 1, l.Len())

	p, ok = l.Pop()
	require.True(t, ok)
	assert.Equal(t, point{1, 2}, *p)

	p, ok = l.Pop()
	assert.False(t, ok, "pop on empty list")
	assert.Nil(t, p)
	assert.Equal(t, 0, l.Len())
}

func TestList_PopSlotReusedByAppend(t *testing.T) {
	l := New[int](2)
	require.NoError(t, l.Append(1))
	p, _ := l.Pop()
	require.NoError(t, l.Append(2))
	assert.Equal(t, 2, *p, "popped slot is overwritten by the next append")
}

func TestList_At(t *testing.T) {
	l := New[int](4)
	for i := 0; i < 3; i++ {
		require.NoError(t, l.Append(i*10))
	}
	assert.Equal(t, 20, l.At(2))

	f := status.Catch(func() { l.At(3) })
	require.NotNil(t, f)
	assert.Equal(t, status.IndexOutOfRange, f.Code)

	f = status.Catch(func() { l.At(-1) })
	require.NotNil(t, f)
}

func TestList_Reset(t *testing.T) {
	l := New[int](2)
	_ = l.Append(1)
	_ = l.Append(2)
	l.Reset()
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 2, l.Cap())
	require.NoError(t, l.Append(3))
}

func TestList_Free(t *testing.T) {
	l := New[int](2)
	require.NoError(t, l.Append(1))
	require.NoError(t, l.Free())
	assert.Equal(t, status.Freed, l.Status())
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0, l.Cap())

	assert.ErrorIs(t, l.Free(), status.ErrDoubleFree)
	assert.ErrorIs(t, l.Append(2), status.ErrFreed)
	_, ok := l.Pop()
	assert.False(t, ok)
	assert.Nil(t, l.Items())

	f := status.Catch(func() { l.At(0) })
	require.NotNil(t, f)
	assert.Equal(t, status.Freed, f.Code)
}

func TestList_NegativeCapacity(t *testing.T) {
	l := New[int](-1)
	assert.Equal(t, status.InvalidArgument, l.Status())
	assert.ErrorIs(t, l.Append(1), status.ErrInvalidArgument)
}

func TestList_ZeroCapacity(t *testing.T) {
	for _, p := range []Policy{Reject, DropNewest, ReplaceOldest} {
		l := New[int](0, WithPolicy(p))
		err := l.Append(1)
		if p == Reject {
			assert.ErrorIs(t, err, status.ErrCapacityExceeded)
		} else {
			assert.NoError(t, err)
		}
		assert.Equal(t, 0, l.Len())
	}
}

func TestList_NewIn(t *testing.T) {
	a := arena.New(256)
	_, err := a.Alloc(3)
	require.NoError(t, err)

	l := NewIn[point](a, 4)
	require.NoError(t, l.Err())
	assert.Equal(t, 8, l.ElemSize())
	assert.GreaterOrEqual(t, a.Pos(), 3+4*8)

	require.NoError(t, l.Append(point{1, 1}))
	require.NoError(t, l.Append(point{2, 2}))
	assert.Equal(t, []point{{1, 1}, {2, 2}}, l.Items())

	empty := NewIn[int64](a, 0)
	require.NoError(t, empty.Err())
	assert.Equal(t, 0, empty.Cap())
}

func TestList_NewInTempArena(t *testing.T) {
	a := testutil.NewArena(t, 128)
	err := a.Scoped(64, func(tmp *arena.Arena) error {
		l := NewIn[uint16](tmp, 8, WithPolicy(DropNewest))
		for i := 0; i < 10; i++ {
			if err := l.Append(uint16(i)); err != nil {
				return err
			}
		}
		assert.Equal(t, 8, l.Len())
		return l.Err()
	})
	require.NoError(t, err)
	assert.Equal(t, 0, a.Pos())
}

func TestList_NewInFailures(t *testing.T) {
	assert.Equal(t, status.NullInput, NewIn[int](nil, 4).Status())

	a := arena.New(16)
	assert.Equal(t, status.InvalidArgument, NewIn[*int](a, 2).Status())
	assert.Equal(t, status.InvalidArgument, NewIn[string](a, 2).Status())
	assert.Equal(t, status.InvalidArgument, NewIn[struct{ p []byte }](a, 2).Status())
	assert.Equal(t, status.InvalidArgument, NewIn[int](a, -1).Status())
	assert.True(t, a.Ok(), "rejected types never touch the arena")

	big := NewIn[int64](a, 100)
	assert.Equal(t, status.OutOfMemory, big.Status())
	assert.ErrorIs(t, big.Append(1), status.ErrOutOfMemory)
}

func TestParsePolicy(t *testing.T) {
	for _, p := range []Policy{Reject, DropNewest, ReplaceOldest} {
		got, err := ParsePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := ParsePolicy("grow")
	assert.Error(t, err)
	assert.Equal(t, "Policy(9)", Policy(9).String())
}

func TestHasPointers(t *testing.T) {
	type flat struct {
		A [4]uint8
		B float64
		C struct{ D bool }
	}
	type nested struct {
		A [2]struct{ M map[int]int }
	}
	assert.False(t, hasPointers(reflect.TypeOf((*flat)(nil)).Elem()))
	assert.False(t, hasPointers(reflect.TypeOf((*[0]*int)(nil)).Elem()))
	assert.True(t, hasPointers(reflect.TypeOf((*nested)(nil)).Elem()))
	assert.True(t, hasPointers(reflect.TypeOf((*any)(nil)).Elem()))
	assert.True(t, hasPointers(reflect.TypeOf((*func())(nil)).Elem()))
}
