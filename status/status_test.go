package status

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{Ok, "no error"},
		{OutOfMemory, "out of memory"},
		{DoubleFree, "memory freed more than once"},
		{ReleasedOutOfOrder, "temporary arena released after parent allocation"},
		{FreedWhileNested, "temporary arena freed directly"},
		{ReadFailure, "failed to read from file"},
		{Code(200), "unknown error"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.code))
			assert.Equal(t, tt.want, tt.code.String())
		})
	}
}

func TestCode_ErrRoundTrip(t *testing.T) {
	require.NoError(t, Ok.Err())
	assert.Equal(t, Ok, Of(nil))

	for _, c := range Codes()[1:] {
		err := c.Err()
		require.Error(t, err, "code %d", c)
		assert.Equal(t, c, Of(err))

		wrapped := fmt.Errorf("context: %w", err)
		assert.True(t, errors.Is(wrapped, err))
		assert.Equal(t, c, Of(wrapped))
	}
}

func TestOf_UnknownError(t *testing.T) {
	assert.Equal(t, InvalidArgument, Of(errors.New("something else")))
}

func TestCodes_Distinct(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Codes() {
		d := Describe(c)
		assert.False(t, seen[d], "duplicate description %q", d)
		seen[d] = true
	}
	assert.Equal(t, Ok, Codes()[0])
}

func TestCatch_Fatal(t *testing.T) {
	f := Catch(func() {
		Panic(IndexOutOfRange, "str.CharAt", "pos %d >= len %d", 5, 3)
	})
	require.NotNil(t, f)
	assert.Equal(t, IndexOutOfRange, f.Code)
	assert.Equal(t, "str.CharAt", f.Op)
	assert.Contains(t, f.Error(), "pos 5 >= len 3")
	assert.ErrorIs(t, f, ErrIndexOutOfRange)
	assert.Equal(t, IndexOutOfRange, Of(f))
}

func TestCatch_NoPanic(t *testing.T) {
	assert.Nil(t, Catch(func() {}))
}

func TestCatch_RepanicsForeignValues(t *testing.T) {
	assert.PanicsWithValue(t, "boom", func() {
		Catch(func() { panic("boom") })
	})
}
