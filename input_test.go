package otpkey

import (
	"github.com/stretchr/testify/require"
	"strconv"
	"testing"
)

func TestInputBuild(t *testing.T) {
	in, err := NewInput([]byte("abc"))
	require.NoError(t, err)

	for _, tc := range []struct {
		index int
		want  string
	}{
		{0, "abc0"},
		{7, "abc7"},
		{10, "abc10"},
		{22728, "abc22728"},
		{9, "abc9"}, /* Shrinking back to one digit leaves no stale suffix. */
		{999999999, "abc999999999"},
		{1000000000, "abc1000000000"},
	} {
		got, err := in.Build(tc.index)
		require.NoError(t, err)
		require.Equal(t, tc.want, string(got))
	}
}

func TestInputBuildDoesNotAllocate(t *testing.T) {
	in, err := NewInput([]byte("qzyelonm"))
	require.NoError(t, err)
	index := 0
	allocs := testing.AllocsPerRun(1000, func() {
		_, _ = in.Build(index)
		index += 977
	})
	require.Zero(t, allocs)
}

func TestInputRejectsInvalidSalts(t *testing.T) {
	for _, salt := range []string{"", "ab\x80", "a\nb", "tab\t", "caf\xc3\xa9"} {
		_, err := NewInput([]byte(salt))
		require.ErrorIs(t, err, ErrInvalidInput, "%q", salt)
	}
	_, err := NewInput([]byte("a b~!"))
	require.NoError(t, err)
}

func TestInputCapacity(t *testing.T) {
	in, err := NewInput([]byte("abc"))
	require.NoError(t, err)

	_, err = in.Build(-1)
	require.ErrorIs(t, err, ErrInvalidInput)

	if strconv.IntSize == 32 {
		t.Skip("10^MaxIndexDigits does not fit in int")
	}
	limit := 1
	for i := 0; i < MaxIndexDigits; i++ {
		limit *= 10
	}
	got, err := in.Build(limit - 1)
	require.NoError(t, err)
	require.Equal(t, "abc9999999999", string(got))

	_, err = in.Build(limit)
	require.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestInputClone(t *testing.T) {
	in, err := NewInput([]byte("salt"))
	require.NoError(t, err)
	c := in.clone()

	a, err := in.Build(12)
	require.NoError(t, err)
	b, err := c.Build(345)
	require.NoError(t, err)
	require.Equal(t, "salt12", string(a))
	require.Equal(t, "salt345", string(b))
}
