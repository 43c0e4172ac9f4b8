package otpkey

import (
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestFirstTriple(t *testing.T) {
	c, ok := FirstTriple([]byte("aabbbccccd"))
	require.True(t, ok)
	require.Equal(t, byte('b'), c)

	c, ok = FirstTriple([]byte("777"))
	require.True(t, ok)
	require.Equal(t, byte('7'), c)

	_, ok = FirstTriple([]byte("aabbccdd"))
	require.False(t, ok)
	_, ok = FirstTriple([]byte("aa"))
	require.False(t, ok)
	_, ok = FirstTriple(nil)
	require.False(t, ok)

	d := Compute([]byte("abc18"))
	c, ok = FirstTriple(d[:])
	require.True(t, ok)
	require.Equal(t, byte('8'), c)
}

func TestHasQuintuple(t *testing.T) {
	require.True(t, HasQuintuple([]byte("ccccc"), 'c'))
	require.False(t, HasQuintuple([]byte("ccccd"), 'c'))
	require.True(t, HasQuintuple([]byte("xcccccccx"), 'c'))
	require.True(t, HasQuintuple([]byte("cccc0ccccc"), 'c'))
	require.False(t, HasQuintuple([]byte("cccc0cccc"), 'c'))
	require.False(t, HasQuintuple([]byte("ddddd"), 'c'))
	require.False(t, HasQuintuple(nil, 'c'))
}

// digests builds a lookup over [0, n) where every digest is filler except the given overrides.
func digests(n int, overrides map[int]string) lookup {
	filler := digestOf(strings.Repeat("0123456789abcdef", 2))
	return func(index int) (*Digest, bool) {
		if index < 0 || index >= n {
			return nil, false
		}
		if s, ok := overrides[index]; ok {
			d := digestOf(s)
			return &d, true
		}
		return &filler, true
	}
}

func digestOf(s string) (d Digest) {
	copy(d[:], s)
	return d
}

func TestConfirmsLookaheadBoundary(t *testing.T) {
	const depth = 1000
	five := "0123456789aaaaa0123456789abcdef0"

	at := digests(5000, map[int]string{1000 + depth: five})
	confirmed, complete := confirms(at, 1000, 'a', depth)
	require.True(t, complete)
	require.True(t, confirmed, "a quintuple at i+1000 confirms")

	at = digests(5000, map[int]string{1000 + depth + 1: five})
	confirmed, complete = confirms(at, 1000, 'a', depth)
	require.True(t, complete)
	require.False(t, confirmed, "a quintuple at i+1001 must not confirm")

	at = digests(5000, map[int]string{1001: five})
	confirmed, _ = confirms(at, 1000, 'a', depth)
	require.True(t, confirmed, "a quintuple at i+1 confirms")

	at = digests(5000, map[int]string{1000: five})
	confirmed, _ = confirms(at, 1000, 'a', depth)
	require.False(t, confirmed, "the triple's own index never confirms it")

	confirmed, _ = confirms(digests(5000, map[int]string{1500: five}), 1000, 'b', depth)
	require.False(t, confirmed, "the quintuple must repeat the triple's character")
}

func TestConfirmsIncomplete(t *testing.T) {
	five := "bbbbb" + strings.Repeat("0", 27)

	confirmed, complete := confirms(digests(1500, nil), 1000, 'b', 1000)
	require.False(t, complete)
	require.False(t, confirmed)

	/* A match found before the missing range is still a confirmation. */
	confirmed, complete = confirms(digests(1500, map[int]string{1200: five}), 1000, 'b', 1000)
	require.True(t, complete)
	require.True(t, confirmed)
}
