package otpkey

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
	"testing"
)

func TestComputeReference(t *testing.T) {
	d := Compute([]byte("abc0"))
	require.Equal(t, "577571be4de9dcce85a041ba0410f29f", d.String())

	d = Compute([]byte("abc18"))
	require.Contains(t, d.String(), "cc38887a5")
}

func TestStretchKnownChain(t *testing.T) {
	for _, tc := range []struct {
		repetitions int
		want        string
	}{
		{0, "577571be4de9dcce85a041ba0410f29f"},
		{1, "eec80a0c92dc8a0777c619d9bb51e910"},
		{2, "16062ce768787384c81fe17a7a60c7e3"},
		{2016, "a107ff634856bb300138cac6568c0f24"},
	} {
		d := Stretch([]byte("abc0"), tc.repetitions)
		require.Equal(t, tc.want, d.String(), "repetitions=%d", tc.repetitions)
	}
}

func TestStretchMatchesManualChain(t *testing.T) {
	input := []byte("zyxwvu42")
	manual := md5.Sum(input)
	text := hex.EncodeToString(manual[:])
	for n := 1; n <= 3; n++ {
		manual = md5.Sum([]byte(text))
		text = hex.EncodeToString(manual[:])
		d := Stretch(input, n)
		require.Equal(t, text, d.String(), "n=%d", n)
	}
}

func TestStretchZeroIsCompute(t *testing.T) {
	for _, alg := range Algorithms() {
		e, err := NewEngine(alg)
		require.NoError(t, err)
		var a, b Digest
		e.Compute(&a, []byte("salt123"))
		e.Stretch(&b, []byte("salt123"), 0)
		require.Equal(t, a, b, alg.String())
	}
}

func TestEnginesAreDeterministicHex(t *testing.T) {
	for _, alg := range Algorithms() {
		e, err := NewEngine(alg)
		require.NoError(t, err)
		require.Equal(t, alg, e.Algorithm())

		var a, b Digest
		e.Stretch(&a, []byte("qzyelonm7"), 5)
		e.Stretch(&b, []byte("qzyelonm7"), 5)
		require.Equal(t, a, b, alg.String())
		for _, c := range a {
			require.Contains(t, hexTable, string(c), alg.String())
		}
		raw := a.Raw()
		require.Equal(t, a.String(), hex.EncodeToString(raw[:]), alg.String())
	}
}

func TestAlgorithmsMatchTheirLibraries(t *testing.T) {
	msg := []byte("ihaygndm")

	e, _ := NewEngine(BLAKE3)
	var d Digest
	e.Compute(&d, msg)
	full := blake3.Sum256(msg)
	require.Equal(t, hex.EncodeToString(full[:rawSize]), d.String())

	e, _ = NewEngine(XXH3)
	e.Compute(&d, msg)
	h := xxh3.Hash128(msg)
	require.Equal(t, fmt.Sprintf("%016x%016x", h.Hi, h.Lo), d.String())
}

func TestParseAlgorithm(t *testing.T) {
	for _, alg := range Algorithms() {
		got, err := ParseAlgorithm(alg.String())
		require.NoError(t, err)
		require.Equal(t, alg, got)
	}
	got, err := ParseAlgorithm("BLAKE3")
	require.NoError(t, err)
	require.Equal(t, BLAKE3, got)

	_, err = ParseAlgorithm("sha1")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewEngine(numAlgorithms)
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Equal(t, "Algorithm(4)", numAlgorithms.String())
}

func BenchmarkCompute(b *testing.B) {
	for _, alg := range Algorithms() {
		b.Run(alg.String(), func(b *testing.B) {
			e, _ := NewEngine(alg)
			msg, d := []byte("abc1234567"), Digest{}
			b.SetBytes(int64(len(msg)))
			b.ReportAllocs()
			b.ResetTimer()
			for i := b.N; i > 0; i-- {
				e.Compute(&d, msg)
			}
		})
	}
}

func BenchmarkStretch(b *testing.B) {
	for _, alg := range Algorithms() {
		b.Run(alg.String(), func(b *testing.B) {
			e, _ := NewEngine(alg)
			msg, d := []byte("abc1234567"), Digest{}
			b.ReportAllocs()
			b.ResetTimer()
			for i := b.N; i > 0; i-- {
				e.Stretch(&d, msg, DefaultStretchRounds)
			}
		})
	}
}
