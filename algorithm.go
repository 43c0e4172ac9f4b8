package otpkey

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
	"strings"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Algorithm selects the hash function behind an Engine. MD5 is the reference; the others exist
// for benchmarking and for salts searched under a different scheme. Every algorithm yields 16 raw
// bytes, so digests always render as 32 hexadecimal characters.
type Algorithm uint8

const (
	MD5 Algorithm = iota
	SHA256
	BLAKE3
	XXH3
	numAlgorithms
)

var algorithmNames = [numAlgorithms]string{"md5", "sha256", "blake3", "xxh3"}

// Algorithms lists every supported algorithm in declaration order.
func Algorithms() []Algorithm {
	algs := make([]Algorithm, numAlgorithms)
	for i := range algs {
		algs[i] = Algorithm(i)
	}
	return algs
}

func (a Algorithm) String() string {
	if a >= numAlgorithms {
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
	return algorithmNames[a]
}

// ParseAlgorithm accepts the names printed by Algorithm.String, ignoring case.
func ParseAlgorithm(name string) (Algorithm, error) {
	for i, v := range algorithmNames {
		if strings.EqualFold(name, v) {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidInput, name)
}

type sumFunc func([]byte) [rawSize]byte

func (a Algorithm) sum() sumFunc {
	switch a {
	case MD5:
		return md5.Sum
	case SHA256:
		return sumSHA256
	case BLAKE3:
		return sumBLAKE3
	case XXH3:
		return sumXXH3
	}
	return nil
}

/* Wider digests are truncated to their leading 16 bytes. */

func sumSHA256(b []byte) (raw [rawSize]byte) {
	full := sha256.Sum256(b)
	copy(raw[:], full[:rawSize])
	return raw
}

func sumBLAKE3(b []byte) (raw [rawSize]byte) {
	full := blake3.Sum256(b)
	copy(raw[:], full[:rawSize])
	return raw
}

func sumXXH3(b []byte) (raw [rawSize]byte) {
	h := xxh3.Hash128(b)
	binary.BigEndian.PutUint64(raw[:8], h.Hi)
	binary.BigEndian.PutUint64(raw[8:], h.Lo)
	return raw
}
