package otpkey

import "fmt"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const (
	rawSize = 16
	// Size is the length of a Digest in hexadecimal characters.
	Size     = rawSize * 2
	hexTable = "0123456789abcdef"
)

// Digest is the lowercase hexadecimal rendering of a 16-byte hash.
type Digest [Size]byte

func (d Digest) String() string { return string(d[:]) }

// Raw decodes d back into the hash bytes it was rendered from.
func (d Digest) Raw() (raw [rawSize]byte) {
	for i := range raw {
		raw[i] = unhex(d[i<<1])<<4 | unhex(d[i<<1+1])
	}
	return raw
}

func unhex(c byte) byte {
	if c >= 'a' {
		return c - 'a' + 10
	}
	return c - '0'
}

// Engine derives digests with one Algorithm. It holds no mutable state and may be shared between
// goroutines.
type Engine struct {
	alg Algorithm
	sum sumFunc
}

func NewEngine(alg Algorithm) (*Engine, error) {
	sum := alg.sum()
	if sum == nil {
		return nil, fmt.Errorf("%w: unknown algorithm %d", ErrInvalidInput, uint8(alg))
	}
	return &Engine{alg: alg, sum: sum}, nil
}

func (e *Engine) Algorithm() Algorithm { return e.alg }

// Compute hashes input once and writes the hex rendering into dst.
func (e *Engine) Compute(dst *Digest, input []byte) {
	encode(dst, e.sum(input))
}

// Stretch computes the digest of input and then rehashes the hex text of that digest repetitions
// more times. Stretch with 0 repetitions is Compute.
func (e *Engine) Stretch(dst *Digest, input []byte, repetitions int) {
	encode(dst, e.sum(input))
	for ; repetitions > 0; repetitions-- {
		encode(dst, e.sum(dst[:]))
	}
}

// derive writes the digest of salt++decimal(index) into dst.
func (e *Engine) derive(dst *Digest, in *Input, index, repetitions int) error {
	msg, err := in.Build(index)
	if err != nil {
		return err
	}
	e.Stretch(dst, msg, repetitions)
	return nil
}

func encode(dst *Digest, raw [rawSize]byte) {
	for i, b := range raw {
		dst[i<<1] = hexTable[b>>4]
		dst[i<<1+1] = hexTable[b&0x0f]
	}
}

var reference = &Engine{alg: MD5, sum: MD5.sum()}

// Compute returns the MD5 digest of input.
func Compute(input []byte) (d Digest) {
	reference.Compute(&d, input)
	return d
}

// Stretch returns the MD5 digest of input stretched by repetitions rehashes.
func Stretch(input []byte, repetitions int) (d Digest) {
	reference.Stretch(&d, input, repetitions)
	return d
}
