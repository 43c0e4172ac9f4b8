// Package saltgen produces reproducible streams of printable salts for tests and benchmarks.
package saltgen

import (
	"errors"
	"github.com/aead/chacha20/chacha"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Alphabet is the set of characters salts are drawn from, matching the lowercase salts handed out
// by the puzzle.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// Generator maps a ChaCha8 keystream onto Alphabet. The same seed always yields the same salts.
type Generator struct {
	stream *chacha.Cipher
	buf    []byte
}

func New(seed [32]byte) (*Generator, error) {
	stream, err := chacha.NewCipher(make([]byte, chacha.NonceSize), seed[:], 8)
	if err != nil {
		return nil, err
	}
	return &Generator{stream: stream}, nil
}

// Next returns a fresh salt of n characters.
func (g *Generator) Next(n int) ([]byte, error) {
	if n < 1 {
		return nil, errors.New("saltgen: salt length must be at least 1")
	}
	if cap(g.buf) < n {
		g.buf = make([]byte, n)
	}
	raw := g.buf[:n]
	for i := range raw {
		raw[i] = 0
	}
	g.stream.XORKeyStream(raw, raw)

	salt := make([]byte, n)
	for i, b := range raw {
		salt[i] = Alphabet[int(b)%len(Alphabet)]
	}
	return salt, nil
}
