package otpkey

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// FirstTriple returns the character of the leftmost run of three equal characters in d. Only that
// first run counts, even when a later run of another character is longer.
func FirstTriple(d []byte) (byte, bool) {
	for i := 0; i+2 < len(d); i++ {
		if d[i] == d[i+1] && d[i] == d[i+2] {
			return d[i], true
		}
	}
	return 0, false
}

// HasQuintuple reports whether d holds c in five consecutive positions.
func HasQuintuple(d []byte, c byte) bool {
	run := 0
	for _, v := range d {
		if v != c {
			run = 0
			continue
		}
		if run++; run == 5 {
			return true
		}
	}
	return false
}

// lookup returns the digest for index, or false when it is not materialized.
type lookup func(index int) (*Digest, bool)

// confirms reports whether a triple of c at index i is backed by a quintuple of c somewhere in
// (i, i+depth]. complete is false when a digest in that range was unavailable before any match
// was seen, in which case confirmed is meaningless.
func confirms(at lookup, i int, c byte, depth int) (confirmed, complete bool) {
	for j := i + 1; j <= i+depth; j++ {
		d, ok := at(j)
		if !ok {
			return false, false
		}
		if HasQuintuple(d[:], c) {
			return true, true
		}
	}
	return false, true
}
