package otpkey

import "fmt"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// MaxIndexDigits is the decimal width reserved after the salt; indices from 10^MaxIndexDigits up
// are rejected with ErrCapacityExceeded.
const MaxIndexDigits = 10

// Input is a reusable scratch buffer holding a salt followed by room for a decimal index. It is not
// safe for concurrent use; each worker builds from its own copy.
type Input struct {
	buf  []byte
	salt int /* length of the salt prefix */
}

func NewInput(salt []byte) (*Input, error) {
	if err := checkSalt(salt); err != nil {
		return nil, err
	}
	buf := make([]byte, len(salt)+MaxIndexDigits)
	copy(buf, salt)
	return &Input{buf: buf, salt: len(salt)}, nil
}

func checkSalt(salt []byte) error {
	if len(salt) == 0 {
		return fmt.Errorf("%w: empty salt", ErrInvalidInput)
	}
	for i, c := range salt {
		if c < ' ' || c > '~' {
			return fmt.Errorf("%w: salt byte %#02x at offset %d is not printable ASCII", ErrInvalidInput, c, i)
		}
	}
	return nil
}

// Build writes the minimal decimal form of index after the salt and returns salt++digits. The
// returned slice aliases the scratch buffer and is only valid until the next call.
func (in *Input) Build(index int) ([]byte, error) {
	if index < 0 {
		return nil, fmt.Errorf("%w: negative index %d", ErrInvalidInput, index)
	}
	width := 1
	for n := index; n >= 10; n /= 10 {
		width++
	}
	if width > len(in.buf)-in.salt {
		return nil, fmt.Errorf("%w: index %d needs %d digits, %d reserved",
			ErrCapacityExceeded, index, width, len(in.buf)-in.salt)
	}

	end := in.salt + width
	for pos, n := end-1, index; pos >= in.salt; pos-- {
		in.buf[pos] = '0' + byte(n%10)
		n /= 10
	}
	return in.buf[:end], nil
}

// clone returns an Input with the same salt and its own scratch space.
func (in *Input) clone() *Input {
	buf := make([]byte, len(in.buf))
	copy(buf, in.buf[:in.salt])
	return &Input{buf: buf, salt: in.salt}
}
