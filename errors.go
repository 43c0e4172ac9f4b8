package otpkey

import (
	"errors"
	"fmt"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var (
	// ErrInvalidInput reports a salt that is empty or not printable ASCII, a negative index, or
	// an option outside its accepted range.
	ErrInvalidInput = errors.New("otpkey: invalid input")

	// ErrCapacityExceeded reports an index whose decimal form does not fit the scratch buffer
	// reserved after the salt, or a window too narrow for the lookahead it must serve.
	ErrCapacityExceeded = errors.New("otpkey: capacity exceeded")

	// ErrBatchTooSmall is matched by every *BatchTooSmallError.
	ErrBatchTooSmall = errors.New("otpkey: batch too small")
)

// BatchTooSmallError is returned by the parallel strategy when its batch of digests ends before
// the requested number of keys could be confirmed with their full lookahead.
type BatchTooSmallError struct {
	Size   int /* digests in the batch */
	Found  int /* keys confirmed before the batch ran out */
	Needed int
}

func (e *BatchTooSmallError) Error() string {
	return fmt.Sprintf("otpkey: batch of %d digests confirms only %d of %d keys", e.Size, e.Found, e.Needed)
}

func (e *BatchTooSmallError) Is(target error) bool { return target == ErrBatchTooSmall }
