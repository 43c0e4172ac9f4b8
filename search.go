package otpkey

import "fmt"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Sequential searches with a sliding window on the calling goroutine. The window always covers the
// current index and its full lookahead, so every digest is computed exactly once.
func (s *Searcher) Sequential(salt []byte, stretched bool) (int, error) {
	in, err := NewInput(salt)
	if err != nil {
		return 0, err
	}
	w, err := NewWindow(s.opts.capacity, in, s.engine, s.repetitions(stretched))
	if err != nil {
		return 0, err
	}
	if err = w.Fill(0, 1); err != nil {
		return 0, err
	}

	found := 0
	for current := 0; ; current++ {
		d, ok := w.At(current)
		if !ok {
			return 0, fmt.Errorf("otpkey: index %d fell out of window [%d, %d)", current, w.Base(), w.End())
		}
		if c, ok := FirstTriple(d[:]); ok {
			confirmed, complete := confirms(w.At, current, c, s.opts.lookahead)
			if !complete {
				return 0, fmt.Errorf("%w: window [%d, %d) cannot confirm index %d",
					ErrCapacityExceeded, w.Base(), w.End(), current)
			}
			if confirmed {
				found++
				s.log.Debug("key %d at index %d (%c)", found, current, c)
				if found == s.opts.keys {
					return current, nil
				}
			}
		}
		if err = w.Advance(); err != nil {
			return 0, err
		}
	}
}
