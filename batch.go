package otpkey

import "errors"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Parallel computes a batch of digests for the indices [0, size) across the configured workers and
// then scans it from index 0. When the batch ends before the last key is confirmed, the batch is
// doubled (keeping the digests already computed) until the key is found or the maximum batch size
// has been tried, in which case a *BatchTooSmallError is returned.
func (s *Searcher) Parallel(salt []byte, stretched bool) (int, error) {
	in, err := NewInput(salt)
	if err != nil {
		return 0, err
	}
	repetitions := s.repetitions(stretched)

	var batch []Digest
	for size := s.opts.batchSize; ; {
		grown := make([]Digest, size)
		copy(grown, batch)
		err = s.engine.fill(grown[len(batch):], len(batch), in, repetitions, s.opts.workers)
		if err != nil {
			return 0, err
		}
		batch = grown

		/* The batch is read-only from here on. */
		index, scanErr := s.scan(batch)
		var small *BatchTooSmallError
		if !errors.As(scanErr, &small) {
			return index, scanErr
		}
		if size >= s.opts.maxBatchSize {
			s.log.Error("batch of %d digests exhausted with %d of %d keys", size, small.Found, small.Needed)
			return 0, scanErr
		}
		if size <<= 1; size > s.opts.maxBatchSize {
			size = s.opts.maxBatchSize
		}
		s.log.Info("batch of %d digests confirmed %d of %d keys; growing to %d",
			len(batch), small.Found, small.Needed, size)
	}
}

// scan applies the key rule to a fully materialized batch.
func (s *Searcher) scan(batch []Digest) (int, error) {
	at := func(index int) (*Digest, bool) {
		if index >= len(batch) {
			return nil, false
		}
		return &batch[index], true
	}

	found := 0
	for i := range batch {
		c, ok := FirstTriple(batch[i][:])
		if !ok {
			continue
		}
		confirmed, complete := confirms(at, i, c, s.opts.lookahead)
		if !complete {
			break
		}
		if confirmed {
			found++
			s.log.Debug("key %d at index %d (%c)", found, i, c)
			if found == s.opts.keys {
				return i, nil
			}
		}
	}
	return 0, &BatchTooSmallError{Size: len(batch), Found: found, Needed: s.opts.keys}
}
