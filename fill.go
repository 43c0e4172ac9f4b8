package otpkey

import "golang.org/x/sync/errgroup"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// fill writes the digest of index first+k into dst[k] for every k. dst is cut into contiguous
// sub-slices, one per worker; each worker owns its sub-slice and a private copy of in, so nothing
// is shared while the workers run. fill returns once every worker has finished.
func (e *Engine) fill(dst []Digest, first int, in *Input, repetitions, workers int) error {
	if len(dst) == 0 {
		return nil
	}
	if workers > len(dst) {
		workers = len(dst)
	}
	if workers <= 1 {
		return e.fillRange(dst, first, in, repetitions)
	}

	var group errgroup.Group
	chunk := (len(dst) + workers - 1) / workers
	for lo := 0; lo < len(dst); lo += chunk {
		hi := lo + chunk
		if hi > len(dst) {
			hi = len(dst)
		}
		part, start, scratch := dst[lo:hi], first+lo, in.clone()
		group.Go(func() error {
			return e.fillRange(part, start, scratch, repetitions)
		})
	}
	return group.Wait()
}

func (e *Engine) fillRange(dst []Digest, first int, in *Input, repetitions int) error {
	for k := range dst {
		if err := e.derive(&dst[k], in, first+k, repetitions); err != nil {
			return err
		}
	}
	return nil
}
