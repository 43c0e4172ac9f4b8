package otpkey

import "fmt"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Window is a fixed-capacity ring of digests covering the contiguous indices [Base, End). Index i
// lives in slot i mod Cap; advancing computes End into the slot of Base and moves Base forward.
type Window struct {
	ring        []Digest
	base        int
	filled      bool
	input       *Input
	engine      *Engine
	repetitions int
}

func NewWindow(capacity int, input *Input, engine *Engine, repetitions int) (*Window, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: window capacity %d", ErrInvalidInput, capacity)
	}
	return &Window{
		ring:        make([]Digest, capacity),
		input:       input,
		engine:      engine,
		repetitions: repetitions,
	}, nil
}

func (w *Window) Cap() int  { return len(w.ring) }
func (w *Window) Base() int { return w.base }
func (w *Window) End() int  { return w.base + len(w.ring) }

// Fill computes every slot for the indices [start, start+Cap), splitting the work across up to
// workers goroutines.
func (w *Window) Fill(start, workers int) error {
	if start < 0 {
		return fmt.Errorf("%w: negative window start %d", ErrInvalidInput, start)
	}
	/* The ring wraps at start mod Cap, leaving two runs of contiguous slots. */
	off := start % len(w.ring)
	head := len(w.ring) - off
	if err := w.engine.fill(w.ring[off:], start, w.input, w.repetitions, workers); err != nil {
		return err
	}
	if err := w.engine.fill(w.ring[:off], start+head, w.input, w.repetitions, workers); err != nil {
		return err
	}
	w.base, w.filled = start, true
	return nil
}

// At returns the digest for index if it is inside the window.
func (w *Window) At(index int) (*Digest, bool) {
	if !w.filled || index < w.base || index >= w.End() {
		return nil, false
	}
	return &w.ring[index%len(w.ring)], true
}

// Advance evicts Base and computes the digest for the old End in its place.
func (w *Window) Advance() error {
	if !w.filled {
		return fmt.Errorf("otpkey: advancing a window that was never filled")
	}
	slot := &w.ring[w.base%len(w.ring)]
	if err := w.engine.derive(slot, w.input, w.End(), w.repetitions); err != nil {
		return err
	}
	w.base++
	return nil
}
