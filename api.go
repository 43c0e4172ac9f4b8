package otpkey

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// This file contains the public entry points of the key search: a Searcher bound to a set of
// options, and FindKeyIndex for one-off calls.

// Searcher finds the index of the n-th confirmed key for a salt. A key is an index whose digest
// holds a triple of some character that the digest of one of the following lookahead indices
// repeats five times in a row. Searchers keep no state between calls and may be used from several
// goroutines at once.
type Searcher struct {
	opts   options
	engine *Engine
	log    Logger
}

func New(opts ...Option) (*Searcher, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	engine, err := NewEngine(o.algorithm)
	if err != nil {
		return nil, err
	}
	return &Searcher{opts: o, engine: engine, log: o.logger}, nil
}

// FindKeyIndex returns the index of the 64th key for salt, stretching every digest by 2016
// rehashes when stretched is set. Options override those defaults.
func FindKeyIndex(salt []byte, stretched bool, opts ...Option) (int, error) {
	s, err := New(opts...)
	if err != nil {
		return 0, err
	}
	return s.Find(salt, stretched)
}

// Find runs the configured strategy. Both strategies return the same index for the same input.
func (s *Searcher) Find(salt []byte, stretched bool) (int, error) {
	switch s.opts.strategy {
	case StrategySequential:
		return s.Sequential(salt, stretched)
	case StrategyParallel:
		return s.Parallel(salt, stretched)
	}
	if stretched {
		return s.Parallel(salt, stretched)
	}
	return s.Sequential(salt, stretched)
}

func (s *Searcher) repetitions(stretched bool) int {
	if stretched {
		return s.opts.stretchRounds
	}
	return 0
}
