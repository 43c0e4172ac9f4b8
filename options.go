package otpkey

import (
	"fmt"
	"runtime"
	"strings"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const (
	DefaultKeyCount      = 64
	DefaultLookahead     = 1000
	DefaultStretchRounds = 2016
	DefaultBatchSize     = 25000
	DefaultMaxBatchSize  = 1 << 21
)

// Strategy picks how a Searcher materializes digests.
type Strategy uint8

const (
	// StrategyAuto searches unstretched salts sequentially and stretched salts in parallel.
	StrategyAuto Strategy = iota
	// StrategySequential slides a window one index at a time on the calling goroutine.
	StrategySequential
	// StrategyParallel computes a whole batch of digests across workers before scanning it.
	StrategyParallel
)

var strategyNames = [...]string{"auto", "sequential", "parallel"}

func (s Strategy) String() string {
	if int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
	return strategyNames[s]
}

func ParseStrategy(name string) (Strategy, error) {
	for i, v := range strategyNames {
		if strings.EqualFold(name, v) {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown strategy %q", ErrInvalidInput, name)
}

type options struct {
	strategy      Strategy
	algorithm     Algorithm
	workers       int
	batchSize     int
	maxBatchSize  int
	capacity      int /* 0 means lookahead+1 */
	keys          int
	lookahead     int
	stretchRounds int
	logger        Logger
}

type Option func(*options)

func defaultOptions() options {
	return options{
		workers:       runtime.NumCPU(),
		batchSize:     DefaultBatchSize,
		maxBatchSize:  DefaultMaxBatchSize,
		keys:          DefaultKeyCount,
		lookahead:     DefaultLookahead,
		stretchRounds: DefaultStretchRounds,
		logger:        DisabledLogger{},
	}
}

func WithStrategy(s Strategy) Option { return func(o *options) { o.strategy = s } }

func WithAlgorithm(a Algorithm) Option { return func(o *options) { o.algorithm = a } }

// WithWorkers sets the number of goroutines computing digests in parallel.
func WithWorkers(n int) Option { return func(o *options) { o.workers = n } }

// WithBatchSize sets the first batch size tried by the parallel strategy.
func WithBatchSize(n int) Option { return func(o *options) { o.batchSize = n } }

// WithMaxBatchSize caps how far the parallel strategy grows its batch after a batch turns out too
// small. A cap equal to the batch size disables retries.
func WithMaxBatchSize(n int) Option { return func(o *options) { o.maxBatchSize = n } }

// WithWindowCapacity sets the ring size of the sequential strategy; it must exceed the lookahead.
func WithWindowCapacity(n int) Option { return func(o *options) { o.capacity = n } }

// WithKeyCount sets which confirmed key ends the search.
func WithKeyCount(n int) Option { return func(o *options) { o.keys = n } }

// WithLookahead sets how many following indices may confirm a triple.
func WithLookahead(n int) Option { return func(o *options) { o.lookahead = n } }

// WithStretchRounds sets the extra rehashes applied to stretched digests.
func WithStretchRounds(n int) Option { return func(o *options) { o.stretchRounds = n } }

func WithLogger(l Logger) Option { return func(o *options) { o.logger = l } }

func (o *options) validate() error {
	if o.capacity == 0 {
		o.capacity = o.lookahead + 1
	}
	if o.logger == nil {
		o.logger = DisabledLogger{}
	}
	switch {
	case int(o.strategy) >= len(strategyNames):
		return fmt.Errorf("%w: unknown strategy %d", ErrInvalidInput, uint8(o.strategy))
	case o.algorithm >= numAlgorithms:
		return fmt.Errorf("%w: unknown algorithm %d", ErrInvalidInput, uint8(o.algorithm))
	case o.workers < 1:
		return fmt.Errorf("%w: %d workers", ErrInvalidInput, o.workers)
	case o.keys < 1:
		return fmt.Errorf("%w: key count %d", ErrInvalidInput, o.keys)
	case o.lookahead < 1:
		return fmt.Errorf("%w: lookahead %d", ErrInvalidInput, o.lookahead)
	case o.stretchRounds < 0:
		return fmt.Errorf("%w: %d stretch rounds", ErrInvalidInput, o.stretchRounds)
	case o.batchSize < 1:
		return fmt.Errorf("%w: batch size %d", ErrInvalidInput, o.batchSize)
	case o.maxBatchSize < o.batchSize:
		return fmt.Errorf("%w: max batch size %d below batch size %d", ErrInvalidInput, o.maxBatchSize, o.batchSize)
	case o.capacity <= o.lookahead:
		return fmt.Errorf("%w: window of %d cannot hold a lookahead of %d", ErrCapacityExceeded, o.capacity, o.lookahead)
	}
	return nil
}
