package main

import (
	. "fmt"
	"github.com/p7r0x7/otpkey"
	"github.com/p7r0x7/otpkey/saltgen"
	"math"
	"strconv"
	"time"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

/* A digest has 30 places a triple can start and 28 places a quintuple can start; over uniformly
random hex characters that puts the chance of any triple near 1-(255/256)^30 and the chance of a
quintuple of one given character near 28/16^5. */
var (
	wantTriple = 1 - math.Pow(255.0/256.0, 30)
	wantQuint  = 28 / math.Pow(16, 5)
)

// motifRates samples digests of random salts under every algorithm and compares how often triples
// and quintuples show up against the rates uniform output would give.
func motifRates(samples int) {
	Printf("Motif rates over %d digests   triple (%.4f)   quintuple/char (%.2e)\n", samples, wantTriple, wantQuint)
	for _, alg := range otpkey.Algorithms() {
		e, _ := otpkey.NewEngine(alg)
		gen, err := saltgen.New([32]byte{byte(alg)})
		if err != nil {
			panic(err)
		}
		salt, err := gen.Next(8)
		if err != nil {
			panic(err)
		}

		var triples, quints int
		var d otpkey.Digest
		msg := make([]byte, 0, len(salt)+otpkey.MaxIndexDigits)
		for i := 0; i < samples; i++ {
			msg = strconv.AppendInt(append(msg[:0], salt...), int64(i), 10)
			e.Compute(&d, msg)
			if _, ok := otpkey.FirstTriple(d[:]); ok {
				triples++
			}
			for _, c := range []byte("0123456789abcdef") {
				if otpkey.HasQuintuple(d[:], c) {
					quints++
				}
			}
		}
		Printf("%-7s                        %.4f            %.2e\n", alg,
			float64(triples)/float64(samples), float64(quints)/float64(samples)/16)
	}
}

// searchTimes runs the unstretched search for one random salt per algorithm with each strategy.
func searchTimes() {
	gen, err := saltgen.New([32]byte{0x14})
	if err != nil {
		panic(err)
	}
	salt, err := gen.Next(8)
	if err != nil {
		panic(err)
	}
	Printf("Key searches for %q\n", salt)
	for _, alg := range otpkey.Algorithms() {
		for _, strategy := range []otpkey.Strategy{otpkey.StrategySequential, otpkey.StrategyParallel} {
			t := time.Now()
			index, err := otpkey.FindKeyIndex(salt, false, otpkey.WithAlgorithm(alg), otpkey.WithStrategy(strategy))
			if err != nil {
				Printf("%-7s %-10s  %v\n", alg, strategy, err)
				continue
			}
			Printf("%-7s %-10s  %8d  %s\n", alg, strategy, index, time.Since(t).Truncate(time.Microsecond))
		}
	}
}
