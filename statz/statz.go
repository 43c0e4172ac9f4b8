package main

import (
	. "fmt"
	"github.com/dterei/gotsc"
	"github.com/p7r0x7/otpkey"
	. "github.com/spf13/pflag"
	"golang.org/x/sys/cpu"
	"runtime"
	"sync"
	"testing"
	"time"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var calltime = gotsc.TSCOverhead()
var engine, rounds = (*otpkey.Engine)(nil), 0
var pRounds, pSamples = uint(0), uint(0)
var pSearch bool

func BenchmarkDigest(b *testing.B) {
	msg, d := []byte("statz1234567"), otpkey.Digest{}
	b.ReportAllocs()
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		engine.Stretch(&d, msg, rounds)
	}
}

// benchAlg runs bench while sampling the TSC in the background to estimate the clock rate, from
// which cycles per digest follow.
func benchAlg(bench func(b *testing.B)) {
	totalHz, polls, mut, done := uint64(0), uint64(0), &sync.Mutex{}, make(chan struct{})
	if calltime > 0 {
		go func() {
			for {
				select {
				case <-done:
					return
				default:
				}
				tsc1 := gotsc.BenchStart()
				time.Sleep(time.Millisecond)
				tsc2 := gotsc.BenchEnd()

				mut.Lock()
				totalHz += tsc2 - tsc1 - calltime
				polls++
				mut.Unlock()

				time.Sleep(time.Millisecond * 9)
			}
		}()
	}
	r := testing.Benchmark(bench)
	close(done)
	mut.Lock()
	defer mut.Unlock()

	perSec := float64(r.N) / r.T.Seconds()
	Print(fmtFloats(float64(r.NsPerOp()), perSec), "  ", r.AllocsPerOp())
	if calltime > 0 && polls > 0 {
		Print(fmtFloats(float64(totalHz*1000) / float64(polls) / perSec))
	}
	Println()
}

func fmtFloats(f ...float64) string {
	var str, style string
	for _, v := range f {
		switch whole := float64(int64(v)) == v; {
		case v > 1e8 || (v < 1e-6 && !whole):
			style = "%10.3g"
		case v <= 1e1 && !whole:
			style = "%10.6f"
		case v <= 1e2 && !whole:
			style = "%10.5f"
		case v <= 1e3 && !whole:
			style = "%10.4f"
		case v <= 1e4 && !whole:
			style = "%10.3f"
		case v <= 1e5 && !whole:
			style = "%10.2f"
		case v <= 1e6 && !whole:
			style = "%10.1f"
		default:
			style = "%10.f"
		}
		str += "  " + Sprintf(style, v)
	}
	return str
}

func features() string {
	switch runtime.GOARCH {
	case "amd64", "386":
		return Sprintf("sse4.1=%t avx2=%t avx512f=%t", cpu.X86.HasSSE41, cpu.X86.HasAVX2, cpu.X86.HasAVX512F)
	case "arm64":
		return Sprintf("sha2=%t asimd=%t", cpu.ARM64.HasSHA2, cpu.ARM64.HasASIMD)
	}
	return "no feature report for " + runtime.GOARCH
}

func main() {
	UintVarP(&pRounds, "rounds", "r", otpkey.DefaultStretchRounds, "stretch rounds of the second benchmark pass")
	UintVarP(&pSamples, "samples", "n", 1<<16, "digests sampled per algorithm for motif rates")
	BoolVar(&pSearch, "search", false, "also time full key searches per algorithm and strategy")
	Parse()

	Printf("Running Statz on %d CPUs!\n%s/%s  %s\n\n", runtime.NumCPU(), runtime.GOOS, runtime.GOARCH, features())
	t := time.Now()

	Println("                    ns/digest   digests/s  allocs  cycles/digest")
	for _, alg := range otpkey.Algorithms() {
		engine, _ = otpkey.NewEngine(alg)
		for _, r := range [2]int{0, int(pRounds)} {
			rounds = r
			Printf("%-7s %5d rounds", alg, r)
			benchAlg(BenchmarkDigest)
		}
	}
	Println()

	motifRates(int(pSamples))
	if pSearch {
		Println()
		searchTimes()
	}

	Println("\nFinished in " + time.Since(t).Truncate(time.Millisecond).String() + ".")
}
