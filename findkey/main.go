package main

import (
	"bytes"
	. "fmt"
	"github.com/p7r0x7/otpkey"
	"github.com/p7r0x7/vainpath"
	. "github.com/spf13/pflag"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const n = "\n"
const success, failure, invalid = 0, 1, 2

/* The fixture searched by --test, with its known answers. */
const testSalt, testPart1, testPart2 = "abc", 22728, 22551

var warnings, mismatches = 0, 0

func main() { os.Exit(program()) }

// help prints a usage menu. To consistently render this menu in most terminal windows, its
// content should be no wider than 80 columns.
func help() {
	origin, err := os.Executable()
	if err != nil {
		origin = "findkey" /* Default binary name */
	} else {
		origin = filepath.Base(origin)
	}
	name := vainpath.Trim(origin, "…", 12)
	spaces := strings.Repeat(" ", utf8.RuneCountInString(name)+3)
	Fprint(os.Stderr, yell, "Finds the index of the 64th one-time-pad key derived from a salt.", zero, n+n+
		"Usage:"+n+
		"  ", name, " [-h]"+n,
		spaces, "[-tv] [-p <uint>] [-k <uint>] [--quiet|no-codes] [--strict] -|PATH..."+n,
		spaces, "[-tv] [-p <uint>] [-k <uint>] [--quiet|no-codes] [--strict] -s SALT..."+n,
		spaces, "[-tv] [-p <uint>] [--quiet|no-codes] --test"+n+n+
			"Options:"+n)
	PrintDefaults()
	name = vainpath.Trim(origin, "…", 15)
	Fprint(os.Stderr, n+"Order of arguments placed after `", name, "` does not matter unless `--` is"+
		n+"specified, signaling the end of parsed flags. Salts read from files have"+n+
		"surrounding whitespace removed. `-` is treated as a reference to ", os.Stdin.Name(), "."+n)
}

// This program runs the key search once per salt and part, the way the puzzle asks for it: part 1
// over plain digests, part 2 over stretched ones.
func program() int {
	if pHelp || (NArg() == 0 && !pTest) {
		help()
		return success
	}
	if pPart > 2 {
		Fprint(os.Stderr, purp, "Part must be 0 (both), 1, or 2.", zero, n)
		return invalid
	}
	searcher, err := newSearcher()
	if err != nil {
		Fprint(os.Stderr, purp, err, zero, n)
		return invalid
	}

	targets, expect := Args(), [3]int{0, pExpect1, pExpect2}
	if pTest {
		targets, expect, pString = []string{testSalt}, [3]int{0, testPart1, testPart2}, true
	}

	for _, target := range targets {
		salt, err := read(target)
		if err != nil {
			warn(err)
			continue
		}
		for part := 1; part <= 2; part++ {
			if pPart != 0 && uint(part) != pPart {
				continue
			}
			start := time.Now()
			index, err := searcher.Find(salt, part == 2)
			if err != nil {
				warn(err)
				continue
			}
			report(target, part, index, expect[part], time.Since(start))
		}
	}

	if !pQuiet {
		if warnings == 1 {
			Fprint(os.Stderr, "1 ", purp, "search failed or target was inaccessible.", zero, n)
		} else if warnings > 1 {
			Fprint(os.Stderr, warnings, " ", purp, "searches failed or targets were inaccessible.", zero, n)
		}
	}
	if warnings > 0 || mismatches > 0 {
		return failure
	}
	return success
}

func newSearcher() (*otpkey.Searcher, error) {
	alg, err := otpkey.ParseAlgorithm(pAlgorithm)
	if err != nil {
		return nil, err
	}
	strategy, err := otpkey.ParseStrategy(pStrategy)
	if err != nil {
		return nil, err
	}
	opts := []otpkey.Option{
		otpkey.WithAlgorithm(alg),
		otpkey.WithStrategy(strategy),
		otpkey.WithWorkers(int(pWorkers)),
		otpkey.WithBatchSize(int(pBatch)),
		otpkey.WithKeyCount(int(pKeys)),
	}
	if pBatch > otpkey.DefaultMaxBatchSize {
		opts = append(opts, otpkey.WithMaxBatchSize(int(pBatch)))
	}
	if pVerbose {
		opts = append(opts, otpkey.WithLogger(stderrLogger{log.New(os.Stderr, "findkey: ", log.Ltime|log.Lmicroseconds)}))
	}
	return otpkey.New(opts...)
}

// read returns the salt named by target with surrounding whitespace removed.
func read(target string) ([]byte, error) {
	var raw []byte
	var err error
	switch {
	case pString:
		raw = []byte(target)
	case target == "-" || target == os.Stdin.Name():
		raw, err = io.ReadAll(os.Stdin)
	default:
		raw, err = os.ReadFile(target)
	}
	return bytes.TrimSpace(raw), err
}

func report(target string, part, index, expect int, d time.Duration) {
	if pQuiet {
		Println(index)
		return
	}
	status, delta := "", ""
	if expect >= 0 {
		if index == expect {
			status = " " + green + "✓" + zero
		} else {
			status = Sprint(" ", red, "✗ (expected ", expect, ")", zero)
			mismatches++
		}
	}
	if pTime {
		if d.Microseconds() > 99 {
			d = d.Truncate(10 * time.Microsecond)
		}
		delta = " (" + d.String() + ")"
	}

	switch {
	case pString:
		Printf("Part %d: %s%d%s%s  %q%s\n", part, yell, index, zero, status, target, delta)
	case pNoCodes:
		Printf("Part %d: %d%s  %s%s\n", part, index, status, filepath.Clean(target), delta)
	default:
		Printf("Part %d: %s%d%s%s  %s%s%s%s\n", part, yell, index, zero, status,
			und, vainpath.Simplify(target), zero, delta)
	}
}

func warn(err ...interface{}) {
	if pStrict {
		panic(err)
	}
	if pVerbose {
		Fprintln(os.Stderr, err...)
	}
	warnings++
}

type stderrLogger struct{ *log.Logger }

func (l stderrLogger) Debug(msg string, args ...any) { l.Printf("debug: "+msg, args...) }
func (l stderrLogger) Info(msg string, args ...any)  { l.Printf("info: "+msg, args...) }
func (l stderrLogger) Error(msg string, args ...any) { l.Printf("error: "+msg, args...) }
