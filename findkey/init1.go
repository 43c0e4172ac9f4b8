package main

import (
	. "github.com/spf13/pflag"
	"os"
	"runtime"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var pPart, pWorkers, pBatch, pKeys = uint(0), uint(0), uint(0), uint(0)
var pAlgorithm, pStrategy, pNoCodesDefault = "", "", false
var pExpect1, pExpect2 = 0, 0
var pHelp, pNoCodes, pQuiet, pStrict, pString, pTest, pTime, pVerbose bool
var yell, purp, und, green, red, zero = "\033[33m", "\033[35m", "\033[4m", "\033[32m", "\033[31m", "\033[0m"

func init() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--no-codes=false":
			pNoCodes = false
		case "--quiet", "--quiet=true":
			pNoCodes, pQuiet = true, true
		case "--no-codes", "--no-codes=true":
			pNoCodes = true
		}
	}
	if pNoCodes {
		yell, purp, und, green, red, zero = "", "", "", "", "", ""
	}

	BoolVarP(&pHelp, "help", "h", false,
		purp+"print this help menu"+zero+n)

	StringVarP(&pAlgorithm, "algorithm", "a", "md5",
		purp+"hash behind every digest: md5, sha256, blake3, or xxh3"+zero)

	UintVarP(&pBatch, "batch", "b", 25000,
		purp+"first batch size of the parallel strategy"+zero)

	IntVar(&pExpect1, "expect1", -1,
		purp+"expected unstretched key index; prints ✓ or ✗"+zero)

	IntVar(&pExpect2, "expect2", -1,
		purp+"expected stretched key index; prints ✓ or ✗"+zero)

	UintVarP(&pKeys, "keys", "k", 64,
		purp+"stop at this confirmed key"+zero)

	Bool("no-codes", pNoCodesDefault,
		purp+"print to console w/o formatting codes or simplified"+zero+
			n+purp+"filepaths"+zero)

	UintVarP(&pPart, "part", "p", 0,
		purp+"1 searches unstretched digests, 2 stretched ones,"+zero+
			n+purp+"0 both"+zero)

	Bool("quiet", false,
		purp+"suppress non-breaking errors and print ONLY key indices"+zero+
			n+"(enables --no-codes)")

	StringVar(&pStrategy, "strategy", "auto",
		purp+"auto, sequential, or parallel"+zero)

	BoolVar(&pStrict, "strict", false,
		purp+"cause findkey to panic on any error"+zero)

	BoolVarP(&pString, "string", "s", false,
		purp+"process arguments instead as salts"+zero)

	BoolVar(&pTest, "test", false,
		purp+"search the built-in \"abc\" fixture and check its answers"+zero)

	BoolVarP(&pTime, "time", "t", false,
		purp+"print time taken by each search"+zero)

	BoolVarP(&pVerbose, "verbose", "v", false,
		purp+"log search progress to stderr"+zero)

	UintVarP(&pWorkers, "workers", "w", uint(runtime.NumCPU()),
		purp+"goroutines computing digests in parallel"+zero)

	/* Order flags alphabetically except for help, which is hoisted to the top. */
	CommandLine.SortFlags = false
	Parse()
}
