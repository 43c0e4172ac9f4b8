//go:build windows

package main

import (
	. "golang.org/x/sys/windows"
	"os"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

/* Consoles that cannot be switched into VT mode get plain output by default. */
func init() {
	for _, f := range [2]*os.File{os.Stdout, os.Stderr} {
		if !enableVT(Handle(f.Fd())) {
			pNoCodesDefault = true
			break
		}
	}
	pNoCodes = pNoCodesDefault
}

func enableVT(h Handle) bool {
	var mode uint32
	if err := GetConsoleMode(h, &mode); err != nil {
		return false
	}
	if mode&ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return true
	}
	return SetConsoleMode(h, mode|ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
}
