package otpkey

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Logger receives progress messages from a Searcher. Messages are printf-style formats.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

// DisabledLogger discards everything; it is the default.
type DisabledLogger struct{}

func (DisabledLogger) Debug(string, ...any) {}
func (DisabledLogger) Info(string, ...any)  {}
func (DisabledLogger) Error(string, ...any) {}
