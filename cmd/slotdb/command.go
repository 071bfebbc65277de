package main

import "strings"

// MetaCommandResult classifies a leading-dot input line.
type MetaCommandResult int

const (
	MetaCommandSuccess MetaCommandResult = iota
	MetaCommandUnrecognized
)

// doMetaCommand handles ".exit" and ".test"; any other leading-dot input
// is unrecognized. ".exit" flips *running so the REPL loop in main.go
// terminates and falls through to the flush-and-close shutdown path — the
// running flag is owned by that loop in the REPL adapter, not by the core.
func doMetaCommand(input string, running *bool) (MetaCommandResult, string) {
	switch strings.TrimSpace(input) {
	case ".exit":
		*running = false
		return MetaCommandSuccess, ""
	case ".test":
		return MetaCommandSuccess, "Test worked!"
	default:
		return MetaCommandUnrecognized, ""
	}
}
