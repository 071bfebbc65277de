package main

import (
	"strconv"
	"strings"

	"slotdb/executor"
	"slotdb/row"
)

// PrepareResult classifies the result of parsing a non-meta statement.
type PrepareResult int

const (
	PrepareSuccess PrepareResult = iota
	PrepareSyntaxError
	PrepareUnrecognizedStatement
	PrepareError
)

// prepareStatement tokenizes and validates input into an executor.Statement.
// This is the textual parsing of SQL-like statements that stays out of the
// core: everything here is about recognizing INSERT/SELECT and turning raw
// tokens into a validated row.Row, not about running them.
func prepareStatement(input string) (executor.Statement, PrepareResult) {
	upper := strings.ToUpper(input)

	switch {
	case strings.HasPrefix(upper, "SELECT"):
		return executor.Statement{Type: executor.Select}, PrepareSuccess

	case strings.HasPrefix(upper, "INSERT"):
		fields := strings.Fields(input)
		if len(fields) < 4 {
			return executor.Statement{}, PrepareSyntaxError
		}

		id, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil || id == 0 {
			// id == 0 is rejected here, not just on malformed input: 0 is
			// the on-disk live-row sentinel.
			return executor.Statement{}, PrepareSyntaxError
		}

		r := row.New()
		r.SetID(uint32(id))
		if !r.SetUsername([]byte(fields[2])) {
			return executor.Statement{}, PrepareError
		}
		if !r.SetEmail([]byte(fields[3])) {
			return executor.Statement{}, PrepareError
		}
		return executor.Statement{Type: executor.Insert, RowToInsert: r}, PrepareSuccess

	default:
		return executor.Statement{}, PrepareUnrecognizedStatement
	}
}
