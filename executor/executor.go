// Package executor turns a classified statement into Table mutations or
// Cursor traversals. It is the only part of the core that knows about
// INSERT/SELECT as concepts — parsing the raw statement text into a
// Statement is the REPL adapter's job; textual parsing stays out of the
// core.
package executor

import (
	"errors"
	"fmt"
	"io"

	"slotdb/internal/dberrors"
	"slotdb/row"
	"slotdb/table"
)

// StatementType classifies a parsed statement.
type StatementType int

const (
	Invalid StatementType = iota
	Insert
	Select
)

// Statement is what the REPL adapter hands to the executor: a tag, and
// for Insert, the row already validated against the bounded-text limits.
type Statement struct {
	Type        StatementType
	RowToInsert row.Row
}

// Result classifies the outcome of executing a Statement.
type Result int

const (
	Success Result = iota
	Failed
	TableFull
)

// Execute dispatches stmt against t, returning the classified outcome.
// Invalid is a no-op that reports Failed — the REPL adapter never
// constructs an Invalid statement when it is actually going to execute,
// but a zero-value Statement falling through here should not be confused
// for a successful run.
func Execute(stmt Statement, t *table.Table, out io.Writer) Result {
	switch stmt.Type {
	case Insert:
		return ExecuteInsert(stmt, t)
	case Select:
		return ExecuteSelect(t, out)
	default:
		return Failed
	}
}

// ExecuteInsert appends stmt.RowToInsert to t. It returns TableFull once t
// is at MaxRows capacity.
func ExecuteInsert(stmt Statement, t *table.Table) Result {
	if err := t.Append(stmt.RowToInsert); err != nil {
		if errors.Is(err, dberrors.ErrTableFull) {
			return TableFull
		}
		return Failed
	}
	return Success
}

// ExecuteSelect iterates every row in t via a Cursor and writes each one
// to out as "(id, username, email)", one per line.
func ExecuteSelect(t *table.Table, out io.Writer) Result {
	cur := t.Iter()
	for !cur.EndOfTable {
		r, err := cur.Row()
		if err != nil {
			return Failed
		}
		fmt.Fprintln(out, r.String())
		cur.Advance()
	}
	return Success
}
