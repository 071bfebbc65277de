package table

import (
	"slotdb/internal/dberrors"
	"slotdb/row"
)

// Cursor is a positional, read-only view over a Table. It borrows the
// Table and must not be held across a mutating call on it —
// there is no owner-tracking enforced at compile time, only by convention,
// same as the reference implementation's borrowed reference.
type Cursor struct {
	table      *Table
	pos        int
	EndOfTable bool
}

// AtStart returns a cursor positioned at row 0. EndOfTable is true
// immediately if the table has no rows.
func AtStart(t *Table) *Cursor {
	return &Cursor{table: t, pos: 0, EndOfTable: t.Count() == 0}
}

// AtEnd returns a cursor positioned one past the last row.
func AtEnd(t *Table) *Cursor {
	return &Cursor{table: t, pos: t.Count(), EndOfTable: true}
}

// Advance moves the cursor forward one row. Once EndOfTable is true it
// stays true — End is an absorbing state.
func (c *Cursor) Advance() {
	c.pos++
	if c.pos >= c.table.Count() {
		c.EndOfTable = true
	}
}

// Row returns the row at the cursor's current position. It fails with
// dberrors.ErrEndOfTable if EndOfTable is true.
func (c *Cursor) Row() (row.Row, error) {
	if c.EndOfTable {
		return row.Row{}, dberrors.ErrEndOfTable
	}
	return c.table.RowAt(c.pos), nil
}
