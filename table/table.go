// Package table owns the in-memory row sequence and the pager backing it.
// Insertion order is preserved; there is no secondary index and no
// in-place deletion.
package table

import (
	"strings"

	"slotdb/internal/dberrors"
	"slotdb/pager"
	"slotdb/row"
)

// MaxRows is the hard capacity of a Table: floor(PageSize/row.Size) *
// MaxPages.
const MaxRows = pager.MaxRows

// Table is an ordered, in-memory sequence of live rows bounded to MaxRows,
// backed by a single file via its pager.
type Table struct {
	rows    []row.Row
	pager   *pager.Pager
	Healthy bool
}

// Open opens path (creating it if missing), recovers any rows already on
// disk, and returns a ready Table. If the pager cannot be opened, Open
// returns an empty, unhealthy Table and the error describing why — the
// caller (the REPL adapter) is expected to abort rather than use it.
func Open(path string) (*Table, error) {
	p, err := pager.Open(path)
	if err != nil {
		return &Table{Healthy: false}, err
	}

	t := &Table{
		rows:    make([]row.Row, 0, 64),
		pager:   p,
		Healthy: true,
	}
	if err := t.recover(); err != nil {
		return t, err
	}
	return t, nil
}

// recover sequentially reads slots starting at 0 until it finds a slot
// whose id is the zero sentinel or has read MaxRows slots. A read error is fatal and propagated to
// the caller; a zero id is normal termination, not an error.
func (t *Table) recover() error {
	for i := uint32(0); i < MaxRows; i++ {
		var idBuf [row.IDSize]byte
		if err := pager.ReadSlot(t.pager, i, row.IDOffset, idBuf[:]); err != nil {
			return &dberrors.RecoveryError{SlotIndex: i, Err: err}
		}
		id := uint32(idBuf[0]) | uint32(idBuf[1])<<8 | uint32(idBuf[2])<<16 | uint32(idBuf[3])<<24
		if id == 0 {
			return nil
		}

		var usernameBuf [row.UsernameSize]byte
		if err := pager.ReadSlot(t.pager, i, row.UsernameOffset, usernameBuf[:]); err != nil {
			return &dberrors.RecoveryError{SlotIndex: i, Err: err}
		}
		var emailBuf [row.EmailSize]byte
		if err := pager.ReadSlot(t.pager, i, row.EmailOffset, emailBuf[:]); err != nil {
			return &dberrors.RecoveryError{SlotIndex: i, Err: err}
		}

		r := row.New()
		r.SetID(id)
		// Non-UTF-8 bytes are tolerated: the reference implementation
		// substitutes an empty string rather than failing the open.
		r.SetUsername(trimToValidText(usernameBuf[:]))
		r.SetEmail(trimToValidText(emailBuf[:]))

		t.rows = append(t.rows, r)
	}
	return nil
}

// trimToValidText trims trailing zero bytes and, if what remains is not
// valid UTF-8, returns an empty slice rather than failing recovery.
func trimToValidText(b []byte) []byte {
	trimmed := []byte(strings.TrimRight(string(b), "\x00"))
	if !utf8Valid(trimmed) {
		return nil
	}
	return trimmed
}

func utf8Valid(b []byte) bool {
	return strings.ToValidUTF8(string(b), "") == string(b)
}

// Count returns the number of live rows.
func (t *Table) Count() int {
	return len(t.rows)
}

// Append adds r as the last row. It fails with dberrors.ErrTableFull if
// the table is already at MaxRows capacity.
func (t *Table) Append(r row.Row) error {
	if len(t.rows) >= MaxRows {
		return dberrors.ErrTableFull
	}
	t.rows = append(t.rows, r)
	return nil
}

// RowAt returns the row at position i without going through a cursor; used
// by the cursor itself and by tests asserting on persisted state.
func (t *Table) RowAt(i int) row.Row {
	return t.rows[i]
}

// Iter returns a cursor positioned at the first row.
func (t *Table) Iter() *Cursor {
	return AtStart(t)
}

// Close flushes every live row to its slot, in insertion order, and
// releases the backing file.
func (t *Table) Close() error {
	return pager.CloseAndFlush(t.pager, t.rows)
}
