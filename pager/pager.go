// Package pager owns the single backing file and performs slot-granularity
// byte I/O. There is no page cache here — unlike a B-tree pager, every row
// lives at a fixed, directly computable offset, so there is nothing to
// keep resident between reads.
package pager

import (
	"errors"
	"io"
	"os"

	"slotdb/internal/dberrors"
	"slotdb/internal/dblog"
	"slotdb/row"
)

const (
	PageSize    = 4096
	MaxPages    = 100
	RowsPerPage = PageSize / row.Size
	MaxRows     = RowsPerPage * MaxPages

	// reservedCapacity is MAX_PAGES * PAGE_SIZE * ROW_SIZE / ROWS_PER_PAGE.
	// This is larger than MaxRows*row.Size and must be computed as a single
	// division to match the reference implementation's file size
	// byte-for-byte.
	reservedCapacity = MaxPages * PageSize * row.Size / RowsPerPage
)

// Pager owns the single file handle backing a Table.
type Pager struct {
	file    *os.File
	Healthy bool
}

// Open opens path for read+write, creating it if missing. On first
// creation it attempts to pre-extend the file to reservedCapacity;
// pre-extend failure is logged, not fatal — it does not prevent the
// pager from opening. Healthy is true iff the open call itself
// succeeded — callers must abort if Open returns a non-nil error.
func Open(path string) (*Pager, error) {
	_, statErr := os.Stat(path)
	existed := statErr == nil

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return nil, &dberrors.OpenError{Path: path, Err: err}
	}

	p := &Pager{file: f, Healthy: true}

	if !existed {
		if err := f.Truncate(reservedCapacity); err != nil {
			dblog.Warn("could not pre-extend database file", "path", path, "error", err)
		}
	}

	return p, nil
}

// ReadSlot reads len(dst) bytes at slot index*row.Size + offset into dst.
// A read that runs past the end of the file returns io.EOF from the
// underlying ReadAt; the unread tail of dst is zero-filled and no error is
// returned, so a read past a never-written region reads as all zeros —
// the same bytes a pre-extended sparse file would have given anyway.
func ReadSlot(p *Pager, index uint32, offset int, dst []byte) error {
	off := int64(index)*int64(row.Size) + int64(offset)
	n, err := p.file.ReadAt(dst, off)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
	return nil
}

// WriteSlot writes b at slot index*row.Size + offset. It never extends
// beyond the row slot: a write that would not fit inside the slot is
// rejected with an error and nothing is written.
func WriteSlot(p *Pager, index uint32, offset int, b []byte) error {
	if offset < 0 || offset+len(b) > row.Size {
		return errors.New("pager: write does not fit in its row slot")
	}
	off := int64(index)*int64(row.Size) + int64(offset)
	_, err := p.file.WriteAt(b, off)
	return err
}

// CloseAndFlush serializes rows, in order, to ascending slot indices
// starting at 0, then closes the file. A write failure for one row is
// logged and does not stop the remaining rows from being flushed.
func CloseAndFlush(p *Pager, rows []row.Row) error {
	var buf [row.Size]byte
	for i := range rows {
		rows[i].Serialize(buf[:])
		if err := WriteSlot(p, uint32(i), 0, buf[:]); err != nil {
			dblog.Warn("failed to write row slot", "slot", i, "error", err)
		}
	}
	return p.file.Close()
}
