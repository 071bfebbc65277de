// Package row holds the fixed-width record type persisted by the pager.
package row

import (
	"encoding/binary"
	"fmt"
)

// Fixed on-disk/in-memory widths. A row is always exactly Size bytes;
// there is no length-prefixed or variable-width field.
const (
	IDSize       = 4
	UsernameSize = 32
	EmailSize    = 255

	IDOffset       = 0
	UsernameOffset = IDOffset + IDSize
	EmailOffset    = UsernameOffset + UsernameSize

	// Size is the total on-disk width of one row: 4 + 32 + 255.
	Size = EmailOffset + EmailSize
)

// Row is one record of the fixed three-column schema: id, username, email.
// Text fields are stored in fixed-size buffers with an explicit length so
// on-disk and in-memory widths match exactly — no per-row length prefix is
// needed to find the next slot.
type Row struct {
	id          uint32
	username    [UsernameSize]byte
	usernameLen int
	email       [EmailSize]byte
	emailLen    int
}

// New returns an empty row: id 0, zero-length text fields.
func New() Row {
	return Row{}
}

// SetID stores id. This always succeeds; id 0 is reserved as the on-disk
// sentinel for "no row here" and must be rejected by the caller (the
// REPL adapter's statement parsing) before a row reaches this point.
func (r *Row) SetID(id uint32) {
	r.id = id
}

// GetID returns the row's id.
func (r *Row) GetID() uint32 {
	return r.id
}

// SetUsername copies b into the username buffer, zero-padding the
// remainder. It fails and leaves the row unchanged if len(b) > UsernameSize.
func (r *Row) SetUsername(b []byte) bool {
	if len(b) > UsernameSize {
		return false
	}
	r.username = [UsernameSize]byte{}
	copy(r.username[:], b)
	r.usernameLen = len(b)
	return true
}

// GetUsername returns the stored username.
func (r *Row) GetUsername() string {
	return string(r.username[:r.usernameLen])
}

// SetEmail copies b into the email buffer, zero-padding the remainder. It
// fails and leaves the row unchanged if len(b) > EmailSize.
func (r *Row) SetEmail(b []byte) bool {
	if len(b) > EmailSize {
		return false
	}
	r.email = [EmailSize]byte{}
	copy(r.email[:], b)
	r.emailLen = len(b)
	return true
}

// GetEmail returns the stored email.
func (r *Row) GetEmail() string {
	return string(r.email[:r.emailLen])
}

// String renders the row the way SELECT prints it: "(id, username, email)".
func (r *Row) String() string {
	return fmt.Sprintf("(%d, %s, %s)", r.id, r.GetUsername(), r.GetEmail())
}

// Serialize writes the row's on-disk representation into dst, which must
// be exactly Size bytes: id as little-endian u32, then the raw username
// and email buffers (already zero-padded).
func (r *Row) Serialize(dst []byte) {
	binary.LittleEndian.PutUint32(dst[IDOffset:IDOffset+IDSize], r.id)
	copy(dst[UsernameOffset:UsernameOffset+UsernameSize], r.username[:])
	copy(dst[EmailOffset:EmailOffset+EmailSize], r.email[:])
}
