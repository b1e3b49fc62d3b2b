/*

Reader definition and implementation.

*/

package lzwbits

import (
	"fmt"

	"github.com/pkg/errors"
)

// MaxWidth is the largest code width that can be read or written at once.
const MaxWidth = 64

var (
	// ErrExhausted is returned when fewer bits remain than requested.
	// It signals the end of the code stream; whether that is a truncation
	// is up to the caller.
	ErrExhausted = errors.New("lzwbits: not enough bits remaining")

	// ErrInvalidWidth is returned for a negative width or one above MaxWidth.
	ErrInvalidWidth = errors.New("lzwbits: invalid code width")
)

// Reader extracts codes of variable width from an in-memory LZW payload.
type Reader struct {
	buf    []byte // payload with reversed byte order, never modified
	cursor int    // index of the next bit to consume, -1 when all bits are read

	// TryError holds the first error occurred in TryReadBits() or TryReadBool().
	// Once set, subsequent Try calls do nothing and return zero values.
	TryError error
}

// NewReader returns a new Reader over contents.
// contents is copied, later changes to it do not affect the Reader.
func NewReader(contents []byte) *Reader {
	n := len(contents)
	buf := make([]byte, n)
	for i, b := range contents {
		buf[n-1-i] = b
	}
	return &Reader{buf: buf, cursor: n*8 - 1}
}

// ReadBits reads the next width bits and returns them as the lowest width bits of u.
//
// A width of 0 returns 0 and consumes nothing. If fewer than width bits
// remain, ErrExhausted is returned and nothing is consumed, so a narrower read
// may still succeed.
func (r *Reader) ReadBits(width int) (u uint64, err error) {
	if width < 0 || width > MaxWidth {
		return 0, errors.Wrapf(ErrInvalidWidth, "width %d", width)
	}
	if width == 0 {
		return 0, nil
	}

	first := r.cursor - width + 1
	if first < 0 {
		return 0, ErrExhausted
	}
	for i := first; i <= r.cursor; i++ {
		u = u<<1 | r.bitAt(i)
	}
	r.cursor -= width
	return u, nil
}

// ReadBool reads the next bit, and returns true if it is 1.
func (r *Reader) ReadBool() (b bool, err error) {
	u, err := r.ReadBits(1)
	return u == 1, err
}

// bitAt returns the bit at index i, 0 or 1.
func (r *Reader) bitAt(i int) uint64 {
	if i < 0 || i >= len(r.buf)*8 {
		panic(fmt.Sprintf("lzwbits: bit index %d out of range [0, %d)", i, len(r.buf)*8))
	}
	return uint64(r.buf[i/8]>>(7-uint(i%8))) & 1
}

// TryReadBits tries to read width bits.
//
// If there was a previous TryError, it does nothing. Else it calls ReadBits(),
// returns the data it provides and stores the error in the TryError field.
func (r *Reader) TryReadBits(width int) (u uint64) {
	if r.TryError == nil {
		u, r.TryError = r.ReadBits(width)
	}
	return
}

// TryReadBool tries to read one bit.
//
// If there was a previous TryError, it does nothing. Else it calls ReadBool(),
// returns the data it provides and stores the error in the TryError field.
func (r *Reader) TryReadBool() (b bool) {
	if r.TryError == nil {
		b, r.TryError = r.ReadBool()
	}
	return
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int {
	return r.cursor + 1
}

// BitPosition returns the number of bits read so far.
func (r *Reader) BitPosition() int {
	return len(r.buf)*8 - 1 - r.cursor
}

// Len returns the payload length in bytes.
func (r *Reader) Len() int {
	return len(r.buf)
}
