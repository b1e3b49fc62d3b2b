/*

Writer definition and implementation.

*/

package lzwbits

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// ErrCodeOverflow is returned by Writer.WriteBits if the code has bits set
// at or above the requested width.
var ErrCodeOverflow = errors.New("lzwbits: code does not fit in width")

// An io.Writer and io.ByteWriter at the same time.
type writerAndByteWriter interface {
	io.Writer
	io.ByteWriter
}

// Writer packs codes of variable width least-significant-bit first,
// producing payloads a Reader decodes back into the same codes.
// Must be closed in order to flush cached data.
type Writer struct {
	out       writerAndByteWriter
	wrapperbw *bufio.Writer // wrapper bufio.Writer if the target does not implement io.ByteWriter
	cache     byte          // unwritten bits are stored here, from bit 0 upwards
	bits      int           // number of unwritten bits in cache
	count     int           // number of bits written, padding included
}

// NewWriter returns a new Writer using the specified io.Writer as the output.
func NewWriter(out io.Writer) *Writer {
	w := &Writer{}
	var ok bool
	w.out, ok = out.(writerAndByteWriter)
	if !ok {
		w.wrapperbw = bufio.NewWriter(out)
		w.out = w.wrapperbw
	}
	return w
}

// WriteBits writes out the width lowest bits of code.
// code cannot have bits set at positions width or higher (zero indexed).
func (w *Writer) WriteBits(code uint64, width int) (err error) {
	if width < 0 || width > MaxWidth {
		return errors.Wrapf(ErrInvalidWidth, "width %d", width)
	}
	if width < MaxWidth && code>>uint(width) != 0 {
		return errors.Wrapf(ErrCodeOverflow, "code %#x, width %d", code, width)
	}

	for width > 0 {
		n := 8 - w.bits
		if n > width {
			n = width
		}
		w.cache |= byte(code&(1<<uint(n)-1)) << uint(w.bits)
		w.bits += n
		w.count += n
		code >>= uint(n)
		width -= n

		if w.bits == 8 {
			if err = w.out.WriteByte(w.cache); err != nil {
				return errors.WithStack(err)
			}
			w.cache, w.bits = 0, 0
		}
	}
	return nil
}

// WriteBool writes one bit: 1 if param is true, 0 otherwise.
func (w *Writer) WriteBool(b bool) (err error) {
	if b {
		return w.WriteBits(1, 1)
	}
	return w.WriteBits(0, 1)
}

// Align aligns the bit stream to a byte boundary,
// so next write will start/go into a new byte.
// If there are cached bits, they are written to the output with zero high bits.
// Returns the number of skipped (unset but still written) bits.
func (w *Writer) Align() (skipped int, err error) {
	if w.bits == 0 {
		return 0, nil
	}
	if err = w.out.WriteByte(w.cache); err != nil {
		return 0, errors.WithStack(err)
	}
	skipped = 8 - w.bits
	w.count += skipped
	w.cache, w.bits = 0, 0
	return skipped, nil
}

// BitsWritten returns the number of bits written so far,
// including the padding added by Align.
func (w *Writer) BitsWritten() int {
	return w.count
}

// Close aligns the stream and flushes data.
// It does not close the underlying io.Writer.
func (w *Writer) Close() (err error) {
	if _, err = w.Align(); err != nil {
		return err
	}
	if w.wrapperbw != nil {
		if err = w.wrapperbw.Flush(); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
