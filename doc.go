/*

Package lzwbits provides the bit-level Reader and Writer used by LZW codecs of
raster image containers (GIF, TIFF).

A Reader is created over a complete, in-memory LZW payload (for GIF, the
reassembled image data sub-blocks). Reader.ReadBits() returns the next code of
the requested width; the width may change between calls, as LZW code widths
grow with the dictionary. Managing the dictionary, the clear and end of
information codes, and the container framing is left to the caller.

Bit order

Codes are packed least-significant-bit first: the first code occupies the low
bits of the first byte, the next code continues in the remaining high bits, and
a code crossing a byte boundary takes its high bits from the low bits of the
following byte. So for example if the input provides the bytes 0x12 and 0x34:

    HEXA    1    2     3    4
    BINARY  0001 0010  0011 0100
            bbbb aaaa  dddd cccc

Then ReadBits will return the following values:

    r := NewReader([]byte{0x12, 0x34})
    a, err := r.ReadBits(4) // 0010 = 0x2
    b, err := r.ReadBits(4) // 0001 = 0x1
    c, err := r.ReadBits(4) // 0100 = 0x4
    d, err := r.ReadBits(4) // 0011 = 0x3
    _, err = r.ReadBits(1)  // err == ErrExhausted

Internally the payload is stored with its byte order reversed, and bits are
addressed by an index running from len*8-1 (the lowest bit of the first input
byte) down to 0 (the highest bit of the last input byte). Bit index i lives in
logical byte i/8 at bit position 7-i%8.

Writing the above values with a Writer results in the same sequence of bytes:

    b := &bytes.Buffer{}
    w := NewWriter(b)
    err := w.WriteBits(0x2, 4)
    err = w.WriteBits(0x1, 4)
    err = w.WriteBits(0x4, 4)
    err = w.WriteBits(0x3, 4)
    err = w.Close()
    // b will hold the bytes: 0x12 and 0x34

Neither Reader nor Writer is safe for concurrent use.

*/
package lzwbits
