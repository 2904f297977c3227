package encoding

import (
	"encoding/binary"
	"errors"
)

// ErrShortBuffer is returned when a read needs more bytes than remain.
var ErrShortBuffer = errors.New("encoding: short buffer")

// Reader decodes canonically encoded values from a byte slice. The first
// failure is sticky: later reads return zero values and Err reports it.
type Reader struct {
	buf []byte
	off int
	err error
}

// NewReader returns a Reader over b. The slice is not copied.
func NewReader(b []byte) *Reader {
	return &Reader{buf: b}
}

// Err returns the first error encountered, if any.
func (r *Reader) Err() error { return r.err }

// Remaining reports the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.off }

func (r *Reader) next(n int) []byte {
	if r.err != nil {
		return nil
	}
	if r.Remaining() < n {
		r.err = ErrShortBuffer
		return nil
	}
	p := r.buf[r.off : r.off+n]
	r.off += n
	return p
}

// Uint16 reads a 2-byte big-endian integer.
func (r *Reader) Uint16() uint16 {
	if p := r.next(2); p != nil {
		return binary.BigEndian.Uint16(p)
	}
	return 0
}

// Uint32 reads a 4-byte big-endian integer.
func (r *Reader) Uint32() uint32 {
	if p := r.next(4); p != nil {
		return binary.BigEndian.Uint32(p)
	}
	return 0
}

// Uint64 reads an 8-byte big-endian integer.
func (r *Reader) Uint64() uint64 {
	if p := r.next(8); p != nil {
		return binary.BigEndian.Uint64(p)
	}
	return 0
}

// Array2 reads 2 raw bytes.
func (r *Reader) Array2() (a [2]byte) {
	copy(a[:], r.next(2))
	return a
}

// Array4 reads 4 raw bytes.
func (r *Reader) Array4() (a [4]byte) {
	copy(a[:], r.next(4))
	return a
}

// Array8 reads 8 raw bytes.
func (r *Reader) Array8() (a [8]byte) {
	copy(a[:], r.next(8))
	return a
}

// Array16 reads 16 raw bytes.
func (r *Reader) Array16() (a [16]byte) {
	copy(a[:], r.next(16))
	return a
}

// Array32 reads 32 raw bytes.
func (r *Reader) Array32() (a [32]byte) {
	copy(a[:], r.next(32))
	return a
}
