package encoding

type unsigned interface {
	~uint16 | ~uint32 | ~uint64
}

// appendBigEndian grows b by width bytes and writes v into the new region,
// most significant byte first.
func appendBigEndian[T unsigned](b []byte, v T, width int) []byte {
	b, off := extend(b, width)
	for i := off + width - 1; i >= off; i-- {
		b[i] = byte(v)
		v >>= 8
	}
	return b
}

// Uint16 is a 16-bit unsigned integer encoded in 2 big-endian bytes.
type Uint16 uint16

func (v Uint16) Serialize(b []byte) []byte { return appendBigEndian(b, v, 2) }
func (Uint16) Size() int                   { return 2 }

// Uint32 is a 32-bit unsigned integer encoded in 4 big-endian bytes.
type Uint32 uint32

func (v Uint32) Serialize(b []byte) []byte { return appendBigEndian(b, v, 4) }
func (Uint32) Size() int                   { return 4 }

// Uint64 is a 64-bit unsigned integer encoded in 8 big-endian bytes.
type Uint64 uint64

func (v Uint64) Serialize(b []byte) []byte { return appendBigEndian(b, v, 8) }
func (Uint64) Size() int                   { return 8 }
