// Package encoding implements the canonical byte encoding used for block
// headers: fixed-width unsigned integers in big-endian order and fixed-size
// byte arrays copied verbatim. Every value has a width known from its type,
// so nothing is length-prefixed.
package encoding

// Encodable is a value with a single canonical byte representation.
type Encodable interface {
	// Serialize appends the canonical bytes of the value to b and returns
	// the extended slice. Existing contents of b are left untouched.
	Serialize(b []byte) []byte

	// Size is the number of bytes Serialize appends.
	Size() int
}

// Append serializes values back to back, in order, onto b.
func Append(b []byte, values ...Encodable) []byte {
	for _, v := range values {
		b = v.Serialize(b)
	}
	return b
}

// SizeOf returns the combined encoded width of values.
func SizeOf(values ...Encodable) int {
	n := 0
	for _, v := range values {
		n += v.Size()
	}
	return n
}

// extend grows b by n zero bytes and returns the grown slice along with the
// offset where the new region starts.
func extend(b []byte, n int) ([]byte, int) {
	off := len(b)
	if cap(b)-off < n {
		grown := make([]byte, off, off+n+cap(b))
		copy(grown, b)
		b = grown
	}
	b = b[:off+n]
	clear(b[off:])
	return b, off
}
