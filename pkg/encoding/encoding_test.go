package encoding

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestEncodeInts(t *testing.T) {
	tests := []struct {
		name     string
		value    Encodable
		expected []byte
	}{
		{
			name:     "uint16",
			value:    Uint16(0xff0f),
			expected: []byte{0xff, 0x0f},
		},
		{
			name:     "uint32",
			value:    Uint32(0x0f0fff00),
			expected: []byte{0x0f, 0x0f, 0xff, 0x00},
		},
		{
			name:     "uint64",
			value:    Uint64(0xff00ff00ff00ff00),
			expected: []byte{0xff, 0x00, 0xff, 0x00, 0xff, 0x00, 0xff, 0x00},
		},
		{
			name:     "uint64 zero keeps full width",
			value:    Uint64(0),
			expected: make([]byte, 8),
		},
		{
			name:     "uint32 max",
			value:    Uint32(0xffffffff),
			expected: []byte{0xff, 0xff, 0xff, 0xff},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.value.Serialize(nil)
			if !bytes.Equal(got, tt.expected) {
				t.Errorf("Serialize() = %x, want %x", got, tt.expected)
			}
			if len(got) != tt.value.Size() {
				t.Errorf("len = %d, Size() = %d", len(got), tt.value.Size())
			}
		})
	}
}

func TestEncodeArrays(t *testing.T) {
	got := Array2{0xcc, 0xaa}.Serialize(nil)
	assert.Equal(t, got, []byte{0xcc, 0xaa})

	var a32 Array32
	for i := range a32 {
		a32[i] = byte(i)
	}
	got = a32.Serialize(nil)
	if !bytes.Equal(got, a32[:]) {
		t.Errorf("Array32 not copied verbatim: %x", got)
	}

	assert.Equal(t, len(Array4{}.Serialize(nil)), 4)
	assert.Equal(t, len(Array8{}.Serialize(nil)), 8)
	assert.Equal(t, len(Array16{}.Serialize(nil)), 16)
}

func TestEncodeMixed(t *testing.T) {
	var v []byte
	v = Uint16(0xeedd).Serialize(v)
	v = Array2{0xcc, 0xaa}.Serialize(v)

	assert.Equal(t, v, []byte{0xee, 0xdd, 0xcc, 0xaa})
}

func TestSerializeKeepsExistingBytes(t *testing.T) {
	prefix := []byte{0x01, 0x02, 0x03}
	buf := make([]byte, len(prefix), 64)
	copy(buf, prefix)

	// Dirty the spare capacity; the zero-filled growth must not leak it.
	spare := buf[:cap(buf)]
	for i := len(prefix); i < len(spare); i++ {
		spare[i] = 0xaa
	}

	buf = Uint32(0x00000100).Serialize(buf)

	assert.Equal(t, buf, []byte{0x01, 0x02, 0x03, 0x00, 0x00, 0x01, 0x00})
}

func TestAppend(t *testing.T) {
	values := []Encodable{
		Uint16(0xeedd),
		Array2{0xcc, 0xaa},
		Uint32(1),
		Uint64(2),
	}

	got := Append(nil, values...)
	want := []byte{
		0xee, 0xdd,
		0xcc, 0xaa,
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02,
	}

	if !bytes.Equal(got, want) {
		t.Errorf("Append() = %x, want %x", got, want)
	}
	assert.Equal(t, SizeOf(values...), len(want))
}

func TestReader(t *testing.T) {
	data := Append(nil,
		Uint16(0xff0f),
		Uint32(0x0f0fff00),
		Uint64(0xff00ff00ff00ff00),
		Array2{0xcc, 0xaa},
		Array32{0x01},
	)

	r := NewReader(data)
	assert.Equal(t, r.Uint16(), uint16(0xff0f))
	assert.Equal(t, r.Uint32(), uint32(0x0f0fff00))
	assert.Equal(t, r.Uint64(), uint64(0xff00ff00ff00ff00))
	assert.Equal(t, r.Array2(), [2]byte{0xcc, 0xaa})
	assert.Equal(t, r.Array32(), [32]byte{0x01})

	if r.Err() != nil {
		t.Fatalf("unexpected error: %v", r.Err())
	}
	assert.Equal(t, r.Remaining(), 0)
}

func TestReader_ShortBuffer(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03})

	if v := r.Uint32(); v != 0 {
		t.Errorf("short read returned %d", v)
	}
	if !errors.Is(r.Err(), ErrShortBuffer) {
		t.Fatalf("Err() = %v, want ErrShortBuffer", r.Err())
	}

	// Sticky: a read that would fit still fails.
	if v := r.Uint16(); v != 0 {
		t.Errorf("read after failure returned %d", v)
	}
	assert.Equal(t, r.Remaining(), 3)
}

func BenchmarkAppend(b *testing.B) {
	buf := make([]byte, 0, 86)
	for i := 0; i < b.N; i++ {
		buf = Append(buf[:0],
			Array2{0, 1},
			Uint32(uint32(i)),
			Uint64(0xffff0000),
			Array32{},
			Array32{},
			Uint64(uint64(i)),
		)
	}
}
