package encoding

// Fixed-size byte arrays encode as their raw contents.

// Array2 is a 2-byte array encoded verbatim.
type Array2 [2]byte

func (a Array2) Serialize(b []byte) []byte { return append(b, a[:]...) }
func (Array2) Size() int                   { return 2 }

// Array4 is a 4-byte array encoded verbatim.
type Array4 [4]byte

func (a Array4) Serialize(b []byte) []byte { return append(b, a[:]...) }
func (Array4) Size() int                   { return 4 }

// Array8 is an 8-byte array encoded verbatim.
type Array8 [8]byte

func (a Array8) Serialize(b []byte) []byte { return append(b, a[:]...) }
func (Array8) Size() int                   { return 8 }

// Array16 is a 16-byte array encoded verbatim.
type Array16 [16]byte

func (a Array16) Serialize(b []byte) []byte { return append(b, a[:]...) }
func (Array16) Size() int                   { return 16 }

// Array32 is a 32-byte array encoded verbatim.
type Array32 [32]byte

func (a Array32) Serialize(b []byte) []byte { return append(b, a[:]...) }
func (Array32) Size() int                   { return 32 }
