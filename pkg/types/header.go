package types

import (
	"errors"
	"fmt"

	"github.com/minio/sha256-simd"

	"github.com/yourusername/hdrchain/pkg/encoding"
)

// HeaderSize is the canonical encoded length of a BlockHeader:
// version(2) + index(4) + timestamp(8) + prev(32) + merkle(32) + nonce(8).
const HeaderSize = 86

// ErrInvalidHeaderLength is returned when decoding anything but HeaderSize bytes.
var ErrInvalidHeaderLength = errors.New("invalid header length")

// BlockHeader identifies a block. Nodes collect transactions into a block,
// commit to them through HashMerkleRoot and vary Nonce until the header
// hash meets the proof-of-work target.
type BlockHeader struct {
	Version        [2]byte `json:"version"`
	Index          uint32  `json:"index"`
	Timestamp      uint64  `json:"timestamp"`
	HashPrevBlock  Hash    `json:"hash_prev_block"`
	HashMerkleRoot Hash    `json:"hash_merkle_root"`
	Nonce          uint64  `json:"nonce"`
}

// fields lists the header in wire order.
func (h *BlockHeader) fields() []encoding.Encodable {
	return []encoding.Encodable{
		encoding.Array2(h.Version),
		encoding.Uint32(h.Index),
		encoding.Uint64(h.Timestamp),
		encoding.Array32(h.HashPrevBlock),
		encoding.Array32(h.HashMerkleRoot),
		encoding.Uint64(h.Nonce),
	}
}

// ToBytes returns the canonical serialization of the header. The result is
// always HeaderSize bytes.
func (h *BlockHeader) ToBytes() []byte {
	fields := h.fields()
	return encoding.Append(make([]byte, 0, encoding.SizeOf(fields...)), fields...)
}

// Hash returns the SHA-256 digest of ToBytes.
func (h *BlockHeader) Hash() Hash {
	return sha256.Sum256(h.ToBytes())
}

// IsGenesis reports whether the header sits at index zero with no predecessor.
func (h *BlockHeader) IsGenesis() bool {
	return h.Index == 0 && h.HashPrevBlock.IsZero()
}

// HeaderFromBytes decodes a canonical serialization produced by ToBytes.
func HeaderFromBytes(b []byte) (*BlockHeader, error) {
	if len(b) != HeaderSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidHeaderLength, len(b), HeaderSize)
	}

	r := encoding.NewReader(b)
	h := &BlockHeader{
		Version:        r.Array2(),
		Index:          r.Uint32(),
		Timestamp:      r.Uint64(),
		HashPrevBlock:  r.Array32(),
		HashMerkleRoot: r.Array32(),
		Nonce:          r.Uint64(),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return h, nil
}

// Block pairs a header with its cached hash.
type Block struct {
	Header BlockHeader `json:"header"`
	Hash   Hash        `json:"hash"`
}

// NewBlock wraps header and caches its hash.
func NewBlock(header BlockHeader) *Block {
	return &Block{Header: header, Hash: header.Hash()}
}
