package crypto

import (
	"github.com/minio/sha256-simd"

	"github.com/yourusername/hdrchain/pkg/types"
)

// HashBytes returns SHA-256 hash of the input data
func HashBytes(data []byte) types.Hash {
	return sha256.Sum256(data)
}

// DoubleHashBytes returns double SHA-256 hash (Bitcoin-style)
func DoubleHashBytes(data []byte) types.Hash {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}

// HashBlockHeader computes the identity hash of a block header: a single
// SHA-256 over its canonical 86-byte encoding.
func HashBlockHeader(header *types.BlockHeader) types.Hash {
	return HashBytes(header.ToBytes())
}

// HashPair hashes two nodes of a merkle tree.
func HashPair(left, right types.Hash) types.Hash {
	buf := make([]byte, 0, 2*types.HashSize)
	buf = append(buf, left[:]...)
	buf = append(buf, right[:]...)
	return DoubleHashBytes(buf)
}
