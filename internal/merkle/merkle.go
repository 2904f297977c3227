package merkle

import (
	"github.com/yourusername/hdrchain/internal/crypto"
	"github.com/yourusername/hdrchain/pkg/types"
)

// BuildMerkleRoot constructs the root committed to by a header's
// HashMerkleRoot field. If a level has an odd number of nodes, the last one
// is duplicated. An empty leaf set yields the zero hash.
func BuildMerkleRoot(leaves []types.Hash) types.Hash {
	if len(leaves) == 0 {
		return types.ZeroHash
	}

	level := make([]types.Hash, len(leaves))
	copy(level, leaves)

	for len(level) > 1 {
		level = nextLevel(level)
	}

	return level[0]
}

// BuildMerkleTree builds the complete merkle tree and returns all levels,
// leaves first and root last.
func BuildMerkleTree(leaves []types.Hash) [][]types.Hash {
	if len(leaves) == 0 {
		return nil
	}

	level := make([]types.Hash, len(leaves))
	copy(level, leaves)
	tree := [][]types.Hash{level}

	for len(level) > 1 {
		level = nextLevel(level)
		tree = append(tree, level)
	}

	return tree
}

func nextLevel(level []types.Hash) []types.Hash {
	if len(level)%2 != 0 {
		level = append(level[:len(level):len(level)], level[len(level)-1])
	}

	parents := make([]types.Hash, 0, len(level)/2)
	for i := 0; i < len(level); i += 2 {
		parents = append(parents, crypto.HashPair(level[i], level[i+1]))
	}
	return parents
}
