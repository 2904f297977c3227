package pow

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"

	"github.com/yourusername/hdrchain/internal/crypto"
	"github.com/yourusername/hdrchain/pkg/types"
)

const (
	// MaxTargetBits is the hardest representable difficulty.
	MaxTargetBits = 256

	// DefaultTargetBits is the default difficulty.
	// Lower bits = easier difficulty
	// 8 bits = trivial (for testing)
	// 24 bits = roughly Bitcoin's genesis difficulty
	DefaultTargetBits = 8
)

// ErrInvalidDifficulty is returned for a bit count outside 0..MaxTargetBits.
var ErrInvalidDifficulty = errors.New("invalid difficulty")

// Target returns 2^(256-targetBits). A header hash, read as a big-endian
// integer, satisfies the difficulty when it is strictly below the target.
func Target(targetBits uint32) (*big.Int, error) {
	if targetBits > MaxTargetBits {
		return nil, fmt.Errorf("%w: %d bits", ErrInvalidDifficulty, targetBits)
	}
	target := big.NewInt(1)
	target.Lsh(target, uint(MaxTargetBits-targetBits))
	return target, nil
}

// IsValidHash checks if a hash meets the difficulty requirement
func IsValidHash(hash types.Hash, targetBits uint32) bool {
	target, err := Target(targetBits)
	if err != nil {
		return false
	}

	var hashInt big.Int
	hashInt.SetBytes(hash[:])

	return hashInt.Cmp(target) == -1
}

// Validate checks the header's hash against the difficulty.
func Validate(header *types.BlockHeader, targetBits uint32) bool {
	return IsValidHash(crypto.HashBlockHeader(header), targetBits)
}

// LeadingZeroBits counts the zero bits before the first set bit of hash.
// A hash meets targetBits exactly when LeadingZeroBits(hash) >= targetBits.
func LeadingZeroBits(hash types.Hash) int {
	n := 0
	for _, b := range hash {
		if b != 0 {
			return n + bits.LeadingZeros8(b)
		}
		n += 8
	}
	return n
}
