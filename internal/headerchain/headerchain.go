// Package headerchain links block headers into a single chain persisted in
// the header store. Each appended header must extend the current tip: its
// index is one past the tip's and its previous-block hash is the tip's hash.
// There is no fork choice; a header that does not extend the tip is rejected.
package headerchain

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/yourusername/hdrchain/internal/pow"
	"github.com/yourusername/hdrchain/internal/storage"
	"github.com/yourusername/hdrchain/pkg/types"
)

// CurrentVersion is the version tag stamped on new header templates.
var CurrentVersion = [2]byte{0x00, 0x01}

var (
	ErrIndexMismatch    = errors.New("header index does not extend tip")
	ErrPrevHashMismatch = errors.New("previous block hash does not match tip")
	ErrInsufficientWork = errors.New("header hash does not meet difficulty")
	ErrEmptyChain       = errors.New("chain is empty")
	ErrBrokenChain      = errors.New("chain linkage broken")
	ErrDuplicateHeader  = errors.New("header already stored")
)

// HeaderChain is a linear, persisted chain of block headers.
type HeaderChain struct {
	mu             sync.RWMutex
	store          *storage.Storage
	difficultyBits uint32
	tip            *types.Block
}

// New opens the chain held in store. An existing chain keeps the difficulty
// it was created with; a new one records difficultyBits.
func New(store *storage.Storage, difficultyBits uint32) (*HeaderChain, error) {
	if _, err := pow.Target(difficultyBits); err != nil {
		return nil, err
	}

	hc := &HeaderChain{store: store, difficultyBits: difficultyBits}

	tipHash, err := store.GetChainTip()
	switch {
	case errors.Is(err, storage.ErrNotFound):
		if err := store.SaveDifficulty(difficultyBits); err != nil {
			return nil, fmt.Errorf("failed to save difficulty: %w", err)
		}
		zap.S().Infow("created new header chain", "difficulty_bits", difficultyBits)
		return hc, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read chain tip: %w", err)
	}

	tip, err := store.GetHeader(tipHash)
	if err != nil {
		return nil, fmt.Errorf("failed to load chain tip: %w", err)
	}

	stored, err := store.GetDifficulty()
	if err != nil {
		return nil, fmt.Errorf("failed to get difficulty: %w", err)
	}
	if stored != difficultyBits {
		zap.S().Warnw("keeping stored difficulty", "stored", stored, "requested", difficultyBits)
	}
	hc.difficultyBits = stored
	hc.tip = &types.Block{Header: *tip, Hash: tipHash}

	zap.S().Infow("loaded header chain", "height", tip.Index+1, "tip", tipHash.String(), "difficulty_bits", stored)
	return hc, nil
}

// Append validates that header extends the tip and meets the difficulty,
// then persists it as the new tip.
func (hc *HeaderChain) Append(header *types.BlockHeader) (types.Hash, error) {
	hc.mu.Lock()
	defer hc.mu.Unlock()

	hash := header.Hash()
	if hc.store.HeaderExists(hash) {
		return hash, fmt.Errorf("%w: %s", ErrDuplicateHeader, hash)
	}
	if err := hc.checkExtendsTip(header); err != nil {
		return hash, err
	}

	if _, err := hc.store.SaveHeaderAsTip(header); err != nil {
		return hash, err
	}

	hc.tip = &types.Block{Header: *header, Hash: hash}
	zap.S().Infow("appended header", "index", header.Index, "hash", hash.String(), "zero_bits", pow.LeadingZeroBits(hash))

	return hash, nil
}

func (hc *HeaderChain) checkExtendsTip(header *types.BlockHeader) error {
	if hc.tip == nil {
		if header.Index != 0 {
			return fmt.Errorf("%w: got %d, want genesis", ErrIndexMismatch, header.Index)
		}
		if !header.IsGenesis() {
			return fmt.Errorf("%w: genesis has previous hash %s", ErrPrevHashMismatch, header.HashPrevBlock)
		}
	} else {
		wantIndex, err := hc.nextIndex()
		if err != nil {
			return err
		}
		if header.Index != wantIndex {
			return fmt.Errorf("%w: got %d, want %d", ErrIndexMismatch, header.Index, wantIndex)
		}
		if header.HashPrevBlock != hc.tip.Hash {
			return fmt.Errorf("%w: got %s, want %s", ErrPrevHashMismatch, header.HashPrevBlock, hc.tip.Hash)
		}
	}

	if !pow.Validate(header, hc.difficultyBits) {
		return fmt.Errorf("%w at %d bits", ErrInsufficientWork, hc.difficultyBits)
	}
	return nil
}

// nextIndex returns the index a header extending the tip must carry.
func (hc *HeaderChain) nextIndex() (uint32, error) {
	if hc.tip == nil {
		return 0, nil
	}
	if hc.tip.Header.Index == math.MaxUint32 {
		return 0, fmt.Errorf("%w: tip is at the last representable index", ErrIndexMismatch)
	}
	return hc.tip.Header.Index + 1, nil
}

// NextHeader returns an unsolved header template extending the tip. The
// caller fills in the nonce.
func (hc *HeaderChain) NextHeader(merkleRoot types.Hash, timestamp uint64) (*types.BlockHeader, error) {
	hc.mu.RLock()
	defer hc.mu.RUnlock()

	index, err := hc.nextIndex()
	if err != nil {
		return nil, err
	}

	header := &types.BlockHeader{
		Version:        CurrentVersion,
		Index:          index,
		Timestamp:      timestamp,
		HashMerkleRoot: merkleRoot,
	}
	if hc.tip != nil {
		header.HashPrevBlock = hc.tip.Hash
	}
	return header, nil
}

// Tip returns the most recent header and its hash.
func (hc *HeaderChain) Tip() (*types.Block, error) {
	hc.mu.RLock()
	defer hc.mu.RUnlock()

	if hc.tip == nil {
		return nil, ErrEmptyChain
	}
	tip := *hc.tip
	return &tip, nil
}

// Height returns the number of headers in the chain.
func (hc *HeaderChain) Height() int {
	hc.mu.RLock()
	defer hc.mu.RUnlock()

	if hc.tip == nil {
		return 0
	}
	return int(hc.tip.Header.Index) + 1
}

// DifficultyBits returns the leading-zero-bit difficulty headers must meet.
func (hc *HeaderChain) DifficultyBits() uint32 {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.difficultyBits
}

// HeaderByIndex returns the header at the given height.
func (hc *HeaderChain) HeaderByIndex(index uint32) (*types.Block, error) {
	hc.mu.RLock()
	defer hc.mu.RUnlock()

	if hc.tip == nil || index > hc.tip.Header.Index {
		return nil, fmt.Errorf("header index %d: %w", index, storage.ErrNotFound)
	}

	hash, err := hc.store.GetHashByIndex(index)
	if err != nil {
		return nil, err
	}
	header, err := hc.store.GetHeader(hash)
	if err != nil {
		return nil, err
	}
	return &types.Block{Header: *header, Hash: hash}, nil
}

// HeaderByHash finds a header by its hash
func (hc *HeaderChain) HeaderByHash(hash types.Hash) (*types.Block, error) {
	header, err := hc.store.GetHeader(hash)
	if err != nil {
		return nil, err
	}
	return &types.Block{Header: *header, Hash: hash}, nil
}

// ValidateChain walks from the tip back to genesis, re-checking every
// header's stored hash, work and linkage. Stored headers that the walk does
// not reach are reported as well.
func (hc *HeaderChain) ValidateChain() error {
	hc.mu.RLock()
	defer hc.mu.RUnlock()

	linked := 0
	if hc.tip != nil {
		if err := hc.walkToGenesis(); err != nil {
			return err
		}
		linked = int(hc.tip.Header.Index) + 1
	}

	stored, err := hc.store.GetAllHeaders()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBrokenChain, err)
	}
	if len(stored) != linked {
		return fmt.Errorf("%w: %d headers stored, %d linked from tip", ErrBrokenChain, len(stored), linked)
	}
	return nil
}

func (hc *HeaderChain) walkToGenesis() error {
	current := hc.tip.Hash
	wantIndex := hc.tip.Header.Index
	for {
		header, err := hc.store.GetHeader(current)
		if err != nil {
			return fmt.Errorf("%w at index %d: %w", ErrBrokenChain, wantIndex, err)
		}
		if header.Index != wantIndex {
			return fmt.Errorf("%w: header %s has index %d, want %d", ErrBrokenChain, current, header.Index, wantIndex)
		}
		if !pow.IsValidHash(current, hc.difficultyBits) {
			return fmt.Errorf("%w at index %d", ErrInsufficientWork, wantIndex)
		}

		if header.Index == 0 {
			if !header.IsGenesis() {
				return fmt.Errorf("%w: genesis has non-zero previous hash", ErrBrokenChain)
			}
			return nil
		}

		current = header.HashPrevBlock
		wantIndex--
	}
}
