package storage

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/yourusername/hdrchain/pkg/types"
)

const (
	// Database prefixes
	headerPrefix  = "header_"
	indexPrefix   = "index_"
	tipKey        = "chain_tip"
	difficultyKey = "difficulty"
)

var (
	// ErrNotFound is returned when a key is absent from the database.
	ErrNotFound = errors.New("not found")

	// ErrCorrupt is returned when stored bytes do not hash to their key.
	ErrCorrupt = errors.New("stored header corrupt")
)

// Storage represents the LevelDB storage layer. Headers are stored in
// their canonical encoding, keyed by hash.
type Storage struct {
	db *leveldb.DB
}

// NewStorage creates a new storage instance
func NewStorage(path string) (*Storage, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

func headerKey(hash types.Hash) []byte {
	return append([]byte(headerPrefix), hash[:]...)
}

func indexKey(index uint32) []byte {
	return binary.BigEndian.AppendUint32([]byte(indexPrefix), index)
}

// SaveHeaderAsTip stores the header under its hash, indexes the hash by
// height and moves the chain tip to it, all in one batch. It returns the hash.
func (s *Storage) SaveHeaderAsTip(header *types.BlockHeader) (types.Hash, error) {
	hash := header.Hash()

	batch := new(leveldb.Batch)
	batch.Put(headerKey(hash), header.ToBytes())
	batch.Put(indexKey(header.Index), hash[:])
	batch.Put([]byte(tipKey), hash[:])

	if err := s.db.Write(batch, nil); err != nil {
		return hash, fmt.Errorf("failed to save header %s: %w", hash, err)
	}

	return hash, nil
}

// GetHeader retrieves a header by hash. The stored bytes are decoded and
// re-hashed; a mismatch reports ErrCorrupt.
func (s *Storage) GetHeader(hash types.Hash) (*types.BlockHeader, error) {
	data, err := s.get(headerKey(hash))
	if err != nil {
		return nil, fmt.Errorf("header %s: %w", hash, err)
	}

	header, err := types.HeaderFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode header %s: %w", hash, err)
	}

	if header.Hash() != hash {
		return nil, fmt.Errorf("header %s: %w", hash, ErrCorrupt)
	}

	return header, nil
}

// GetHashByIndex returns the hash of the header stored at index.
func (s *Storage) GetHashByIndex(index uint32) (types.Hash, error) {
	var hash types.Hash

	data, err := s.get(indexKey(index))
	if err != nil {
		return hash, fmt.Errorf("index %d: %w", index, err)
	}
	if len(data) != types.HashSize {
		return hash, fmt.Errorf("index %d: %w", index, ErrCorrupt)
	}

	copy(hash[:], data)
	return hash, nil
}

// HeaderExists checks if a header exists in the database
func (s *Storage) HeaderExists(hash types.Hash) bool {
	exists, _ := s.db.Has(headerKey(hash), nil)
	return exists
}

// GetChainTip retrieves the current chain tip
func (s *Storage) GetChainTip() (types.Hash, error) {
	var hash types.Hash

	data, err := s.get([]byte(tipKey))
	if err != nil {
		return hash, fmt.Errorf("chain tip: %w", err)
	}
	if len(data) != types.HashSize {
		return hash, fmt.Errorf("chain tip: %w", ErrCorrupt)
	}

	copy(hash[:], data)
	return hash, nil
}

// SaveDifficulty saves the current difficulty target
func (s *Storage) SaveDifficulty(difficulty uint32) error {
	return s.db.Put([]byte(difficultyKey), binary.BigEndian.AppendUint32(nil, difficulty), nil)
}

// GetDifficulty retrieves the current difficulty target
func (s *Storage) GetDifficulty() (uint32, error) {
	data, err := s.get([]byte(difficultyKey))
	if err != nil {
		return 0, fmt.Errorf("difficulty: %w", err)
	}
	if len(data) != 4 {
		return 0, fmt.Errorf("difficulty: %w", ErrCorrupt)
	}

	return binary.BigEndian.Uint32(data), nil
}

// GetAllHeaders retrieves all headers from the database, in key order.
// A record that does not decode fails the whole scan.
func (s *Storage) GetAllHeaders() ([]*types.BlockHeader, error) {
	var headers []*types.BlockHeader

	iter := s.db.NewIterator(util.BytesPrefix([]byte(headerPrefix)), nil)
	defer iter.Release()

	for iter.Next() {
		header, err := types.HeaderFromBytes(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("failed to decode header %x: %w", iter.Key()[len(headerPrefix):], err)
		}
		headers = append(headers, header)
	}

	return headers, iter.Error()
}

// Clear removes all data from the database
func (s *Storage) Clear() error {
	iter := s.db.NewIterator(nil, nil)
	defer iter.Release()

	batch := new(leveldb.Batch)
	for iter.Next() {
		batch.Delete(iter.Key())
	}
	if err := iter.Error(); err != nil {
		return err
	}

	return s.db.Write(batch, nil)
}

func (s *Storage) get(key []byte) ([]byte, error) {
	data, err := s.db.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, ErrNotFound
	}
	return data, err
}
