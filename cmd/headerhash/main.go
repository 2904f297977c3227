package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/yourusername/hdrchain/internal/merkle"
	"github.com/yourusername/hdrchain/pkg/types"
)

type options struct {
	version   string
	index     uint64
	timestamp uint64
	prev      string
	merkle    string
	leaves    string
	nonce     uint64
}

func main() {
	var opts options
	flag.StringVar(&opts.version, "version", "0001", "Header version as 4 hex digits")
	flag.Uint64Var(&opts.index, "index", 0, "Block index")
	flag.Uint64Var(&opts.timestamp, "timestamp", 0, "Unix timestamp")
	flag.StringVar(&opts.prev, "prev", "", "Previous block hash (hex, empty for zero)")
	flag.StringVar(&opts.merkle, "merkle", "", "Merkle root (hex, empty for zero)")
	flag.StringVar(&opts.leaves, "leaves", "", "Comma-separated leaf hashes; the merkle root is computed from them")
	flag.Uint64Var(&opts.nonce, "nonce", 0, "Nonce")
	asJSON := flag.Bool("json", false, "Print the header and its hash as JSON")
	tree := flag.Bool("tree", false, "Print every merkle tree level built from -leaves")
	flag.Parse()

	header, err := buildHeader(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "headerhash: %v\n", err)
		os.Exit(2)
	}

	if *tree {
		leaves, err := parseLeaves(opts.leaves)
		if err == nil && len(leaves) == 0 {
			err = errors.New("-tree needs -leaves")
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "headerhash: %v\n", err)
			os.Exit(2)
		}
		fmt.Print(formatTree(merkle.BuildMerkleTree(leaves)))
	}

	if *asJSON {
		out, err := json.MarshalIndent(types.NewBlock(*header), "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "headerhash: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	encoded := header.ToBytes()
	fmt.Printf("Encoded: %x\n", encoded)
	fmt.Printf("Length:  %d\n", len(encoded))
	fmt.Printf("Hash:    %s\n", header.Hash())
}

func buildHeader(opts options) (*types.BlockHeader, error) {
	header := &types.BlockHeader{
		Timestamp: opts.timestamp,
		Nonce:     opts.nonce,
	}

	version, err := hex.DecodeString(opts.version)
	if err != nil || len(version) != 2 {
		return nil, fmt.Errorf("version must be 4 hex digits, got %q", opts.version)
	}
	copy(header.Version[:], version)

	if opts.index > 0xffffffff {
		return nil, fmt.Errorf("index %d overflows 32 bits", opts.index)
	}
	header.Index = uint32(opts.index)

	if header.HashPrevBlock, err = optionalHash(opts.prev); err != nil {
		return nil, fmt.Errorf("prev: %w", err)
	}

	if opts.leaves != "" {
		if opts.merkle != "" {
			return nil, errors.New("-merkle and -leaves are mutually exclusive")
		}
		leaves, err := parseLeaves(opts.leaves)
		if err != nil {
			return nil, err
		}
		header.HashMerkleRoot = merkle.BuildMerkleRoot(leaves)
	} else if header.HashMerkleRoot, err = optionalHash(opts.merkle); err != nil {
		return nil, fmt.Errorf("merkle: %w", err)
	}

	return header, nil
}

func optionalHash(s string) (types.Hash, error) {
	if s == "" {
		return types.ZeroHash, nil
	}
	return types.HashFromHex(s)
}

// parseLeaves splits a comma-separated list of hex leaf hashes.
func parseLeaves(list string) ([]types.Hash, error) {
	if list == "" {
		return nil, nil
	}
	var leaves []types.Hash
	for _, s := range strings.Split(list, ",") {
		leaf, err := types.HashFromHex(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("leaf %q: %w", s, err)
		}
		leaves = append(leaves, leaf)
	}
	return leaves, nil
}

// formatTree renders merkle tree levels, leaves first and root last.
func formatTree(tree [][]types.Hash) string {
	var sb strings.Builder
	for i, level := range tree {
		fmt.Fprintf(&sb, "Level %d (%d):\n", i, len(level))
		for _, node := range level {
			fmt.Fprintf(&sb, "  %s\n", node)
		}
	}
	return sb.String()
}
