package main

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/yourusername/hdrchain/internal/merkle"

	"github.com/yourusername/hdrchain/pkg/types"
)

// sha256 of the single bytes 0x00, 0x01 and 0x02.
const testLeaves = "6e340b9cffb37a989ca544e6bb780a2c78901d3fb33738768511a30617afa01d," +
	"4bf5122f344554c53bde2ebb8cd2b7e3d1600ad631c385a5d7cce23c7785459a," +
	"dbc1b4c900ffe48d575b5da5c638040125f65db0fe3e24494b76ea986457d986"

func TestBuildHeader_Vector(t *testing.T) {
	header, err := buildHeader(options{
		version:   "0001",
		timestamp: 0xffff0000,
		nonce:     0xff00ff00,
	})
	if err != nil {
		t.Fatalf("buildHeader failed: %v", err)
	}
	assert.Equal(t, header.Hash().String(), "faa17b05a22f6a160d9eedc88cc2dfd32026a4b8f53181b178e4af569327b09c")
}

func TestBuildHeader_Leaves(t *testing.T) {
	header, err := buildHeader(options{version: "0001", leaves: testLeaves})
	if err != nil {
		t.Fatalf("buildHeader failed: %v", err)
	}
	assert.Equal(t, header.HashMerkleRoot.String(), "50fde71c451737ad83c79d791dfda614eeed7e4440971b7a92691919a06ba52b")
}

func TestBuildHeader_Errors(t *testing.T) {
	zero := types.ZeroHash.String()

	tests := []struct {
		name string
		opts options
	}{
		{name: "Short version", opts: options{version: "01"}},
		{name: "Non-hex version", opts: options{version: "zz01"}},
		{name: "Index overflow", opts: options{version: "0001", index: 1 << 32}},
		{name: "Bad prev", opts: options{version: "0001", prev: "abcd"}},
		{name: "Bad merkle", opts: options{version: "0001", merkle: "xyz"}},
		{name: "Merkle and leaves", opts: options{version: "0001", merkle: zero, leaves: zero}},
		{name: "Bad leaf", opts: options{version: "0001", leaves: zero + ",00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := buildHeader(tt.opts); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestFormatTree(t *testing.T) {
	leaves, err := parseLeaves(testLeaves)
	if err != nil {
		t.Fatalf("parseLeaves failed: %v", err)
	}
	assert.Equal(t, len(leaves), 3)

	out := formatTree(merkle.BuildMerkleTree(leaves))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	// Three levels: 3 leaves, 2 parents, 1 root.
	assert.Equal(t, len(lines), 3+3+2+1)
	assert.Equal(t, lines[0], "Level 0 (3):")
	assert.Equal(t, lines[4], "Level 1 (2):")
	assert.Equal(t, lines[7], "Level 2 (1):")
	assert.Equal(t, lines[8], "  50fde71c451737ad83c79d791dfda614eeed7e4440971b7a92691919a06ba52b")
}

func TestParseLeaves_Empty(t *testing.T) {
	leaves, err := parseLeaves("")
	if err != nil {
		t.Fatalf("parseLeaves failed: %v", err)
	}
	assert.Equal(t, len(leaves), 0)
}
