package grpc

import "github.com/yourusername/hdrchain/pkg/types"

// HeaderRequest carries a header to encode, hash or submit.
type HeaderRequest struct {
	Header types.BlockHeader `json:"header"`
}

type EncodeHeaderResponse struct {
	Encoded string `json:"encoded"` // hex
	Length  int    `json:"length"`
}

type HashHeaderResponse struct {
	Hash types.Hash `json:"hash"`
}

type SubmitHeaderResponse struct {
	Hash   types.Hash `json:"hash"`
	Height int        `json:"height"`
}

type GetHeaderByHashRequest struct {
	Hash types.Hash `json:"hash"`
}

type GetHeaderByIndexRequest struct {
	Index uint32 `json:"index"`
}

type NextHeaderRequest struct {
	MerkleRoot types.Hash `json:"merkle_root"`
	Timestamp  uint64     `json:"timestamp"`
}

type GetChainInfoRequest struct{}

type ChainInfo struct {
	Height         int        `json:"height"`
	TipHash        types.Hash `json:"tip_hash"`
	DifficultyBits uint32     `json:"difficulty_bits"`
	ExternalIP     string     `json:"external_ip,omitempty"`
}
