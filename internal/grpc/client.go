package grpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"

	"github.com/yourusername/hdrchain/pkg/types"
)

// Client is a typed client for the header service.
type Client struct {
	cc *grpc.ClientConn
}

// Dial connects to a header service at addr. The JSON codec is forced on
// every call; transport credentials come from opts.
func Dial(ctx context.Context, addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append(opts, grpc.WithDefaultCallOptions(grpc.ForceCodec(JSONCodec{})))
	cc, err := grpc.DialContext(ctx, addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	return &Client{cc: cc}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.cc.Close()
}

func (c *Client) EncodeHeader(ctx context.Context, header *types.BlockHeader) (*EncodeHeaderResponse, error) {
	out := new(EncodeHeaderResponse)
	if err := c.cc.Invoke(ctx, fullMethod("EncodeHeader"), &HeaderRequest{Header: *header}, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) HashHeader(ctx context.Context, header *types.BlockHeader) (types.Hash, error) {
	out := new(HashHeaderResponse)
	if err := c.cc.Invoke(ctx, fullMethod("HashHeader"), &HeaderRequest{Header: *header}, out); err != nil {
		return types.Hash{}, err
	}
	return out.Hash, nil
}

func (c *Client) SubmitHeader(ctx context.Context, header *types.BlockHeader) (*SubmitHeaderResponse, error) {
	out := new(SubmitHeaderResponse)
	if err := c.cc.Invoke(ctx, fullMethod("SubmitHeader"), &HeaderRequest{Header: *header}, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) NextHeader(ctx context.Context, merkleRoot types.Hash, timestamp uint64) (*types.BlockHeader, error) {
	out := new(types.BlockHeader)
	req := &NextHeaderRequest{MerkleRoot: merkleRoot, Timestamp: timestamp}
	if err := c.cc.Invoke(ctx, fullMethod("NextHeader"), req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetHeaderByHash(ctx context.Context, hash types.Hash) (*types.Block, error) {
	out := new(types.Block)
	if err := c.cc.Invoke(ctx, fullMethod("GetHeaderByHash"), &GetHeaderByHashRequest{Hash: hash}, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetHeaderByIndex(ctx context.Context, index uint32) (*types.Block, error) {
	out := new(types.Block)
	if err := c.cc.Invoke(ctx, fullMethod("GetHeaderByIndex"), &GetHeaderByIndexRequest{Index: index}, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetChainInfo(ctx context.Context) (*ChainInfo, error) {
	out := new(ChainInfo)
	if err := c.cc.Invoke(ctx, fullMethod("GetChainInfo"), &GetChainInfoRequest{}, out); err != nil {
		return nil, err
	}
	return out, nil
}
