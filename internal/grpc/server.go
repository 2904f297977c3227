package grpc

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/yourusername/hdrchain/internal/headerchain"
	"github.com/yourusername/hdrchain/internal/storage"
	"github.com/yourusername/hdrchain/pkg/types"
)

// Server implements HeaderServiceServer over a header chain.
type Server struct {
	hc *headerchain.HeaderChain

	grpcServer *grpc.Server

	mu         sync.RWMutex
	externalIP string
}

// NewServer creates a new gRPC server with the header service registered.
func NewServer(hc *headerchain.HeaderChain) *Server {
	s := &Server{hc: hc, grpcServer: grpc.NewServer()}
	RegisterHeaderServiceServer(s.grpcServer, s)
	return s
}

// SetExternalIP records the address reported by GetChainInfo.
func (s *Server) SetExternalIP(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.externalIP = ip
}

// Start listens on address and serves until Stop is called.
func (s *Server) Start(address string) error {
	lis, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	return s.Serve(lis)
}

// Serve serves on an existing listener. After Stop it closes lis and
// returns grpc.ErrServerStopped.
func (s *Server) Serve(lis net.Listener) error {
	zap.S().Infow("gRPC server listening", "address", lis.Addr().String())
	return s.grpcServer.Serve(lis)
}

// Stop stops the gRPC server
func (s *Server) Stop() {
	s.grpcServer.GracefulStop()
}

func (s *Server) EncodeHeader(_ context.Context, req *HeaderRequest) (*EncodeHeaderResponse, error) {
	encoded := req.Header.ToBytes()
	return &EncodeHeaderResponse{
		Encoded: hex.EncodeToString(encoded),
		Length:  len(encoded),
	}, nil
}

func (s *Server) HashHeader(_ context.Context, req *HeaderRequest) (*HashHeaderResponse, error) {
	return &HashHeaderResponse{Hash: req.Header.Hash()}, nil
}

func (s *Server) SubmitHeader(_ context.Context, req *HeaderRequest) (*SubmitHeaderResponse, error) {
	hash, err := s.hc.Append(&req.Header)
	if err != nil {
		zap.S().Warnw("Rejected header", "index", req.Header.Index, "error", err)
		return nil, toStatus(err)
	}
	return &SubmitHeaderResponse{Hash: hash, Height: s.hc.Height()}, nil
}

func (s *Server) NextHeader(_ context.Context, req *NextHeaderRequest) (*types.BlockHeader, error) {
	header, err := s.hc.NextHeader(req.MerkleRoot, req.Timestamp)
	if err != nil {
		return nil, toStatus(err)
	}
	return header, nil
}

func (s *Server) GetHeaderByHash(_ context.Context, req *GetHeaderByHashRequest) (*types.Block, error) {
	block, err := s.hc.HeaderByHash(req.Hash)
	if err != nil {
		return nil, toStatus(err)
	}
	return block, nil
}

func (s *Server) GetHeaderByIndex(_ context.Context, req *GetHeaderByIndexRequest) (*types.Block, error) {
	block, err := s.hc.HeaderByIndex(req.Index)
	if err != nil {
		return nil, toStatus(err)
	}
	return block, nil
}

func (s *Server) GetChainInfo(_ context.Context, _ *GetChainInfoRequest) (*ChainInfo, error) {
	info := &ChainInfo{
		Height:         s.hc.Height(),
		DifficultyBits: s.hc.DifficultyBits(),
	}

	tip, err := s.hc.Tip()
	switch {
	case err == nil:
		info.TipHash = tip.Hash
	case !errors.Is(err, headerchain.ErrEmptyChain):
		return nil, toStatus(err)
	}

	s.mu.RLock()
	info.ExternalIP = s.externalIP
	s.mu.RUnlock()

	return info, nil
}

// toStatus maps chain and storage errors to gRPC status codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, headerchain.ErrEmptyChain):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, headerchain.ErrDuplicateHeader):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, headerchain.ErrIndexMismatch), errors.Is(err, headerchain.ErrPrevHashMismatch):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, headerchain.ErrInsufficientWork):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
