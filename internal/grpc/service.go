package grpc

import (
	"context"
	"fmt"

	"github.com/yourusername/hdrchain/pkg/types"
	"google.golang.org/grpc"
)

const serviceName = "hdrchain.v1.HeaderService"

// HeaderServiceServer is the server-side interface of the header service.
type HeaderServiceServer interface {
	EncodeHeader(context.Context, *HeaderRequest) (*EncodeHeaderResponse, error)
	HashHeader(context.Context, *HeaderRequest) (*HashHeaderResponse, error)
	SubmitHeader(context.Context, *HeaderRequest) (*SubmitHeaderResponse, error)
	NextHeader(context.Context, *NextHeaderRequest) (*types.BlockHeader, error)
	GetHeaderByHash(context.Context, *GetHeaderByHashRequest) (*types.Block, error)
	GetHeaderByIndex(context.Context, *GetHeaderByIndexRequest) (*types.Block, error)
	GetChainInfo(context.Context, *GetChainInfoRequest) (*ChainInfo, error)
}

// RegisterHeaderServiceServer registers srv on a gRPC server.
func RegisterHeaderServiceServer(s *grpc.Server, srv HeaderServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

// fullMethod builds the full gRPC method path.
func fullMethod(method string) string {
	return fmt.Sprintf("/%s/%s", serviceName, method)
}

// unaryMethod builds a MethodDesc that decodes Req, runs any installed
// interceptor and dispatches to call.
func unaryMethod[Req, Resp any](method string, call func(HeaderServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			req := new(Req)
			if err := dec(req); err != nil {
				return nil, err
			}
			s := srv.(HeaderServiceServer)
			if interceptor == nil {
				return call(s, ctx, req)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(method)}
			return interceptor(ctx, req, info, func(ctx context.Context, r interface{}) (interface{}, error) {
				return call(s, ctx, r.(*Req))
			})
		},
	}
}

// serviceDesc is the manual gRPC service descriptor for the header service.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*HeaderServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("EncodeHeader", HeaderServiceServer.EncodeHeader),
		unaryMethod("HashHeader", HeaderServiceServer.HashHeader),
		unaryMethod("SubmitHeader", HeaderServiceServer.SubmitHeader),
		unaryMethod("NextHeader", HeaderServiceServer.NextHeader),
		unaryMethod("GetHeaderByHash", HeaderServiceServer.GetHeaderByHash),
		unaryMethod("GetHeaderByIndex", HeaderServiceServer.GetHeaderByIndex),
		unaryMethod("GetChainInfo", HeaderServiceServer.GetChainInfo),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "hdrchain/v1/header_service.json",
}
