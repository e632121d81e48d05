package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// UnaryMethod is a unary RPC taking and returning a Struct.
type UnaryMethod func(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)

// MethodHandler adapts a method lookup into a grpc.MethodDesc handler,
// running it through the server's interceptor chain like generated code.
func MethodHandler(service, name string, pick func(srv any) UnaryMethod) grpc.MethodDesc {
	fullMethod := "/" + service + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			method := pick(srv)
			if interceptor == nil {
				return method(ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return method(ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
