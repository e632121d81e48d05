package handler

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/fekuna/omnipos-storefront-service/internal/platform/rpc"
)

const CartServiceName = "omnipos.storefront.v1.CartService"

type CartServiceServer interface {
	Resolve(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	AddToCart(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

func RegisterCartServiceServer(s grpc.ServiceRegistrar, srv CartServiceServer) {
	s.RegisterService(&grpc.ServiceDesc{
		ServiceName: CartServiceName,
		HandlerType: (*CartServiceServer)(nil),
		Methods: []grpc.MethodDesc{
			rpc.MethodHandler(CartServiceName, "Resolve", func(srv any) rpc.UnaryMethod {
				return srv.(CartServiceServer).Resolve
			}),
			rpc.MethodHandler(CartServiceName, "AddToCart", func(srv any) rpc.UnaryMethod {
				return srv.(CartServiceServer).AddToCart
			}),
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "omnipos/storefront/v1/cart.proto",
	}, srv)
}
