package handler

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/fekuna/omnipos-storefront-service/internal/platform/rpc"
)

const CatalogServiceName = "omnipos.storefront.v1.CatalogService"

type CatalogServiceServer interface {
	ListProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListCategories(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&grpc.ServiceDesc{
		ServiceName: CatalogServiceName,
		HandlerType: (*CatalogServiceServer)(nil),
		Methods: []grpc.MethodDesc{
			rpc.MethodHandler(CatalogServiceName, "ListProducts", func(srv any) rpc.UnaryMethod {
				return srv.(CatalogServiceServer).ListProducts
			}),
			rpc.MethodHandler(CatalogServiceName, "GetProduct", func(srv any) rpc.UnaryMethod {
				return srv.(CatalogServiceServer).GetProduct
			}),
			rpc.MethodHandler(CatalogServiceName, "ListCategories", func(srv any) rpc.UnaryMethod {
				return srv.(CatalogServiceServer).ListCategories
			}),
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "omnipos/storefront/v1/catalog.proto",
	}, srv)
}
