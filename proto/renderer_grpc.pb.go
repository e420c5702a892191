// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: renderer.proto

package proto

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	RendererService_RenderPage_FullMethodName        = "/renderer.v1.RendererService/RenderPage"
	RendererService_Screenshot_FullMethodName        = "/renderer.v1.RendererService/Screenshot"
	RendererService_ReplayInteraction_FullMethodName = "/renderer.v1.RendererService/ReplayInteraction"
)

// RendererServiceClient is the client API for RendererService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// RendererService is implemented by the headless-browser sidecar. It
// renders pages with JavaScript executed, captures screenshots, and
// replays recorded interactions for functional verification.
type RendererServiceClient interface {
	RenderPage(ctx context.Context, in *RenderPageRequest, opts ...grpc.CallOption) (*RenderPageResponse, error)
	Screenshot(ctx context.Context, in *ScreenshotRequest, opts ...grpc.CallOption) (*ScreenshotResponse, error)
	ReplayInteraction(ctx context.Context, in *ReplayInteractionRequest, opts ...grpc.CallOption) (*ReplayInteractionResponse, error)
}

type rendererServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRendererServiceClient(cc grpc.ClientConnInterface) RendererServiceClient {
	return &rendererServiceClient{cc}
}

func (c *rendererServiceClient) RenderPage(ctx context.Context, in *RenderPageRequest, opts ...grpc.CallOption) (*RenderPageResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RenderPageResponse)
	err := c.cc.Invoke(ctx, RendererService_RenderPage_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rendererServiceClient) Screenshot(ctx context.Context, in *ScreenshotRequest, opts ...grpc.CallOption) (*ScreenshotResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ScreenshotResponse)
	err := c.cc.Invoke(ctx, RendererService_Screenshot_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rendererServiceClient) ReplayInteraction(ctx context.Context, in *ReplayInteractionRequest, opts ...grpc.CallOption) (*ReplayInteractionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReplayInteractionResponse)
	err := c.cc.Invoke(ctx, RendererService_ReplayInteraction_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RendererServiceServer is the server API for RendererService service.
// All implementations must embed UnimplementedRendererServiceServer
// for forward compatibility.
//
// RendererService is implemented by the headless-browser sidecar. It
// renders pages with JavaScript executed, captures screenshots, and
// replays recorded interactions for functional verification.
type RendererServiceServer interface {
	RenderPage(context.Context, *RenderPageRequest) (*RenderPageResponse, error)
	Screenshot(context.Context, *ScreenshotRequest) (*ScreenshotResponse, error)
	ReplayInteraction(context.Context, *ReplayInteractionRequest) (*ReplayInteractionResponse, error)
	mustEmbedUnimplementedRendererServiceServer()
}

// UnimplementedRendererServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedRendererServiceServer struct{}

func (UnimplementedRendererServiceServer) RenderPage(context.Context, *RenderPageRequest) (*RenderPageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RenderPage not implemented")
}
func (UnimplementedRendererServiceServer) Screenshot(context.Context, *ScreenshotRequest) (*ScreenshotResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Screenshot not implemented")
}
func (UnimplementedRendererServiceServer) ReplayInteraction(context.Context, *ReplayInteractionRequest) (*ReplayInteractionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ReplayInteraction not implemented")
}
func (UnimplementedRendererServiceServer) mustEmbedUnimplementedRendererServiceServer() {}
func (UnimplementedRendererServiceServer) testEmbeddedByValue()                         {}

// UnsafeRendererServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to RendererServiceServer will
// result in compilation errors.
type UnsafeRendererServiceServer interface {
	mustEmbedUnimplementedRendererServiceServer()
}

func RegisterRendererServiceServer(s grpc.ServiceRegistrar, srv RendererServiceServer) {
	// If the following call panics, it indicates UnimplementedRendererServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&RendererService_ServiceDesc, srv)
}

func _RendererService_RenderPage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RenderPageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RendererServiceServer).RenderPage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RendererService_RenderPage_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RendererServiceServer).RenderPage(ctx, req.(*RenderPageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RendererService_Screenshot_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScreenshotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RendererServiceServer).Screenshot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RendererService_Screenshot_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RendererServiceServer).Screenshot(ctx, req.(*ScreenshotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RendererService_ReplayInteraction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReplayInteractionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RendererServiceServer).ReplayInteraction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RendererService_ReplayInteraction_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RendererServiceServer).ReplayInteraction(ctx, req.(*ReplayInteractionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RendererService_ServiceDesc is the grpc.ServiceDesc for RendererService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var RendererService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "renderer.v1.RendererService",
	HandlerType: (*RendererServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RenderPage",
			Handler:    _RendererService_RenderPage_Handler,
		},
		{
			MethodName: "Screenshot",
			Handler:    _RendererService_Screenshot_Handler,
		},
		{
			MethodName: "ReplayInteraction",
			Handler:    _RendererService_ReplayInteraction_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "renderer.proto",
}
