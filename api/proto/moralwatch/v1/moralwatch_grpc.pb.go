// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: moralwatch/v1/moralwatch.proto

package moralwatchv1

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
	MoralwatchService_Evaluate_FullMethodName     = "/moralwatch.v1.MoralwatchService/Evaluate"
	MoralwatchService_Reinitialize_FullMethodName = "/moralwatch.v1.MoralwatchService/Reinitialize"
	MoralwatchService_ReadTrail_FullMethodName    = "/moralwatch.v1.MoralwatchService/ReadTrail"
	MoralwatchService_Summary_FullMethodName      = "/moralwatch.v1.MoralwatchService/Summary"
	MoralwatchService_ListSessions_FullMethodName = "/moralwatch.v1.MoralwatchService/ListSessions"
)

// MoralwatchServiceClient is the client API for MoralwatchService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// MoralwatchService exposes the evaluation engine over gRPC.
type MoralwatchServiceClient interface {
	// Evaluate scores one input text for a session.
	Evaluate(ctx context.Context, in *EvalRequest, opts ...grpc.CallOption) (*EvalResponse, error)
	// Reinitialize creates a fresh ACTIVE session.
	Reinitialize(ctx context.Context, in *ReinitRequest, opts ...grpc.CallOption) (*ReinitResponse, error)
	// ReadTrail returns the audit records for a session, in order.
	ReadTrail(ctx context.Context, in *ReadTrailRequest, opts ...grpc.CallOption) (*ReadTrailResponse, error)
	// Summary aggregates a session's trail.
	Summary(ctx context.Context, in *SummaryRequest, opts ...grpc.CallOption) (*SummaryResponse, error)
	// ListSessions returns known sessions, newest first.
	ListSessions(ctx context.Context, in *ListSessionsRequest, opts ...grpc.CallOption) (*ListSessionsResponse, error)
}

type moralwatchServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMoralwatchServiceClient(cc grpc.ClientConnInterface) MoralwatchServiceClient {
	return &moralwatchServiceClient{cc}
}

func (c *moralwatchServiceClient) Evaluate(ctx context.Context, in *EvalRequest, opts ...grpc.CallOption) (*EvalResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EvalResponse)
	err := c.cc.Invoke(ctx, MoralwatchService_Evaluate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *moralwatchServiceClient) Reinitialize(ctx context.Context, in *ReinitRequest, opts ...grpc.CallOption) (*ReinitResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReinitResponse)
	err := c.cc.Invoke(ctx, MoralwatchService_Reinitialize_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *moralwatchServiceClient) ReadTrail(ctx context.Context, in *ReadTrailRequest, opts ...grpc.CallOption) (*ReadTrailResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReadTrailResponse)
	err := c.cc.Invoke(ctx, MoralwatchService_ReadTrail_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *moralwatchServiceClient) Summary(ctx context.Context, in *SummaryRequest, opts ...grpc.CallOption) (*SummaryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SummaryResponse)
	err := c.cc.Invoke(ctx, MoralwatchService_Summary_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *moralwatchServiceClient) ListSessions(ctx context.Context, in *ListSessionsRequest, opts ...grpc.CallOption) (*ListSessionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListSessionsResponse)
	err := c.cc.Invoke(ctx, MoralwatchService_ListSessions_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MoralwatchServiceServer is the server API for MoralwatchService service.
// All implementations must embed UnimplementedMoralwatchServiceServer
// for forward compatibility.
//
// MoralwatchService exposes the evaluation engine over gRPC.
type MoralwatchServiceServer interface {
	// Evaluate scores one input text for a session.
	Evaluate(context.Context, *EvalRequest) (*EvalResponse, error)
	// Reinitialize creates a fresh ACTIVE session.
	Reinitialize(context.Context, *ReinitRequest) (*ReinitResponse, error)
	// ReadTrail returns the audit records for a session, in order.
	ReadTrail(context.Context, *ReadTrailRequest) (*ReadTrailResponse, error)
	// Summary aggregates a session's trail.
	Summary(context.Context, *SummaryRequest) (*SummaryResponse, error)
	// ListSessions returns known sessions, newest first.
	ListSessions(context.Context, *ListSessionsRequest) (*ListSessionsResponse, error)
	mustEmbedUnimplementedMoralwatchServiceServer()
}

// UnimplementedMoralwatchServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedMoralwatchServiceServer struct{}

func (UnimplementedMoralwatchServiceServer) Evaluate(context.Context, *EvalRequest) (*EvalResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Evaluate not implemented")
}
func (UnimplementedMoralwatchServiceServer) Reinitialize(context.Context, *ReinitRequest) (*ReinitResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Reinitialize not implemented")
}
func (UnimplementedMoralwatchServiceServer) ReadTrail(context.Context, *ReadTrailRequest) (*ReadTrailResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ReadTrail not implemented")
}
func (UnimplementedMoralwatchServiceServer) Summary(context.Context, *SummaryRequest) (*SummaryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Summary not implemented")
}
func (UnimplementedMoralwatchServiceServer) ListSessions(context.Context, *ListSessionsRequest) (*ListSessionsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListSessions not implemented")
}
func (UnimplementedMoralwatchServiceServer) mustEmbedUnimplementedMoralwatchServiceServer() {}
func (UnimplementedMoralwatchServiceServer) testEmbeddedByValue()                           {}

// UnsafeMoralwatchServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to MoralwatchServiceServer will
// result in compilation errors.
type UnsafeMoralwatchServiceServer interface {
	mustEmbedUnimplementedMoralwatchServiceServer()
}

func RegisterMoralwatchServiceServer(s grpc.ServiceRegistrar, srv MoralwatchServiceServer) {
	// If the following call panics, it indicates UnimplementedMoralwatchServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&MoralwatchService_ServiceDesc, srv)
}

func _MoralwatchService_Evaluate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EvalRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MoralwatchServiceServer).Evaluate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MoralwatchService_Evaluate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MoralwatchServiceServer).Evaluate(ctx, req.(*EvalRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MoralwatchService_Reinitialize_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReinitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MoralwatchServiceServer).Reinitialize(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MoralwatchService_Reinitialize_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MoralwatchServiceServer).Reinitialize(ctx, req.(*ReinitRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MoralwatchService_ReadTrail_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReadTrailRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MoralwatchServiceServer).ReadTrail(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MoralwatchService_ReadTrail_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MoralwatchServiceServer).ReadTrail(ctx, req.(*ReadTrailRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MoralwatchService_Summary_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SummaryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MoralwatchServiceServer).Summary(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MoralwatchService_Summary_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MoralwatchServiceServer).Summary(ctx, req.(*SummaryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MoralwatchService_ListSessions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListSessionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MoralwatchServiceServer).ListSessions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MoralwatchService_ListSessions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MoralwatchServiceServer).ListSessions(ctx, req.(*ListSessionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MoralwatchService_ServiceDesc is the grpc.ServiceDesc for MoralwatchService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var MoralwatchService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "moralwatch.v1.MoralwatchService",
	HandlerType: (*MoralwatchServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Evaluate",
			Handler:    _MoralwatchService_Evaluate_Handler,
		},
		{
			MethodName: "Reinitialize",
			Handler:    _MoralwatchService_Reinitialize_Handler,
		},
		{
			MethodName: "ReadTrail",
			Handler:    _MoralwatchService_ReadTrail_Handler,
		},
		{
			MethodName: "Summary",
			Handler:    _MoralwatchService_Summary_Handler,
		},
		{
			MethodName: "ListSessions",
			Handler:    _MoralwatchService_ListSessions_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "moralwatch/v1/moralwatch.proto",
}
