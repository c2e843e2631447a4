// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: clearance/v1/clearance.proto

package clearancev1

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
	ClearanceService_CreateFaculty_FullMethodName      = "/clearance.v1.ClearanceService/CreateFaculty"
	ClearanceService_CreateClearanceSet_FullMethodName = "/clearance.v1.ClearanceService/CreateClearanceSet"
	ClearanceService_UploadDocument_FullMethodName     = "/clearance.v1.ClearanceService/UploadDocument"
	ClearanceService_UploadDirectory_FullMethodName    = "/clearance.v1.ClearanceService/UploadDirectory"
	ClearanceService_ListDocuments_FullMethodName      = "/clearance.v1.ClearanceService/ListDocuments"
	ClearanceService_PredictSet_FullMethodName         = "/clearance.v1.ClearanceService/PredictSet"
	ClearanceService_EvaluateSet_FullMethodName        = "/clearance.v1.ClearanceService/EvaluateSet"
	ClearanceService_ExportSetReport_FullMethodName    = "/clearance.v1.ClearanceService/ExportSetReport"
)

// ClearanceServiceClient is the client API for ClearanceService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ClearanceService exposes the faculty clearance document pipeline.
type ClearanceServiceClient interface {
	CreateFaculty(ctx context.Context, in *CreateFacultyRequest, opts ...grpc.CallOption) (*CreateFacultyResponse, error)
	CreateClearanceSet(ctx context.Context, in *CreateClearanceSetRequest, opts ...grpc.CallOption) (*CreateClearanceSetResponse, error)
	UploadDocument(ctx context.Context, in *UploadDocumentRequest, opts ...grpc.CallOption) (*UploadDocumentResponse, error)
	UploadDirectory(ctx context.Context, in *UploadDirectoryRequest, opts ...grpc.CallOption) (*UploadDirectoryResponse, error)
	ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error)
	PredictSet(ctx context.Context, in *PredictSetRequest, opts ...grpc.CallOption) (*PredictSetResponse, error)
	EvaluateSet(ctx context.Context, in *EvaluateSetRequest, opts ...grpc.CallOption) (*EvaluateSetResponse, error)
	ExportSetReport(ctx context.Context, in *ExportSetReportRequest, opts ...grpc.CallOption) (*ExportSetReportResponse, error)
}

type clearanceServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewClearanceServiceClient(cc grpc.ClientConnInterface) ClearanceServiceClient {
	return &clearanceServiceClient{cc}
}

func (c *clearanceServiceClient) CreateFaculty(ctx context.Context, in *CreateFacultyRequest, opts ...grpc.CallOption) (*CreateFacultyResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateFacultyResponse)
	err := c.cc.Invoke(ctx, ClearanceService_CreateFaculty_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clearanceServiceClient) CreateClearanceSet(ctx context.Context, in *CreateClearanceSetRequest, opts ...grpc.CallOption) (*CreateClearanceSetResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateClearanceSetResponse)
	err := c.cc.Invoke(ctx, ClearanceService_CreateClearanceSet_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clearanceServiceClient) UploadDocument(ctx context.Context, in *UploadDocumentRequest, opts ...grpc.CallOption) (*UploadDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UploadDocumentResponse)
	err := c.cc.Invoke(ctx, ClearanceService_UploadDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clearanceServiceClient) UploadDirectory(ctx context.Context, in *UploadDirectoryRequest, opts ...grpc.CallOption) (*UploadDirectoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UploadDirectoryResponse)
	err := c.cc.Invoke(ctx, ClearanceService_UploadDirectory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clearanceServiceClient) ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListDocumentsResponse)
	err := c.cc.Invoke(ctx, ClearanceService_ListDocuments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clearanceServiceClient) PredictSet(ctx context.Context, in *PredictSetRequest, opts ...grpc.CallOption) (*PredictSetResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PredictSetResponse)
	err := c.cc.Invoke(ctx, ClearanceService_PredictSet_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clearanceServiceClient) EvaluateSet(ctx context.Context, in *EvaluateSetRequest, opts ...grpc.CallOption) (*EvaluateSetResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EvaluateSetResponse)
	err := c.cc.Invoke(ctx, ClearanceService_EvaluateSet_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *clearanceServiceClient) ExportSetReport(ctx context.Context, in *ExportSetReportRequest, opts ...grpc.CallOption) (*ExportSetReportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportSetReportResponse)
	err := c.cc.Invoke(ctx, ClearanceService_ExportSetReport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ClearanceServiceServer is the server API for ClearanceService service.
// All implementations must embed UnimplementedClearanceServiceServer
// for forward compatibility.
//
// ClearanceService exposes the faculty clearance document pipeline.
type ClearanceServiceServer interface {
	CreateFaculty(context.Context, *CreateFacultyRequest) (*CreateFacultyResponse, error)
	CreateClearanceSet(context.Context, *CreateClearanceSetRequest) (*CreateClearanceSetResponse, error)
	UploadDocument(context.Context, *UploadDocumentRequest) (*UploadDocumentResponse, error)
	UploadDirectory(context.Context, *UploadDirectoryRequest) (*UploadDirectoryResponse, error)
	ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error)
	PredictSet(context.Context, *PredictSetRequest) (*PredictSetResponse, error)
	EvaluateSet(context.Context, *EvaluateSetRequest) (*EvaluateSetResponse, error)
	ExportSetReport(context.Context, *ExportSetReportRequest) (*ExportSetReportResponse, error)
	mustEmbedUnimplementedClearanceServiceServer()
}

// UnimplementedClearanceServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedClearanceServiceServer struct{}

func (UnimplementedClearanceServiceServer) CreateFaculty(context.Context, *CreateFacultyRequest) (*CreateFacultyResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateFaculty not implemented")
}
func (UnimplementedClearanceServiceServer) CreateClearanceSet(context.Context, *CreateClearanceSetRequest) (*CreateClearanceSetResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateClearanceSet not implemented")
}
func (UnimplementedClearanceServiceServer) UploadDocument(context.Context, *UploadDocumentRequest) (*UploadDocumentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UploadDocument not implemented")
}
func (UnimplementedClearanceServiceServer) UploadDirectory(context.Context, *UploadDirectoryRequest) (*UploadDirectoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UploadDirectory not implemented")
}
func (UnimplementedClearanceServiceServer) ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListDocuments not implemented")
}
func (UnimplementedClearanceServiceServer) PredictSet(context.Context, *PredictSetRequest) (*PredictSetResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PredictSet not implemented")
}
func (UnimplementedClearanceServiceServer) EvaluateSet(context.Context, *EvaluateSetRequest) (*EvaluateSetResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method EvaluateSet not implemented")
}
func (UnimplementedClearanceServiceServer) ExportSetReport(context.Context, *ExportSetReportRequest) (*ExportSetReportResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportSetReport not implemented")
}
func (UnimplementedClearanceServiceServer) mustEmbedUnimplementedClearanceServiceServer() {}
func (UnimplementedClearanceServiceServer) testEmbeddedByValue()                          {}

// UnsafeClearanceServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ClearanceServiceServer will
// result in compilation errors.
type UnsafeClearanceServiceServer interface {
	mustEmbedUnimplementedClearanceServiceServer()
}

func RegisterClearanceServiceServer(s grpc.ServiceRegistrar, srv ClearanceServiceServer) {
	// If the following call panics, it indicates UnimplementedClearanceServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ClearanceService_ServiceDesc, srv)
}

func _ClearanceService_CreateFaculty_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateFacultyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClearanceServiceServer).CreateFaculty(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ClearanceService_CreateFaculty_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClearanceServiceServer).CreateFaculty(ctx, req.(*CreateFacultyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClearanceService_CreateClearanceSet_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateClearanceSetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClearanceServiceServer).CreateClearanceSet(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ClearanceService_CreateClearanceSet_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClearanceServiceServer).CreateClearanceSet(ctx, req.(*CreateClearanceSetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClearanceService_UploadDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UploadDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClearanceServiceServer).UploadDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ClearanceService_UploadDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClearanceServiceServer).UploadDocument(ctx, req.(*UploadDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClearanceService_UploadDirectory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UploadDirectoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClearanceServiceServer).UploadDirectory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ClearanceService_UploadDirectory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClearanceServiceServer).UploadDirectory(ctx, req.(*UploadDirectoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClearanceService_ListDocuments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDocumentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClearanceServiceServer).ListDocuments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ClearanceService_ListDocuments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClearanceServiceServer).ListDocuments(ctx, req.(*ListDocumentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClearanceService_PredictSet_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PredictSetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClearanceServiceServer).PredictSet(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ClearanceService_PredictSet_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClearanceServiceServer).PredictSet(ctx, req.(*PredictSetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClearanceService_EvaluateSet_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EvaluateSetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClearanceServiceServer).EvaluateSet(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ClearanceService_EvaluateSet_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClearanceServiceServer).EvaluateSet(ctx, req.(*EvaluateSetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClearanceService_ExportSetReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportSetReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClearanceServiceServer).ExportSetReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ClearanceService_ExportSetReport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClearanceServiceServer).ExportSetReport(ctx, req.(*ExportSetReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ClearanceService_ServiceDesc is the grpc.ServiceDesc for ClearanceService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ClearanceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "clearance.v1.ClearanceService",
	HandlerType: (*ClearanceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateFaculty",
			Handler:    _ClearanceService_CreateFaculty_Handler,
		},
		{
			MethodName: "CreateClearanceSet",
			Handler:    _ClearanceService_CreateClearanceSet_Handler,
		},
		{
			MethodName: "UploadDocument",
			Handler:    _ClearanceService_UploadDocument_Handler,
		},
		{
			MethodName: "UploadDirectory",
			Handler:    _ClearanceService_UploadDirectory_Handler,
		},
		{
			MethodName: "ListDocuments",
			Handler:    _ClearanceService_ListDocuments_Handler,
		},
		{
			MethodName: "PredictSet",
			Handler:    _ClearanceService_PredictSet_Handler,
		},
		{
			MethodName: "EvaluateSet",
			Handler:    _ClearanceService_EvaluateSet_Handler,
		},
		{
			MethodName: "ExportSetReport",
			Handler:    _ClearanceService_ExportSetReport_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "clearance/v1/clearance.proto",
}

const (
	ClassifyService_ClassifyFlags_FullMethodName = "/clearance.v1.ClassifyService/ClassifyFlags"
)

// ClassifyServiceClient is the client API for ClassifyService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ClassifyService answers flag-based label predictions from the trained
// multi-label model.
type ClassifyServiceClient interface {
	ClassifyFlags(ctx context.Context, in *ClassifyFlagsRequest, opts ...grpc.CallOption) (*ClassifyFlagsResponse, error)
}

type classifyServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewClassifyServiceClient(cc grpc.ClientConnInterface) ClassifyServiceClient {
	return &classifyServiceClient{cc}
}

func (c *classifyServiceClient) ClassifyFlags(ctx context.Context, in *ClassifyFlagsRequest, opts ...grpc.CallOption) (*ClassifyFlagsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ClassifyFlagsResponse)
	err := c.cc.Invoke(ctx, ClassifyService_ClassifyFlags_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ClassifyServiceServer is the server API for ClassifyService service.
// All implementations must embed UnimplementedClassifyServiceServer
// for forward compatibility.
//
// ClassifyService answers flag-based label predictions from the trained
// multi-label model.
type ClassifyServiceServer interface {
	ClassifyFlags(context.Context, *ClassifyFlagsRequest) (*ClassifyFlagsResponse, error)
	mustEmbedUnimplementedClassifyServiceServer()
}

// UnimplementedClassifyServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedClassifyServiceServer struct{}

func (UnimplementedClassifyServiceServer) ClassifyFlags(context.Context, *ClassifyFlagsRequest) (*ClassifyFlagsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ClassifyFlags not implemented")
}
func (UnimplementedClassifyServiceServer) mustEmbedUnimplementedClassifyServiceServer() {}
func (UnimplementedClassifyServiceServer) testEmbeddedByValue()                         {}

// UnsafeClassifyServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ClassifyServiceServer will
// result in compilation errors.
type UnsafeClassifyServiceServer interface {
	mustEmbedUnimplementedClassifyServiceServer()
}

func RegisterClassifyServiceServer(s grpc.ServiceRegistrar, srv ClassifyServiceServer) {
	// If the following call panics, it indicates UnimplementedClassifyServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ClassifyService_ServiceDesc, srv)
}

func _ClassifyService_ClassifyFlags_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClassifyFlagsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClassifyServiceServer).ClassifyFlags(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ClassifyService_ClassifyFlags_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClassifyServiceServer).ClassifyFlags(ctx, req.(*ClassifyFlagsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ClassifyService_ServiceDesc is the grpc.ServiceDesc for ClassifyService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ClassifyService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "clearance.v1.ClassifyService",
	HandlerType: (*ClassifyServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ClassifyFlags",
			Handler:    _ClassifyService_ClassifyFlags_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "clearance/v1/clearance.proto",
}
