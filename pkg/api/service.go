package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "pfs.PFSService"

// PFSServiceClient is the client API for the PFS service.
type PFSServiceClient interface {
	GetRoot(ctx context.Context, in *GetRootRequest, opts ...grpc.CallOption) (*GetRootResponse, error)
	GetAttr(ctx context.Context, in *GetAttrRequest, opts ...grpc.CallOption) (*GetAttrResponse, error)
	Lookup(ctx context.Context, in *LookupRequest, opts ...grpc.CallOption) (*LookupResponse, error)
	ReadDir(ctx context.Context, in *ReadDirRequest, opts ...grpc.CallOption) (*ReadDirResponse, error)
	Open(ctx context.Context, in *OpenRequest, opts ...grpc.CallOption) (*OpenResponse, error)
	Close(ctx context.Context, in *CloseRequest, opts ...grpc.CallOption) (*CloseResponse, error)
	Read(ctx context.Context, in *ReadRequest, opts ...grpc.CallOption) (*ReadResponse, error)
	Write(ctx context.Context, in *WriteRequest, opts ...grpc.CallOption) (*WriteResponse, error)
	Readlink(ctx context.Context, in *ReadlinkRequest, opts ...grpc.CallOption) (*ReadlinkResponse, error)
}

type pfsServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPFSServiceClient creates a client stub over the connection.
func NewPFSServiceClient(cc grpc.ClientConnInterface) PFSServiceClient {
	return &pfsServiceClient{cc}
}

func (c *pfsServiceClient) GetRoot(ctx context.Context, in *GetRootRequest, opts ...grpc.CallOption) (*GetRootResponse, error) {
	out := new(GetRootResponse)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/GetRoot", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pfsServiceClient) GetAttr(ctx context.Context, in *GetAttrRequest, opts ...grpc.CallOption) (*GetAttrResponse, error) {
	out := new(GetAttrResponse)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/GetAttr", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pfsServiceClient) Lookup(ctx context.Context, in *LookupRequest, opts ...grpc.CallOption) (*LookupResponse, error) {
	out := new(LookupResponse)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/Lookup", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pfsServiceClient) ReadDir(ctx context.Context, in *ReadDirRequest, opts ...grpc.CallOption) (*ReadDirResponse, error) {
	out := new(ReadDirResponse)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/ReadDir", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pfsServiceClient) Open(ctx context.Context, in *OpenRequest, opts ...grpc.CallOption) (*OpenResponse, error) {
	out := new(OpenResponse)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/Open", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pfsServiceClient) Close(ctx context.Context, in *CloseRequest, opts ...grpc.CallOption) (*CloseResponse, error) {
	out := new(CloseResponse)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/Close", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pfsServiceClient) Read(ctx context.Context, in *ReadRequest, opts ...grpc.CallOption) (*ReadResponse, error) {
	out := new(ReadResponse)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/Read", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pfsServiceClient) Write(ctx context.Context, in *WriteRequest, opts ...grpc.CallOption) (*WriteResponse, error) {
	out := new(WriteResponse)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/Write", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pfsServiceClient) Readlink(ctx context.Context, in *ReadlinkRequest, opts ...grpc.CallOption) (*ReadlinkResponse, error) {
	out := new(ReadlinkResponse)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/Readlink", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// PFSServiceServer is the server API for the PFS service.
type PFSServiceServer interface {
	GetRoot(ctx context.Context, in *GetRootRequest) (*GetRootResponse, error)
	GetAttr(ctx context.Context, in *GetAttrRequest) (*GetAttrResponse, error)
	Lookup(ctx context.Context, in *LookupRequest) (*LookupResponse, error)
	ReadDir(ctx context.Context, in *ReadDirRequest) (*ReadDirResponse, error)
	Open(ctx context.Context, in *OpenRequest) (*OpenResponse, error)
	Close(ctx context.Context, in *CloseRequest) (*CloseResponse, error)
	Read(ctx context.Context, in *ReadRequest) (*ReadResponse, error)
	Write(ctx context.Context, in *WriteRequest) (*WriteResponse, error)
	Readlink(ctx context.Context, in *ReadlinkRequest) (*ReadlinkResponse, error)
}

// UnimplementedPFSServiceServer can be embedded for forward
// compatibility; every method fails with codes.Unimplemented.
type UnimplementedPFSServiceServer struct{}

func (UnimplementedPFSServiceServer) GetRoot(context.Context, *GetRootRequest) (*GetRootResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRoot not implemented")
}
func (UnimplementedPFSServiceServer) GetAttr(context.Context, *GetAttrRequest) (*GetAttrResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAttr not implemented")
}
func (UnimplementedPFSServiceServer) Lookup(context.Context, *LookupRequest) (*LookupResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Lookup not implemented")
}
func (UnimplementedPFSServiceServer) ReadDir(context.Context, *ReadDirRequest) (*ReadDirResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReadDir not implemented")
}
func (UnimplementedPFSServiceServer) Open(context.Context, *OpenRequest) (*OpenResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Open not implemented")
}
func (UnimplementedPFSServiceServer) Close(context.Context, *CloseRequest) (*CloseResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Close not implemented")
}
func (UnimplementedPFSServiceServer) Read(context.Context, *ReadRequest) (*ReadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Read not implemented")
}
func (UnimplementedPFSServiceServer) Write(context.Context, *WriteRequest) (*WriteResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Write not implemented")
}
func (UnimplementedPFSServiceServer) Readlink(context.Context, *ReadlinkRequest) (*ReadlinkResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Readlink not implemented")
}

// RegisterPFSServiceServer registers the service implementation.
func RegisterPFSServiceServer(s grpc.ServiceRegistrar, srv PFSServiceServer) {
	s.RegisterService(&PFSService_ServiceDesc, srv)
}

func _PFSService_GetRoot_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRootRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PFSServiceServer).GetRoot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/GetRoot"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PFSServiceServer).GetRoot(ctx, req.(*GetRootRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PFSService_GetAttr_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAttrRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PFSServiceServer).GetAttr(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/GetAttr"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PFSServiceServer).GetAttr(ctx, req.(*GetAttrRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PFSService_Lookup_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LookupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PFSServiceServer).Lookup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/Lookup"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PFSServiceServer).Lookup(ctx, req.(*LookupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PFSService_ReadDir_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReadDirRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PFSServiceServer).ReadDir(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/ReadDir"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PFSServiceServer).ReadDir(ctx, req.(*ReadDirRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PFSService_Open_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(OpenRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PFSServiceServer).Open(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/Open"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PFSServiceServer).Open(ctx, req.(*OpenRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PFSService_Close_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CloseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PFSServiceServer).Close(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/Close"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PFSServiceServer).Close(ctx, req.(*CloseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PFSService_Read_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PFSServiceServer).Read(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/Read"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PFSServiceServer).Read(ctx, req.(*ReadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PFSService_Write_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(WriteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PFSServiceServer).Write(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/Write"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PFSServiceServer).Write(ctx, req.(*WriteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PFSService_Readlink_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReadlinkRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PFSServiceServer).Readlink(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/Readlink"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PFSServiceServer).Readlink(ctx, req.(*ReadlinkRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PFSService_ServiceDesc is the service descriptor registered with
// gRPC.
var PFSService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PFSServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetRoot", Handler: _PFSService_GetRoot_Handler},
		{MethodName: "GetAttr", Handler: _PFSService_GetAttr_Handler},
		{MethodName: "Lookup", Handler: _PFSService_Lookup_Handler},
		{MethodName: "ReadDir", Handler: _PFSService_ReadDir_Handler},
		{MethodName: "Open", Handler: _PFSService_Open_Handler},
		{MethodName: "Close", Handler: _PFSService_Close_Handler},
		{MethodName: "Read", Handler: _PFSService_Read_Handler},
		{MethodName: "Write", Handler: _PFSService_Write_Handler},
		{MethodName: "Readlink", Handler: _PFSService_Readlink_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pfs.proto",
}
