// Package pb holds the messages and gRPC bindings for isolation.proto,
// laid out the way protoc-gen-go lays them out.
package pb

import (
	fmt "fmt"

	proto "github.com/golang/protobuf/proto"
	context "golang.org/x/net/context"
	grpc "google.golang.org/grpc"
)

// Reference imports to suppress errors if they are not otherwise used.
var _ = proto.Marshal
var _ = fmt.Errorf

// This is a compile-time assertion to ensure that this file is
// compatible with the proto package it is being compiled against.
const _ = proto.ProtoPackageIsVersion2 // please upgrade the proto package

type AnalyzeRequest struct {
	// IPN
	Position             string   `protobuf:"bytes,1,opt,name=position,proto3" json:"position,omitempty"`
	Depth                int32    `protobuf:"varint,2,opt,name=depth,proto3" json:"depth,omitempty"`
	Strategy             string   `protobuf:"bytes,3,opt,name=strategy,proto3" json:"strategy,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *AnalyzeRequest) Reset()         { *m = AnalyzeRequest{} }
func (m *AnalyzeRequest) String() string { return proto.CompactTextString(m) }
func (*AnalyzeRequest) ProtoMessage()    {}
func (m *AnalyzeRequest) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_AnalyzeRequest.Unmarshal(m, b)
}
func (m *AnalyzeRequest) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_AnalyzeRequest.Marshal(b, m, deterministic)
}
func (dst *AnalyzeRequest) XXX_Merge(src proto.Message) {
	xxx_messageInfo_AnalyzeRequest.Merge(dst, src)
}
func (m *AnalyzeRequest) XXX_Size() int {
	return xxx_messageInfo_AnalyzeRequest.Size(m)
}
func (m *AnalyzeRequest) XXX_DiscardUnknown() {
	xxx_messageInfo_AnalyzeRequest.DiscardUnknown(m)
}

var xxx_messageInfo_AnalyzeRequest proto.InternalMessageInfo

func (m *AnalyzeRequest) GetPosition() string {
	if m != nil {
		return m.Position
	}
	return ""
}

func (m *AnalyzeRequest) GetDepth() int32 {
	if m != nil {
		return m.Depth
	}
	return 0
}

func (m *AnalyzeRequest) GetStrategy() string {
	if m != nil {
		return m.Strategy
	}
	return ""
}

type AnalyzeResponse struct {
	Move                 string   `protobuf:"bytes,1,opt,name=move,proto3" json:"move,omitempty"`
	Value                int64    `protobuf:"varint,2,opt,name=value,proto3" json:"value,omitempty"`
	Depth                int32    `protobuf:"varint,3,opt,name=depth,proto3" json:"depth,omitempty"`
	Visited              uint64   `protobuf:"varint,4,opt,name=visited,proto3" json:"visited,omitempty"`
	Evaluated            uint64   `protobuf:"varint,5,opt,name=evaluated,proto3" json:"evaluated,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *AnalyzeResponse) Reset()         { *m = AnalyzeResponse{} }
func (m *AnalyzeResponse) String() string { return proto.CompactTextString(m) }
func (*AnalyzeResponse) ProtoMessage()    {}
func (m *AnalyzeResponse) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_AnalyzeResponse.Unmarshal(m, b)
}
func (m *AnalyzeResponse) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_AnalyzeResponse.Marshal(b, m, deterministic)
}
func (dst *AnalyzeResponse) XXX_Merge(src proto.Message) {
	xxx_messageInfo_AnalyzeResponse.Merge(dst, src)
}
func (m *AnalyzeResponse) XXX_Size() int {
	return xxx_messageInfo_AnalyzeResponse.Size(m)
}
func (m *AnalyzeResponse) XXX_DiscardUnknown() {
	xxx_messageInfo_AnalyzeResponse.DiscardUnknown(m)
}

var xxx_messageInfo_AnalyzeResponse proto.InternalMessageInfo

func (m *AnalyzeResponse) GetMove() string {
	if m != nil {
		return m.Move
	}
	return ""
}

func (m *AnalyzeResponse) GetValue() int64 {
	if m != nil {
		return m.Value
	}
	return 0
}

func (m *AnalyzeResponse) GetDepth() int32 {
	if m != nil {
		return m.Depth
	}
	return 0
}

func (m *AnalyzeResponse) GetVisited() uint64 {
	if m != nil {
		return m.Visited
	}
	return 0
}

func (m *AnalyzeResponse) GetEvaluated() uint64 {
	if m != nil {
		return m.Evaluated
	}
	return 0
}

type SelectMoveRequest struct {
	Position             string   `protobuf:"bytes,1,opt,name=position,proto3" json:"position,omitempty"`
	MovetimeMs           int64    `protobuf:"varint,2,opt,name=movetime_ms,json=movetimeMs,proto3" json:"movetime_ms,omitempty"`
	Strategy             string   `protobuf:"bytes,3,opt,name=strategy,proto3" json:"strategy,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *SelectMoveRequest) Reset()         { *m = SelectMoveRequest{} }
func (m *SelectMoveRequest) String() string { return proto.CompactTextString(m) }
func (*SelectMoveRequest) ProtoMessage()    {}
func (m *SelectMoveRequest) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_SelectMoveRequest.Unmarshal(m, b)
}
func (m *SelectMoveRequest) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_SelectMoveRequest.Marshal(b, m, deterministic)
}
func (dst *SelectMoveRequest) XXX_Merge(src proto.Message) {
	xxx_messageInfo_SelectMoveRequest.Merge(dst, src)
}
func (m *SelectMoveRequest) XXX_Size() int {
	return xxx_messageInfo_SelectMoveRequest.Size(m)
}
func (m *SelectMoveRequest) XXX_DiscardUnknown() {
	xxx_messageInfo_SelectMoveRequest.DiscardUnknown(m)
}

var xxx_messageInfo_SelectMoveRequest proto.InternalMessageInfo

func (m *SelectMoveRequest) GetPosition() string {
	if m != nil {
		return m.Position
	}
	return ""
}

func (m *SelectMoveRequest) GetMovetimeMs() int64 {
	if m != nil {
		return m.MovetimeMs
	}
	return 0
}

func (m *SelectMoveRequest) GetStrategy() string {
	if m != nil {
		return m.Strategy
	}
	return ""
}

type Emission struct {
	Move                 string   `protobuf:"bytes,1,opt,name=move,proto3" json:"move,omitempty"`
	Depth                int32    `protobuf:"varint,2,opt,name=depth,proto3" json:"depth,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *Emission) Reset()         { *m = Emission{} }
func (m *Emission) String() string { return proto.CompactTextString(m) }
func (*Emission) ProtoMessage()    {}
func (m *Emission) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_Emission.Unmarshal(m, b)
}
func (m *Emission) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_Emission.Marshal(b, m, deterministic)
}
func (dst *Emission) XXX_Merge(src proto.Message) {
	xxx_messageInfo_Emission.Merge(dst, src)
}
func (m *Emission) XXX_Size() int {
	return xxx_messageInfo_Emission.Size(m)
}
func (m *Emission) XXX_DiscardUnknown() {
	xxx_messageInfo_Emission.DiscardUnknown(m)
}

var xxx_messageInfo_Emission proto.InternalMessageInfo

func (m *Emission) GetMove() string {
	if m != nil {
		return m.Move
	}
	return ""
}

func (m *Emission) GetDepth() int32 {
	if m != nil {
		return m.Depth
	}
	return 0
}

func init() {
	proto.RegisterType((*AnalyzeRequest)(nil), "isolation.AnalyzeRequest")
	proto.RegisterType((*AnalyzeResponse)(nil), "isolation.AnalyzeResponse")
	proto.RegisterType((*SelectMoveRequest)(nil), "isolation.SelectMoveRequest")
	proto.RegisterType((*Emission)(nil), "isolation.Emission")
}

// Reference imports to suppress errors if they are not otherwise used.
var _ context.Context
var _ grpc.ClientConn

// This is a compile-time assertion to ensure that this file is
// compatible with the grpc package it is being compiled against.
const _ = grpc.SupportPackageIsVersion4

// IsolationClient is the client API for Isolation service.
type IsolationClient interface {
	Analyze(ctx context.Context, in *AnalyzeRequest, opts ...grpc.CallOption) (*AnalyzeResponse, error)
	SelectMove(ctx context.Context, in *SelectMoveRequest, opts ...grpc.CallOption) (Isolation_SelectMoveClient, error)
}

type isolationClient struct {
	cc *grpc.ClientConn
}

func NewIsolationClient(cc *grpc.ClientConn) IsolationClient {
	return &isolationClient{cc}
}

func (c *isolationClient) Analyze(ctx context.Context, in *AnalyzeRequest, opts ...grpc.CallOption) (*AnalyzeResponse, error) {
	out := new(AnalyzeResponse)
	err := c.cc.Invoke(ctx, "/isolation.Isolation/Analyze", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *isolationClient) SelectMove(ctx context.Context, in *SelectMoveRequest, opts ...grpc.CallOption) (Isolation_SelectMoveClient, error) {
	stream, err := c.cc.NewStream(ctx, &_Isolation_serviceDesc.Streams[0], "/isolation.Isolation/SelectMove", opts...)
	if err != nil {
		return nil, err
	}
	x := &isolationSelectMoveClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type Isolation_SelectMoveClient interface {
	Recv() (*Emission, error)
	grpc.ClientStream
}

type isolationSelectMoveClient struct {
	grpc.ClientStream
}

func (x *isolationSelectMoveClient) Recv() (*Emission, error) {
	m := new(Emission)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// IsolationServer is the server API for Isolation service.
type IsolationServer interface {
	Analyze(context.Context, *AnalyzeRequest) (*AnalyzeResponse, error)
	SelectMove(*SelectMoveRequest, Isolation_SelectMoveServer) error
}

func RegisterIsolationServer(s *grpc.Server, srv IsolationServer) {
	s.RegisterService(&_Isolation_serviceDesc, srv)
}

func _Isolation_Analyze_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnalyzeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IsolationServer).Analyze(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/isolation.Isolation/Analyze",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IsolationServer).Analyze(ctx, req.(*AnalyzeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Isolation_SelectMove_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(SelectMoveRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(IsolationServer).SelectMove(m, &isolationSelectMoveServer{stream})
}

type Isolation_SelectMoveServer interface {
	Send(*Emission) error
	grpc.ServerStream
}

type isolationSelectMoveServer struct {
	grpc.ServerStream
}

func (x *isolationSelectMoveServer) Send(m *Emission) error {
	return x.ServerStream.SendMsg(m)
}

var _Isolation_serviceDesc = grpc.ServiceDesc{
	ServiceName: "isolation.Isolation",
	HandlerType: (*IsolationServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Analyze",
			Handler:    _Isolation_Analyze_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "SelectMove",
			Handler:       _Isolation_SelectMove_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "isolation.proto",
}
