package combatv1alpha1

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// ServiceName is the fully qualified CombatService name
const ServiceName = "rpgcombat.v1alpha1.CombatService"

const (
	CombatService_Greet_FullMethodName           = "/" + ServiceName + "/Greet"
	CombatService_CreateCharacter_FullMethodName = "/" + ServiceName + "/CreateCharacter"
	CombatService_CreateMob_FullMethodName       = "/" + ServiceName + "/CreateMob"
	CombatService_GetCharacter_FullMethodName    = "/" + ServiceName + "/GetCharacter"
	CombatService_ListCharacters_FullMethodName  = "/" + ServiceName + "/ListCharacters"
	CombatService_DeleteCharacter_FullMethodName = "/" + ServiceName + "/DeleteCharacter"
	CombatService_CreateGear_FullMethodName      = "/" + ServiceName + "/CreateGear"
	CombatService_ListGear_FullMethodName        = "/" + ServiceName + "/ListGear"
	CombatService_EquipItem_FullMethodName       = "/" + ServiceName + "/EquipItem"
	CombatService_RemoveItem_FullMethodName      = "/" + ServiceName + "/RemoveItem"
	CombatService_Attack_FullMethodName          = "/" + ServiceName + "/Attack"
)

// CombatServiceClient is the client API for CombatService.
type CombatServiceClient interface {
	Greet(ctx context.Context, in *GreetRequest, opts ...grpc.CallOption) (*GreetResponse, error)
	CreateCharacter(ctx context.Context, in *CreateCharacterRequest, opts ...grpc.CallOption) (*CreateCharacterResponse, error)
	CreateMob(ctx context.Context, in *CreateMobRequest, opts ...grpc.CallOption) (*CreateMobResponse, error)
	GetCharacter(ctx context.Context, in *GetCharacterRequest, opts ...grpc.CallOption) (*GetCharacterResponse, error)
	ListCharacters(ctx context.Context, in *ListCharactersRequest, opts ...grpc.CallOption) (*ListCharactersResponse, error)
	DeleteCharacter(ctx context.Context, in *DeleteCharacterRequest, opts ...grpc.CallOption) (*DeleteCharacterResponse, error)
	CreateGear(ctx context.Context, in *CreateGearRequest, opts ...grpc.CallOption) (*CreateGearResponse, error)
	ListGear(ctx context.Context, in *ListGearRequest, opts ...grpc.CallOption) (*ListGearResponse, error)
	EquipItem(ctx context.Context, in *EquipItemRequest, opts ...grpc.CallOption) (*EquipItemResponse, error)
	RemoveItem(ctx context.Context, in *RemoveItemRequest, opts ...grpc.CallOption) (*RemoveItemResponse, error)
	Attack(ctx context.Context, in *AttackRequest, opts ...grpc.CallOption) (*AttackResponse, error)
}

type combatServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCombatServiceClient creates a client that speaks the JSON codec
func NewCombatServiceClient(cc grpc.ClientConnInterface) CombatServiceClient {
	return &combatServiceClient{cc}
}

func (c *combatServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, callOpts...)
}

func (c *combatServiceClient) Greet(ctx context.Context, in *GreetRequest, opts ...grpc.CallOption) (*GreetResponse, error) {
	out := new(GreetResponse)
	if err := c.invoke(ctx, CombatService_Greet_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) CreateCharacter(ctx context.Context, in *CreateCharacterRequest, opts ...grpc.CallOption) (*CreateCharacterResponse, error) {
	out := new(CreateCharacterResponse)
	if err := c.invoke(ctx, CombatService_CreateCharacter_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) CreateMob(ctx context.Context, in *CreateMobRequest, opts ...grpc.CallOption) (*CreateMobResponse, error) {
	out := new(CreateMobResponse)
	if err := c.invoke(ctx, CombatService_CreateMob_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) GetCharacter(ctx context.Context, in *GetCharacterRequest, opts ...grpc.CallOption) (*GetCharacterResponse, error) {
	out := new(GetCharacterResponse)
	if err := c.invoke(ctx, CombatService_GetCharacter_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) ListCharacters(ctx context.Context, in *ListCharactersRequest, opts ...grpc.CallOption) (*ListCharactersResponse, error) {
	out := new(ListCharactersResponse)
	if err := c.invoke(ctx, CombatService_ListCharacters_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) DeleteCharacter(ctx context.Context, in *DeleteCharacterRequest, opts ...grpc.CallOption) (*DeleteCharacterResponse, error) {
	out := new(DeleteCharacterResponse)
	if err := c.invoke(ctx, CombatService_DeleteCharacter_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) CreateGear(ctx context.Context, in *CreateGearRequest, opts ...grpc.CallOption) (*CreateGearResponse, error) {
	out := new(CreateGearResponse)
	if err := c.invoke(ctx, CombatService_CreateGear_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) ListGear(ctx context.Context, in *ListGearRequest, opts ...grpc.CallOption) (*ListGearResponse, error) {
	out := new(ListGearResponse)
	if err := c.invoke(ctx, CombatService_ListGear_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) EquipItem(ctx context.Context, in *EquipItemRequest, opts ...grpc.CallOption) (*EquipItemResponse, error) {
	out := new(EquipItemResponse)
	if err := c.invoke(ctx, CombatService_EquipItem_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) RemoveItem(ctx context.Context, in *RemoveItemRequest, opts ...grpc.CallOption) (*RemoveItemResponse, error) {
	out := new(RemoveItemResponse)
	if err := c.invoke(ctx, CombatService_RemoveItem_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) Attack(ctx context.Context, in *AttackRequest, opts ...grpc.CallOption) (*AttackResponse, error) {
	out := new(AttackResponse)
	if err := c.invoke(ctx, CombatService_Attack_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// CombatServiceServer is the server API for CombatService.
// Implementations must embed UnimplementedCombatServiceServer.
type CombatServiceServer interface {
	Greet(context.Context, *GreetRequest) (*GreetResponse, error)
	CreateCharacter(context.Context, *CreateCharacterRequest) (*CreateCharacterResponse, error)
	CreateMob(context.Context, *CreateMobRequest) (*CreateMobResponse, error)
	GetCharacter(context.Context, *GetCharacterRequest) (*GetCharacterResponse, error)
	ListCharacters(context.Context, *ListCharactersRequest) (*ListCharactersResponse, error)
	DeleteCharacter(context.Context, *DeleteCharacterRequest) (*DeleteCharacterResponse, error)
	CreateGear(context.Context, *CreateGearRequest) (*CreateGearResponse, error)
	ListGear(context.Context, *ListGearRequest) (*ListGearResponse, error)
	EquipItem(context.Context, *EquipItemRequest) (*EquipItemResponse, error)
	RemoveItem(context.Context, *RemoveItemRequest) (*RemoveItemResponse, error)
	Attack(context.Context, *AttackRequest) (*AttackResponse, error)
	mustEmbedUnimplementedCombatServiceServer()
}

// UnimplementedCombatServiceServer answers every method with codes.Unimplemented
type UnimplementedCombatServiceServer struct{}

func (UnimplementedCombatServiceServer) Greet(context.Context, *GreetRequest) (*GreetResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Greet not implemented")
}

func (UnimplementedCombatServiceServer) CreateCharacter(context.Context, *CreateCharacterRequest) (*CreateCharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateCharacter not implemented")
}

func (UnimplementedCombatServiceServer) CreateMob(context.Context, *CreateMobRequest) (*CreateMobResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateMob not implemented")
}

func (UnimplementedCombatServiceServer) GetCharacter(context.Context, *GetCharacterRequest) (*GetCharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCharacter not implemented")
}

func (UnimplementedCombatServiceServer) ListCharacters(context.Context, *ListCharactersRequest) (*ListCharactersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCharacters not implemented")
}

func (UnimplementedCombatServiceServer) DeleteCharacter(context.Context, *DeleteCharacterRequest) (*DeleteCharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteCharacter not implemented")
}

func (UnimplementedCombatServiceServer) CreateGear(context.Context, *CreateGearRequest) (*CreateGearResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateGear not implemented")
}

func (UnimplementedCombatServiceServer) ListGear(context.Context, *ListGearRequest) (*ListGearResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListGear not implemented")
}

func (UnimplementedCombatServiceServer) EquipItem(context.Context, *EquipItemRequest) (*EquipItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method EquipItem not implemented")
}

func (UnimplementedCombatServiceServer) RemoveItem(context.Context, *RemoveItemRequest) (*RemoveItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveItem not implemented")
}

func (UnimplementedCombatServiceServer) Attack(context.Context, *AttackRequest) (*AttackResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Attack not implemented")
}

func (UnimplementedCombatServiceServer) mustEmbedUnimplementedCombatServiceServer() {}

// RegisterCombatServiceServer registers srv with the gRPC server
func RegisterCombatServiceServer(s grpc.ServiceRegistrar, srv CombatServiceServer) {
	s.RegisterService(&CombatService_ServiceDesc, srv)
}

func _CombatService_Greet_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GreetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).Greet(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_Greet_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CombatServiceServer).Greet(ctx, req.(*GreetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_CreateCharacter_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateCharacterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).CreateCharacter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_CreateCharacter_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CombatServiceServer).CreateCharacter(ctx, req.(*CreateCharacterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_CreateMob_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateMobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).CreateMob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_CreateMob_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CombatServiceServer).CreateMob(ctx, req.(*CreateMobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_GetCharacter_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetCharacterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).GetCharacter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_GetCharacter_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CombatServiceServer).GetCharacter(ctx, req.(*GetCharacterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_ListCharacters_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListCharactersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).ListCharacters(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_ListCharacters_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CombatServiceServer).ListCharacters(ctx, req.(*ListCharactersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_DeleteCharacter_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteCharacterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).DeleteCharacter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_DeleteCharacter_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CombatServiceServer).DeleteCharacter(ctx, req.(*DeleteCharacterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_CreateGear_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateGearRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).CreateGear(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_CreateGear_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CombatServiceServer).CreateGear(ctx, req.(*CreateGearRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_ListGear_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListGearRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).ListGear(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_ListGear_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CombatServiceServer).ListGear(ctx, req.(*ListGearRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_EquipItem_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(EquipItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).EquipItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_EquipItem_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CombatServiceServer).EquipItem(ctx, req.(*EquipItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_RemoveItem_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RemoveItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).RemoveItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_RemoveItem_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CombatServiceServer).RemoveItem(ctx, req.(*RemoveItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_Attack_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AttackRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).Attack(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_Attack_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CombatServiceServer).Attack(ctx, req.(*AttackRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CombatService_ServiceDesc is the grpc.ServiceDesc for CombatService
var CombatService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CombatServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Greet",
			Handler:    _CombatService_Greet_Handler,
		},
		{
			MethodName: "CreateCharacter",
			Handler:    _CombatService_CreateCharacter_Handler,
		},
		{
			MethodName: "CreateMob",
			Handler:    _CombatService_CreateMob_Handler,
		},
		{
			MethodName: "GetCharacter",
			Handler:    _CombatService_GetCharacter_Handler,
		},
		{
			MethodName: "ListCharacters",
			Handler:    _CombatService_ListCharacters_Handler,
		},
		{
			MethodName: "DeleteCharacter",
			Handler:    _CombatService_DeleteCharacter_Handler,
		},
		{
			MethodName: "CreateGear",
			Handler:    _CombatService_CreateGear_Handler,
		},
		{
			MethodName: "ListGear",
			Handler:    _CombatService_ListGear_Handler,
		},
		{
			MethodName: "EquipItem",
			Handler:    _CombatService_EquipItem_Handler,
		},
		{
			MethodName: "RemoveItem",
			Handler:    _CombatService_RemoveItem_Handler,
		},
		{
			MethodName: "Attack",
			Handler:    _CombatService_Attack_Handler,
		},
	},
	Streams: []grpc.StreamDesc{},
}
