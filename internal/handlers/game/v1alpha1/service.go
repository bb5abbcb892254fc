// Package v1alpha1 serves the game over gRPC, carrying its messages as protobuf Structs
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "entityarena.v1alpha1.GameService"

// GameServiceServer is the server API for the game service
type GameServiceServer interface {
	GenerateStarters(context.Context, *GenerateStartersRequest) (*GenerateStartersResponse, error)
	RerollStarters(context.Context, *RerollStartersRequest) (*RerollStartersResponse, error)
	SelectStarter(context.Context, *SelectStarterRequest) (*SelectStarterResponse, error)
	ListMaps(context.Context, *ListMapsRequest) (*ListMapsResponse, error)
	StartBattle(context.Context, *StartBattleRequest) (*StartBattleResponse, error)
	Attack(context.Context, *AttackRequest) (*AttackResponse, error)
	Escape(context.Context, *EscapeRequest) (*EscapeResponse, error)
	GetBattle(context.Context, *GetBattleRequest) (*GetBattleResponse, error)
	LevelUp(context.Context, *LevelUpRequest) (*LevelUpResponse, error)
	UpgradeStat(context.Context, *UpgradeStatRequest) (*UpgradeStatResponse, error)
	Train(context.Context, *TrainRequest) (*TrainResponse, error)
	ClaimBonus(context.Context, *ClaimBonusRequest) (*ClaimBonusResponse, error)
	ListOwnedEntities(context.Context, *ListOwnedEntitiesRequest) (*ListOwnedEntitiesResponse, error)
	SetActiveEntity(context.Context, *SetActiveEntityRequest) (*SetActiveEntityResponse, error)
	GetArchive(context.Context, *GetArchiveRequest) (*GetArchiveResponse, error)
	GetPlayer(context.Context, *GetPlayerRequest) (*GetPlayerResponse, error)
}

// unaryHandler adapts one typed server method to a grpc.MethodHandler
func unaryHandler[Req, Resp any](
	name string,
	call func(GameServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	fullMethod := "/" + ServiceName + "/" + name
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "decode %s request: %v", name, err)
		}
		server, ok := srv.(GameServiceServer)
		if !ok {
			return nil, status.Error(codes.Internal, "server does not implement the game service")
		}
		if interceptor == nil {
			return call(server, ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(server, ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func method[Req, Resp any](
	name string,
	call func(GameServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler:    unaryHandler(name, call),
	}
}

// GameServiceDesc describes the game service for grpc.Server registration
var GameServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GameServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		method("GenerateStarters", GameServiceServer.GenerateStarters),
		method("RerollStarters", GameServiceServer.RerollStarters),
		method("SelectStarter", GameServiceServer.SelectStarter),
		method("ListMaps", GameServiceServer.ListMaps),
		method("StartBattle", GameServiceServer.StartBattle),
		method("Attack", GameServiceServer.Attack),
		method("Escape", GameServiceServer.Escape),
		method("GetBattle", GameServiceServer.GetBattle),
		method("LevelUp", GameServiceServer.LevelUp),
		method("UpgradeStat", GameServiceServer.UpgradeStat),
		method("Train", GameServiceServer.Train),
		method("ClaimBonus", GameServiceServer.ClaimBonus),
		method("ListOwnedEntities", GameServiceServer.ListOwnedEntities),
		method("SetActiveEntity", GameServiceServer.SetActiveEntity),
		method("GetArchive", GameServiceServer.GetArchive),
		method("GetPlayer", GameServiceServer.GetPlayer),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "entityarena/v1alpha1/game.json",
}

// RegisterGameServiceServer registers srv on s
func RegisterGameServiceServer(s grpc.ServiceRegistrar, srv GameServiceServer) {
	s.RegisterService(&GameServiceDesc, srv)
}

// GameServiceClient is the client API for the game service
type GameServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewGameServiceClient creates a client that speaks the Struct codec over cc
func NewGameServiceClient(cc grpc.ClientConnInterface) *GameServiceClient {
	return &GameServiceClient{cc: cc}
}

func invoke[Req, Resp any](ctx context.Context, c *GameServiceClient, name string, in *Req, opts ...grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+name, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// GenerateStarters calls GameService.GenerateStarters
func (c *GameServiceClient) GenerateStarters(ctx context.Context, in *GenerateStartersRequest, opts ...grpc.CallOption) (*GenerateStartersResponse, error) {
	return invoke[GenerateStartersRequest, GenerateStartersResponse](ctx, c, "GenerateStarters", in, opts...)
}

// RerollStarters calls GameService.RerollStarters
func (c *GameServiceClient) RerollStarters(ctx context.Context, in *RerollStartersRequest, opts ...grpc.CallOption) (*RerollStartersResponse, error) {
	return invoke[RerollStartersRequest, RerollStartersResponse](ctx, c, "RerollStarters", in, opts...)
}

// SelectStarter calls GameService.SelectStarter
func (c *GameServiceClient) SelectStarter(ctx context.Context, in *SelectStarterRequest, opts ...grpc.CallOption) (*SelectStarterResponse, error) {
	return invoke[SelectStarterRequest, SelectStarterResponse](ctx, c, "SelectStarter", in, opts...)
}

// ListMaps calls GameService.ListMaps
func (c *GameServiceClient) ListMaps(ctx context.Context, in *ListMapsRequest, opts ...grpc.CallOption) (*ListMapsResponse, error) {
	return invoke[ListMapsRequest, ListMapsResponse](ctx, c, "ListMaps", in, opts...)
}

// StartBattle calls GameService.StartBattle
func (c *GameServiceClient) StartBattle(ctx context.Context, in *StartBattleRequest, opts ...grpc.CallOption) (*StartBattleResponse, error) {
	return invoke[StartBattleRequest, StartBattleResponse](ctx, c, "StartBattle", in, opts...)
}

// Attack calls GameService.Attack
func (c *GameServiceClient) Attack(ctx context.Context, in *AttackRequest, opts ...grpc.CallOption) (*AttackResponse, error) {
	return invoke[AttackRequest, AttackResponse](ctx, c, "Attack", in, opts...)
}

// Escape calls GameService.Escape
func (c *GameServiceClient) Escape(ctx context.Context, in *EscapeRequest, opts ...grpc.CallOption) (*EscapeResponse, error) {
	return invoke[EscapeRequest, EscapeResponse](ctx, c, "Escape", in, opts...)
}

// GetBattle calls GameService.GetBattle
func (c *GameServiceClient) GetBattle(ctx context.Context, in *GetBattleRequest, opts ...grpc.CallOption) (*GetBattleResponse, error) {
	return invoke[GetBattleRequest, GetBattleResponse](ctx, c, "GetBattle", in, opts...)
}

// LevelUp calls GameService.LevelUp
func (c *GameServiceClient) LevelUp(ctx context.Context, in *LevelUpRequest, opts ...grpc.CallOption) (*LevelUpResponse, error) {
	return invoke[LevelUpRequest, LevelUpResponse](ctx, c, "LevelUp", in, opts...)
}

// UpgradeStat calls GameService.UpgradeStat
func (c *GameServiceClient) UpgradeStat(ctx context.Context, in *UpgradeStatRequest, opts ...grpc.CallOption) (*UpgradeStatResponse, error) {
	return invoke[UpgradeStatRequest, UpgradeStatResponse](ctx, c, "UpgradeStat", in, opts...)
}

// Train calls GameService.Train
func (c *GameServiceClient) Train(ctx context.Context, in *TrainRequest, opts ...grpc.CallOption) (*TrainResponse, error) {
	return invoke[TrainRequest, TrainResponse](ctx, c, "Train", in, opts...)
}

// ClaimBonus calls GameService.ClaimBonus
func (c *GameServiceClient) ClaimBonus(ctx context.Context, in *ClaimBonusRequest, opts ...grpc.CallOption) (*ClaimBonusResponse, error) {
	return invoke[ClaimBonusRequest, ClaimBonusResponse](ctx, c, "ClaimBonus", in, opts...)
}

// ListOwnedEntities calls GameService.ListOwnedEntities
func (c *GameServiceClient) ListOwnedEntities(ctx context.Context, in *ListOwnedEntitiesRequest, opts ...grpc.CallOption) (*ListOwnedEntitiesResponse, error) {
	return invoke[ListOwnedEntitiesRequest, ListOwnedEntitiesResponse](ctx, c, "ListOwnedEntities", in, opts...)
}

// SetActiveEntity calls GameService.SetActiveEntity
func (c *GameServiceClient) SetActiveEntity(ctx context.Context, in *SetActiveEntityRequest, opts ...grpc.CallOption) (*SetActiveEntityResponse, error) {
	return invoke[SetActiveEntityRequest, SetActiveEntityResponse](ctx, c, "SetActiveEntity", in, opts...)
}

// GetArchive calls GameService.GetArchive
func (c *GameServiceClient) GetArchive(ctx context.Context, in *GetArchiveRequest, opts ...grpc.CallOption) (*GetArchiveResponse, error) {
	return invoke[GetArchiveRequest, GetArchiveResponse](ctx, c, "GetArchive", in, opts...)
}

// GetPlayer calls GameService.GetPlayer
func (c *GameServiceClient) GetPlayer(ctx context.Context, in *GetPlayerRequest, opts ...grpc.CallOption) (*GetPlayerResponse, error) {
	return invoke[GetPlayerRequest, GetPlayerResponse](ctx, c, "GetPlayer", in, opts...)
}
