package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/KirkDiggler/entity-arena/internal/battle"
	"github.com/KirkDiggler/entity-arena/internal/entities"
	"github.com/KirkDiggler/entity-arena/internal/errors"
	"github.com/KirkDiggler/entity-arena/internal/handlers/game/v1alpha1"
	collectionmock "github.com/KirkDiggler/entity-arena/internal/orchestrators/collection/mock"
	"github.com/KirkDiggler/entity-arena/internal/orchestrators/combat"
	combatmock "github.com/KirkDiggler/entity-arena/internal/orchestrators/combat/mock"
	growthmock "github.com/KirkDiggler/entity-arena/internal/orchestrators/growth/mock"
	startermock "github.com/KirkDiggler/entity-arena/internal/orchestrators/starter/mock"
	"github.com/KirkDiggler/entity-arena/internal/testutils"
)

type ServiceRoundTripTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockCombat *combatmock.MockService
	server     *grpc.Server
	conn       *grpc.ClientConn
	client     *v1alpha1.GameServiceClient
	intercepts []string
}

func TestServiceRoundTripTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceRoundTripTestSuite))
}

func (s *ServiceRoundTripTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCombat = combatmock.NewMockService(s.ctrl)
	s.intercepts = nil

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		StarterService:    startermock.NewMockService(s.ctrl),
		CombatService:     s.mockCombat,
		GrowthService:     growthmock.NewMockService(s.ctrl),
		CollectionService: collectionmock.NewMockService(s.ctrl),
	})
	s.Require().NoError(err)

	listener := bufconn.Listen(1024 * 1024)
	s.server = grpc.NewServer(grpc.UnaryInterceptor(func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		next grpc.UnaryHandler,
	) (any, error) {
		s.intercepts = append(s.intercepts, info.FullMethod)
		return next(ctx, req)
	}))
	v1alpha1.RegisterGameServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(listener)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.conn = conn
	s.client = v1alpha1.NewGameServiceClient(conn)
}

func (s *ServiceRoundTripTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
	s.ctrl.Finish()
}

func (s *ServiceRoundTripTestSuite) TestAttackRoundTrip() {
	b := &battle.Battle{
		ID:       testutils.TestBattleID,
		PlayerID: testutils.TestPlayerID,
		MapID:    "water",
		State:    battle.StateEnemyTurn,
		Round:    1,
		Player:   battle.Combatant{Name: "Test Entity 1", EntityID: 1, CurrentHP: 50, Level: 1},
		Enemy:    battle.Combatant{Name: "Test Entity 7", EntityID: 7, CurrentHP: 18, Level: 1, Rarity: entities.RarityNormal},
	}
	s.mockCombat.EXPECT().
		Attack(gomock.Any(), &combat.AttackInput{
			PlayerID: testutils.TestPlayerID,
			BattleID: testutils.TestBattleID,
		}).
		Return(&combat.AttackOutput{Battle: b, Applied: true}, nil)

	resp, err := s.client.Attack(context.Background(), &v1alpha1.AttackRequest{
		PlayerID: testutils.TestPlayerID,
		BattleID: testutils.TestBattleID,
	})
	s.Require().NoError(err)
	s.True(resp.Applied)
	s.Nil(resp.Captured)
	s.Equal(battle.StateEnemyTurn, resp.Battle.State)
	s.Equal(18, resp.Battle.Enemy.CurrentHP)
	s.Equal(entities.RarityNormal, resp.Battle.Enemy.Rarity)
	s.Equal([]string{"/" + v1alpha1.ServiceName + "/Attack"}, s.intercepts)
}

func (s *ServiceRoundTripTestSuite) TestErrorDetailsSurvive() {
	s.mockCombat.EXPECT().
		StartBattle(gomock.Any(), gomock.Any()).
		Return(nil, errors.FailedPrecondition("map is locked").WithMeta("map_id", "fire"))

	_, err := s.client.StartBattle(context.Background(), &v1alpha1.StartBattleRequest{
		PlayerID: testutils.TestPlayerID,
		MapID:    "fire",
	})
	s.Require().Error(err)

	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(codes.FailedPrecondition, st.Code())
	s.Equal("map is locked", st.Message())

	var found bool
	for _, detail := range st.Details() {
		if info, ok := detail.(*errdetails.ErrorInfo); ok {
			s.Equal("fire", info.GetMetadata()["map_id"])
			found = true
		}
	}
	s.True(found, "expected error info details")
}

func (s *ServiceRoundTripTestSuite) TestHandlerValidationRunsBeforeServices() {
	_, err := s.client.GetBattle(context.Background(), &v1alpha1.GetBattleRequest{})
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))
}
