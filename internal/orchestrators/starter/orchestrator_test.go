package starter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/entity-arena/internal/engine"
	enginemock "github.com/KirkDiggler/entity-arena/internal/engine/mock"
	"github.com/KirkDiggler/entity-arena/internal/entities"
	"github.com/KirkDiggler/entity-arena/internal/errors"
	"github.com/KirkDiggler/entity-arena/internal/orchestrators/starter"
	"github.com/KirkDiggler/entity-arena/internal/pkg/clock"
	"github.com/KirkDiggler/entity-arena/internal/pkg/idgen"
	"github.com/KirkDiggler/entity-arena/internal/repositories/archive"
	archivemock "github.com/KirkDiggler/entity-arena/internal/repositories/archive/mock"
	"github.com/KirkDiggler/entity-arena/internal/repositories/owned"
	ownedmock "github.com/KirkDiggler/entity-arena/internal/repositories/owned/mock"
	"github.com/KirkDiggler/entity-arena/internal/repositories/player"
	playermock "github.com/KirkDiggler/entity-arena/internal/repositories/player/mock"
	rostermock "github.com/KirkDiggler/entity-arena/internal/repositories/roster/mock"
	"github.com/KirkDiggler/entity-arena/internal/repositories/startersession"
	startersessionmock "github.com/KirkDiggler/entity-arena/internal/repositories/startersession/mock"
	"github.com/KirkDiggler/entity-arena/internal/testutils"
	"github.com/KirkDiggler/entity-arena/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockEngine      *enginemock.MockEngine
	mockRosterRepo  *rostermock.MockRepository
	mockOwnedRepo   *ownedmock.MockRepository
	mockArchiveRepo *archivemock.MockRepository
	mockPlayerRepo  *playermock.MockRepository
	mockSessionRepo *startersessionmock.MockRepository
	orchestrator    starter.Service
	roster          []*entities.EntityMaster
	ctx             context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.mockRosterRepo = rostermock.NewMockRepository(s.ctrl)
	s.mockOwnedRepo = ownedmock.NewMockRepository(s.ctrl)
	s.mockArchiveRepo = archivemock.NewMockRepository(s.ctrl)
	s.mockPlayerRepo = playermock.NewMockRepository(s.ctrl)
	s.mockSessionRepo = startersessionmock.NewMockRepository(s.ctrl)
	s.roster = testutils.CreateTestRoster(1, 10)
	s.ctx = context.Background()

	orchestrator, err := starter.NewOrchestrator(&starter.Config{
		Engine:             s.mockEngine,
		RosterRepo:         s.mockRosterRepo,
		OwnedRepo:          s.mockOwnedRepo,
		ArchiveRepo:        s.mockArchiveRepo,
		PlayerRepo:         s.mockPlayerRepo,
		StarterSessionRepo: s.mockSessionRepo,
		IDGenerator:        idgen.NewSequential("owned"),
		Clock:              &clock.Fixed{At: testutils.TestTime},
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) newPlayer() {
	mocks.ExpectNewPlayer(s.ctx, s.mockPlayerRepo, testutils.TestPlayerID)
}

func (s *OrchestratorTestSuite) pending(rerollsUsed int) *entities.StarterSession {
	session := &entities.StarterSession{
		PlayerID: testutils.TestPlayerID,
		Choices: []entities.StarterChoice{
			{EntityID: 2, Stats: entities.Stats{HP: 24, Atk: 6, Def: 3}},
			{EntityID: 3, Stats: entities.Stats{HP: 27, Atk: 7, Def: 2}},
			{EntityID: 7, Stats: entities.Stats{HP: 21, Atk: 5, Def: 4}},
		},
		RerollsUsed: rerollsUsed,
	}
	s.mockSessionRepo.EXPECT().
		Get(s.ctx, startersession.GetInput{PlayerID: testutils.TestPlayerID}).
		Return(&startersession.GetOutput{Session: session}, nil)
	return session
}

func (s *OrchestratorTestSuite) expectRoll(ids ...int) {
	mocks.ExpectRoster(s.ctx, s.mockRosterRepo, s.roster)

	starters := make([]*engine.Encounter, 0, len(ids))
	for _, id := range ids {
		starters = append(starters, &engine.Encounter{
			Master: s.roster[id-1],
			Stats:  entities.Stats{HP: 20 + id, Atk: 5},
		})
	}
	s.mockEngine.EXPECT().
		GenerateStarters(s.ctx, &engine.GenerateStartersInput{Roster: s.roster, Count: engine.StarterCount}).
		Return(&engine.GenerateStartersOutput{Starters: starters}, nil)

	s.mockSessionRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input startersession.SaveInput) (*startersession.SaveOutput, error) {
			return &startersession.SaveOutput{Session: input.Session}, nil
		})
}

func (s *OrchestratorTestSuite) TestGenerateStarters_RollsFirstSet() {
	s.newPlayer()
	s.mockSessionRepo.EXPECT().
		Get(s.ctx, startersession.GetInput{PlayerID: testutils.TestPlayerID}).
		Return(nil, errors.NotFound("none"))
	s.expectRoll(1, 4, 6)

	out, err := s.orchestrator.GenerateStarters(s.ctx, &starter.GenerateStartersInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)
	s.Require().Len(out.Session.Choices, 3)
	s.Equal(4, out.Session.Choices[1].EntityID)
	s.Equal(24, out.Session.Choices[1].Stats.HP)
	s.Equal(starter.MaxRerolls, out.RerollsLeft)
	s.Equal(0, out.Session.RerollsUsed)
}

func (s *OrchestratorTestSuite) TestGenerateStarters_ReturnsPendingOffers() {
	s.newPlayer()
	pending := s.pending(1)

	out, err := s.orchestrator.GenerateStarters(s.ctx, &starter.GenerateStartersInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)
	s.Equal(pending, out.Session)
	s.Equal(0, out.RerollsLeft)
}

func (s *OrchestratorTestSuite) TestGenerateStarters_RejectsPlayerWithStarter() {
	s.mockPlayerRepo.EXPECT().
		Get(s.ctx, player.GetInput{PlayerID: testutils.TestPlayerID}).
		Return(&player.GetOutput{Player: testutils.CreateTestPlayerSession(testutils.TestPlayerID)}, nil)

	_, err := s.orchestrator.GenerateStarters(s.ctx, &starter.GenerateStartersInput{PlayerID: testutils.TestPlayerID})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestGenerateStarters_FewerThanRequested() {
	s.newPlayer()
	s.mockSessionRepo.EXPECT().
		Get(s.ctx, startersession.GetInput{PlayerID: testutils.TestPlayerID}).
		Return(nil, errors.NotFound("none"))
	s.expectRoll(5)

	out, err := s.orchestrator.GenerateStarters(s.ctx, &starter.GenerateStartersInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)
	s.Len(out.Session.Choices, 1)
}

func (s *OrchestratorTestSuite) TestRerollStarters_BudgetIsOne() {
	s.pending(0)
	s.expectRoll(8, 9, 10)

	out, err := s.orchestrator.RerollStarters(s.ctx, &starter.RerollStartersInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)
	s.Equal(1, out.Session.RerollsUsed)
	s.Equal(0, out.RerollsLeft)
	s.Equal(8, out.Session.Choices[0].EntityID)

	s.pending(1)
	_, err = s.orchestrator.RerollStarters(s.ctx, &starter.RerollStartersInput{PlayerID: testutils.TestPlayerID})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestRerollStarters_WithoutSession() {
	s.mockSessionRepo.EXPECT().
		Get(s.ctx, startersession.GetInput{PlayerID: testutils.TestPlayerID}).
		Return(nil, errors.NotFound("none"))

	_, err := s.orchestrator.RerollStarters(s.ctx, &starter.RerollStartersInput{PlayerID: testutils.TestPlayerID})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestSelectStarter_Success() {
	s.pending(0)
	s.newPlayer()

	s.mockOwnedRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input owned.CreateInput) (*owned.CreateOutput, error) {
			s.Equal("owned_1", input.Entity.ID)
			s.Equal(3, input.Entity.EntityID)
			s.Equal(1, input.Entity.Level)
			s.Equal(0, input.Entity.XP)
			s.Equal(27, input.Entity.Stats.HP)
			s.Equal(27, input.Entity.CurrentHP)
			return &owned.CreateOutput{Entity: input.Entity}, nil
		})
	s.mockArchiveRepo.EXPECT().
		Upsert(s.ctx, archive.UpsertInput{
			PlayerID: testutils.TestPlayerID,
			EntityID: 3,
			Status:   entities.ArchiveOpen,
		}).
		Return(&archive.UpsertOutput{Changed: true, Entry: &entities.ArchiveEntry{Status: entities.ArchiveOpen}}, nil)
	s.mockPlayerRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input player.SaveInput) (*player.SaveOutput, error) {
			s.True(input.Player.HasStarter)
			s.Equal("owned_1", input.Player.ActiveEntityID)
			return &player.SaveOutput{Player: input.Player}, nil
		})
	s.mockSessionRepo.EXPECT().
		Delete(s.ctx, startersession.DeleteInput{PlayerID: testutils.TestPlayerID}).
		Return(&startersession.DeleteOutput{}, nil)

	out, err := s.orchestrator.SelectStarter(s.ctx, &starter.SelectStarterInput{
		PlayerID: testutils.TestPlayerID,
		EntityID: 3,
	})
	s.Require().NoError(err)
	s.Equal("owned_1", out.Entity.ID)
	s.Equal("owned_1", out.Player.ActiveEntityID)
}

func (s *OrchestratorTestSuite) TestSelectStarter_NotOffered() {
	s.pending(0)

	_, err := s.orchestrator.SelectStarter(s.ctx, &starter.SelectStarterInput{
		PlayerID: testutils.TestPlayerID,
		EntityID: 42,
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSelectStarter_PersistFailureIsSyncFailed() {
	s.pending(0)
	s.newPlayer()

	s.mockOwnedRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("redis down"))

	out, err := s.orchestrator.SelectStarter(s.ctx, &starter.SelectStarterInput{
		PlayerID: testutils.TestPlayerID,
		EntityID: 2,
	})
	s.Nil(out)
	s.True(errors.IsSyncFailed(err))
}

func (s *OrchestratorTestSuite) TestSelectStarter_PlayerSaveFailureIsSyncFailed() {
	s.pending(0)
	s.newPlayer()

	s.mockOwnedRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input owned.CreateInput) (*owned.CreateOutput, error) {
			return &owned.CreateOutput{Entity: input.Entity}, nil
		})
	s.mockArchiveRepo.EXPECT().
		Upsert(s.ctx, gomock.Any()).
		Return(&archive.UpsertOutput{Entry: &entities.ArchiveEntry{Status: entities.ArchiveOpen}}, nil)
	s.mockPlayerRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("redis down"))

	_, err := s.orchestrator.SelectStarter(s.ctx, &starter.SelectStarterInput{
		PlayerID: testutils.TestPlayerID,
		EntityID: 2,
	})
	s.True(errors.IsSyncFailed(err))
}

func (s *OrchestratorTestSuite) TestNewOrchestrator_Validates() {
	_, err := starter.NewOrchestrator(&starter.Config{})
	s.True(errors.IsInvalidArgument(err))
}
