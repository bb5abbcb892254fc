package combat_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/entity-arena/internal/battle"
	"github.com/KirkDiggler/entity-arena/internal/engine"
	enginemock "github.com/KirkDiggler/entity-arena/internal/engine/mock"
	"github.com/KirkDiggler/entity-arena/internal/entities"
	"github.com/KirkDiggler/entity-arena/internal/errors"
	"github.com/KirkDiggler/entity-arena/internal/orchestrators/combat"
	"github.com/KirkDiggler/entity-arena/internal/pkg/clock"
	"github.com/KirkDiggler/entity-arena/internal/pkg/idgen"
	"github.com/KirkDiggler/entity-arena/internal/repositories/archive"
	"github.com/KirkDiggler/entity-arena/internal/repositories/battles"
	"github.com/KirkDiggler/entity-arena/internal/repositories/owned"
	"github.com/KirkDiggler/entity-arena/internal/repositories/player"
	"github.com/KirkDiggler/entity-arena/internal/repositories/roster"
	"github.com/KirkDiggler/entity-arena/internal/testutils"
)

// manualScheduler holds continuations until the test runs them
type manualScheduler struct {
	pending []func()
}

func (m *manualScheduler) Schedule(_ time.Duration, fn func()) func() {
	m.pending = append(m.pending, fn)
	return func() {}
}

func (m *manualScheduler) runAll() {
	pending := m.pending
	m.pending = nil
	for _, fn := range pending {
		fn()
	}
}

type IntegrationTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockEngine  *enginemock.MockEngine
	clock       *clock.Fixed
	scheduler   *manualScheduler
	rosterRepo  roster.Repository
	ownedRepo   owned.Repository
	archiveRepo archive.Repository
	playerRepo  player.Repository
	battleRepo  battles.Repository
	roster      []*entities.EntityMaster
	ctx         context.Context
	cleanup     func()
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}

func (s *IntegrationTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.clock = &clock.Fixed{At: testutils.TestTime}
	s.scheduler = &manualScheduler{}
	s.ctx = context.Background()

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	var err error
	s.rosterRepo, err = roster.NewRedis(&roster.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.ownedRepo, err = owned.NewRedis(&owned.RedisConfig{Client: client, Clock: s.clock})
	s.Require().NoError(err)
	s.archiveRepo, err = archive.NewRedis(&archive.RedisConfig{Client: client, Clock: s.clock})
	s.Require().NoError(err)
	s.playerRepo, err = player.NewRedis(&player.RedisConfig{Client: client, Clock: s.clock})
	s.Require().NoError(err)
	s.battleRepo, err = battles.NewRedis(&battles.RedisConfig{Client: client, Clock: s.clock})
	s.Require().NoError(err)

	s.roster = testutils.CreateTestRoster(1, 20)
	_, err = s.rosterRepo.Upsert(s.ctx, roster.UpsertInput{Masters: s.roster})
	s.Require().NoError(err)

	_, err = s.ownedRepo.Create(s.ctx, owned.CreateInput{Entity: testutils.CreateTestOwnedEntity(testutils.TestPlayerID)})
	s.Require().NoError(err)
	_, err = s.playerRepo.Save(s.ctx, player.SaveInput{Player: testutils.CreateTestPlayerSession(testutils.TestPlayerID)})
	s.Require().NoError(err)
}

func (s *IntegrationTestSuite) TearDownTest() {
	s.ctrl.Finish()
	s.cleanup()
}

func (s *IntegrationTestSuite) newOrchestrator(delay time.Duration) combat.Service {
	svc, err := combat.NewOrchestrator(&combat.Config{
		Engine:         s.mockEngine,
		Maps:           testutils.CreateTestMaps(),
		RosterRepo:     s.rosterRepo,
		OwnedRepo:      s.ownedRepo,
		ArchiveRepo:    s.archiveRepo,
		PlayerRepo:     s.playerRepo,
		BattleRepo:     s.battleRepo,
		BattleIDs:      idgen.NewSequential("battle"),
		OwnedIDs:       idgen.NewSequential("captured"),
		Clock:          s.clock,
		EnemyTurnDelay: delay,
		Scheduler:      s.scheduler,
	})
	s.Require().NoError(err)
	return svc
}

// expectEnemy makes species 2 appear with the given stats
func (s *IntegrationTestSuite) expectEnemy(stats entities.Stats) {
	s.mockEngine.EXPECT().
		GenerateEncounter(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *engine.GenerateEncounterInput) (*engine.GenerateEncounterOutput, error) {
			s.Equal("water", input.Map.ID)
			s.Len(input.Roster, 20)
			return &engine.GenerateEncounterOutput{
				Encounter: &engine.Encounter{Master: s.roster[1], Stats: stats},
				Rarity:    entities.RarityNormal,
				Attempts:  1,
			}, nil
		})
}

func (s *IntegrationTestSuite) expectCapture(captured bool) {
	s.mockEngine.EXPECT().
		AttemptCapture(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *engine.AttemptCaptureInput) (*engine.AttemptCaptureOutput, error) {
			s.Equal(2, input.Master.ID)
			s.Equal("water", input.Map.ID)
			return &engine.AttemptCaptureOutput{Captured: captured, RateBP: 8000}, nil
		})
}

func (s *IntegrationTestSuite) archiveStatus(entityID int) entities.ArchiveStatus {
	out, err := s.archiveRepo.Get(s.ctx, archive.GetInput{PlayerID: testutils.TestPlayerID, EntityID: entityID})
	s.Require().NoError(err)
	return out.Entry.Status
}

func (s *IntegrationTestSuite) loadPlayer() *entities.PlayerSession {
	out, err := s.playerRepo.Get(s.ctx, player.GetInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)
	return out.Player
}

func (s *IntegrationTestSuite) start(svc combat.Service) *battle.Battle {
	out, err := svc.StartBattle(s.ctx, &combat.StartBattleInput{PlayerID: testutils.TestPlayerID, MapID: "water"})
	s.Require().NoError(err)
	return out.Battle
}

func (s *IntegrationTestSuite) attack(svc combat.Service, battleID string) *combat.AttackOutput {
	out, err := svc.Attack(s.ctx, &combat.AttackInput{PlayerID: testutils.TestPlayerID, BattleID: battleID})
	s.Require().NoError(err)
	return out
}

func (s *IntegrationTestSuite) TestWinCapturesAndCreditsXP() {
	svc := s.newOrchestrator(0)
	s.expectEnemy(entities.Stats{HP: 30, Atk: 8, Def: 3})
	s.expectCapture(true)

	b := s.start(svc)
	s.Equal(battle.StatePlayerTurn, b.State)
	s.Equal(entities.ArchiveClose, s.archiveStatus(2), "encounter is recorded at battle start")
	s.Equal(b.ID, s.loadPlayer().ActiveBattleID)

	first := s.attack(svc, b.ID)
	s.True(first.Applied)
	s.Equal(18, first.Battle.Enemy.CurrentHP)
	s.Equal(47, first.Battle.Player.CurrentHP)
	s.Equal(battle.StatePlayerTurn, first.Battle.State)

	second := s.attack(svc, b.ID)
	s.Equal(6, second.Battle.Enemy.CurrentHP)
	s.Equal(44, second.Battle.Player.CurrentHP)

	final := s.attack(svc, b.ID)
	s.Equal(battle.StateWon, final.Battle.State)
	s.Equal(3, final.Battle.Round)
	s.Require().NotNil(final.Battle.Outcome)
	s.Equal(55, final.Battle.Outcome.XPAwarded)
	s.True(final.Battle.Outcome.Captured)
	s.False(final.Battle.OwesPayout())

	s.Require().NotNil(final.Captured)
	s.Equal("captured_1", final.Captured.ID)
	s.Equal(2, final.Captured.EntityID)
	s.Equal(entities.Stats{HP: 30, Atk: 8, Def: 3}, final.Captured.Stats)
	s.Equal(1, final.Captured.Level)

	s.Equal(entities.ArchiveOpen, s.archiveStatus(2))
	s.Empty(s.loadPlayer().ActiveBattleID)

	active, err := s.ownedRepo.Get(s.ctx, owned.GetInput{ID: testutils.TestOwnedEntityID})
	s.Require().NoError(err)
	s.Equal(55, active.Entity.XP)

	list, err := s.ownedRepo.ListByPlayerID(s.ctx, owned.ListByPlayerIDInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)
	s.Len(list.Entities, 2)

	again := s.attack(svc, b.ID)
	s.False(again.Applied, "attacks after the battle ended are ignored")
	s.Equal(battle.StateWon, again.Battle.State)
}

func (s *IntegrationTestSuite) TestFailedCaptureStaysClose() {
	svc := s.newOrchestrator(0)
	s.expectEnemy(entities.Stats{HP: 10, Atk: 1, Def: 0})
	s.expectCapture(false)

	b := s.start(svc)
	out := s.attack(svc, b.ID)
	s.Equal(battle.StateWon, out.Battle.State)
	s.Nil(out.Captured)
	s.False(out.Battle.Outcome.Captured)
	s.Equal(entities.ArchiveClose, s.archiveStatus(2))

	active, err := s.ownedRepo.Get(s.ctx, owned.GetInput{ID: testutils.TestOwnedEntityID})
	s.Require().NoError(err)
	s.Equal(55, active.Entity.XP)
}

func (s *IntegrationTestSuite) TestLostAwardsNothing() {
	svc := s.newOrchestrator(0)
	s.expectEnemy(entities.Stats{HP: 500, Atk: 100, Def: 0})

	b := s.start(svc)
	out := s.attack(svc, b.ID)
	s.True(out.Applied)
	s.Equal(battle.StateLost, out.Battle.State)
	s.Equal(0, out.Battle.Player.CurrentHP)
	s.Equal(0, out.Battle.Outcome.XPAwarded)
	s.Empty(s.loadPlayer().ActiveBattleID)

	active, err := s.ownedRepo.Get(s.ctx, owned.GetInput{ID: testutils.TestOwnedEntityID})
	s.Require().NoError(err)
	s.Equal(0, active.Entity.XP)
	s.Equal(50, active.Entity.Stats.HP, "battle damage never touches stored stats")
}

func (s *IntegrationTestSuite) TestEscape() {
	svc := s.newOrchestrator(0)
	s.expectEnemy(entities.Stats{HP: 30, Atk: 8, Def: 3})

	b := s.start(svc)
	out, err := svc.Escape(s.ctx, &combat.EscapeInput{PlayerID: testutils.TestPlayerID, BattleID: b.ID})
	s.Require().NoError(err)
	s.True(out.Applied)
	s.Equal(battle.StateEscaped, out.Battle.State)
	s.Equal(30, out.Battle.Enemy.CurrentHP)
	s.Empty(s.loadPlayer().ActiveBattleID)

	again, err := svc.Escape(s.ctx, &combat.EscapeInput{PlayerID: testutils.TestPlayerID, BattleID: b.ID})
	s.Require().NoError(err)
	s.False(again.Applied)
}

func (s *IntegrationTestSuite) TestDeferredEnemyTurnSettlesWhenDue() {
	svc := s.newOrchestrator(time.Second)
	s.expectEnemy(entities.Stats{HP: 30, Atk: 8, Def: 3})

	b := s.start(svc)
	out := s.attack(svc, b.ID)
	s.True(out.Applied)
	s.Equal(battle.StateEnemyTurn, out.Battle.State)
	s.Equal(50, out.Battle.Player.CurrentHP)
	s.Len(s.scheduler.pending, 1)

	early := s.attack(svc, b.ID)
	s.False(early.Applied, "player cannot act during the enemy's turn")

	got, err := svc.GetBattle(s.ctx, &combat.GetBattleInput{PlayerID: testutils.TestPlayerID, BattleID: b.ID})
	s.Require().NoError(err)
	s.Equal(battle.StateEnemyTurn, got.Battle.State)

	s.clock.Advance(time.Second)
	got, err = svc.GetBattle(s.ctx, &combat.GetBattleInput{PlayerID: testutils.TestPlayerID, BattleID: b.ID})
	s.Require().NoError(err)
	s.Equal(battle.StatePlayerTurn, got.Battle.State)
	s.Equal(47, got.Battle.Player.CurrentHP)
	s.Equal(2, got.Battle.Round)

	// The timer firing late finds nothing left to do
	s.scheduler.runAll()
	got, err = svc.GetBattle(s.ctx, &combat.GetBattleInput{PlayerID: testutils.TestPlayerID, BattleID: b.ID})
	s.Require().NoError(err)
	s.Equal(47, got.Battle.Player.CurrentHP)
}

func (s *IntegrationTestSuite) TestScheduledEnemyTurn() {
	svc := s.newOrchestrator(time.Second)
	s.expectEnemy(entities.Stats{HP: 30, Atk: 8, Def: 3})

	b := s.start(svc)
	s.attack(svc, b.ID)
	s.scheduler.runAll()

	got, err := svc.GetBattle(s.ctx, &combat.GetBattleInput{PlayerID: testutils.TestPlayerID, BattleID: b.ID})
	s.Require().NoError(err)
	s.Equal(battle.StatePlayerTurn, got.Battle.State)
	s.Equal(47, got.Battle.Player.CurrentHP)
	s.True(got.Battle.EnemyTurnAt.IsZero())
}

func (s *IntegrationTestSuite) TestOneLiveBattlePerPlayer() {
	svc := s.newOrchestrator(0)
	s.expectEnemy(entities.Stats{HP: 10, Atk: 1, Def: 0})
	first := s.start(svc)

	_, err := svc.StartBattle(s.ctx, &combat.StartBattleInput{PlayerID: testutils.TestPlayerID, MapID: "water"})
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(first.ID, errors.GetMeta(err)["battle_id"])
	s.Equal(first.ID, s.loadPlayer().ActiveBattleID)

	s.expectCapture(false)
	won := s.attack(svc, first.ID)
	s.Equal(battle.StateWon, won.Battle.State)

	// once the first battle is over a new one may start, and the old one pays nothing more
	s.expectEnemy(entities.Stats{HP: 10, Atk: 1, Def: 0})
	second := s.start(svc)
	s.NotEqual(first.ID, second.ID)

	again := s.attack(svc, first.ID)
	s.False(again.Applied)

	active, err := s.ownedRepo.Get(s.ctx, owned.GetInput{ID: testutils.TestOwnedEntityID})
	s.Require().NoError(err)
	s.Equal(55, active.Entity.XP)
}

func (s *IntegrationTestSuite) TestBattleThatIsNotActiveIsRejected() {
	svc := s.newOrchestrator(0)
	stray := &battle.Battle{
		ID:       "battle_stray",
		PlayerID: testutils.TestPlayerID,
		MapID:    "water",
		State:    battle.StatePlayerTurn,
		Round:    1,
		Player:   battle.Combatant{EntityID: 1, OwnedID: testutils.TestOwnedEntityID, Level: 1, Stats: entities.Stats{HP: 50, Atk: 15}, CurrentHP: 50},
		Enemy:    battle.Combatant{EntityID: 2, Level: 1, Stats: entities.Stats{HP: 5}, CurrentHP: 5},
	}
	_, err := s.battleRepo.Save(s.ctx, battles.SaveInput{Battle: stray})
	s.Require().NoError(err)

	_, err = svc.Attack(s.ctx, &combat.AttackInput{PlayerID: testutils.TestPlayerID, BattleID: stray.ID})
	s.True(errors.IsFailedPrecondition(err))

	_, err = svc.Escape(s.ctx, &combat.EscapeInput{PlayerID: testutils.TestPlayerID, BattleID: stray.ID})
	s.True(errors.IsFailedPrecondition(err))

	_, err = svc.GetBattle(s.ctx, &combat.GetBattleInput{PlayerID: testutils.TestPlayerID, BattleID: stray.ID})
	s.True(errors.IsFailedPrecondition(err))

	active, err := s.ownedRepo.Get(s.ctx, owned.GetInput{ID: testutils.TestOwnedEntityID})
	s.Require().NoError(err)
	s.Zero(active.Entity.XP)
}

func (s *IntegrationTestSuite) TestStaleActiveBattleDoesNotBlock() {
	svc := s.newOrchestrator(0)
	session := s.loadPlayer()
	session.ActiveBattleID = "battle_expired"
	_, err := s.playerRepo.Save(s.ctx, player.SaveInput{Player: session})
	s.Require().NoError(err)

	s.expectEnemy(entities.Stats{HP: 30, Atk: 8, Def: 3})
	b := s.start(svc)
	s.Equal(b.ID, s.loadPlayer().ActiveBattleID)
}

func (s *IntegrationTestSuite) TestLockedMap() {
	svc := s.newOrchestrator(0)

	_, err := svc.StartBattle(s.ctx, &combat.StartBattleInput{PlayerID: testutils.TestPlayerID, MapID: "fire"})
	s.True(errors.IsFailedPrecondition(err))
	s.Equal("fire", errors.GetMeta(err)["map_id"])

	_, err = svc.StartBattle(s.ctx, &combat.StartBattleInput{PlayerID: testutils.TestPlayerID, MapID: "nowhere"})
	s.True(errors.IsNotFound(err))
}

func (s *IntegrationTestSuite) TestMapUnlocksAtCompletion() {
	svc := s.newOrchestrator(0)
	for id := 1; id <= 8; id++ {
		_, err := s.archiveRepo.Upsert(s.ctx, archive.UpsertInput{
			PlayerID: testutils.TestPlayerID,
			EntityID: id,
			Status:   entities.ArchiveOpen,
		})
		s.Require().NoError(err)
	}

	s.mockEngine.EXPECT().
		GenerateEncounter(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *engine.GenerateEncounterInput) (*engine.GenerateEncounterOutput, error) {
			s.Equal("fire", input.Map.ID)
			return &engine.GenerateEncounterOutput{
				Encounter: &engine.Encounter{Master: s.roster[11], Stats: entities.Stats{HP: 20}},
			}, nil
		})

	out, err := svc.StartBattle(s.ctx, &combat.StartBattleInput{PlayerID: testutils.TestPlayerID, MapID: "fire"})
	s.Require().NoError(err)
	s.Equal(12, out.Battle.Enemy.EntityID)
}

func (s *IntegrationTestSuite) TestNoEncounter() {
	svc := s.newOrchestrator(0)
	s.mockEngine.EXPECT().
		GenerateEncounter(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("no encounter"))

	_, err := svc.StartBattle(s.ctx, &combat.StartBattleInput{PlayerID: testutils.TestPlayerID, MapID: "water"})
	s.True(errors.IsNotFound(err))
	s.Empty(s.loadPlayer().ActiveBattleID)
}

func (s *IntegrationTestSuite) TestRequiresStarter() {
	svc := s.newOrchestrator(0)

	_, err := svc.StartBattle(s.ctx, &combat.StartBattleInput{PlayerID: "newcomer", MapID: "water"})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *IntegrationTestSuite) TestOtherPlayersBattle() {
	svc := s.newOrchestrator(0)
	s.expectEnemy(entities.Stats{HP: 30, Atk: 8, Def: 3})
	b := s.start(svc)

	_, err := svc.Attack(s.ctx, &combat.AttackInput{PlayerID: "intruder", BattleID: b.ID})
	s.True(errors.IsPermissionDenied(err))

	_, err = svc.GetBattle(s.ctx, &combat.GetBattleInput{PlayerID: "intruder", BattleID: b.ID})
	s.True(errors.IsPermissionDenied(err))
}

func (s *IntegrationTestSuite) TestValidation() {
	svc := s.newOrchestrator(0)

	_, err := svc.Attack(s.ctx, &combat.AttackInput{PlayerID: testutils.TestPlayerID})
	s.True(errors.IsInvalidArgument(err))

	_, err = svc.StartBattle(s.ctx, &combat.StartBattleInput{MapID: "water"})
	s.True(errors.IsInvalidArgument(err))
}
