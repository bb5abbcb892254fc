package battles_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/entity-arena/internal/battle"
	"github.com/KirkDiggler/entity-arena/internal/entities"
	"github.com/KirkDiggler/entity-arena/internal/errors"
	"github.com/KirkDiggler/entity-arena/internal/pkg/clock"
	"github.com/KirkDiggler/entity-arena/internal/repositories/battles"
	"github.com/KirkDiggler/entity-arena/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    battles.Repository
	mr      *miniredis.Miniredis
	ctx     context.Context
	cleanup func()
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr, cleanup := testutils.CreateTestRedis(s.T())
	s.mr = mr
	s.cleanup = cleanup

	repo, err := battles.NewRedis(&battles.RedisConfig{
		Client: client,
		Clock:  &clock.Fixed{At: testutils.TestTime},
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) battle() *battle.Battle {
	return &battle.Battle{
		ID:       testutils.TestBattleID,
		PlayerID: testutils.TestPlayerID,
		MapID:    "water",
		State:    battle.StateEnemyTurn,
		Round:    2,
		Player: battle.Combatant{
			Name: "Bubblit", EntityID: 1, OwnedID: testutils.TestOwnedEntityID,
			Level: 1, Stats: entities.Stats{HP: 50, Atk: 15, Def: 5}, CurrentHP: 47,
		},
		Enemy: battle.Combatant{
			Name: "Splashy", EntityID: 2, Rarity: entities.RarityNormal,
			Level: 1, Stats: entities.Stats{HP: 30, Atk: 8, Def: 3}, CurrentHP: 18,
		},
		Log: []battle.LogEntry{
			{Type: battle.LogPlayerAttack, Message: "Bubblit hits Splashy for 12", Damage: 12},
		},
		EnemyTurnAt: testutils.TestTime.Add(time.Second),
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGet() {
	saved, err := s.repo.Save(s.ctx, battles.SaveInput{Battle: s.battle()})
	s.Require().NoError(err)
	s.True(saved.Battle.CreatedAt.Equal(testutils.TestTime))

	got, err := s.repo.Get(s.ctx, battles.GetInput{BattleID: testutils.TestBattleID})
	s.Require().NoError(err)
	s.Equal(battle.StateEnemyTurn, got.Battle.State)
	s.Equal(47, got.Battle.Player.CurrentHP)
	s.Equal(18, got.Battle.Enemy.CurrentHP)
	s.Require().Len(got.Battle.Log, 1)
	s.Equal(12, got.Battle.Log[0].Damage)
	s.True(got.Battle.EnemyTurnAt.Equal(testutils.TestTime.Add(time.Second)))
}

func (s *RedisRepositoryTestSuite) TestExpires() {
	_, err := s.repo.Save(s.ctx, battles.SaveInput{Battle: s.battle()})
	s.Require().NoError(err)
	s.Equal(battles.DefaultTTL, s.mr.TTL("battle:"+testutils.TestBattleID))

	s.mr.FastForward(battles.DefaultTTL + time.Second)
	_, err = s.repo.Get(s.ctx, battles.GetInput{BattleID: testutils.TestBattleID})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Save(s.ctx, battles.SaveInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, battles.SaveInput{Battle: &battle.Battle{}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, battles.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}
