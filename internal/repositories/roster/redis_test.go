package roster_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/entity-arena/internal/entities"
	"github.com/KirkDiggler/entity-arena/internal/errors"
	"github.com/KirkDiggler/entity-arena/internal/repositories/roster"
	"github.com/KirkDiggler/entity-arena/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    roster.Repository
	ctx     context.Context
	cleanup func()
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := roster.NewRedis(&roster.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestNewRedisRequiresClient() {
	_, err := roster.NewRedis(&roster.RedisConfig{})
	s.True(errors.IsInvalidArgument(err))

	_, err = roster.NewRedis(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestUpsertAndListIsIDOrdered() {
	masters := testutils.CreateTestRoster(1, 12)
	// write out of order
	masters[0], masters[11] = masters[11], masters[0]

	out, err := s.repo.Upsert(s.ctx, roster.UpsertInput{Masters: masters})
	s.Require().NoError(err)
	s.Equal(12, out.Count)

	list, err := s.repo.List(s.ctx, roster.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(list.Masters, 12)
	for i, m := range list.Masters {
		s.Equal(i+1, m.ID)
	}
	s.Equal(entities.RarityUnique, list.Masters[11].Rarity)
}

func (s *RedisRepositoryTestSuite) TestUpsertReplaces() {
	m := testutils.CreateTestEntityMaster(7, entities.RarityNormal)
	_, err := s.repo.Upsert(s.ctx, roster.UpsertInput{Masters: []*entities.EntityMaster{m}})
	s.Require().NoError(err)

	renamed := *m
	renamed.DisplayName = "Renamed"
	_, err = s.repo.Upsert(s.ctx, roster.UpsertInput{Masters: []*entities.EntityMaster{&renamed}})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, roster.GetInput{ID: 7})
	s.Require().NoError(err)
	s.Equal("Renamed", got.Master.DisplayName)
	s.Equal(m.MinStats, got.Master.MinStats)
}

func (s *RedisRepositoryTestSuite) TestUpsertValidates() {
	_, err := s.repo.Upsert(s.ctx, roster.UpsertInput{Masters: []*entities.EntityMaster{nil}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Upsert(s.ctx, roster.UpsertInput{
		Masters: []*entities.EntityMaster{testutils.CreateTestEntityMaster(0, entities.RarityNormal)},
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, roster.GetInput{ID: 99})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListEmpty() {
	list, err := s.repo.List(s.ctx, roster.ListInput{})
	s.Require().NoError(err)
	s.Empty(list.Masters)
}
