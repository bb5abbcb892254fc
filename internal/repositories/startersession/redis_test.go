package startersession_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/entity-arena/internal/entities"
	"github.com/KirkDiggler/entity-arena/internal/errors"
	"github.com/KirkDiggler/entity-arena/internal/pkg/clock"
	"github.com/KirkDiggler/entity-arena/internal/repositories/startersession"
	"github.com/KirkDiggler/entity-arena/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    startersession.Repository
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

	repo, err := startersession.NewRedis(&startersession.RedisConfig{
		Client: client,
		Clock:  &clock.Fixed{At: testutils.TestTime},
		TTL:    10 * time.Minute,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) session() *entities.StarterSession {
	return &entities.StarterSession{
		PlayerID: testutils.TestPlayerID,
		Choices: []entities.StarterChoice{
			{EntityID: 1, Stats: entities.Stats{HP: 25, Atk: 6}},
			{EntityID: 4, Stats: entities.Stats{HP: 22, Atk: 7}},
			{EntityID: 9, Stats: entities.Stats{HP: 28, Atk: 5}},
		},
	}
}

func (s *RedisRepositoryTestSuite) TestSaveGetDelete() {
	saved, err := s.repo.Save(s.ctx, startersession.SaveInput{Session: s.session()})
	s.Require().NoError(err)
	s.True(saved.Session.CreatedAt.Equal(testutils.TestTime))

	got, err := s.repo.Get(s.ctx, startersession.GetInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)
	s.Len(got.Session.Choices, 3)
	s.Equal(4, got.Session.Choices[1].EntityID)

	_, err = s.repo.Delete(s.ctx, startersession.DeleteInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, startersession.GetInput{PlayerID: testutils.TestPlayerID})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestExpires() {
	_, err := s.repo.Save(s.ctx, startersession.SaveInput{Session: s.session()})
	s.Require().NoError(err)

	s.mr.FastForward(9 * time.Minute)
	_, err = s.repo.Get(s.ctx, startersession.GetInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Minute)
	_, err = s.repo.Get(s.ctx, startersession.GetInput{PlayerID: testutils.TestPlayerID})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestSaveTTLOverride() {
	_, err := s.repo.Save(s.ctx, startersession.SaveInput{Session: s.session(), TTL: time.Minute})
	s.Require().NoError(err)
	s.Equal(time.Minute, s.mr.TTL("starter_session:"+testutils.TestPlayerID))
}

func (s *RedisRepositoryTestSuite) TestDeleteMissingIsFine() {
	_, err := s.repo.Delete(s.ctx, startersession.DeleteInput{PlayerID: "nobody"})
	s.NoError(err)
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Save(s.ctx, startersession.SaveInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, startersession.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = startersession.NewRedis(&startersession.RedisConfig{})
	s.True(errors.IsInvalidArgument(err))
}
