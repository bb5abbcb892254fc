package archive_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/entity-arena/internal/entities"
	"github.com/KirkDiggler/entity-arena/internal/errors"
	"github.com/KirkDiggler/entity-arena/internal/pkg/clock"
	"github.com/KirkDiggler/entity-arena/internal/repositories/archive"
	"github.com/KirkDiggler/entity-arena/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    archive.Repository
	clock   *clock.Fixed
	ctx     context.Context
	cleanup func()
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.clock = &clock.Fixed{At: testutils.TestTime}

	repo, err := archive.NewRedis(&archive.RedisConfig{Client: client, Clock: s.clock})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) upsert(entityID int, status entities.ArchiveStatus) *archive.UpsertOutput {
	out, err := s.repo.Upsert(s.ctx, archive.UpsertInput{
		PlayerID: testutils.TestPlayerID,
		EntityID: entityID,
		Status:   status,
	})
	s.Require().NoError(err)
	return out
}

func (s *RedisRepositoryTestSuite) TestNeverDowngrades() {
	s.True(s.upsert(7, entities.ArchiveClose).Changed)

	s.clock.Advance(time.Hour)
	s.True(s.upsert(7, entities.ArchiveOpen).Changed)

	out := s.upsert(7, entities.ArchiveClose)
	s.False(out.Changed)
	s.Equal(entities.ArchiveOpen, out.Entry.Status)
	s.True(out.Entry.FirstSeenAt.Equal(testutils.TestTime), "first seen is kept from the first write")
}

func (s *RedisRepositoryTestSuite) TestIdempotent() {
	s.True(s.upsert(3, entities.ArchiveOpen).Changed)

	out := s.upsert(3, entities.ArchiveOpen)
	s.False(out.Changed)
	s.Equal(entities.ArchiveOpen, out.Entry.Status)
}

func (s *RedisRepositoryTestSuite) TestGetUnseenIsNone() {
	out, err := s.repo.Get(s.ctx, archive.GetInput{PlayerID: testutils.TestPlayerID, EntityID: 42})
	s.Require().NoError(err)
	s.Equal(entities.ArchiveNone, out.Entry.Status)
	s.True(out.Entry.FirstSeenAt.IsZero())
}

func (s *RedisRepositoryTestSuite) TestListByPlayerID() {
	s.upsert(10, entities.ArchiveOpen)
	s.upsert(2, entities.ArchiveClose)
	s.upsert(5, entities.ArchiveOpen)

	_, err := s.repo.Upsert(s.ctx, archive.UpsertInput{PlayerID: "other", EntityID: 1, Status: entities.ArchiveOpen})
	s.Require().NoError(err)

	out, err := s.repo.ListByPlayerID(s.ctx, archive.ListByPlayerIDInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 3)
	s.Equal(2, out.Entries[0].EntityID)
	s.Equal(entities.ArchiveClose, out.Entries[0].Status)
	s.Equal(5, out.Entries[1].EntityID)
	s.Equal(10, out.Entries[2].EntityID)
	s.True(out.Entries[2].FirstSeenAt.Equal(testutils.TestTime))
}

func (s *RedisRepositoryTestSuite) TestUpsertValidates() {
	testCases := []struct {
		name  string
		input archive.UpsertInput
	}{
		{"empty player", archive.UpsertInput{EntityID: 1, Status: entities.ArchiveOpen}},
		{"zero entity", archive.UpsertInput{PlayerID: "p", Status: entities.ArchiveOpen}},
		{"none status", archive.UpsertInput{PlayerID: "p", EntityID: 1, Status: entities.ArchiveNone}},
		{"unknown status", archive.UpsertInput{PlayerID: "p", EntityID: 1, Status: "seen"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Upsert(s.ctx, tc.input)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}
