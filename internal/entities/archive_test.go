package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/entity-arena/internal/entities"
)

type ArchiveStatusTestSuite struct {
	suite.Suite
}

func TestArchiveStatusSuite(t *testing.T) {
	suite.Run(t, new(ArchiveStatusTestSuite))
}

func (s *ArchiveStatusTestSuite) TestCanAdvanceTo() {
	testCases := []struct {
		name string
		from entities.ArchiveStatus
		to   entities.ArchiveStatus
		want bool
	}{
		{"none to close", entities.ArchiveNone, entities.ArchiveClose, true},
		{"none to open", entities.ArchiveNone, entities.ArchiveOpen, true},
		{"close to open", entities.ArchiveClose, entities.ArchiveOpen, true},
		{"empty to close", "", entities.ArchiveClose, true},
		{"open to close", entities.ArchiveOpen, entities.ArchiveClose, false},
		{"open to open", entities.ArchiveOpen, entities.ArchiveOpen, false},
		{"close to close", entities.ArchiveClose, entities.ArchiveClose, false},
		{"close to none", entities.ArchiveClose, entities.ArchiveNone, false},
		{"none to garbage", entities.ArchiveNone, entities.ArchiveStatus("seen"), false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, tc.from.CanAdvanceTo(tc.to))
		})
	}
}

func (s *ArchiveStatusTestSuite) TestSequenceNeverRegresses() {
	current := entities.ArchiveNone
	for _, next := range []entities.ArchiveStatus{
		entities.ArchiveClose,
		entities.ArchiveOpen,
		entities.ArchiveClose,
	} {
		if current.CanAdvanceTo(next) {
			current = next
		}
	}

	s.Equal(entities.ArchiveOpen, current)
}

func (s *ArchiveStatusTestSuite) TestMax() {
	s.Equal(entities.ArchiveOpen, entities.ArchiveOpen.Max(entities.ArchiveClose))
	s.Equal(entities.ArchiveClose, entities.ArchiveNone.Max(entities.ArchiveClose))
	s.Equal(entities.ArchiveNone, entities.ArchiveStatus("").Max(entities.ArchiveNone))
}
