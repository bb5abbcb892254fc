package entities

import "time"

// ArchiveStatus is the discovery state of a species for one player.
// It only ever advances none -> close -> open.
type ArchiveStatus string

// Archive statuses
const (
	ArchiveNone  ArchiveStatus = "none"
	ArchiveClose ArchiveStatus = "close"
	ArchiveOpen  ArchiveStatus = "open"
)

// Rank orders statuses. Unknown values rank below none.
func (s ArchiveStatus) Rank() int {
	switch s {
	case ArchiveNone, "":
		return 0
	case ArchiveClose:
		return 1
	case ArchiveOpen:
		return 2
	default:
		return -1
	}
}

// Valid reports whether s is a known status
func (s ArchiveStatus) Valid() bool {
	return s.Rank() >= 0
}

// CanAdvanceTo reports whether moving from s to next is a forward step
func (s ArchiveStatus) CanAdvanceTo(next ArchiveStatus) bool {
	return next.Valid() && next.Rank() > s.Rank()
}

// Max returns the higher ranked of s and other
func (s ArchiveStatus) Max(other ArchiveStatus) ArchiveStatus {
	if other.Rank() > s.Rank() {
		return other
	}
	if s == "" {
		return ArchiveNone
	}
	return s
}

// ArchiveEntry records a player's discovery of one species
type ArchiveEntry struct {
	PlayerID    string        `json:"player_id"`
	EntityID    int           `json:"entity_id"`
	Status      ArchiveStatus `json:"status"`
	FirstSeenAt time.Time     `json:"first_seen_at"`
}
