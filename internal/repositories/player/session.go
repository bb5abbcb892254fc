package player

import (
	"context"

	"github.com/KirkDiggler/entity-arena/internal/entities"
	"github.com/KirkDiggler/entity-arena/internal/errors"
)

// LoadOrNew returns the stored session, or a fresh unsaved one for a player who has
// never been saved
func LoadOrNew(ctx context.Context, repo Repository, playerID string) (*entities.PlayerSession, error) {
	out, err := repo.Get(ctx, GetInput{PlayerID: playerID})
	if err == nil {
		return out.Player, nil
	}
	if errors.IsNotFound(err) {
		return &entities.PlayerSession{PlayerID: playerID}, nil
	}
	return nil, err
}
