// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/entity-arena/internal/entities"
	"github.com/KirkDiggler/entity-arena/internal/errors"
	"github.com/KirkDiggler/entity-arena/internal/repositories/owned"
	ownedmock "github.com/KirkDiggler/entity-arena/internal/repositories/owned/mock"
	"github.com/KirkDiggler/entity-arena/internal/repositories/player"
	playermock "github.com/KirkDiggler/entity-arena/internal/repositories/player/mock"
	"github.com/KirkDiggler/entity-arena/internal/repositories/roster"
	rostermock "github.com/KirkDiggler/entity-arena/internal/repositories/roster/mock"
)

// ExpectNewPlayer sets up a player lookup that finds nothing stored
func ExpectNewPlayer(ctx context.Context, repo *playermock.MockRepository, playerID string) *gomock.Call {
	return repo.EXPECT().
		Get(ctx, player.GetInput{PlayerID: playerID}).
		Return(nil, errors.NotFound("player not found"))
}

// ExpectPlayer sets up a player lookup returning session
func ExpectPlayer(ctx context.Context, repo *playermock.MockRepository, session *entities.PlayerSession) *gomock.Call {
	return repo.EXPECT().
		Get(ctx, player.GetInput{PlayerID: session.PlayerID}).
		Return(&player.GetOutput{Player: session}, nil)
}

// ExpectPlayerSaveEcho accepts one player save and returns what was saved
func ExpectPlayerSaveEcho(ctx context.Context, repo *playermock.MockRepository) *gomock.Call {
	return repo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input player.SaveInput) (*player.SaveOutput, error) {
			return &player.SaveOutput{Player: input.Player}, nil
		})
}

// ExpectOwnedEntity sets up an owned entity lookup by id
func ExpectOwnedEntity(ctx context.Context, repo *ownedmock.MockRepository, entity *entities.OwnedEntity) *gomock.Call {
	return repo.EXPECT().
		Get(ctx, owned.GetInput{ID: entity.ID}).
		Return(&owned.GetOutput{Entity: entity}, nil)
}

// ExpectOwnedUpdateEcho accepts one owned entity update and returns what was written
func ExpectOwnedUpdateEcho(ctx context.Context, repo *ownedmock.MockRepository) *gomock.Call {
	return repo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input owned.UpdateInput) (*owned.UpdateOutput, error) {
			return &owned.UpdateOutput{Entity: input.Entity}, nil
		})
}

// ExpectRoster sets up a roster load
func ExpectRoster(ctx context.Context, repo *rostermock.MockRepository, masters []*entities.EntityMaster) *gomock.Call {
	return repo.EXPECT().
		List(ctx, roster.ListInput{}).
		Return(&roster.ListOutput{Masters: masters}, nil)
}
