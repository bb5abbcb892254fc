//go:build integration

package client

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/entity-arena/internal/battle"
	v1alpha1 "github.com/KirkDiggler/entity-arena/internal/handlers/game/v1alpha1"
)

// TestStarterToBattleIntegration plays a fresh player from starter selection to a finished
// battle against a running server seeded with the default content.
func TestStarterToBattleIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	grpcServerAddress := os.Getenv("GRPC_SERVER_ADDRESS")
	if grpcServerAddress == "" {
		grpcServerAddress = "localhost:50051"
	}
	conn, err := grpc.NewClient(grpcServerAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer func() {
		if err := conn.Close(); err != nil {
			t.Logf("Failed to close connection: %v", err)
		}
	}()

	client := v1alpha1.NewGameServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	player := fmt.Sprintf("integration-%d", time.Now().UnixNano())

	offers, err := client.GenerateStarters(ctx, &v1alpha1.GenerateStartersRequest{PlayerID: player})
	require.NoError(t, err)
	require.NotEmpty(t, offers.Offers.Choices)
	assert.Equal(t, 1, offers.Offers.RerollsLeft)

	again, err := client.GenerateStarters(ctx, &v1alpha1.GenerateStartersRequest{PlayerID: player})
	require.NoError(t, err)
	assert.Equal(t, offers.Offers.Choices, again.Offers.Choices, "pending offers must not be rerolled for free")

	rerolled, err := client.RerollStarters(ctx, &v1alpha1.RerollStartersRequest{PlayerID: player})
	require.NoError(t, err)
	assert.Equal(t, 0, rerolled.Offers.RerollsLeft)

	_, err = client.RerollStarters(ctx, &v1alpha1.RerollStartersRequest{PlayerID: player})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	selected, err := client.SelectStarter(ctx, &v1alpha1.SelectStarterRequest{
		PlayerID: player,
		EntityID: rerolled.Offers.Choices[0].EntityID,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, selected.Entity.Level)

	started, err := client.StartBattle(ctx, &v1alpha1.StartBattleRequest{PlayerID: player, MapID: "water"})
	require.NoError(t, err)
	require.Equal(t, battle.StatePlayerTurn, started.Battle.State)

	b := started.Battle
	for i := 0; i < 200 && !b.State.Terminal(); i++ {
		if b.State == battle.StateEnemyTurn {
			time.Sleep(100 * time.Millisecond)
			got, err := client.GetBattle(ctx, &v1alpha1.GetBattleRequest{PlayerID: player, BattleID: b.ID})
			require.NoError(t, err)
			b = got.Battle
			continue
		}
		attacked, err := client.Attack(ctx, &v1alpha1.AttackRequest{PlayerID: player, BattleID: b.ID})
		require.NoError(t, err)
		b = attacked.Battle
	}
	require.True(t, b.State.Terminal(), "battle did not finish")
	require.NotNil(t, b.Outcome)

	archive, err := client.GetArchive(ctx, &v1alpha1.GetArchiveRequest{PlayerID: player})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, archive.Discovered, 1)
	assert.GreaterOrEqual(t, archive.Encountered, archive.Discovered)
}
