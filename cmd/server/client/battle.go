package client

import (
	"context"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/KirkDiggler/entity-arena/internal/handlers/game/v1alpha1"
)

var (
	mapID    string
	battleID string
)

var listMapsCmd = &cobra.Command{
	Use:   "list-maps",
	Short: "List maps with completion and unlock state",
	RunE: func(_ *cobra.Command, _ []string) error {
		return call("list maps", func(ctx context.Context, c *v1alpha1.GameServiceClient) (*v1alpha1.ListMapsResponse, error) {
			return c.ListMaps(ctx, &v1alpha1.ListMapsRequest{PlayerID: playerID})
		})
	},
}

var startBattleCmd = &cobra.Command{
	Use:   "start-battle",
	Short: "Start a battle on a map with the active entity",
	RunE: func(_ *cobra.Command, _ []string) error {
		return call("start battle", func(ctx context.Context, c *v1alpha1.GameServiceClient) (*v1alpha1.StartBattleResponse, error) {
			return c.StartBattle(ctx, &v1alpha1.StartBattleRequest{PlayerID: playerID, MapID: mapID})
		})
	},
}

var attackCmd = &cobra.Command{
	Use:   "attack",
	Short: "Attack the enemy",
	RunE: func(_ *cobra.Command, _ []string) error {
		return call("attack", func(ctx context.Context, c *v1alpha1.GameServiceClient) (*v1alpha1.AttackResponse, error) {
			return c.Attack(ctx, &v1alpha1.AttackRequest{PlayerID: playerID, BattleID: battleID})
		})
	},
}

var escapeCmd = &cobra.Command{
	Use:   "escape",
	Short: "Escape from the battle",
	RunE: func(_ *cobra.Command, _ []string) error {
		return call("escape", func(ctx context.Context, c *v1alpha1.GameServiceClient) (*v1alpha1.EscapeResponse, error) {
			return c.Escape(ctx, &v1alpha1.EscapeRequest{PlayerID: playerID, BattleID: battleID})
		})
	},
}

var getBattleCmd = &cobra.Command{
	Use:   "get-battle",
	Short: "Show a battle",
	RunE: func(_ *cobra.Command, _ []string) error {
		return call("get battle", func(ctx context.Context, c *v1alpha1.GameServiceClient) (*v1alpha1.GetBattleResponse, error) {
			return c.GetBattle(ctx, &v1alpha1.GetBattleRequest{PlayerID: playerID, BattleID: battleID})
		})
	},
}

func init() {
	startBattleCmd.Flags().StringVar(&mapID, "map-id", "water", "Map to fight on")

	for _, cmd := range []*cobra.Command{attackCmd, escapeCmd, getBattleCmd} {
		cmd.Flags().StringVar(&battleID, "battle-id", "", "Battle ID (required)")
		_ = cmd.MarkFlagRequired("battle-id") // nolint:errcheck // safe to ignore in init
	}
}
