package client

import (
	"context"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/KirkDiggler/entity-arena/internal/handlers/game/v1alpha1"
)

var (
	activeOwnedID string
	element       string
	rarity        string
)

var listOwnedCmd = &cobra.Command{
	Use:   "list-owned",
	Short: "List owned entities, newest first",
	RunE: func(_ *cobra.Command, _ []string) error {
		return call("list owned entities", func(ctx context.Context, c *v1alpha1.GameServiceClient) (*v1alpha1.ListOwnedEntitiesResponse, error) {
			return c.ListOwnedEntities(ctx, &v1alpha1.ListOwnedEntitiesRequest{PlayerID: playerID})
		})
	},
}

var setActiveCmd = &cobra.Command{
	Use:   "set-active",
	Short: "Choose the entity used in battle",
	RunE: func(_ *cobra.Command, _ []string) error {
		return call("set active entity", func(ctx context.Context, c *v1alpha1.GameServiceClient) (*v1alpha1.SetActiveEntityResponse, error) {
			return c.SetActiveEntity(ctx, &v1alpha1.SetActiveEntityRequest{PlayerID: playerID, OwnedID: activeOwnedID})
		})
	},
}

var getArchiveCmd = &cobra.Command{
	Use:   "get-archive",
	Short: "Show the archive with discovery counts",
	RunE: func(_ *cobra.Command, _ []string) error {
		return call("get archive", func(ctx context.Context, c *v1alpha1.GameServiceClient) (*v1alpha1.GetArchiveResponse, error) {
			return c.GetArchive(ctx, &v1alpha1.GetArchiveRequest{
				PlayerID: playerID,
				Element:  element,
				Rarity:   rarity,
			})
		})
	},
}

var getPlayerCmd = &cobra.Command{
	Use:   "get-player",
	Short: "Show the player's session",
	RunE: func(_ *cobra.Command, _ []string) error {
		return call("get player", func(ctx context.Context, c *v1alpha1.GameServiceClient) (*v1alpha1.GetPlayerResponse, error) {
			return c.GetPlayer(ctx, &v1alpha1.GetPlayerRequest{PlayerID: playerID})
		})
	},
}

func init() {
	setActiveCmd.Flags().StringVar(&activeOwnedID, "owned-id", "", "Owned entity ID (required)")
	_ = setActiveCmd.MarkFlagRequired("owned-id") // nolint:errcheck // safe to ignore in init

	getArchiveCmd.Flags().StringVar(&element, "element", "", "Filter by element")
	getArchiveCmd.Flags().StringVar(&rarity, "rarity", "", "Filter by rarity")
}
