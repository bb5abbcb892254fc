package client

import (
	"context"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/KirkDiggler/entity-arena/internal/handlers/game/v1alpha1"
)

var starterEntityID int

var generateStartersCmd = &cobra.Command{
	Use:   "generate-starters",
	Short: "Show the starter offers",
	Long:  `Roll three starter offers, or show the pending ones if they were already rolled.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return call("generate starters", func(ctx context.Context, c *v1alpha1.GameServiceClient) (*v1alpha1.GenerateStartersResponse, error) {
			return c.GenerateStarters(ctx, &v1alpha1.GenerateStartersRequest{PlayerID: playerID})
		})
	},
}

var rerollStartersCmd = &cobra.Command{
	Use:   "reroll-starters",
	Short: "Replace the starter offers",
	RunE: func(_ *cobra.Command, _ []string) error {
		return call("reroll starters", func(ctx context.Context, c *v1alpha1.GameServiceClient) (*v1alpha1.RerollStartersResponse, error) {
			return c.RerollStarters(ctx, &v1alpha1.RerollStartersRequest{PlayerID: playerID})
		})
	},
}

var selectStarterCmd = &cobra.Command{
	Use:   "select-starter",
	Short: "Choose one of the starter offers",
	RunE: func(_ *cobra.Command, _ []string) error {
		return call("select starter", func(ctx context.Context, c *v1alpha1.GameServiceClient) (*v1alpha1.SelectStarterResponse, error) {
			return c.SelectStarter(ctx, &v1alpha1.SelectStarterRequest{
				PlayerID: playerID,
				EntityID: starterEntityID,
			})
		})
	},
}

func init() {
	selectStarterCmd.Flags().IntVar(&starterEntityID, "entity-id", 0, "Species id of the chosen offer (required)")
	_ = selectStarterCmd.MarkFlagRequired("entity-id") // nolint:errcheck // safe to ignore in init
}
