package client

import (
	"context"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/KirkDiggler/entity-arena/internal/handlers/game/v1alpha1"
)

var (
	ownedID string
	stat    string
	bonusID string
)

var levelUpCmd = &cobra.Command{
	Use:   "level-up",
	Short: "Spend XP to level an owned entity",
	RunE: func(_ *cobra.Command, _ []string) error {
		return call("level up", func(ctx context.Context, c *v1alpha1.GameServiceClient) (*v1alpha1.LevelUpResponse, error) {
			return c.LevelUp(ctx, &v1alpha1.LevelUpRequest{PlayerID: playerID, OwnedID: ownedID})
		})
	},
}

var upgradeStatCmd = &cobra.Command{
	Use:   "upgrade-stat",
	Short: "Spend points on one stat of an owned entity",
	Long: `Buy one point of a stat. Stats are hp, atk, def, matk and mdef.

  upgrade-stat --owned-id owned_abc --stat atk`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return call("upgrade stat", func(ctx context.Context, c *v1alpha1.GameServiceClient) (*v1alpha1.UpgradeStatResponse, error) {
			return c.UpgradeStat(ctx, &v1alpha1.UpgradeStatRequest{
				PlayerID: playerID,
				OwnedID:  ownedID,
				Stat:     stat,
			})
		})
	},
}

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train once to earn points",
	RunE: func(_ *cobra.Command, _ []string) error {
		return call("train", func(ctx context.Context, c *v1alpha1.GameServiceClient) (*v1alpha1.TrainResponse, error) {
			return c.Train(ctx, &v1alpha1.TrainRequest{PlayerID: playerID})
		})
	},
}

var claimBonusCmd = &cobra.Command{
	Use:   "claim-bonus",
	Short: "Claim a bonus target spawned by training",
	RunE: func(_ *cobra.Command, _ []string) error {
		return call("claim bonus", func(ctx context.Context, c *v1alpha1.GameServiceClient) (*v1alpha1.ClaimBonusResponse, error) {
			return c.ClaimBonus(ctx, &v1alpha1.ClaimBonusRequest{PlayerID: playerID, BonusID: bonusID})
		})
	},
}

func init() {
	for _, cmd := range []*cobra.Command{levelUpCmd, upgradeStatCmd} {
		cmd.Flags().StringVar(&ownedID, "owned-id", "", "Owned entity ID (required)")
		_ = cmd.MarkFlagRequired("owned-id") // nolint:errcheck // safe to ignore in init
	}

	upgradeStatCmd.Flags().StringVar(&stat, "stat", "", "Stat to upgrade (required)")
	_ = upgradeStatCmd.MarkFlagRequired("stat") // nolint:errcheck // safe to ignore in init

	claimBonusCmd.Flags().StringVar(&bonusID, "bonus-id", "", "Bonus target ID (required)")
	_ = claimBonusCmd.MarkFlagRequired("bonus-id") // nolint:errcheck // safe to ignore in init
}
