package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/entity-arena/internal/redis"
	"github.com/KirkDiggler/entity-arena/internal/repositories/roster"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the content roster into Redis",
	Long:  `Validate the content file and write every species into the roster store, replacing existing records.`,
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cnt, err := loadContent(contentPath)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	redisClient, err := redis.NewClientFromURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		_ = redisClient.Close()
	}()

	repo, err := roster.NewRedis(&roster.RedisConfig{Client: redisClient})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	count, err := seedRoster(ctx, repo, cnt, false)
	if err != nil {
		return fmt.Errorf("failed to seed roster: %w", err)
	}

	fmt.Printf("Seeded %d species and %d maps from content\n", count, len(cnt.Maps))
	return nil
}
