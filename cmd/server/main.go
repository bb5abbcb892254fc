// Package main is the entry point for the entity-arena gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/entity-arena/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "entity-arena",
	Short: "Entity Arena gRPC Server",
	Long:  `Entity Arena hosts the battle and progression engine: starters, battles, captures, growth and the archive.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&redisURL, "redis-url", envOr("REDIS_URL", defaultRedisURL), "Redis connection URL")
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "path to a content YAML file (embedded content when empty)")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
