// Package client provides test commands for the Entity Arena gRPC service
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	v1alpha1 "github.com/KirkDiggler/entity-arena/internal/handlers/game/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// playerID is shared by every command
	playerID string
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for Entity Arena",
	Long:  `Client commands exercise the game service by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&playerID, "player-id", "", "Player ID (required)")
	_ = ClientCmd.MarkPersistentFlagRequired("player-id") // nolint:errcheck // safe to ignore in init

	// Starter commands
	ClientCmd.AddCommand(generateStartersCmd)
	ClientCmd.AddCommand(rerollStartersCmd)
	ClientCmd.AddCommand(selectStarterCmd)

	// Battle commands
	ClientCmd.AddCommand(listMapsCmd)
	ClientCmd.AddCommand(startBattleCmd)
	ClientCmd.AddCommand(attackCmd)
	ClientCmd.AddCommand(escapeCmd)
	ClientCmd.AddCommand(getBattleCmd)

	// Growth commands
	ClientCmd.AddCommand(levelUpCmd)
	ClientCmd.AddCommand(upgradeStatCmd)
	ClientCmd.AddCommand(trainCmd)
	ClientCmd.AddCommand(claimBonusCmd)

	// Collection commands
	ClientCmd.AddCommand(listOwnedCmd)
	ClientCmd.AddCommand(setActiveCmd)
	ClientCmd.AddCommand(getArchiveCmd)
	ClientCmd.AddCommand(getPlayerCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createGameClient creates a game service client
func createGameClient() (*v1alpha1.GameServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewGameServiceClient(conn), cleanup, nil
}

// call runs fn with a connected client and a request deadline, then prints the response
func call[Resp any](action string, fn func(context.Context, *v1alpha1.GameServiceClient) (*Resp, error)) error {
	client, cleanup, err := createGameClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := fn(ctx, client)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", action, err)
	}

	return printJSON(resp)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
