package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"maunium.net/go/mautrix"
	"maunium.net/go/mautrix/id"

	"github.com/prashant-ahirwar/Renameit/rename"
)

// batchSummary is the plain-text message posted for a batch.
func batchSummary(batchID string, cfg rename.NamingConfig, pairs []rename.Pair) string {
	var b strings.Builder
	fmt.Fprintf(&b, "renameit batch %s: %s\n", batchID, rename.CountLabel(len(pairs)))
	cleanup := cfg.Cleanup.String()
	if cleanup == "" {
		cleanup = "none"
	}
	fmt.Fprintf(&b, "style=%s digits=%d cleanup=%s\n", cfg.Style, cfg.Digits, cleanup)
	for _, p := range pairs {
		fmt.Fprintf(&b, "%s → %s\n", p.Original, p.Generated)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// initializeMatrixClient creates and verifies the Matrix client connection.
func initializeMatrixClient(ctx context.Context, n *NotifyFlags, logger zerolog.Logger) (*mautrix.Client, error) {
	logger.Debug().Str("server", n.Server).Msg("Initializing Matrix client...")
	client, err := mautrix.NewClient(n.Server, id.UserID(n.User), n.Token)
	if err != nil {
		// Log details before returning wrapped error
		logger.Error().Err(err).Msg("Failed to create Matrix client")
		return nil, fmt.Errorf("failed to create Matrix client: %w", err)
	}
	client.DeviceID = id.DeviceID(n.DeviceID)
	client.Store = mautrix.NewMemorySyncStore() // Nothing is synced, we only send

	whoami, err := client.Whoami(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to verify credentials (whoami failed)")
		// Attempt to provide more context if it's an HTTP error
		var httpErr mautrix.HTTPError
		if errors.As(err, &httpErr) && httpErr.Response != nil {
			logger.Error().Int("status_code", httpErr.Response.StatusCode).Interface("resp_error", httpErr.RespError).Msg("Whoami HTTP error details")
		}
		return nil, fmt.Errorf("failed to verify credentials (whoami failed): %w", err)
	}
	logger.Debug().Str("user_id", whoami.UserID.String()).Str("device_id", whoami.DeviceID.String()).Msg("Logged in to Matrix")
	if n.DeviceID != "" && whoami.DeviceID != id.DeviceID(n.DeviceID) {
		logger.Warn().Str("expected", n.DeviceID).Str("actual", string(whoami.DeviceID)).Msg("Logged in with different device ID than specified")
	}
	client.DeviceID = whoami.DeviceID // Use actual device ID from whoami response
	return client, nil
}

// resolveRoom accepts either a room ID or a #alias.
func resolveRoom(ctx context.Context, client *mautrix.Client, room string) (id.RoomID, error) {
	if !strings.HasPrefix(room, "#") {
		return id.RoomID(room), nil
	}
	resp, err := client.ResolveAlias(ctx, id.RoomAlias(room))
	if err != nil {
		return "", fmt.Errorf("failed to resolve room alias %s: %w", room, err)
	}
	return resp.RoomID, nil
}

// notifyBatch posts summary to the configured room.
func notifyBatch(ctx context.Context, n *NotifyFlags, summary string, logger zerolog.Logger) error {
	roomLog := logger.With().Str("room", n.Room).Logger()

	client, err := initializeMatrixClient(ctx, n, roomLog)
	if err != nil {
		return err // Already logged
	}

	roomID, err := resolveRoom(ctx, client, n.Room)
	if err != nil {
		roomLog.Error().Err(err).Msg("Failed to resolve room")
		return err
	}

	resp, err := client.SendText(ctx, roomID, summary)
	if err != nil {
		roomLog.Error().Err(err).Msg("Failed to post batch summary")
		return fmt.Errorf("failed to post batch summary to %s: %w", n.Room, err)
	}
	roomLog.Info().Str("event_id", resp.EventID.String()).Msg("Posted batch summary")
	return nil
}
