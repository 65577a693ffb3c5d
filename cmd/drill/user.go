package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/hperssn/drill/internal/config"
)

const devUser = "dev-user"

// resolveUserID picks the player completions are recorded for: the --user
// flag, then config (including DRILL_USER_ID), then the login name.
func resolveUserID(flag string, cfg *config.Config, log zerolog.Logger) string {
	userID := flag

	if userID == "" {
		userID = cfg.UserID
	}
	if userID == "" {
		userID = os.Getenv("USER")
	}
	if userID == "" {
		userID = devUser
		log.Warn().Msg("no user configured, using dev-user")
	}

	log.Debug().Str("user_id", userID).Msg("resolved user")
	return userID
}
