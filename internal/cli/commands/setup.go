package commands

import (
	"log/slog"
	"os"

	"github.com/leapstack-labs/casinogen/internal/cli/config"
	"github.com/leapstack-labs/casinogen/internal/engine"
)

// Helper functions shared across commands

// getConfig returns the current configuration, falling back to defaults
// when no config has been loaded (e.g. in tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}

// newLogger creates the command logger: debug text output on stderr when
// verbose, discard otherwise.
func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.Verbose {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.DiscardHandler)
}

// newEngine builds an engine from the CLI configuration.
func newEngine(cfg *config.Config, logger *slog.Logger) (*engine.Engine, error) {
	return engine.New(engine.Config{
		Counts: engine.Counts{
			Players:          cfg.Counts.Players,
			Staff:            cfg.Counts.Staff,
			Locations:        cfg.Counts.Locations,
			Games:            cfg.Counts.Games,
			Tables:           cfg.Counts.Tables,
			SlotMachines:     cfg.Counts.SlotMachines,
			Rewards:          cfg.Counts.Rewards,
			PlayerGames:      cfg.Counts.PlayerGames,
			StaffAssignments: cfg.Counts.StaffAssigned,
			SlotPlays:        cfg.Counts.SlotPlays,
			PlayerRewards:    cfg.Counts.PlayerRewards,
			Transactions:     cfg.Counts.Transactions,
			GameResults:      cfg.Counts.GameResults,
			LoginHistory:     cfg.Counts.LoginHistory,
			AuditLogs:        cfg.Counts.AuditLogs,
		},
		Seed:     cfg.Seed,
		NullRate: cfg.NullRate,
		Logger:   logger,
	})
}
