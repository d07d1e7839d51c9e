// Package cli provides the command-line interface for casinogen.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/casinogen/internal/cli/commands"
	"github.com/leapstack-labs/casinogen/internal/cli/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "casinogen",
		Short: "casinogen - Casino dataset generator",
		Long: `casinogen synthesizes a relationally consistent fake casino dataset and
exports it as interrelated CSV files.

Every foreign reference points at a generated parent record, timestamps
respect the creation time of the entities they depend on, and unique
identifiers never repeat within a run. Seed the generator for fully
reproducible output.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			var err error
			cfg, err = config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Casino dataset generator
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./casinogen.yaml)")
	rootCmd.PersistentFlags().String("out-dir", "", "Output directory for generated CSV files")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed (0 derives one from the clock)")
	rootCmd.PersistentFlags().Float64("null-rate", config.DefaultNullRate, "Absence probability for optional references")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	// Per-collection record counts
	counts := config.DefaultCounts()
	rootCmd.PersistentFlags().Int("num-players", counts.Players, "Number of players")
	rootCmd.PersistentFlags().Int("num-staff", counts.Staff, "Number of staff members")
	rootCmd.PersistentFlags().Int("num-locations", counts.Locations, "Number of casino locations")
	rootCmd.PersistentFlags().Int("num-games", counts.Games, "Number of games")
	rootCmd.PersistentFlags().Int("num-tables", counts.Tables, "Number of table games")
	rootCmd.PersistentFlags().Int("num-slot-machines", counts.SlotMachines, "Number of slot machines")
	rootCmd.PersistentFlags().Int("num-rewards", counts.Rewards, "Number of rewards")
	rootCmd.PersistentFlags().Int("num-player-games", counts.PlayerGames, "Number of player game plays")
	rootCmd.PersistentFlags().Int("num-staff-assigned", counts.StaffAssigned, "Number of staff table assignments")
	rootCmd.PersistentFlags().Int("num-slot-plays", counts.SlotPlays, "Number of slot plays")
	rootCmd.PersistentFlags().Int("num-player-rewards", counts.PlayerRewards, "Number of reward redemptions")
	rootCmd.PersistentFlags().Int("num-transactions", counts.Transactions, "Number of transactions")
	rootCmd.PersistentFlags().Int("num-game-results", counts.GameResults, "Number of game results")
	rootCmd.PersistentFlags().Int("num-login-history", counts.LoginHistory, "Number of login events")
	rootCmd.PersistentFlags().Int("num-audit-logs", counts.AuditLogs, "Number of audit log entries")

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewGenerateCommand())
	rootCmd.AddCommand(commands.NewPlanCommand())
	rootCmd.AddCommand(commands.NewInitCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
