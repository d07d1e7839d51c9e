package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/casinogen/internal/cli/config"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a starter casinogen.yaml configuration file",
		Long: `Write a casinogen.yaml populated with the default output directory,
null rate, and per-collection record counts, ready to edit.`,
		Example: `  # Initialize in the current directory
  casinogen init

  # Initialize in a new directory
  casinogen init my-dataset

  # Overwrite an existing config
  casinogen init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(cmd, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, force bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, "casinogen.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("casinogen.yaml already exists. Use --force to overwrite")
	}

	defaults := config.Default()
	content, err := yaml.Marshal(map[string]interface{}{
		"out_dir":   defaults.OutDir,
		"seed":      defaults.Seed,
		"null_rate": defaults.NullRate,
		"counts": map[string]int{
			"num_players":        defaults.Counts.Players,
			"num_staff":          defaults.Counts.Staff,
			"num_locations":      defaults.Counts.Locations,
			"num_games":          defaults.Counts.Games,
			"num_tables":         defaults.Counts.Tables,
			"num_slot_machines":  defaults.Counts.SlotMachines,
			"num_rewards":        defaults.Counts.Rewards,
			"num_player_games":   defaults.Counts.PlayerGames,
			"num_staff_assigned": defaults.Counts.StaffAssigned,
			"num_slot_plays":     defaults.Counts.SlotPlays,
			"num_player_rewards": defaults.Counts.PlayerRewards,
			"num_transactions":   defaults.Counts.Transactions,
			"num_game_results":   defaults.Counts.GameResults,
			"num_login_history":  defaults.Counts.LoginHistory,
			"num_audit_logs":     defaults.Counts.AuditLogs,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}

	header := "# casinogen configuration.\n# A seed of 0 derives one from the clock; set it for reproducible runs.\n"
	if err := os.WriteFile(configPath, append([]byte(header), content...), 0640); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
	fmt.Fprintln(cmd.OutOrStdout(), "Next: edit the counts, then run 'casinogen generate'")
	return nil
}
