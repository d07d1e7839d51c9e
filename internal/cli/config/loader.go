package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Package-level koanf instance and config file tracking.
var (
	k              = koanf.New(".")
	configFileUsed string
	currentConfig  *Config
)

// findConfigFile finds the config file to use.
// Priority: explicit path > casinogen.yaml > casinogen.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"casinogen.yaml", "casinogen.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// ResetConfig resets the koanf instance. Used for testing.
func ResetConfig() {
	k = koanf.New(".")
	configFileUsed = ""
	currentConfig = nil
}

// LoadConfig loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	// Reset koanf for a fresh load
	k = koanf.New(".")

	// 1. Defaults
	defaults := Default()
	defaultMap := map[string]interface{}{
		"out_dir":   defaults.OutDir,
		"seed":      defaults.Seed,
		"null_rate": defaults.NullRate,
		"verbose":   false,
	}
	for key, value := range countMap(defaults.Counts) {
		defaultMap["counts."+key] = value
	}
	if err := k.Load(confmap.Provider(defaultMap, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Environment variables (CASINOGEN_ prefix).
	// A double underscore separates nesting levels, since the keys
	// themselves contain underscores:
	//   CASINOGEN_OUT_DIR              -> out_dir
	//   CASINOGEN_COUNTS__NUM_PLAYERS  -> counts.num_players
	if err := k.Load(env.Provider("CASINOGEN_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "CASINOGEN_"))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags (highest priority)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			// Transform kebab-case to snake_case for config keys;
			// count flags live under the counts section.
			key := strings.ReplaceAll(f.Name, "-", "_")
			if strings.HasPrefix(key, "num_") {
				key = "counts." + key
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	currentConfig = &cfg
	return &cfg, nil
}

// countMap flattens counts into koanf keys.
func countMap(c CountsConfig) map[string]int {
	return map[string]int{
		"num_players":        c.Players,
		"num_staff":          c.Staff,
		"num_locations":      c.Locations,
		"num_games":          c.Games,
		"num_tables":         c.Tables,
		"num_slot_machines":  c.SlotMachines,
		"num_rewards":        c.Rewards,
		"num_player_games":   c.PlayerGames,
		"num_staff_assigned": c.StaffAssigned,
		"num_slot_plays":     c.SlotPlays,
		"num_player_rewards": c.PlayerRewards,
		"num_transactions":   c.Transactions,
		"num_game_results":   c.GameResults,
		"num_login_history":  c.LoginHistory,
		"num_audit_logs":     c.AuditLogs,
	}
}

// GetCurrentConfig returns the most recently loaded config, if any.
func GetCurrentConfig() *Config {
	return currentConfig
}

// GetConfigFileUsed returns the path to the config file being used, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}
