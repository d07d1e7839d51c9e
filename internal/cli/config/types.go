// Package config provides configuration management for the casinogen CLI.
package config

// Config holds all CLI configuration options.
type Config struct {
	OutDir   string       `koanf:"out_dir"`
	Seed     uint64       `koanf:"seed"`
	NullRate float64      `koanf:"null_rate"`
	Verbose  bool         `koanf:"verbose"`
	Counts   CountsConfig `koanf:"counts"`
}

// CountsConfig sets the cardinality of every generated collection.
type CountsConfig struct {
	Players       int `koanf:"num_players"`
	Staff         int `koanf:"num_staff"`
	Locations     int `koanf:"num_locations"`
	Games         int `koanf:"num_games"`
	Tables        int `koanf:"num_tables"`
	SlotMachines  int `koanf:"num_slot_machines"`
	Rewards       int `koanf:"num_rewards"`
	PlayerGames   int `koanf:"num_player_games"`
	StaffAssigned int `koanf:"num_staff_assigned"`
	SlotPlays     int `koanf:"num_slot_plays"`
	PlayerRewards int `koanf:"num_player_rewards"`
	Transactions  int `koanf:"num_transactions"`
	GameResults   int `koanf:"num_game_results"`
	LoginHistory  int `koanf:"num_login_history"`
	AuditLogs     int `koanf:"num_audit_logs"`
}

// Default configuration values.
const (
	DefaultOutDir   = "generated"
	DefaultNullRate = 0.2
)

// DefaultCounts returns the default collection cardinalities.
func DefaultCounts() CountsConfig {
	return CountsConfig{
		Players:       100,
		Staff:         20,
		Locations:     5,
		Games:         8,
		Tables:        20,
		SlotMachines:  15,
		Rewards:       10,
		PlayerGames:   300,
		StaffAssigned: 50,
		SlotPlays:     200,
		PlayerRewards: 50,
		Transactions:  300,
		GameResults:   100,
		LoginHistory:  200,
		AuditLogs:     50,
	}
}

// Default returns a fully populated default configuration.
func Default() *Config {
	return &Config{
		OutDir:   DefaultOutDir,
		NullRate: DefaultNullRate,
		Counts:   DefaultCounts(),
	}
}
