package config

import "fmt"

// countRequirement names a dependent collection and the parent counts
// that must be positive for it to be generated at all.
type countRequirement struct {
	child   string
	count   func(*CountsConfig) int
	parents []parentRequirement
}

type parentRequirement struct {
	name  string
	count func(*CountsConfig) int
}

var requirements = []countRequirement{
	{"num_tables", func(c *CountsConfig) int { return c.Tables }, []parentRequirement{
		{"num_games", func(c *CountsConfig) int { return c.Games }},
		{"num_locations", func(c *CountsConfig) int { return c.Locations }},
	}},
	{"num_slot_machines", func(c *CountsConfig) int { return c.SlotMachines }, []parentRequirement{
		{"num_locations", func(c *CountsConfig) int { return c.Locations }},
	}},
	{"num_player_games", func(c *CountsConfig) int { return c.PlayerGames }, []parentRequirement{
		{"num_players", func(c *CountsConfig) int { return c.Players }},
		{"num_games", func(c *CountsConfig) int { return c.Games }},
	}},
	{"num_staff_assigned", func(c *CountsConfig) int { return c.StaffAssigned }, []parentRequirement{
		{"num_staff", func(c *CountsConfig) int { return c.Staff }},
		{"num_tables", func(c *CountsConfig) int { return c.Tables }},
	}},
	{"num_slot_plays", func(c *CountsConfig) int { return c.SlotPlays }, []parentRequirement{
		{"num_slot_machines", func(c *CountsConfig) int { return c.SlotMachines }},
		{"num_players", func(c *CountsConfig) int { return c.Players }},
	}},
	{"num_player_rewards", func(c *CountsConfig) int { return c.PlayerRewards }, []parentRequirement{
		{"num_players", func(c *CountsConfig) int { return c.Players }},
		{"num_rewards", func(c *CountsConfig) int { return c.Rewards }},
	}},
	{"num_transactions", func(c *CountsConfig) int { return c.Transactions }, []parentRequirement{
		{"num_players", func(c *CountsConfig) int { return c.Players }},
		{"num_games", func(c *CountsConfig) int { return c.Games }},
	}},
	{"num_game_results", func(c *CountsConfig) int { return c.GameResults }, []parentRequirement{
		{"num_games", func(c *CountsConfig) int { return c.Games }},
		{"num_tables", func(c *CountsConfig) int { return c.Tables }},
	}},
	{"num_login_history", func(c *CountsConfig) int { return c.LoginHistory }, []parentRequirement{
		{"num_players", func(c *CountsConfig) int { return c.Players }},
	}},
}

// Validate checks the configuration: no negative counts, a null rate in
// [0, 1], and a positive parent count for every dependent collection
// that is itself requested.
func (c *Config) Validate() error {
	if c.NullRate < 0 || c.NullRate > 1 {
		return fmt.Errorf("null_rate must be between 0 and 1, got %g", c.NullRate)
	}

	for key, count := range countMap(c.Counts) {
		if count < 0 {
			return fmt.Errorf("%s must not be negative, got %d", key, count)
		}
	}

	for _, req := range requirements {
		if req.count(&c.Counts) == 0 {
			continue
		}
		for _, parent := range req.parents {
			if parent.count(&c.Counts) == 0 {
				return fmt.Errorf("%s requires %s to be at least 1", req.child, parent.name)
			}
		}
	}
	return nil
}
