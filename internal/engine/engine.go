// Package engine assembles the corpus. It registers every collection as
// a node in an explicit dependency graph, executes the generators in
// topological order, and exports the finished collections through the
// sink. Build order is a verifiable property of the graph, not a
// convention of call order.
package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/leapstack-labs/casinogen/internal/dag"
	"github.com/leapstack-labs/casinogen/internal/generate"
	"github.com/leapstack-labs/casinogen/internal/oracle"
)

// Collection names, which double as output file base names.
const (
	CollectionPlayer        = "player"
	CollectionStaff         = "staff"
	CollectionLocation      = "casino_location"
	CollectionGame          = "game"
	CollectionTableGame     = "table_game"
	CollectionStaffAssigned = "staff_assigned_tables"
	CollectionSlotMachine   = "slot_machine"
	CollectionSlotPlay      = "slot_play"
	CollectionReward        = "reward"
	CollectionPlayerReward  = "player_reward"
	CollectionPlayerGame    = "player_game"
	CollectionTransaction   = "transaction"
	CollectionGameResult    = "game_result"
	CollectionLoginHistory  = "login_history"
	CollectionAuditLog      = "audit_log"
)

// Counts holds the configured cardinality of every collection.
type Counts struct {
	Players          int
	Staff            int
	Locations        int
	Games            int
	Tables           int
	SlotMachines     int
	Rewards          int
	PlayerGames      int
	StaffAssignments int
	SlotPlays        int
	PlayerRewards    int
	Transactions     int
	GameResults      int
	LoginHistory     int
	AuditLogs        int
}

// Config holds engine configuration.
type Config struct {
	// Counts sets the cardinality of each collection.
	Counts Counts
	// Seed makes a run reproducible; 0 derives a seed from the clock.
	Seed uint64
	// NullRate is the absence probability of each optional reference.
	NullRate float64
	// Now anchors all temporal sampling windows; zero means time.Now().
	Now time.Time
	// Logger is the structured logger (optional, uses discard if nil).
	Logger *slog.Logger
}

// stage is one collection's generator plus its declared dependencies.
type stage struct {
	name      string
	dependsOn []string
	count     int
	build     func(c *Corpus) error
}

// Engine generates and holds the in-memory corpus.
type Engine struct {
	cfg    Config
	logger *slog.Logger
	oracle *oracle.Oracle
	now    time.Time
	graph  *dag.Graph
	stages map[string]*stage
	corpus *Corpus
}

// New creates an engine and wires the collection dependency graph.
func New(cfg Config) (*Engine, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	now := cfg.Now
	if now.IsZero() {
		now = time.Now()
	}

	e := &Engine{
		cfg:    cfg,
		logger: logger,
		oracle: oracle.New(cfg.Seed),
		now:    now,
		graph:  dag.New(),
		stages: make(map[string]*stage),
		corpus: &Corpus{},
	}
	if err := e.register(); err != nil {
		return nil, err
	}
	return e, nil
}

// Graph exposes the collection dependency graph, e.g. for plan output.
func (e *Engine) Graph() *dag.Graph {
	return e.graph
}

// Corpus returns the generated corpus. Valid after Run.
func (e *Engine) Corpus() *Corpus {
	return e.corpus
}

// addStage registers a collection node and its dependency edges.
// Stages must be registered parents-first, which the fixed export order
// already guarantees.
func (e *Engine) addStage(name string, dependsOn []string, count int, build func(c *Corpus) error) error {
	e.graph.AddNode(name)
	for _, parent := range dependsOn {
		if err := e.graph.AddEdge(parent, name); err != nil {
			return fmt.Errorf("failed to wire %s: %w", name, err)
		}
	}
	e.stages[name] = &stage{name: name, dependsOn: dependsOn, count: count, build: build}
	return nil
}

func (e *Engine) register() error {
	o := e.oracle
	now := e.now
	counts := e.cfg.Counts
	nullRate := e.cfg.NullRate

	type reg struct {
		name      string
		dependsOn []string
		count     int
		build     func(c *Corpus) error
	}

	regs := []reg{
		{CollectionPlayer, nil, counts.Players, func(c *Corpus) error {
			var err error
			c.Players, err = generate.Players(o, counts.Players, now)
			return err
		}},
		{CollectionStaff, nil, counts.Staff, func(c *Corpus) error {
			var err error
			c.Staff, err = generate.Staff(o, counts.Staff, now)
			return err
		}},
		{CollectionLocation, nil, counts.Locations, func(c *Corpus) error {
			var err error
			c.Locations, err = generate.Locations(o, counts.Locations)
			return err
		}},
		{CollectionGame, nil, counts.Games, func(c *Corpus) error {
			var err error
			c.Games, err = generate.Games(o, counts.Games)
			return err
		}},
		{CollectionTableGame, []string{CollectionGame, CollectionLocation}, counts.Tables, func(c *Corpus) error {
			var err error
			c.Tables, err = generate.TableGames(o, counts.Tables, c.Games, c.Locations)
			return err
		}},
		{CollectionStaffAssigned, []string{CollectionStaff, CollectionTableGame}, counts.StaffAssignments, func(c *Corpus) error {
			var err error
			c.StaffAssignments, err = generate.StaffAssignments(o, counts.StaffAssignments, now, c.Staff, c.Tables)
			return err
		}},
		{CollectionSlotMachine, []string{CollectionLocation}, counts.SlotMachines, func(c *Corpus) error {
			var err error
			c.SlotMachines, err = generate.SlotMachines(o, counts.SlotMachines, c.Locations)
			return err
		}},
		{CollectionSlotPlay, []string{CollectionSlotMachine, CollectionPlayer}, counts.SlotPlays, func(c *Corpus) error {
			var err error
			c.SlotPlays, err = generate.SlotPlays(o, counts.SlotPlays, now, c.SlotMachines, c.Players)
			return err
		}},
		{CollectionReward, nil, counts.Rewards, func(c *Corpus) error {
			var err error
			c.Rewards, err = generate.Rewards(o, counts.Rewards)
			return err
		}},
		{CollectionPlayerReward, []string{CollectionPlayer, CollectionReward}, counts.PlayerRewards, func(c *Corpus) error {
			var err error
			c.PlayerRewards, err = generate.PlayerRewards(o, counts.PlayerRewards, now, c.Players, c.Rewards)
			return err
		}},
		{CollectionPlayerGame, []string{CollectionPlayer, CollectionGame}, counts.PlayerGames, func(c *Corpus) error {
			var err error
			c.PlayerGames, err = generate.PlayerGames(o, counts.PlayerGames, now, c.Players, c.Games)
			return err
		}},
		{CollectionTransaction, []string{CollectionPlayer, CollectionGame}, counts.Transactions, func(c *Corpus) error {
			var err error
			c.Transactions, err = generate.Transactions(o, counts.Transactions, now, nullRate, c.Players, c.Games)
			return err
		}},
		{CollectionGameResult, []string{CollectionGame, CollectionTableGame}, counts.GameResults, func(c *Corpus) error {
			var err error
			c.GameResults, err = generate.GameResults(o, counts.GameResults, now, nullRate, c.Games, c.Tables)
			return err
		}},
		{CollectionLoginHistory, []string{CollectionPlayer}, counts.LoginHistory, func(c *Corpus) error {
			var err error
			c.LoginHistory, err = generate.LoginHistory(o, counts.LoginHistory, now, c.Players)
			return err
		}},
		{CollectionAuditLog, []string{CollectionStaff}, counts.AuditLogs, func(c *Corpus) error {
			var err error
			c.AuditLogs, err = generate.AuditLogs(o, counts.AuditLogs, now, nullRate, c.Staff)
			return err
		}},
	}

	for _, r := range regs {
		if err := e.addStage(r.name, r.dependsOn, r.count, r.build); err != nil {
			return err
		}
	}
	return nil
}
