package engine

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/casinogen/internal/generate"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func testCounts() Counts {
	return Counts{
		Players:          10,
		Staff:            5,
		Locations:        3,
		Games:            4,
		Tables:           6,
		SlotMachines:     4,
		Rewards:          3,
		PlayerGames:      20,
		StaffAssignments: 8,
		SlotPlays:        15,
		PlayerRewards:    6,
		Transactions:     25,
		GameResults:      10,
		LoginHistory:     12,
		AuditLogs:        8,
	}
}

func newTestEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	eng, err := New(cfg)
	require.NoError(t, err)
	return eng
}

func TestEngine_Run(t *testing.T) {
	eng := newTestEngine(t, Config{Counts: testCounts(), Seed: 42, NullRate: 0.2, Now: testNow})

	result, err := eng.Run(context.Background())
	require.NoError(t, err)

	rows := make(map[string]int, len(result.Collections))
	for _, col := range result.Collections {
		rows[col.Name] = col.Rows
	}

	counts := testCounts()
	assert.Equal(t, counts.Players, rows[CollectionPlayer])
	assert.Equal(t, counts.Staff, rows[CollectionStaff])
	assert.Equal(t, counts.Locations, rows[CollectionLocation])
	assert.Equal(t, counts.Games, rows[CollectionGame])
	assert.Equal(t, counts.Tables, rows[CollectionTableGame])
	assert.Equal(t, counts.StaffAssignments, rows[CollectionStaffAssigned])
	assert.Equal(t, counts.SlotMachines, rows[CollectionSlotMachine])
	assert.Equal(t, counts.SlotPlays, rows[CollectionSlotPlay])
	assert.Equal(t, counts.Rewards, rows[CollectionReward])
	assert.Equal(t, counts.PlayerRewards, rows[CollectionPlayerReward])
	assert.Equal(t, counts.PlayerGames, rows[CollectionPlayerGame])
	assert.Equal(t, counts.Transactions, rows[CollectionTransaction])
	assert.Equal(t, counts.GameResults, rows[CollectionGameResult])
	assert.Equal(t, counts.LoginHistory, rows[CollectionLoginHistory])
	assert.Equal(t, counts.AuditLogs, rows[CollectionAuditLog])
}

func TestEngine_Run_ReferentialIntegrity(t *testing.T) {
	eng := newTestEngine(t, Config{Counts: testCounts(), Seed: 7, NullRate: 0.2, Now: testNow})

	_, err := eng.Run(context.Background())
	require.NoError(t, err)

	c := eng.Corpus()

	players := make(map[string]struct{}, len(c.Players))
	for _, p := range c.Players {
		players[p.Email] = struct{}{}
	}
	games := make(map[string]struct{}, len(c.Games))
	for _, g := range c.Games {
		games[g.Name] = struct{}{}
	}
	locations := make(map[string]struct{}, len(c.Locations))
	for _, l := range c.Locations {
		locations[l.Code] = struct{}{}
	}
	tables := make(map[string]struct{}, len(c.Tables))
	for _, tbl := range c.Tables {
		tables[tbl.Code] = struct{}{}

		_, ok := games[tbl.GameName]
		assert.True(t, ok, "table %s references unknown game %q", tbl.Code, tbl.GameName)
		_, ok = locations[tbl.LocationCode]
		assert.True(t, ok, "table %s references unknown location %q", tbl.Code, tbl.LocationCode)
	}

	for _, pg := range c.PlayerGames {
		_, ok := players[pg.PlayerEmail]
		assert.True(t, ok, "play references unknown player %q", pg.PlayerEmail)
		_, ok = games[pg.GameName]
		assert.True(t, ok, "play references unknown game %q", pg.GameName)
	}

	for _, tx := range c.Transactions {
		_, ok := players[tx.PlayerEmail]
		assert.True(t, ok, "transaction references unknown player %q", tx.PlayerEmail)
		if tx.GameName != "" {
			_, ok = games[tx.GameName]
			assert.True(t, ok, "transaction references unknown game %q", tx.GameName)
		}
	}

	for _, gr := range c.GameResults {
		if gr.TableCode != "" {
			_, ok := tables[gr.TableCode]
			assert.True(t, ok, "result references unknown table %q", gr.TableCode)
		}
	}
}

func TestEngine_Run_Deterministic(t *testing.T) {
	cfg := Config{Counts: testCounts(), Seed: 99, NullRate: 0.2, Now: testNow}

	a := newTestEngine(t, cfg)
	_, err := a.Run(context.Background())
	require.NoError(t, err)

	b := newTestEngine(t, cfg)
	_, err = b.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a.Corpus().Players, b.Corpus().Players)
	assert.Equal(t, a.Corpus().Transactions, b.Corpus().Transactions)
	assert.Equal(t, a.Corpus().LoginHistory, b.Corpus().LoginHistory)
}

func TestEngine_Run_EmptyParentFails(t *testing.T) {
	counts := testCounts()
	counts.Games = 0 // tables still requested

	eng := newTestEngine(t, Config{Counts: counts, Seed: 1, NullRate: 0.2, Now: testNow})

	_, err := eng.Run(context.Background())
	require.Error(t, err)

	var empty *generate.EmptyParentSetError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, "game", empty.Parent)
}

func TestEngine_Run_Cancelled(t *testing.T) {
	eng := newTestEngine(t, Config{Counts: testCounts(), Seed: 1, NullRate: 0.2, Now: testNow})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := eng.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestEngine_Graph_ParentsBeforeChildren(t *testing.T) {
	eng := newTestEngine(t, Config{Counts: testCounts(), Now: testNow})

	order, err := eng.Graph().TopologicalSort()
	require.NoError(t, err)
	require.Len(t, order, 15)

	positions := make(map[string]int, len(order))
	for i, name := range order {
		positions[name] = i
	}

	for _, name := range order {
		for _, parent := range eng.Graph().Parents(name) {
			assert.Less(t, positions[parent], positions[name],
				"%s must be generated before %s", parent, name)
		}
	}
}

func TestEngine_Export(t *testing.T) {
	eng := newTestEngine(t, Config{Counts: testCounts(), Seed: 42, NullRate: 0.2, Now: testNow})

	_, err := eng.Run(context.Background())
	require.NoError(t, err)

	dir := t.TempDir()
	paths, err := eng.Export(dir)
	require.NoError(t, err)
	require.Len(t, paths, 15)

	f, err := os.Open(paths[CollectionPlayer])
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, testCounts().Players+1)
	assert.Equal(t,
		[]string{"email", "first_name", "last_name", "dob", "phone", "registration_date", "loyalty_points"},
		rows[0])
}

func TestEngine_Export_SkipsEmptyCollections(t *testing.T) {
	counts := testCounts()
	counts.Transactions = 0

	eng := newTestEngine(t, Config{Counts: counts, Seed: 42, NullRate: 0.2, Now: testNow})

	_, err := eng.Run(context.Background())
	require.NoError(t, err)

	dir := t.TempDir()
	paths, err := eng.Export(dir)
	require.NoError(t, err)

	_, exported := paths[CollectionTransaction]
	assert.False(t, exported, "empty collection must not be exported")

	_, err = os.Stat(filepath.Join(dir, "transaction.csv"))
	assert.True(t, os.IsNotExist(err), "transaction.csv must not exist")

	_, err = os.Stat(filepath.Join(dir, "player.csv"))
	require.NoError(t, err)
}
