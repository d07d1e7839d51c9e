package engine

import (
	"github.com/leapstack-labs/casinogen/internal/model"
	"github.com/leapstack-labs/casinogen/internal/sink"
)

// Corpus holds every generated collection in memory. Collections are
// write-once: a stage appends its finished slice and nothing mutates or
// deletes records afterwards.
type Corpus struct {
	Players          []model.Player
	Staff            []model.Staff
	Locations        []model.Location
	Games            []model.Game
	Tables           []model.TableGame
	StaffAssignments []model.StaffAssignment
	SlotMachines     []model.SlotMachine
	SlotPlays        []model.SlotPlay
	Rewards          []model.Reward
	PlayerRewards    []model.PlayerReward
	PlayerGames      []model.PlayerGame
	Transactions     []model.Transaction
	GameResults      []model.GameResult
	LoginHistory     []model.LoginHistory
	AuditLogs        []model.AuditLog
}

// Collection is a named, ordered set of finished records.
type Collection struct {
	Name    string
	Records []sink.Record
}

// Collections returns every collection in export order.
func (c *Corpus) Collections() []Collection {
	return []Collection{
		{CollectionPlayer, asRecords(c.Players)},
		{CollectionStaff, asRecords(c.Staff)},
		{CollectionLocation, asRecords(c.Locations)},
		{CollectionGame, asRecords(c.Games)},
		{CollectionTableGame, asRecords(c.Tables)},
		{CollectionStaffAssigned, asRecords(c.StaffAssignments)},
		{CollectionSlotMachine, asRecords(c.SlotMachines)},
		{CollectionSlotPlay, asRecords(c.SlotPlays)},
		{CollectionReward, asRecords(c.Rewards)},
		{CollectionPlayerReward, asRecords(c.PlayerRewards)},
		{CollectionPlayerGame, asRecords(c.PlayerGames)},
		{CollectionTransaction, asRecords(c.Transactions)},
		{CollectionGameResult, asRecords(c.GameResults)},
		{CollectionLoginHistory, asRecords(c.LoginHistory)},
		{CollectionAuditLog, asRecords(c.AuditLogs)},
	}
}

func asRecords[T sink.Record](items []T) []sink.Record {
	records := make([]sink.Record, len(items))
	for i, item := range items {
		records[i] = item
	}
	return records
}
