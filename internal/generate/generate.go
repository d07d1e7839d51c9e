// Package generate produces the records of every collection in the corpus.
// Each generator is a pure function over the oracle and the already
// materialized parent collections, so referential integrity and temporal
// ordering hold by construction rather than by post-hoc validation.
package generate

import (
	"fmt"

	"github.com/leapstack-labs/casinogen/internal/oracle"
)

// Enumerated attribute values, matching the exported dataset.
var (
	StaffPositions   = []string{"Dealer", "Manager", "Security", "Cashier", "Technician"}
	GameTypes        = []string{"Slot", "Poker", "Roulette", "Blackjack", "Number", "Bingo"}
	TableStatuses    = []string{"Available", "In Use", "Maintenance"}
	MachineStatuses  = []string{"Online", "Offline", "Maintenance"}
	TransactionTypes = []string{"Bet", "Win", "Deposit", "Withdraw"}
	AuditEventTypes  = []string{"Login", "Logout", "PasswordChange", "TableAssignment", "SystemUpdate"}
)

// EmptyParentSetError reports a fact generator asked to reference an
// empty parent collection; no valid record can be produced.
type EmptyParentSetError struct {
	Collection string
	Parent     string
}

func (e *EmptyParentSetError) Error() string {
	return fmt.Sprintf("cannot generate %s: parent collection %s is empty", e.Collection, e.Parent)
}

// pick selects one item uniformly at random, with replacement across calls.
func pick[T any](o *oracle.Oracle, items []T) T {
	return items[o.Index(len(items))]
}

// pickOptional selects one item uniformly, or reports absence with
// probability nullRate. The null rate is an explicit parameter rather
// than a side effect of the parent collection size.
func pickOptional[T any](o *oracle.Oracle, items []T, nullRate float64) (T, bool) {
	var zero T
	if o.Chance(nullRate) {
		return zero, false
	}
	return pick(o, items), true
}

// requireParent guards a fact generator against an empty parent collection.
func requireParent(collection, parent string, size int) error {
	if size == 0 {
		return &EmptyParentSetError{Collection: collection, Parent: parent}
	}
	return nil
}
