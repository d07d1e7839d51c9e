package generate

import (
	"fmt"

	"github.com/leapstack-labs/casinogen/internal/model"
	"github.com/leapstack-labs/casinogen/internal/oracle"
)

// TableGames generates n tables, each hosting a uniformly chosen game at
// a uniformly chosen location. A given game or location may be referenced
// zero or many times; there is no coverage guarantee.
func TableGames(o *oracle.Oracle, n int, games []model.Game, locations []model.Location) ([]model.TableGame, error) {
	if n == 0 {
		return nil, nil
	}
	if err := requireParent("table_game", "game", len(games)); err != nil {
		return nil, err
	}
	if err := requireParent("table_game", "casino_location", len(locations)); err != nil {
		return nil, err
	}

	tables := make([]model.TableGame, 0, n)
	for i := 0; i < n; i++ {
		tables = append(tables, model.TableGame{
			Code:         fmt.Sprintf("TBL%03d", i+1),
			GameName:     pick(o, games).Name,
			LocationCode: pick(o, locations).Code,
			Status:       pick(o, TableStatuses),
		})
	}
	return tables, nil
}

// SlotMachines generates n machines, each placed at a uniformly chosen
// location.
func SlotMachines(o *oracle.Oracle, n int, locations []model.Location) ([]model.SlotMachine, error) {
	if n == 0 {
		return nil, nil
	}
	if err := requireParent("slot_machine", "casino_location", len(locations)); err != nil {
		return nil, err
	}

	machines := make([]model.SlotMachine, 0, n)
	for i := 0; i < n; i++ {
		machines = append(machines, model.SlotMachine{
			Code:         fmt.Sprintf("SM%03d", i+1),
			LocationCode: pick(o, locations).Code,
			Status:       pick(o, MachineStatuses),
			Model:        fmt.Sprintf("Model-%d", o.IntRange(100, 999)),
		})
	}
	return machines, nil
}
