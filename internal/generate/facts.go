package generate

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/leapstack-labs/casinogen/internal/model"
	"github.com/leapstack-labs/casinogen/internal/oracle"
)

var (
	three = decimal.NewFromInt(3)
	five  = decimal.NewFromInt(5)
)

// PlayerGames generates n plays. Each references a uniformly chosen
// player and game; the play time falls between the player's registration
// and now, the bet within the game's bet range, and the win within
// [0, 3 x bet].
func PlayerGames(o *oracle.Oracle, n int, now time.Time, players []model.Player, games []model.Game) ([]model.PlayerGame, error) {
	if n == 0 {
		return nil, nil
	}
	if err := requireParent("player_game", "player", len(players)); err != nil {
		return nil, err
	}
	if err := requireParent("player_game", "game", len(games)); err != nil {
		return nil, err
	}

	rows := make([]model.PlayerGame, 0, n)
	for i := 0; i < n; i++ {
		p := pick(o, players)
		g := pick(o, games)
		playTime, err := o.TimeBetween(p.RegistrationDate, now)
		if err != nil {
			return nil, err
		}
		bet := o.MoneyBetween(g.MinBet, g.MaxBet)
		rows = append(rows, model.PlayerGame{
			PlayerEmail: p.Email,
			GameName:    g.Name,
			PlayTime:    playTime,
			AmountBet:   bet,
			AmountWon:   o.MoneyBetween(decimal.Zero, bet.Mul(three)),
		})
	}
	return rows, nil
}

// StaffAssignments generates n shifts. Shift starts fall in the last
// thirty days (up to yesterday); the end is exactly eight hours later.
func StaffAssignments(o *oracle.Oracle, n int, now time.Time, staff []model.Staff, tables []model.TableGame) ([]model.StaffAssignment, error) {
	if n == 0 {
		return nil, nil
	}
	if err := requireParent("staff_assigned_tables", "staff", len(staff)); err != nil {
		return nil, err
	}
	if err := requireParent("staff_assigned_tables", "table_game", len(tables)); err != nil {
		return nil, err
	}

	rows := make([]model.StaffAssignment, 0, n)
	for i := 0; i < n; i++ {
		start, err := o.TimeBetween(now.AddDate(0, 0, -30), now.AddDate(0, 0, -1))
		if err != nil {
			return nil, err
		}
		rows = append(rows, model.StaffAssignment{
			StaffEmail: pick(o, staff).StaffEmail,
			TableCode:  pick(o, tables).Code,
			ShiftStart: start,
			ShiftEnd:   start.Add(8 * time.Hour),
		})
	}
	return rows, nil
}

// SlotPlays generates n spins with bets in [1, 100] and wins in [0, 5 x bet].
func SlotPlays(o *oracle.Oracle, n int, now time.Time, machines []model.SlotMachine, players []model.Player) ([]model.SlotPlay, error) {
	if n == 0 {
		return nil, nil
	}
	if err := requireParent("slot_play", "slot_machine", len(machines)); err != nil {
		return nil, err
	}
	if err := requireParent("slot_play", "player", len(players)); err != nil {
		return nil, err
	}

	rows := make([]model.SlotPlay, 0, n)
	for i := 0; i < n; i++ {
		p := pick(o, players)
		playTime, err := o.TimeBetween(p.RegistrationDate, now)
		if err != nil {
			return nil, err
		}
		bet := o.Money(1, 100)
		rows = append(rows, model.SlotPlay{
			MachineCode: pick(o, machines).Code,
			PlayerEmail: p.Email,
			PlayTime:    playTime,
			BetAmount:   bet,
			WinAmount:   o.MoneyBetween(decimal.Zero, bet.Mul(five)),
		})
	}
	return rows, nil
}

// PlayerRewards generates n redemptions, each dated after the redeeming
// player's registration.
func PlayerRewards(o *oracle.Oracle, n int, now time.Time, players []model.Player, rewards []model.Reward) ([]model.PlayerReward, error) {
	if n == 0 {
		return nil, nil
	}
	if err := requireParent("player_reward", "player", len(players)); err != nil {
		return nil, err
	}
	if err := requireParent("player_reward", "reward", len(rewards)); err != nil {
		return nil, err
	}

	rows := make([]model.PlayerReward, 0, n)
	for i := 0; i < n; i++ {
		p := pick(o, players)
		redeemed, err := o.TimeBetween(p.RegistrationDate, now)
		if err != nil {
			return nil, err
		}
		rows = append(rows, model.PlayerReward{
			PlayerEmail: p.Email,
			RewardCode:  pick(o, rewards).Code,
			RedeemDate:  redeemed,
		})
	}
	return rows, nil
}

// Transactions generates n transactions with sequential six-digit codes.
// The game reference is absent with probability nullRate.
func Transactions(o *oracle.Oracle, n int, now time.Time, nullRate float64, players []model.Player, games []model.Game) ([]model.Transaction, error) {
	if n == 0 {
		return nil, nil
	}
	if err := requireParent("transaction", "player", len(players)); err != nil {
		return nil, err
	}
	if err := requireParent("transaction", "game", len(games)); err != nil {
		return nil, err
	}

	rows := make([]model.Transaction, 0, n)
	for i := 0; i < n; i++ {
		p := pick(o, players)
		txTime, err := o.TimeBetween(p.RegistrationDate, now)
		if err != nil {
			return nil, err
		}
		row := model.Transaction{
			Code:        fmt.Sprintf("TXN%06d", i+1),
			PlayerEmail: p.Email,
			Amount:      o.Money(10, 1000),
			Type:        pick(o, TransactionTypes),
			Time:        txTime,
		}
		if g, ok := pickOptional(o, games, nullRate); ok {
			row.GameName = g.Name
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// GameResults generates n results within the last year. The table
// reference is absent with probability nullRate.
func GameResults(o *oracle.Oracle, n int, now time.Time, nullRate float64, games []model.Game, tables []model.TableGame) ([]model.GameResult, error) {
	if n == 0 {
		return nil, nil
	}
	if err := requireParent("game_result", "game", len(games)); err != nil {
		return nil, err
	}
	if err := requireParent("game_result", "table_game", len(tables)); err != nil {
		return nil, err
	}

	rows := make([]model.GameResult, 0, n)
	for i := 0; i < n; i++ {
		resultTime, err := o.TimeBetween(now.AddDate(-1, 0, 0), now)
		if err != nil {
			return nil, err
		}
		row := model.GameResult{
			Code:     fmt.Sprintf("RES%05d", i+1),
			GameName: pick(o, games).Name,
			Time:     resultTime,
			Outcome:  o.Sentence(10),
		}
		if t, ok := pickOptional(o, tables, nullRate); ok {
			row.TableCode = t.Code
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// LoginHistory generates n login events, each dated after the player's
// registration.
func LoginHistory(o *oracle.Oracle, n int, now time.Time, players []model.Player) ([]model.LoginHistory, error) {
	if n == 0 {
		return nil, nil
	}
	if err := requireParent("login_history", "player", len(players)); err != nil {
		return nil, err
	}

	rows := make([]model.LoginHistory, 0, n)
	for i := 0; i < n; i++ {
		p := pick(o, players)
		loginTime, err := o.TimeBetween(p.RegistrationDate, now)
		if err != nil {
			return nil, err
		}
		rows = append(rows, model.LoginHistory{
			LoginID:     o.UUID(),
			PlayerEmail: p.Email,
			LoginTime:   loginTime,
			IPAddress:   o.IPv4(),
			Device:      o.UserAgent(),
		})
	}
	return rows, nil
}

// AuditLogs generates n back-office events within the last year. The
// performer is absent with probability nullRate; system events have none.
// An empty staff collection is allowed since the reference is optional,
// in which case every event is unattributed.
func AuditLogs(o *oracle.Oracle, n int, now time.Time, nullRate float64, staff []model.Staff) ([]model.AuditLog, error) {
	rows := make([]model.AuditLog, 0, n)
	for i := 0; i < n; i++ {
		eventTime, err := o.TimeBetween(now.AddDate(-1, 0, 0), now)
		if err != nil {
			return nil, err
		}
		row := model.AuditLog{
			Code:      fmt.Sprintf("LOG%05d", i+1),
			EventType: pick(o, AuditEventTypes),
			EventTime: eventTime,
			Details:   o.Sentence(12),
		}
		if len(staff) > 0 {
			if s, ok := pickOptional(o, staff, nullRate); ok {
				row.PerformedBy = s.StaffEmail
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
