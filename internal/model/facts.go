package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlayerGame records one play of a table or card game by a player.
type PlayerGame struct {
	PlayerEmail string
	GameName    string
	PlayTime    time.Time
	AmountBet   decimal.Decimal
	AmountWon   decimal.Decimal
}

func (PlayerGame) Columns() []string {
	return []string{"player_email", "game_name", "play_time", "amount_bet", "amount_won"}
}

func (p PlayerGame) Values() []string {
	return []string{
		p.PlayerEmail,
		p.GameName,
		p.PlayTime.Format(TimeLayout),
		p.AmountBet.StringFixed(2),
		p.AmountWon.StringFixed(2),
	}
}

// StaffAssignment records one 8-hour shift of a staff member at a table.
type StaffAssignment struct {
	StaffEmail string
	TableCode  string
	ShiftStart time.Time
	ShiftEnd   time.Time
}

func (StaffAssignment) Columns() []string {
	return []string{"staff_email", "table_code", "shift_start", "shift_end"}
}

func (a StaffAssignment) Values() []string {
	return []string{
		a.StaffEmail,
		a.TableCode,
		a.ShiftStart.Format(TimeLayout),
		a.ShiftEnd.Format(TimeLayout),
	}
}

// SlotPlay records one spin on a slot machine.
type SlotPlay struct {
	MachineCode string
	PlayerEmail string
	PlayTime    time.Time
	BetAmount   decimal.Decimal
	WinAmount   decimal.Decimal
}

func (SlotPlay) Columns() []string {
	return []string{"machine_code", "player_email", "play_time", "bet_amount", "win_amount"}
}

func (s SlotPlay) Values() []string {
	return []string{
		s.MachineCode,
		s.PlayerEmail,
		s.PlayTime.Format(TimeLayout),
		s.BetAmount.StringFixed(2),
		s.WinAmount.StringFixed(2),
	}
}

// PlayerReward records one redemption of a reward by a player.
type PlayerReward struct {
	PlayerEmail string
	RewardCode  string
	RedeemDate  time.Time
}

func (PlayerReward) Columns() []string {
	return []string{"player_email", "reward_code", "redeem_date"}
}

func (r PlayerReward) Values() []string {
	return []string{r.PlayerEmail, r.RewardCode, r.RedeemDate.Format(TimeLayout)}
}

// Transaction records a monetary movement on a player account.
// GameName is empty when the transaction is not tied to a game.
type Transaction struct {
	Code        string
	PlayerEmail string
	Amount      decimal.Decimal
	Type        string
	Time        time.Time
	GameName    string
}

func (Transaction) Columns() []string {
	return []string{"transaction_code", "player_email", "amount", "transaction_type", "transaction_time", "game_name"}
}

func (t Transaction) Values() []string {
	return []string{
		t.Code,
		t.PlayerEmail,
		t.Amount.StringFixed(2),
		t.Type,
		t.Time.Format(TimeLayout),
		t.GameName,
	}
}

// GameResult records one round outcome. TableCode is empty when the
// result is not tied to a specific table.
type GameResult struct {
	Code      string
	GameName  string
	TableCode string
	Time      time.Time
	Outcome   string
}

func (GameResult) Columns() []string {
	return []string{"result_code", "game_name", "table_code", "result_time", "outcome_description"}
}

func (r GameResult) Values() []string {
	return []string{r.Code, r.GameName, r.TableCode, r.Time.Format(TimeLayout), r.Outcome}
}

// LoginHistory records one player login event.
type LoginHistory struct {
	LoginID     string
	PlayerEmail string
	LoginTime   time.Time
	IPAddress   string
	Device      string
}

func (LoginHistory) Columns() []string {
	return []string{"login_id", "player_email", "login_time", "ip_address", "device"}
}

func (l LoginHistory) Values() []string {
	return []string{l.LoginID, l.PlayerEmail, l.LoginTime.Format(TimeLayout), l.IPAddress, l.Device}
}

// AuditLog records one back-office event. PerformedBy is empty for
// system-initiated events.
type AuditLog struct {
	Code        string
	EventType   string
	EventTime   time.Time
	PerformedBy string
	Details     string
}

func (AuditLog) Columns() []string {
	return []string{"log_code", "event_type", "event_time", "performed_by", "details"}
}

func (a AuditLog) Values() []string {
	return []string{a.Code, a.EventType, a.EventTime.Format(TimeLayout), a.PerformedBy, a.Details}
}
