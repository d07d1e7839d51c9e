// Package model defines the record types of the generated corpus.
// Every record knows its CSV column order; columns match the exported
// artifacts one to one, so the types double as the output schema.
package model

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Serialization layouts for the tabular output.
const (
	TimeLayout = "2006-01-02 15:04:05"
	DateLayout = "2006-01-02"
)

// Player is a registered casino customer. Email is unique per run.
type Player struct {
	Email            string
	FirstName        string
	LastName         string
	DOB              time.Time
	Phone            string
	RegistrationDate time.Time
	LoyaltyPoints    int
}

func (Player) Columns() []string {
	return []string{"email", "first_name", "last_name", "dob", "phone", "registration_date", "loyalty_points"}
}

func (p Player) Values() []string {
	return []string{
		p.Email,
		p.FirstName,
		p.LastName,
		p.DOB.Format(DateLayout),
		p.Phone,
		p.RegistrationDate.Format(TimeLayout),
		strconv.Itoa(p.LoyaltyPoints),
	}
}

// Staff is a casino employee. StaffEmail is unique per run.
type Staff struct {
	StaffEmail string
	FirstName  string
	LastName   string
	Position   string
	HireDate   time.Time
	Salary     decimal.Decimal
}

func (Staff) Columns() []string {
	return []string{"staff_email", "first_name", "last_name", "position", "hire_date", "salary"}
}

func (s Staff) Values() []string {
	return []string{
		s.StaffEmail,
		s.FirstName,
		s.LastName,
		s.Position,
		s.HireDate.Format(DateLayout),
		s.Salary.StringFixed(2),
	}
}

// Location is a casino venue, identified by a sequential code.
type Location struct {
	Code    string
	Name    string
	Address string
	City    string
	State   string
	Country string
}

func (Location) Columns() []string {
	return []string{"location_code", "name", "address", "city", "state", "country"}
}

func (l Location) Values() []string {
	return []string{l.Code, l.Name, l.Address, l.City, l.State, l.Country}
}

// Game is a playable game with a bet range. MinBet <= MaxBet always holds.
type Game struct {
	Name   string
	Type   string
	MinBet decimal.Decimal
	MaxBet decimal.Decimal
}

func (Game) Columns() []string {
	return []string{"game_name", "type", "min_bet", "max_bet"}
}

func (g Game) Values() []string {
	return []string{g.Name, g.Type, g.MinBet.StringFixed(2), g.MaxBet.StringFixed(2)}
}

// TableGame is a physical table hosting a game at a location.
type TableGame struct {
	Code         string
	GameName     string
	LocationCode string
	Status       string
}

func (TableGame) Columns() []string {
	return []string{"table_code", "game_name", "location_code", "status"}
}

func (t TableGame) Values() []string {
	return []string{t.Code, t.GameName, t.LocationCode, t.Status}
}

// SlotMachine is a machine installed at a location.
type SlotMachine struct {
	Code         string
	LocationCode string
	Status       string
	Model        string
}

func (SlotMachine) Columns() []string {
	return []string{"machine_code", "location_code", "status", "model"}
}

func (m SlotMachine) Values() []string {
	return []string{m.Code, m.LocationCode, m.Status, m.Model}
}

// Reward is a loyalty reward redeemable for points.
type Reward struct {
	Code           string
	Name           string
	PointsRequired int
	Description    string
}

func (Reward) Columns() []string {
	return []string{"reward_code", "name", "points_required", "description"}
}

func (r Reward) Values() []string {
	return []string{r.Code, r.Name, strconv.Itoa(r.PointsRequired), r.Description}
}
