package generate

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/casinogen/internal/model"
	"github.com/leapstack-labs/casinogen/internal/oracle"
)

// Players generates n independent player records. Emails are unique for
// the run, dates of birth keep every player between 21 and 80 years old
// at generation time, and registrations fall in the last two years.
func Players(o *oracle.Oracle, n int, now time.Time) ([]model.Player, error) {
	players := make([]model.Player, 0, n)
	for i := 0; i < n; i++ {
		email, err := o.Unique("player_email", o.Email)
		if err != nil {
			return nil, err
		}
		dob, err := o.TimeBetween(now.AddDate(-80, 0, 0), now.AddDate(-21, 0, 0))
		if err != nil {
			return nil, err
		}
		registered, err := o.TimeBetween(now.AddDate(-2, 0, 0), now)
		if err != nil {
			return nil, err
		}
		players = append(players, model.Player{
			Email:            email,
			FirstName:        o.FirstName(),
			LastName:         o.LastName(),
			DOB:              dob,
			Phone:            fmt.Sprintf("+1-%03d-%03d-%04d", o.IntRange(0, 999), o.IntRange(0, 999), o.IntRange(0, 9999)),
			RegistrationDate: registered,
			LoyaltyPoints:    o.IntRange(0, 10000),
		})
	}
	return players, nil
}

// Staff generates n staff records with unique emails, hire dates between
// ten years and one year ago, and salaries in [30000, 100000].
func Staff(o *oracle.Oracle, n int, now time.Time) ([]model.Staff, error) {
	staff := make([]model.Staff, 0, n)
	for i := 0; i < n; i++ {
		email, err := o.Unique("staff_email", o.Email)
		if err != nil {
			return nil, err
		}
		hired, err := o.TimeBetween(now.AddDate(-10, 0, 0), now.AddDate(-1, 0, 0))
		if err != nil {
			return nil, err
		}
		staff = append(staff, model.Staff{
			StaffEmail: email,
			FirstName:  o.FirstName(),
			LastName:   o.LastName(),
			Position:   pick(o, StaffPositions),
			HireDate:   hired,
			Salary:     o.Money(30000, 100000),
		})
	}
	return staff, nil
}

// Locations generates n casino venues. Codes are sequential (LOC001,
// LOC002, ...) so uniqueness holds without oracle support.
func Locations(o *oracle.Oracle, n int) ([]model.Location, error) {
	locations := make([]model.Location, 0, n)
	for i := 0; i < n; i++ {
		locations = append(locations, model.Location{
			Code:    fmt.Sprintf("LOC%03d", i+1),
			Name:    o.City() + " Casino",
			Address: o.StreetAddress(),
			City:    o.City(),
			State:   o.State(),
			Country: o.Country(),
		})
	}
	return locations, nil
}

// Games generates n games with sequential names. Sampled bet bounds are
// swapped, never rejected, so min_bet <= max_bet always holds.
func Games(o *oracle.Oracle, n int) ([]model.Game, error) {
	games := make([]model.Game, 0, n)
	for i := 0; i < n; i++ {
		minBet := o.Money(1, 10)
		maxBet := o.Money(20, 1000)
		if maxBet.LessThan(minBet) {
			minBet, maxBet = maxBet, minBet
		}
		games = append(games, model.Game{
			Name:   fmt.Sprintf("Game_%d", i+1),
			Type:   pick(o, GameTypes),
			MinBet: minBet,
			MaxBet: maxBet,
		})
	}
	return games, nil
}

// Rewards generates n loyalty rewards with sequential codes.
func Rewards(o *oracle.Oracle, n int) ([]model.Reward, error) {
	title := cases.Title(language.English)
	rewards := make([]model.Reward, 0, n)
	for i := 0; i < n; i++ {
		rewards = append(rewards, model.Reward{
			Code:           fmt.Sprintf("RWD%03d", i+1),
			Name:           title.String(o.Word()) + " Reward",
			PointsRequired: o.IntRange(100, 5000),
			Description:    o.Sentence(8),
		})
	}
	return rewards, nil
}
