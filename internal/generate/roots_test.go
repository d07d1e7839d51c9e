package generate

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/casinogen/internal/oracle"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func TestPlayers(t *testing.T) {
	o := oracle.New(42)

	players, err := Players(o, 50, testNow)
	require.NoError(t, err)
	require.Len(t, players, 50)

	seen := make(map[string]struct{})
	for _, p := range players {
		_, dup := seen[p.Email]
		assert.False(t, dup, "duplicate email %q", p.Email)
		seen[p.Email] = struct{}{}

		// 21 to 80 years old at generation time.
		assert.False(t, p.DOB.After(testNow.AddDate(-21, 0, 0)), "player younger than 21: %s", p.DOB)
		assert.False(t, p.DOB.Before(testNow.AddDate(-80, 0, 0)), "player older than 80: %s", p.DOB)

		assert.False(t, p.RegistrationDate.Before(testNow.AddDate(-2, 0, 0)))
		assert.False(t, p.RegistrationDate.After(testNow))

		assert.Regexp(t, `^\+1-\d{3}-\d{3}-\d{4}$`, p.Phone)
		assert.GreaterOrEqual(t, p.LoyaltyPoints, 0)
		assert.LessOrEqual(t, p.LoyaltyPoints, 10000)
	}
}

func TestPlayers_Zero(t *testing.T) {
	o := oracle.New(42)

	players, err := Players(o, 0, testNow)
	require.NoError(t, err)
	assert.Empty(t, players)
}

func TestStaff(t *testing.T) {
	o := oracle.New(42)

	staff, err := Staff(o, 30, testNow)
	require.NoError(t, err)
	require.Len(t, staff, 30)

	positions := make(map[string]struct{}, len(StaffPositions))
	for _, p := range StaffPositions {
		positions[p] = struct{}{}
	}

	seen := make(map[string]struct{})
	for _, s := range staff {
		_, dup := seen[s.StaffEmail]
		assert.False(t, dup, "duplicate email %q", s.StaffEmail)
		seen[s.StaffEmail] = struct{}{}

		_, known := positions[s.Position]
		assert.True(t, known, "unknown position %q", s.Position)

		assert.False(t, s.HireDate.Before(testNow.AddDate(-10, 0, 0)))
		assert.False(t, s.HireDate.After(testNow.AddDate(-1, 0, 0)))
	}
}

func TestStaff_SalaryBounds(t *testing.T) {
	o := oracle.New(7)

	staff, err := Staff(o, 30, testNow)
	require.NoError(t, err)

	for _, s := range staff {
		f, _ := s.Salary.Float64()
		assert.GreaterOrEqual(t, f, 30000.0)
		assert.LessOrEqual(t, f, 100000.0)
	}
}

func TestPlayersAndStaff_EmailsIndependentlyUnique(t *testing.T) {
	// Player and staff emails are tracked separately; a collision across
	// the two pools is acceptable and must not error.
	o := oracle.New(42)

	_, err := Players(o, 20, testNow)
	require.NoError(t, err)
	_, err = Staff(o, 20, testNow)
	require.NoError(t, err)
}

func TestLocations(t *testing.T) {
	o := oracle.New(42)

	locations, err := Locations(o, 5)
	require.NoError(t, err)
	require.Len(t, locations, 5)

	for i, l := range locations {
		assert.Equal(t, fmt.Sprintf("LOC%03d", i+1), l.Code)
		assert.Contains(t, l.Name, "Casino")
		assert.NotEmpty(t, l.Address)
		assert.NotEmpty(t, l.City)
		assert.NotEmpty(t, l.Country)
	}
}

func TestGames(t *testing.T) {
	o := oracle.New(42)

	games, err := Games(o, 40)
	require.NoError(t, err)
	require.Len(t, games, 40)

	types := make(map[string]struct{}, len(GameTypes))
	for _, gt := range GameTypes {
		types[gt] = struct{}{}
	}

	for i, g := range games {
		assert.Equal(t, fmt.Sprintf("Game_%d", i+1), g.Name)

		_, known := types[g.Type]
		assert.True(t, known, "unknown game type %q", g.Type)

		assert.True(t, g.MinBet.LessThanOrEqual(g.MaxBet),
			"min bet %s above max bet %s", g.MinBet, g.MaxBet)
	}
}

func TestRewards(t *testing.T) {
	o := oracle.New(42)

	rewards, err := Rewards(o, 10)
	require.NoError(t, err)
	require.Len(t, rewards, 10)

	for i, r := range rewards {
		assert.Equal(t, fmt.Sprintf("RWD%03d", i+1), r.Code)
		assert.Contains(t, r.Name, " Reward")
		assert.GreaterOrEqual(t, r.PointsRequired, 100)
		assert.LessOrEqual(t, r.PointsRequired, 5000)
		assert.NotEmpty(t, r.Description)
	}
}

func TestRoots_Deterministic(t *testing.T) {
	a, err := Players(oracle.New(99), 10, testNow)
	require.NoError(t, err)
	b, err := Players(oracle.New(99), 10, testNow)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
