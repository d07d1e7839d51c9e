package oracle

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SameSeedSameSequence(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Email(), b.Email())
		assert.Equal(t, a.IntRange(0, 1000), b.IntRange(0, 1000))
		assert.Equal(t, a.UUID(), b.UUID())
	}
}

func TestUnique_NeverRepeats(t *testing.T) {
	o := New(1)

	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		v, err := o.Unique("email", o.Email)
		require.NoError(t, err)
		_, dup := seen[v]
		require.False(t, dup, "duplicate unique value %q", v)
		seen[v] = struct{}{}
	}
}

func TestUnique_Exhaustion(t *testing.T) {
	o := New(1)

	// A single-value space exhausts on the second request.
	constant := func() string { return "same" }

	v, err := o.Unique("constant", constant)
	require.NoError(t, err)
	assert.Equal(t, "same", v)

	_, err = o.Unique("constant", constant)
	require.Error(t, err)

	var exhausted *ExhaustionError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, "constant", exhausted.Kind)
}

func TestUnique_KindsAreIndependent(t *testing.T) {
	o := New(1)

	constant := func() string { return "same" }

	_, err := o.Unique("kind_a", constant)
	require.NoError(t, err)
	_, err = o.Unique("kind_b", constant)
	require.NoError(t, err)
}

func TestTimeBetween(t *testing.T) {
	o := New(7)
	lo := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	hi := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		ts, err := o.TimeBetween(lo, hi)
		require.NoError(t, err)
		assert.False(t, ts.Before(lo), "timestamp %s before lower bound", ts)
		assert.False(t, ts.After(hi), "timestamp %s after upper bound", ts)
	}
}

func TestTimeBetween_EqualBounds(t *testing.T) {
	o := New(7)
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	ts, err := o.TimeBetween(at, at)
	require.NoError(t, err)
	assert.True(t, ts.Equal(at))
}

func TestTimeBetween_InvalidRange(t *testing.T) {
	o := New(7)
	lo := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	hi := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := o.TimeBetween(lo, hi)
	require.Error(t, err)

	var invalid *InvalidRangeError
	require.ErrorAs(t, err, &invalid)
	assert.True(t, invalid.Lo.Equal(lo))
	assert.True(t, invalid.Hi.Equal(hi))
}

func TestIntRange(t *testing.T) {
	o := New(3)

	for i := 0; i < 100; i++ {
		v := o.IntRange(10, 20)
		assert.GreaterOrEqual(t, v, 10)
		assert.LessOrEqual(t, v, 20)
	}

	// Reversed bounds are swapped, not rejected.
	v := o.IntRange(5, 5)
	assert.Equal(t, 5, v)
	v = o.IntRange(20, 10)
	assert.GreaterOrEqual(t, v, 10)
	assert.LessOrEqual(t, v, 20)
}

func TestMoney(t *testing.T) {
	o := New(3)
	lo := decimal.NewFromInt(10)
	hi := decimal.NewFromInt(100)

	for i := 0; i < 100; i++ {
		v := o.Money(10, 100)
		assert.True(t, v.GreaterThanOrEqual(lo), "%s below lower bound", v)
		assert.True(t, v.LessThanOrEqual(hi), "%s above upper bound", v)
		assert.LessOrEqual(t, int(v.Exponent())*-1, 2, "%s has more than two decimals", v)
	}
}

func TestMoneyBetween_EqualBounds(t *testing.T) {
	o := New(3)
	five := decimal.RequireFromString("5.00")

	v := o.MoneyBetween(five, five)
	assert.True(t, v.Equal(five))
	assert.Equal(t, "5.00", v.StringFixed(2))
}

func TestMoneyBetween_SwapsReversedBounds(t *testing.T) {
	o := New(3)
	lo := decimal.NewFromInt(1)
	hi := decimal.NewFromInt(2)

	for i := 0; i < 50; i++ {
		v := o.MoneyBetween(hi, lo)
		assert.True(t, v.GreaterThanOrEqual(lo))
		assert.True(t, v.LessThanOrEqual(hi))
	}
}

func TestChance(t *testing.T) {
	o := New(9)

	for i := 0; i < 50; i++ {
		assert.False(t, o.Chance(0))
	}
	for i := 0; i < 50; i++ {
		assert.True(t, o.Chance(1))
	}
}

func TestUUID_Format(t *testing.T) {
	o := New(5)

	u := o.UUID()
	assert.Len(t, u, 36)
	assert.NotEqual(t, u, o.UUID())
}

func TestUnknownErrorsAreNotRangeErrors(t *testing.T) {
	o := New(5)
	_, err := o.TimeBetween(time.Now().Add(time.Hour), time.Now())
	require.Error(t, err)

	var exhausted *ExhaustionError
	assert.False(t, errors.As(err, &exhausted))
}
