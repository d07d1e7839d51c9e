// Package oracle supplies the random values used by the generators.
// It wraps a seeded faker with per-kind uniqueness tracking and bounded
// samplers, so a fixed seed reproduces an entire corpus.
package oracle

import (
	"math/rand/v2"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxUniqueAttempts bounds how often Unique re-draws before giving up.
const maxUniqueAttempts = 1000

// Oracle produces realistic scalar values from a single random source.
// It is not safe for concurrent use; generation is strictly sequential.
type Oracle struct {
	faker *gofakeit.Faker
	rand  *rand.Rand
	seen  map[string]map[string]struct{}
}

// New creates an Oracle seeded with the given value.
// A zero seed derives one from the current time.
func New(seed uint64) *Oracle {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	src := rand.NewPCG(seed, seed)
	return &Oracle{
		faker: gofakeit.NewFaker(src, false),
		rand:  rand.New(src),
		seen:  make(map[string]map[string]struct{}),
	}
}

// Unique draws from gen until it returns a value not seen before for kind.
// It fails with an ExhaustionError once the attempt budget is spent.
func (o *Oracle) Unique(kind string, gen func() string) (string, error) {
	seen, ok := o.seen[kind]
	if !ok {
		seen = make(map[string]struct{})
		o.seen[kind] = seen
	}
	for attempt := 0; attempt < maxUniqueAttempts; attempt++ {
		v := gen()
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		return v, nil
	}
	return "", &ExhaustionError{Kind: kind, Attempts: maxUniqueAttempts}
}

// TimeBetween returns a timestamp uniformly distributed in [lo, hi], inclusive.
func (o *Oracle) TimeBetween(lo, hi time.Time) (time.Time, error) {
	if hi.Before(lo) {
		return time.Time{}, &InvalidRangeError{Lo: lo, Hi: hi}
	}
	span := hi.Sub(lo)
	if span == 0 {
		return lo, nil
	}
	return lo.Add(time.Duration(o.rand.Int64N(int64(span) + 1))), nil
}

// IntRange returns a uniform integer in [lo, hi], swapping reversed bounds.
func (o *Oracle) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + o.rand.IntN(hi-lo+1)
}

// Float64Range returns a uniform float in [lo, hi], swapping reversed bounds.
func (o *Oracle) Float64Range(lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + o.rand.Float64()*(hi-lo)
}

// Money returns a uniform two-decimal amount in [lo, hi].
func (o *Oracle) Money(lo, hi float64) decimal.Decimal {
	return decimal.NewFromFloat(o.Float64Range(lo, hi)).Round(2)
}

// MoneyBetween returns a uniform two-decimal amount in [lo, hi].
// Reversed bounds are swapped, never rejected. The result is clamped so
// rounding can never push it outside the range.
func (o *Oracle) MoneyBetween(lo, hi decimal.Decimal) decimal.Decimal {
	if hi.LessThan(lo) {
		lo, hi = hi, lo
	}
	lof, _ := lo.Float64()
	hif, _ := hi.Float64()
	v := decimal.NewFromFloat(o.Float64Range(lof, hif)).Round(2)
	if v.LessThan(lo) {
		return lo
	}
	if v.GreaterThan(hi) {
		return hi
	}
	return v
}

// Index returns a uniform index in [0, n). The caller guarantees n > 0.
func (o *Oracle) Index(n int) int {
	return o.rand.IntN(n)
}

// Chance returns true with probability p.
func (o *Oracle) Chance(p float64) bool {
	return o.rand.Float64() < p
}

// UUID returns a random UUID drawn from the oracle's seeded source.
func (o *Oracle) UUID() string {
	u, err := uuid.NewRandomFromReader(randReader{o.rand})
	if err != nil {
		// randReader never fails; keep the faker as a safety net.
		return o.faker.UUID()
	}
	return u.String()
}

// Non-unique realistic scalars, delegated to the faker.

func (o *Oracle) FirstName() string { return o.faker.FirstName() }
func (o *Oracle) LastName() string  { return o.faker.LastName() }
func (o *Oracle) Email() string     { return o.faker.Email() }
func (o *Oracle) City() string      { return o.faker.City() }
func (o *Oracle) State() string     { return o.faker.State() }
func (o *Oracle) Country() string   { return o.faker.Country() }
func (o *Oracle) Word() string      { return o.faker.Word() }
func (o *Oracle) IPv4() string      { return o.faker.IPv4Address() }
func (o *Oracle) UserAgent() string { return o.faker.UserAgent() }

// Sentence returns a sentence of roughly wordCount words.
func (o *Oracle) Sentence(wordCount int) string {
	return o.faker.Sentence(wordCount)
}

// StreetAddress returns a single-line postal address.
func (o *Oracle) StreetAddress() string {
	return o.faker.Address().Address
}

// randReader adapts the seeded source to io.Reader for UUID generation.
type randReader struct {
	r *rand.Rand
}

func (rr randReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(rr.r.Uint64())
	}
	return len(p), nil
}
