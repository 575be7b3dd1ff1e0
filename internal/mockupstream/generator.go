// Package mockupstream provides a stand-in for the disbursal records API:
// a deterministic synthetic data set served with the upstream's wire shape.
// It exists for local development and tests; the report pipeline itself
// never touches it.
package mockupstream

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/blinkr/disburse/internal/domain/record"
)

// Generation defaults.
const (
	defaultSeed       = 42
	defaultNumRecords = 250
	defaultSpanDays   = 120
)

var firstNames = []string{
	"Aarav", "Ananya", "Arjun", "Diya", "Ishaan", "Kavya", "Manish", "Neha",
	"Priya", "Rahul", "Riya", "Rohan", "Sanya", "Vikram", "Zara",
}

var lastNames = []string{
	"Agarwal", "Chopra", "Gupta", "Iyer", "Jain", "Kapoor", "Mehta",
	"Nair", "Patel", "Reddy", "Sharma", "Singh", "Verma",
}

// statesToCities keeps generated geography coherent: a record's city always
// belongs to its state.
var statesToCities = map[string][]string{
	"Delhi":         {"Central Delhi", "West Delhi", "Delhi"},
	"Haryana":       {"Gurugram", "Faridabad"},
	"Uttar Pradesh": {"Noida", "Lucknow", "Ghaziabad"},
	"Maharashtra":   {"Mumbai Suburban", "Pune"},
	"Telangana":     {"Hyderabad"},
}

var stateNames = []string{"Delhi", "Haryana", "Uttar Pradesh", "Maharashtra", "Telangana"}

var tenures = []int{3, 6, 9, 12, 18, 24}

// Generator produces the synthetic record set.
type Generator struct {
	rng  *rand.Rand
	n    int
	span int
	end  time.Time
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSeed makes the data set reproducible across runs.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic synthetic data
	}
}

// WithNumRecords sets how many records to generate.
func WithNumRecords(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.n = n
		}
	}
}

// WithDateSpan spreads disbursal dates over the span days ending at end.
func WithDateSpan(end time.Time, days int) Option {
	return func(g *Generator) {
		if days > 0 {
			g.end = end
			g.span = days
		}
	}
}

// NewGenerator creates a generator with deterministic defaults.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		rng:  rand.New(rand.NewSource(defaultSeed)), //nolint:gosec // deterministic synthetic data
		n:    defaultNumRecords,
		span: defaultSpanDays,
		end:  time.Now().UTC().Truncate(24 * time.Hour),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds the full data set, keyed by uuid the way the real
// upstream keys its response object. Records deliberately rotate through
// the known field-name synonyms so consumers exercise their normalization.
func (g *Generator) Generate() map[string]record.Raw {
	out := make(map[string]record.Raw, g.n)
	for i := 0; i < g.n; i++ {
		out[uuid.New().String()] = g.one(i)
	}
	return out
}

func (g *Generator) one(i int) record.Raw {
	state := stateNames[g.rng.Intn(len(stateNames))]
	cities := statesToCities[state]
	city := cities[g.rng.Intn(len(cities))]

	date := g.end.AddDate(0, 0, -g.rng.Intn(g.span)).Format("2006-01-02")
	name := fmt.Sprintf("%s %s",
		firstNames[g.rng.Intn(len(firstNames))],
		lastNames[g.rng.Intn(len(lastNames))],
	)

	sanction := float64(20+g.rng.Intn(80)) * 1000
	disbursed := sanction * (0.85 + g.rng.Float64()*0.1)
	pf := sanction * 0.10
	interest := disbursed * (0.05 + g.rng.Float64()*0.03)

	raw := record.Raw{
		dateKey(i):         date,
		nameKey(i):         name,
		sanctionKey(i):     sanction,
		disbursedKey(i):    disbursed,
		"processing_fee":   pf,
		"interest_amount":  interest,
		"repayment_amount": disbursed + interest,
		"state":            state,
		"city":             city,
		"tenure":           tenures[g.rng.Intn(len(tenures))],
		"is_reloan_case":   g.rng.Intn(4) == 0,
		"is_lead_closed":   g.rng.Intn(3) == 0,
	}
	return raw
}

// Key rotation mimics the schema drift seen across upstream deployments.

func dateKey(i int) string {
	return []string{"disbursal_date", "disbursement_date", "disbursalDate"}[i%3]
}

func nameKey(i int) string {
	return []string{"full_name", "customer_name", "fullName"}[i%3]
}

func sanctionKey(i int) string {
	return []string{"sanction_amount", "sanctioned_amount", "sanction_amt"}[i%3]
}

func disbursedKey(i int) string {
	return []string{"disbursed_amount", "disbursal_amt", "disbursalAmount"}[i%3]
}
