// Package planner selects a diverse three-pick week plan from the catalog and
// implements the plan mutations (generate, reshuffle, swap, lock).
//
// Every operation takes the plan it works on as an argument and returns a new
// plan; nothing here keeps state between calls or touches the caller's value.
package planner

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/mealweek/internal/catalog"
	"github.com/julianstephens/mealweek/internal/models"
)

// Rand is the randomness the diversity selector needs. *rand.Rand from
// math/rand/v2 satisfies it, so tests can pass a seeded source.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// History returns the plan stored for a week, or nil when there is none.
type History interface {
	Load(weekKey string) *models.WeekPlan
}

type Planner struct {
	catalog *catalog.Catalog
	history History
	rng     Rand
	now     func() time.Time
	newID   func() string
}

type Option func(*Planner)

func WithRand(r Rand) Option {
	return func(p *Planner) { p.rng = r }
}

func WithClock(now func() time.Time) Option {
	return func(p *Planner) { p.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(p *Planner) { p.newID = newID }
}

// New creates a Planner over cat. history may be nil, in which case repeat
// avoidance never excludes anything.
func New(cat *catalog.Catalog, history History, opts ...Option) *Planner {
	p := &Planner{
		catalog: cat,
		history: history,
		rng:     globalRand{},
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// globalRand uses the runtime-seeded top-level math/rand/v2 source.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

func (p *Planner) timestamp() time.Time {
	return p.now().UTC()
}
