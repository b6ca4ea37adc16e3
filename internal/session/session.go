// Package session owns the process-wide current plan and live filters and
// runs every plan mutation through one persist step.
//
// Both the CLI and the TUI drive the planner through a Session. Mutations are
// serialized by a mutex and the new plan only becomes visible once it has
// replaced the old one, so readers see either the previous plan or the next.
package session

import (
	"sync"
	"time"

	"github.com/julianstephens/mealweek/internal/catalog"
	"github.com/julianstephens/mealweek/internal/constants"
	"github.com/julianstephens/mealweek/internal/logger"
	"github.com/julianstephens/mealweek/internal/models"
	"github.com/julianstephens/mealweek/internal/planner"
	"github.com/julianstephens/mealweek/internal/quest"
	"github.com/julianstephens/mealweek/internal/shopping"
	"github.com/julianstephens/mealweek/internal/storage"
	"github.com/julianstephens/mealweek/internal/utils"
)

// Snapshotter takes a backup of the durable store. *backup.Manager satisfies it.
type Snapshotter interface {
	CreateBackup() (string, error)
}

// Result describes the outcome of one mutation.
type Result struct {
	Plan     *models.WeekPlan // current plan afterwards; nil when there is none
	Changed  bool             // the operation produced a new plan
	Saved    bool             // the new state reached the store
	Conflict bool             // the stored plan changed underneath us and was reloaded
}

// Flags are transient UI highlights. Each is cleared unconditionally after the
// animation delay; a later mutation inside that window can have its flag
// cleared early by the earlier timer.
type Flags struct {
	Generated bool
	Swapped   [constants.SlotCount]bool
}

type Session struct {
	mu        sync.Mutex
	planner   *planner.Planner
	plans     *storage.PlanStore
	catalog   *catalog.Catalog
	backups   Snapshotter
	now       func() time.Time
	delay     time.Duration
	afterFunc func(time.Duration, func())

	current *models.WeekPlan
	loaded  string // week key current was loaded for
	dirty   bool   // current differs from the store after a failed save
	filters models.Constraints
	flags   Flags
}

type Option func(*Session)

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithBackups enables a snapshot before every Clear.
func WithBackups(b Snapshotter) Option {
	return func(s *Session) { s.backups = b }
}

func WithAnimationDelay(d time.Duration) Option {
	return func(s *Session) { s.delay = d }
}

// WithTimer replaces time.AfterFunc for clearing flags.
func WithTimer(afterFunc func(time.Duration, func())) Option {
	return func(s *Session) { s.afterFunc = afterFunc }
}

func WithFilters(c models.Constraints) Option {
	return func(s *Session) { s.filters = c.Normalize() }
}

func New(p *planner.Planner, plans *storage.PlanStore, cat *catalog.Catalog, opts ...Option) *Session {
	s := &Session{
		planner: p,
		plans:   plans,
		catalog: cat,
		now:     time.Now,
		delay:   constants.AnimationDelay,
		afterFunc: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
		filters: models.Constraints{}.Normalize(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WeekKey is the Monday key of the week containing now.
func (s *Session) WeekKey() string {
	return utils.WeekKey(s.now())
}

// Current returns a copy of this week's plan, or nil. A plan left over from
// another week is never returned.
func (s *Session) Current() *models.WeekPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePtr(s.load(s.WeekKey()))
}

// Reload drops the cached plan and reads it from the store again.
func (s *Session) Reload() *models.WeekPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = ""
	s.dirty = false
	return clonePtr(s.load(s.WeekKey()))
}

func (s *Session) Filters() models.Constraints {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// SetFilters updates the live filter state used by Generate and
// UseCurrentFilters. The current plan is not touched.
func (s *Session) SetFilters(c models.Constraints) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = c.Normalize()
}

// AnimationDelay is how long flags stay set after a mutation.
func (s *Session) AnimationDelay() time.Duration {
	return s.delay
}

func (s *Session) Flags() Flags {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flags
}

// Generate replaces this week's plan with a fresh one under the live filters.
func (s *Session) Generate() Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	weekKey := s.WeekKey()
	return s.commit(weekKey, s.generate(weekKey))
}

// Reshuffle rebuilds the unlocked slots under the plan's stored constraints.
// Without a plan for the week it generates one under the live filters.
func (s *Session) Reshuffle() Result {
	return s.mutate(func(weekKey string, cur *models.WeekPlan) (models.WeekPlan, bool) {
		if cur == nil {
			return s.generate(weekKey), true
		}
		return s.planner.Reshuffle(weekKey, cur), true
	})
}

// UseCurrentFilters is Reshuffle under the live filters.
func (s *Session) UseCurrentFilters() Result {
	return s.mutate(func(weekKey string, cur *models.WeekPlan) (models.WeekPlan, bool) {
		if cur == nil {
			return s.generate(weekKey), true
		}
		return s.planner.UseCurrentFilters(weekKey, cur, s.filters), true
	})
}

// Swap replaces the recipe in one unlocked slot. Invalid requests are no-ops.
func (s *Session) Swap(index int) Result {
	res := s.mutate(func(weekKey string, cur *models.WeekPlan) (models.WeekPlan, bool) {
		return s.planner.Swap(weekKey, cur, index)
	})
	if res.Changed {
		s.mu.Lock()
		s.flash(func(f *Flags) { f.Swapped[index] = true }, func(f *Flags) { f.Swapped[index] = false })
		s.mu.Unlock()
	}
	return res
}

// ToggleLock flips one slot's lock. Invalid requests are no-ops.
func (s *Session) ToggleLock(index int) Result {
	return s.mutate(func(weekKey string, cur *models.WeekPlan) (models.WeekPlan, bool) {
		return s.planner.ToggleLock(weekKey, cur, index)
	})
}

// Clear deletes this week's plan. Other weeks are untouched. When backups are
// configured a snapshot is taken first; a failed snapshot does not block the
// clear.
func (s *Session) Clear() Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	weekKey := s.WeekKey()
	had := s.load(weekKey) != nil
	if s.backups != nil && had {
		if path, err := s.backups.CreateBackup(); err != nil {
			logger.Warn("failed to back up before clear", "error", err)
		} else {
			logger.Info("backup created before clear", "path", path)
		}
	}

	saved := s.plans.Remove(weekKey)
	s.current = nil
	s.loaded = weekKey
	s.dirty = !saved
	return Result{Changed: had, Saved: saved}
}

// Shopping derives the grouped shopping list for this week's plan.
func (s *Session) Shopping() []models.ShoppingSection {
	return shopping.Extract(s.Current(), s.catalog)
}

// Pick returns the recipe and quest for one slot of this week's plan.
func (s *Session) Pick(index int) (models.Recipe, models.Quest, bool) {
	plan := s.Current()
	if plan == nil || index < 0 || index >= len(plan.Slots) {
		return models.Recipe{}, models.Quest{}, false
	}
	id, ok := plan.Slots[index].RecipeID()
	if !ok {
		return models.Recipe{}, models.Quest{}, false
	}
	r, ok := s.catalog.ByID(id)
	if !ok {
		return models.Recipe{}, models.Quest{}, false
	}
	return r, quest.ForSlot(*plan, index, r), true
}

// History lists the weeks with a stored plan, newest first.
func (s *Session) History() []string {
	return s.plans.Weeks()
}

func (s *Session) mutate(op func(weekKey string, cur *models.WeekPlan) (models.WeekPlan, bool)) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	weekKey := s.WeekKey()
	cur := s.load(weekKey)

	if !s.dirty {
		stored := s.plans.Load(weekKey)
		if !samePlan(stored, cur) {
			logger.Warn("week plan changed in another session; reloading", "week", weekKey)
			s.current = stored
			return Result{Plan: clonePtr(stored), Conflict: true}
		}
	}

	next, ok := op(weekKey, clonePtr(cur))
	if !ok {
		return Result{Plan: clonePtr(cur)}
	}
	return s.commit(weekKey, next)
}

// generate builds a fresh plan under the live filters and flashes the
// Generated flag. Callers hold s.mu.
func (s *Session) generate(weekKey string) models.WeekPlan {
	next := s.planner.Generate(weekKey, s.filters)
	s.flash(func(f *Flags) { f.Generated = true }, func(f *Flags) { f.Generated = false })
	return next
}

// commit installs next as the current plan and persists it. A failed save
// keeps the in-memory plan and reports Saved=false.
func (s *Session) commit(weekKey string, next models.WeekPlan) Result {
	saved := s.plans.Save(next)
	s.current = &next
	s.loaded = weekKey
	s.dirty = !saved
	if !saved {
		logger.Warn("week plan kept in memory only", "week", weekKey)
	}
	return Result{Plan: clonePtr(s.current), Changed: true, Saved: saved}
}

// load returns the cached plan for weekKey, reading the store when the cache
// belongs to another week. Callers hold s.mu.
func (s *Session) load(weekKey string) *models.WeekPlan {
	if s.loaded != weekKey {
		s.current = s.plans.Load(weekKey)
		s.loaded = weekKey
		s.dirty = false
	}
	if planner.IsStale(s.current, weekKey) {
		return nil
	}
	return s.current
}

// flash sets a flag now and clears it after the animation delay. Callers hold s.mu.
func (s *Session) flash(set, clear func(*Flags)) {
	set(&s.flags)
	s.afterFunc(s.delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		clear(&s.flags)
	})
}

func samePlan(a, b *models.WeekPlan) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func clonePtr(p *models.WeekPlan) *models.WeekPlan {
	if p == nil {
		return nil
	}
	c := p.Clone()
	return &c
}
