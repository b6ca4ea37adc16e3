package storage

import (
	"encoding/json"
	"errors"
	"slices"
	"strings"

	"github.com/julianstephens/mealweek/internal/constants"
	"github.com/julianstephens/mealweek/internal/logger"
	"github.com/julianstephens/mealweek/internal/models"
)

// PlanStore keeps at most one week plan per week key, stored as JSON under
// <namespace>.<weekKey>. Failures never reach the caller: reads degrade to
// "no plan" and writes report false.
type PlanStore struct {
	store     Store
	namespace string
}

// NewPlanStore wraps store. An empty namespace uses constants.PlanNamespace.
func NewPlanStore(store Store, namespace string) *PlanStore {
	if namespace == "" {
		namespace = constants.PlanNamespace
	}
	return &PlanStore{store: store, namespace: namespace}
}

func (p *PlanStore) Key(weekKey string) string {
	return p.namespace + "." + weekKey
}

// Load returns the plan saved for weekKey, or nil when there is none or the
// record is malformed, belongs to another week, or does not have three slots.
func (p *PlanStore) Load(weekKey string) *models.WeekPlan {
	raw, err := p.store.Get(p.Key(weekKey))
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Warn("failed to read week plan", "week", weekKey, "error", err)
		}
		return nil
	}

	var plan models.WeekPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		logger.Debug("ignoring malformed week plan", "week", weekKey, "error", err)
		return nil
	}
	if plan.WeekKey != weekKey || len(plan.Slots) != constants.SlotCount {
		logger.Debug("ignoring foreign week plan", "week", weekKey, "stored_week", plan.WeekKey, "slots", len(plan.Slots))
		return nil
	}
	return &plan
}

// Save writes plan under its week key and reports whether it is durable.
func (p *PlanStore) Save(plan models.WeekPlan) bool {
	data, err := json.Marshal(plan)
	if err != nil {
		logger.Warn("failed to encode week plan", "week", plan.WeekKey, "error", err)
		return false
	}
	if err := p.store.Set(p.Key(plan.WeekKey), string(data)); err != nil {
		logger.Warn("failed to save week plan", "week", plan.WeekKey, "error", err)
		return false
	}
	return true
}

// Remove deletes the plan for weekKey. Removing an absent plan succeeds.
func (p *PlanStore) Remove(weekKey string) bool {
	err := p.store.Delete(p.Key(weekKey))
	if err != nil && !errors.Is(err, ErrNotFound) {
		logger.Warn("failed to remove week plan", "week", weekKey, "error", err)
		return false
	}
	return true
}

// Weeks lists the week keys that have a stored record, newest first.
func (p *PlanStore) Weeks() []string {
	prefix := p.namespace + "."
	keys, err := p.store.Keys(prefix)
	if err != nil {
		logger.Warn("failed to list week plans", "error", err)
		return nil
	}
	weeks := make([]string, 0, len(keys))
	for _, k := range keys {
		weeks = append(weeks, strings.TrimPrefix(k, prefix))
	}
	slices.Reverse(weeks)
	return weeks
}
