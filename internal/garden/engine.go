package garden

import (
	"time"

	"github.com/osse101/bloom/internal/domain"
	"github.com/osse101/bloom/internal/utils"
)

// Engine provides pure growth logic (no state, no persistence)
type Engine struct {
	stages domain.GrowthStages
}

// NewEngine creates a growth engine for the given thresholds
func NewEngine(stages domain.GrowthStages) *Engine {
	return &Engine{stages: stages}
}

// Stages returns the thresholds the engine runs on
func (e *Engine) Stages() domain.GrowthStages {
	return e.stages
}

// StepsElapsed counts whole stage durations between last and now.
// A clock that moved backwards yields zero.
func (e *Engine) StepsElapsed(last, now time.Time) int {
	elapsed := now.Sub(last)
	if elapsed <= 0 || e.stages.Duration <= 0 {
		return 0
	}
	return int(elapsed / e.stages.Duration)
}

// Advance catches an entry up to now. It returns whether the stage moved and
// whether the move crossed into maturity. The partial stage is discarded:
// LastAdvanceAt becomes now, not last + steps*Duration.
func (e *Engine) Advance(entry *domain.GrowthEntry, now time.Time) (advanced, matured bool) {
	if entry.Stage >= e.stages.MaxStage {
		return false, false
	}

	steps := e.StepsElapsed(entry.LastAdvanceAt, now)
	if steps == 0 {
		return false, false
	}

	before := entry.Stage
	entry.Stage = min(before+steps, e.stages.MaxStage)
	entry.LastAdvanceAt = now

	return true, before < e.stages.MaturityStage && entry.Stage >= e.stages.MaturityStage
}

// HasGoneToSeed reports whether the entry reached the terminal stage
func (e *Engine) HasGoneToSeed(entry *domain.GrowthEntry) bool {
	return entry.Stage >= e.stages.MaxStage
}

// RollYield draws seed and flower counts independently from the inclusive ranges
func (e *Engine) RollYield(yield domain.YieldRange, r utils.Roller) (seeds, flowers int) {
	return r.IntRange(yield.SeedMin, yield.SeedMax), r.IntRange(yield.FlowerMin, yield.FlowerMax)
}
