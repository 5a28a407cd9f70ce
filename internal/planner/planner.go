// Package planner implements the time-allocation and recurrence engine:
// priority scoring, free-time computation, greedy interval allocation,
// conflict detection, recurrence expansion, and weekly status aggregation.
package planner

import (
	"study-planner/internal/repository"
)

// Config carries the planning window settings. All of them arrive through
// the constructor; the engine reads no globals.
type Config struct {
	DayStartHour   int     // daily window opens at this local hour
	DayEndHour     int     // and closes at this one (exclusive)
	HorizonDays    int     // free time is computed for days 1..HorizonDays from now
	MinSlotHours   float64 // residues shorter than this are discarded
	UrgencyHorizon int     // days-until-due ceiling for urgency scoring
	PriorityFactor int     // urgency multiplier in the final score
}

// DefaultConfig mirrors the standard planning window: 08:00-22:00, one week
// ahead, quarter-hour minimum slots, 90-day urgency horizon.
func DefaultConfig() Config {
	return Config{
		DayStartHour:   8,
		DayEndHour:     22,
		HorizonDays:    7,
		MinSlotHours:   0.25,
		UrgencyHorizon: 90,
		PriorityFactor: 10,
	}
}

// Planner is the scheduling engine. Every operation is synchronous and runs
// read-modify-write sequences without transactions, so callers must ensure
// at most one in-flight GenerateSchedule or series edit per user at a time.
// Operations for different users are independent.
type Planner struct {
	cfg    Config
	tasks  *repository.TaskRepository
	blocks *repository.BlockRepository
}

func New(cfg Config, tasks *repository.TaskRepository, blocks *repository.BlockRepository) *Planner {
	return &Planner{cfg: cfg, tasks: tasks, blocks: blocks}
}
