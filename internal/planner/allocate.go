package planner

import (
	"context"
	"log"
	"time"

	"study-planner/internal/model"
)

// GenerateSchedule rebuilds the user's flexible schedule from scratch:
// prior flexible blocks are deleted, pending tasks are scored, and free
// slots are consumed greedily in priority order. A task that cannot be
// fully placed keeps whatever partial blocks it received and is flagged
// INSUFFICIENT_TIME_WARNING; the batch continues. Storage errors abort the
// run immediately with no cleanup.
func (p *Planner) GenerateSchedule(ctx context.Context, userID uint) error {
	if err := p.blocks.DeleteFlexible(ctx, userID); err != nil {
		return err
	}

	pending, err := p.tasks.ListByStatus(ctx, userID, model.StatusPending)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}

	now := time.Now()
	scored := p.ScoreTasks(pending, now)

	fixed, err := p.blocks.ListFixed(ctx, userID)
	if err != nil {
		return err
	}
	slots := p.FreeSlots(now, fixed)
	if len(slots) == 0 {
		// No capacity at all: tasks stay pending with zero blocks and are
		// reported by UnscheduledTasks instead of being flagged.
		log.Printf("[warn] user %d: no free slots in the next %d days", userID, p.cfg.HorizonDays)
		return nil
	}

	for _, entry := range scored {
		remaining := entry.Task.RequiredHours
		for i := range slots {
			if remaining <= 0 {
				break
			}
			slot := &slots[i]
			take := minHours(remaining, slot.Hours)
			if take <= 0 {
				continue
			}
			end := slot.Start.Add(hoursToDuration(take))
			taskID := entry.Task.ID
			block := model.ScheduleBlock{
				UserID:            userID,
				TaskID:            &taskID,
				ActivityName:      entry.Task.Name,
				StartTime:         slot.Start,
				EndTime:           end,
				IsFixed:           false,
				RecurrencePattern: model.PatternOnce,
			}
			if err := p.blocks.Create(ctx, &block); err != nil {
				return err
			}
			remaining -= take
			slot.Hours -= take
			slot.Start = end
		}
		if remaining > 0 {
			// Partial blocks already emitted are kept; no rollback.
			if err := p.tasks.UpdateStatus(ctx, userID, entry.Task.ID, model.StatusInsufficientTime); err != nil {
				return err
			}
		}
	}
	return nil
}

// UnscheduledTasks returns pending tasks that received no blocks at all,
// used for the post-generation warning. A task flagged after a partial
// allocation holds blocks and a non-pending status, so it shows up neither
// here nor in the pending queue.
func (p *Planner) UnscheduledTasks(ctx context.Context, userID uint) ([]model.Task, error) {
	return p.tasks.ListPendingWithoutBlocks(ctx, userID)
}

func minHours(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func hoursToDuration(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}
