package planner

import (
	"context"
	"math"
	"time"

	"study-planner/internal/model"
)

// WeekOffset selects which reporting week to aggregate.
type WeekOffset int

const (
	CurrentWeek  WeekOffset = 0
	PreviousWeek WeekOffset = 1
)

// WeeklySummary buckets a user's tasks for one reporting week.
type WeeklySummary struct {
	WeekStart      time.Time // Monday
	WeekEnd        time.Time // Sunday
	Completed      []model.Task
	Pending        []model.Task
	Missed         []model.Task
	CompletionRate int // completed / (completed+pending+missed), percent
}

// WeeklyStatus classifies tasks into completed/pending/missed buckets for
// the week containing refDate (CurrentWeek) or the one before it
// (PreviousWeek). The previous-week report is a stable snapshot: pending
// and missed consider only tasks due inside that week, and a task marked
// completed without a completion date counts as completed if it was due
// that week — a conservative fallback the current-week view does not apply.
func (p *Planner) WeeklyStatus(ctx context.Context, userID uint, refDate time.Time, offset WeekOffset) (WeeklySummary, error) {
	today := dateOf(refDate)
	weekStart := today.AddDate(0, 0, -mondayIndex(today)-7*int(offset))
	weekEnd := weekStart.AddDate(0, 0, 6)

	summary := WeeklySummary{WeekStart: weekStart, WeekEnd: weekEnd}

	pending, err := p.tasks.ListByStatus(ctx, userID, model.StatusPending)
	if err != nil {
		return summary, err
	}
	completed, err := p.tasks.ListByStatus(ctx, userID, model.StatusCompleted)
	if err != nil {
		return summary, err
	}

	if offset == PreviousWeek {
		for _, task := range append(pending, completed...) {
			due := dateOf(task.DueDate)
			if task.CompletionDate != nil && inRange(dateOf(*task.CompletionDate), weekStart, weekEnd) {
				// Completed during the report week, regardless of due date.
				summary.Completed = append(summary.Completed, task)
				continue
			}
			if !inRange(due, weekStart, weekEnd) {
				continue
			}
			switch {
			case task.Status == model.StatusCompleted:
				summary.Completed = append(summary.Completed, task)
			case due.Before(today):
				summary.Missed = append(summary.Missed, task)
			default:
				summary.Pending = append(summary.Pending, task)
			}
		}
	} else {
		for _, task := range pending {
			due := dateOf(task.DueDate)
			switch {
			case due.Before(today):
				summary.Missed = append(summary.Missed, task)
			case !due.After(weekEnd):
				summary.Pending = append(summary.Pending, task)
			}
		}
		for _, task := range completed {
			if task.CompletionDate != nil && inRange(dateOf(*task.CompletionDate), weekStart, weekEnd) {
				summary.Completed = append(summary.Completed, task)
			}
		}
	}

	total := len(summary.Completed) + len(summary.Pending) + len(summary.Missed)
	if total > 0 {
		summary.CompletionRate = int(math.Round(float64(len(summary.Completed)) / float64(total) * 100))
	}
	return summary, nil
}

func inRange(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}
