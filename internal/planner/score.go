package planner

import (
	"sort"
	"time"

	"study-planner/internal/model"
)

// ScoredTask pairs a task with its computed priority score.
type ScoredTask struct {
	Task  model.Task
	Score int
}

// ScoreTasks ranks pending tasks by urgency and weight. Urgency is the
// number of days already burned off the horizon (overdue or due-today tasks
// get the full horizon value), so score = urgency*factor + weight. The sort
// is stable descending: ties keep their incoming relative order.
func (p *Planner) ScoreTasks(tasks []model.Task, now time.Time) []ScoredTask {
	scored := make([]ScoredTask, 0, len(tasks))
	for _, task := range tasks {
		urgency := p.cfg.UrgencyHorizon - daysUntilDue(task.DueDate, now)
		scored = append(scored, ScoredTask{
			Task:  task,
			Score: urgency*p.cfg.PriorityFactor + task.PriorityWeight,
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// daysUntilDue returns whole calendar days from now to the due date,
// clamped at zero for overdue tasks.
func daysUntilDue(due, now time.Time) int {
	days := daysBetween(now, due)
	if days < 0 {
		return 0
	}
	return days
}

// daysBetween counts calendar days from one date to the other. The dates
// are rebuilt in UTC so DST-shortened or -lengthened local days cannot
// skew the count.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// dateOf truncates a timestamp to midnight in its own location.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
