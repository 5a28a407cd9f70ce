package planner

import (
	"context"
	"time"

	"study-planner/internal/model"
)

// SeriesKey is the operational identity of a recurring series: there is no
// series entity, so the (activity name, recurrence pattern) tuple stands in
// for one. Renaming an activity therefore forks a new series.
type SeriesKey struct {
	Name    string
	Pattern string
}

// RegenerateSeries edits a recurring series by full replacement: every
// block matching the old key is deleted, then the expander re-runs with the
// submitted parameters (new name, pattern, range, weekdays, and times are
// all allowed). Single-occurrence edits are intentionally unsupported.
// Returns the number of occurrences inserted.
func (p *Planner) RegenerateSeries(ctx context.Context, userID uint, old SeriesKey, in RecurrenceInput) (int, error) {
	if err := in.validate(); err != nil {
		return 0, err
	}
	if _, err := p.blocks.DeleteByActivity(ctx, userID, old.Name, old.Pattern); err != nil {
		return 0, err
	}
	return p.ExpandRecurrence(ctx, userID, in)
}

// CollapseSeries converts a recurring series into a single one-time fixed
// activity: the whole series is deleted and one block is inserted in its
// place.
func (p *Planner) CollapseSeries(ctx context.Context, userID uint, old SeriesKey, name string, start, end time.Time, notes string) error {
	if !end.After(start) {
		return validationf("time", "end time must be after start time")
	}
	if _, err := p.blocks.DeleteByActivity(ctx, userID, old.Name, old.Pattern); err != nil {
		return err
	}
	block := model.ScheduleBlock{
		UserID:            userID,
		ActivityName:      name,
		StartTime:         start,
		EndTime:           end,
		IsFixed:           true,
		RecurrencePattern: model.PatternOnce,
		Notes:             notes,
	}
	return p.blocks.Create(ctx, &block)
}
