package planner

import (
	"context"
	"time"

	"study-planner/internal/model"
)

// RecurrenceInput describes a recurring series to expand. Weekday indices
// run 0=Monday..6=Sunday; clock offsets are measured from local midnight.
type RecurrenceInput struct {
	Name       string
	Pattern    string // weekly or biweekly
	RangeStart time.Time
	RangeEnd   time.Time // inclusive
	Weekdays   []int
	StartClock time.Duration
	EndClock   time.Duration
	Notes      string
}

// ParseClock parses an HH:MM wall-clock string into an offset from midnight.
func ParseClock(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, validationf("time", "%q is not an HH:MM time", s)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// ParseDate parses an ISO-8601 calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, validationf("date", "%q is not a YYYY-MM-DD date", s)
	}
	return d, nil
}

func (in RecurrenceInput) validate() error {
	switch in.Pattern {
	case model.PatternWeekly, model.PatternBiweekly:
	default:
		return validationf("pattern", "%q is not weekly or biweekly", in.Pattern)
	}
	if dateOf(in.RangeEnd).Before(dateOf(in.RangeStart)) {
		return validationf("range", "end date is before start date")
	}
	if len(in.Weekdays) == 0 {
		return validationf("weekdays", "at least one day must be selected")
	}
	for _, wd := range in.Weekdays {
		if wd < 0 || wd > 6 {
			return validationf("weekdays", "index %d is out of range 0..6", wd)
		}
	}
	if in.EndClock <= in.StartClock {
		return validationf("time", "end time must be after start time")
	}
	return nil
}

func (in RecurrenceInput) selected(day time.Time) bool {
	idx := mondayIndex(day)
	for _, wd := range in.Weekdays {
		if wd == idx {
			return true
		}
	}
	return false
}

// mondayIndex maps a date to the 0=Monday..6=Sunday weekday numbering.
func mondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// ExpandRecurrence turns a recurrence definition into dated fixed blocks.
// Every calendar day in the inclusive range is a candidate if its weekday
// is selected; biweekly additionally requires an even week offset from the
// range start, one global parity clock shared by all selected weekdays.
// Each surviving candidate is conflict-checked against the user's current
// committed state, which already includes occurrences inserted earlier in
// the same run, and skipped silently on conflict. Returns the number of
// occurrences actually inserted.
func (p *Planner) ExpandRecurrence(ctx context.Context, userID uint, in RecurrenceInput) (int, error) {
	if err := in.validate(); err != nil {
		return 0, err
	}

	rangeStart := dateOf(in.RangeStart)
	rangeEnd := dateOf(in.RangeEnd)

	count := 0
	for day := rangeStart; !day.After(rangeEnd); day = day.AddDate(0, 0, 1) {
		if !in.selected(day) {
			continue
		}
		if in.Pattern == model.PatternBiweekly {
			weeks := daysBetween(rangeStart, day) / 7
			if weeks%2 != 0 {
				continue
			}
		}

		start := day.Add(in.StartClock)
		end := day.Add(in.EndClock)
		if !end.After(start) {
			continue
		}

		ok, err := p.HasNoConflict(ctx, userID, start, end)
		if err != nil {
			return count, err
		}
		if !ok {
			continue
		}

		block := model.ScheduleBlock{
			UserID:            userID,
			ActivityName:      in.Name,
			StartTime:         start,
			EndTime:           end,
			IsFixed:           true,
			IsRecurring:       true,
			RecurrencePattern: in.Pattern,
			Notes:             in.Notes,
		}
		if err := p.blocks.Create(ctx, &block); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
