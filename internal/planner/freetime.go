package planner

import (
	"time"

	"study-planner/internal/model"
)

// Slot is a contiguous stretch of unclaimed time inside the daily window.
// The allocator mutates slots in place as it consumes them.
type Slot struct {
	Start time.Time
	Hours float64
}

type interval struct {
	start, end time.Time
}

// FreeSlots computes available capacity for the lookahead horizon: for each
// of the next HorizonDays days (starting tomorrow) the base window
// [DayStartHour, DayEndHour) is carved up by subtracting every fixed
// activity that overlaps it, and residues shorter than MinSlotHours are
// dropped. Fixed activities are matched by absolute date, so a recurring
// activity only subtracts on the calendar days it actually occupies.
// The result is chronological across the whole horizon.
func (p *Planner) FreeSlots(now time.Time, fixed []model.ScheduleBlock) []Slot {
	var slots []Slot
	for d := 1; d <= p.cfg.HorizonDays; d++ {
		day := now.AddDate(0, 0, d)
		windowStart := time.Date(day.Year(), day.Month(), day.Day(), p.cfg.DayStartHour, 0, 0, 0, day.Location())
		windowEnd := time.Date(day.Year(), day.Month(), day.Day(), p.cfg.DayEndHour, 0, 0, 0, day.Location())

		available := []interval{{start: windowStart, end: windowEnd}}
		for _, fa := range fixed {
			available = subtract(available, fa.StartTime, fa.EndTime)
		}

		for _, a := range available {
			hours := a.end.Sub(a.start).Hours()
			if hours >= p.cfg.MinSlotHours {
				slots = append(slots, Slot{Start: a.start, Hours: hours})
			}
		}
	}
	return slots
}

// subtract removes [busyStart, busyEnd) from every interval in the set. An
// activity outside an interval leaves it untouched, one that clips an edge
// shortens it, and one strictly inside splits it in two.
func subtract(available []interval, busyStart, busyEnd time.Time) []interval {
	out := make([]interval, 0, len(available))
	for _, a := range available {
		if !busyEnd.After(a.start) || !busyStart.Before(a.end) {
			out = append(out, a)
			continue
		}
		if busyStart.After(a.start) {
			out = append(out, interval{start: a.start, end: busyStart})
		}
		if busyEnd.Before(a.end) {
			out = append(out, interval{start: busyEnd, end: a.end})
		}
	}
	return out
}
