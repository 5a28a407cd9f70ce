package planner

import (
	"context"
	"time"
)

// overlaps is the half-open interval test: [s1,e1) and [s2,e2) overlap iff
// s1 < e2 and s2 < e1. Touching boundaries do not overlap.
func overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// HasNoConflict reports whether the candidate interval [start, end) is free
// of every existing block for the user, fixed and flexible alike. Callers
// treat a conflict as "skip, do not insert" rather than an error.
func (p *Planner) HasNoConflict(ctx context.Context, userID uint, start, end time.Time) (bool, error) {
	blocks, err := p.blocks.ListByUser(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, b := range blocks {
		if overlaps(start, end, b.StartTime, b.EndTime) {
			return false, nil
		}
	}
	return true, nil
}
