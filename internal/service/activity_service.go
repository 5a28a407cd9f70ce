package service

import (
	"context"
	"time"

	"study-planner/internal/model"
	"study-planner/internal/planner"
	"study-planner/internal/repository"
)

// ActivityService manages fixed commitments: one-time activities, recurring
// series, and the conversions between them. Every series edit is a full
// replacement through the planner, never an incremental diff.
type ActivityService struct {
	blocks  *repository.BlockRepository
	planner *planner.Planner
}

func NewActivityService(blocks *repository.BlockRepository, p *planner.Planner) *ActivityService {
	return &ActivityService{blocks: blocks, planner: p}
}

// AddOneTime inserts a single fixed activity if the interval is free. The
// ok result is false when the candidate conflicts with existing blocks; a
// conflict is a skip outcome, not an error.
func (s *ActivityService) AddOneTime(ctx context.Context, userID uint, name string, start, end time.Time, notes string) (bool, error) {
	if !end.After(start) {
		return false, &planner.ValidationError{Field: "time", Message: "end time must be after start time"}
	}
	ok, err := s.planner.HasNoConflict(ctx, userID, start, end)
	if err != nil || !ok {
		return false, err
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
	if err := s.blocks.Create(ctx, &block); err != nil {
		return false, err
	}
	return true, nil
}

// AddRecurring expands a new recurring series into dated occurrences.
func (s *ActivityService) AddRecurring(ctx context.Context, userID uint, in planner.RecurrenceInput) (int, error) {
	return s.planner.ExpandRecurrence(ctx, userID, in)
}

// EditOneTime updates a plain one-time activity in place.
func (s *ActivityService) EditOneTime(ctx context.Context, userID, blockID uint, name string, start, end time.Time, notes string) error {
	if !end.After(start) {
		return &planner.ValidationError{Field: "time", Message: "end time must be after start time"}
	}
	block, err := s.blocks.FindByID(ctx, userID, blockID)
	if err != nil {
		return err
	}
	block.ActivityName = name
	block.StartTime = start
	block.EndTime = end
	block.Notes = notes
	return s.blocks.Update(ctx, block)
}

// EditSeries replaces a whole recurring series with the submitted
// definition and returns the new occurrence count.
func (s *ActivityService) EditSeries(ctx context.Context, userID uint, old planner.SeriesKey, in planner.RecurrenceInput) (int, error) {
	return s.planner.RegenerateSeries(ctx, userID, old, in)
}

// ConvertToSeries turns a one-time activity into a recurring series: the
// original block is deleted, then the expander runs.
func (s *ActivityService) ConvertToSeries(ctx context.Context, userID, blockID uint, in planner.RecurrenceInput) (int, error) {
	if err := s.blocks.Delete(ctx, userID, blockID); err != nil {
		return 0, err
	}
	return s.planner.ExpandRecurrence(ctx, userID, in)
}

// ConvertToOneTime collapses a recurring series into a single activity.
func (s *ActivityService) ConvertToOneTime(ctx context.Context, userID uint, old planner.SeriesKey, name string, start, end time.Time, notes string) error {
	return s.planner.CollapseSeries(ctx, userID, old, name, start, end, notes)
}

func (s *ActivityService) GetBlock(ctx context.Context, userID, blockID uint) (*model.ScheduleBlock, error) {
	return s.blocks.FindByID(ctx, userID, blockID)
}

func (s *ActivityService) ListSchedule(ctx context.Context, userID uint) ([]model.ScheduleBlock, error) {
	return s.blocks.ListByUser(ctx, userID)
}

func (s *ActivityService) ListSeries(ctx context.Context, userID uint, key planner.SeriesKey) ([]model.ScheduleBlock, error) {
	return s.blocks.ListByActivity(ctx, userID, key.Name, key.Pattern)
}

func (s *ActivityService) DeleteBlock(ctx context.Context, userID, blockID uint) error {
	return s.blocks.Delete(ctx, userID, blockID)
}

// DeleteSeries removes every occurrence of a series and reports the count.
func (s *ActivityService) DeleteSeries(ctx context.Context, userID uint, key planner.SeriesKey) (int64, error) {
	return s.blocks.DeleteByActivity(ctx, userID, key.Name, key.Pattern)
}
