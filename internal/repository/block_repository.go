package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"study-planner/internal/model"
)

// BlockRepository handles CRUD for schedule blocks.
type BlockRepository struct {
	db *gorm.DB
}

func NewBlockRepository(db *gorm.DB) *BlockRepository {
	return &BlockRepository{db: db}
}

func (r *BlockRepository) Create(ctx context.Context, block *model.ScheduleBlock) error {
	if err := r.db.WithContext(ctx).Create(block).Error; err != nil {
		return fmt.Errorf("create block: %w", err)
	}
	return nil
}

func (r *BlockRepository) FindByID(ctx context.Context, userID, blockID uint) (*model.ScheduleBlock, error) {
	var block model.ScheduleBlock
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, blockID).First(&block).Error; err != nil {
		return nil, err
	}
	return &block, nil
}

// ListByUser returns all of a user's blocks, fixed and flexible, in start order.
func (r *BlockRepository) ListByUser(ctx context.Context, userID uint) ([]model.ScheduleBlock, error) {
	var blocks []model.ScheduleBlock
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

// ListFixed returns the user's fixed commitments in start order.
func (r *BlockRepository) ListFixed(ctx context.Context, userID uint) ([]model.ScheduleBlock, error) {
	var blocks []model.ScheduleBlock
	if err := r.db.WithContext(ctx).Where("user_id = ? AND is_fixed = ?", userID, true).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

// ListByActivity returns all occurrences of a series, identified by the
// (activity name, recurrence pattern) tuple.
func (r *BlockRepository) ListByActivity(ctx context.Context, userID uint, name, pattern string) ([]model.ScheduleBlock, error) {
	var blocks []model.ScheduleBlock
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND activity_name = ? AND recurrence_pattern = ?", userID, name, pattern).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

func (r *BlockRepository) Update(ctx context.Context, block *model.ScheduleBlock) error {
	if err := r.db.WithContext(ctx).Save(block).Error; err != nil {
		return fmt.Errorf("update block: %w", err)
	}
	return nil
}

func (r *BlockRepository) Delete(ctx context.Context, userID, blockID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, blockID).
		Delete(&model.ScheduleBlock{}).Error; err != nil {
		return fmt.Errorf("delete block: %w", err)
	}
	return nil
}

// DeleteFlexible bulk-deletes a user's allocated work blocks. Called at the
// start of every schedule generation so the pass starts from a clean slate.
func (r *BlockRepository) DeleteFlexible(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ? AND is_fixed = ?", userID, false).
		Delete(&model.ScheduleBlock{}).Error; err != nil {
		return fmt.Errorf("delete flexible blocks: %w", err)
	}
	return nil
}

// DeleteByActivity removes every occurrence of a series and reports how many
// blocks were deleted.
func (r *BlockRepository) DeleteByActivity(ctx context.Context, userID uint, name, pattern string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND activity_name = ? AND recurrence_pattern = ?", userID, name, pattern).
		Delete(&model.ScheduleBlock{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete series: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// DeleteByTask removes the blocks allocated to one task.
func (r *BlockRepository) DeleteByTask(ctx context.Context, userID, taskID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ? AND task_id = ?", userID, taskID).
		Delete(&model.ScheduleBlock{}).Error; err != nil {
		return fmt.Errorf("delete task blocks: %w", err)
	}
	return nil
}

func (r *BlockRepository) DeleteAllForUser(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Delete(&model.ScheduleBlock{}).Error; err != nil {
		return fmt.Errorf("delete user blocks: %w", err)
	}
	return nil
}
