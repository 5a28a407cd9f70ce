package planner

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"study-planner/internal/model"
	"study-planner/internal/repository"
)

var testDBCounter int64

// newTestPlanner opens a private in-memory database per test.
func newTestPlanner(t *testing.T) (*Planner, *repository.TaskRepository, *repository.BlockRepository) {
	t.Helper()
	dsn := fmt.Sprintf("file:planner_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := repository.NewDB(dsn)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	tasks := repository.NewTaskRepository(db)
	blocks := repository.NewBlockRepository(db)
	return New(DefaultConfig(), tasks, blocks), tasks, blocks
}

func mustCreateTask(t *testing.T, tasks *repository.TaskRepository, task model.Task) model.Task {
	t.Helper()
	if task.Status == "" {
		task.Status = model.StatusPending
	}
	if task.PriorityWeight == 0 {
		task.PriorityWeight = 1
	}
	if err := tasks.Create(context.Background(), &task); err != nil {
		t.Fatalf("create task: %v", err)
	}
	return task
}

func mustCreateBlock(t *testing.T, blocks *repository.BlockRepository, block model.ScheduleBlock) model.ScheduleBlock {
	t.Helper()
	if block.RecurrencePattern == "" {
		block.RecurrencePattern = model.PatternOnce
	}
	if err := blocks.Create(context.Background(), &block); err != nil {
		t.Fatalf("create block: %v", err)
	}
	return block
}

// at builds a timestamp on the given day offset from base at HH:MM.
func at(base time.Time, dayOffset, hour, minute int) time.Time {
	d := base.AddDate(0, 0, dayOffset)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, d.Location())
}
