package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"study-planner/internal/model"
	"study-planner/internal/planner"
	"study-planner/internal/repository"
)

// ErrAlreadyCompleted is returned when completing a task that is already
// closed; callers treat it the same as "not found".
var ErrAlreadyCompleted = errors.New("task already completed")

// TaskInput represents data required to create or update a task.
type TaskInput struct {
	Name           string
	SubjectID      *uint
	DueDate        time.Time
	RequiredHours  float64
	PriorityWeight int
	IsRecurring    bool
}

// TaskService wraps task-related business logic, including the completion
// state machine.
type TaskService struct {
	tasks    *repository.TaskRepository
	blocks   *repository.BlockRepository
	subjects *repository.SubjectRepository
}

func NewTaskService(tasks *repository.TaskRepository, blocks *repository.BlockRepository, subjects *repository.SubjectRepository) *TaskService {
	return &TaskService{tasks: tasks, blocks: blocks, subjects: subjects}
}

func (s *TaskService) validate(ctx context.Context, userID uint, input TaskInput) error {
	if input.Name == "" {
		return &planner.ValidationError{Field: "name", Message: "name is required"}
	}
	if input.RequiredHours <= 0 {
		return &planner.ValidationError{Field: "required_hours", Message: "required time must be positive"}
	}
	if input.PriorityWeight < 1 {
		return &planner.ValidationError{Field: "priority_weight", Message: "priority weight must be at least 1"}
	}
	if input.SubjectID != nil {
		if _, err := s.subjects.FindByID(ctx, userID, *input.SubjectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &planner.ValidationError{Field: "subject", Message: "subject not found"}
			}
			return err
		}
	}
	return nil
}

func (s *TaskService) CreateTask(ctx context.Context, userID uint, input TaskInput) (*model.Task, error) {
	if err := s.validate(ctx, userID, input); err != nil {
		return nil, err
	}

	task := model.Task{
		UserID:         userID,
		SubjectID:      input.SubjectID,
		Name:           input.Name,
		DueDate:        input.DueDate,
		RequiredHours:  input.RequiredHours,
		PriorityWeight: input.PriorityWeight,
		Status:         model.StatusPending,
		IsRecurring:    input.IsRecurring,
	}
	if err := s.tasks.Create(ctx, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID uint, input TaskInput) (*model.Task, error) {
	if err := s.validate(ctx, userID, input); err != nil {
		return nil, err
	}

	task, err := s.tasks.FindByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	task.Name = input.Name
	task.SubjectID = input.SubjectID
	task.DueDate = input.DueDate
	task.RequiredHours = input.RequiredHours
	task.PriorityWeight = input.PriorityWeight
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, userID, taskID uint) (*model.Task, error) {
	return s.tasks.FindByID(ctx, userID, taskID)
}

func (s *TaskService) ListPending(ctx context.Context, userID uint) ([]model.Task, error) {
	return s.tasks.ListByStatus(ctx, userID, model.StatusPending)
}

// CompleteTask runs the completion state machine. A non-recurring task goes
// PENDING -> COMPLETED with today's completion date, terminally; completing
// it again is a no-op that reports ErrAlreadyCompleted. A recurring task
// never closes: its due date advances by seven days and it stays PENDING.
func (s *TaskService) CompleteTask(ctx context.Context, userID, taskID uint, now time.Time) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if task.Status == model.StatusCompleted {
		return nil, ErrAlreadyCompleted
	}

	if task.IsRecurring {
		if err := s.tasks.Reschedule(ctx, task, task.DueDate.AddDate(0, 0, 7)); err != nil {
			return nil, err
		}
		return task, nil
	}

	if err := s.tasks.MarkCompleted(ctx, task, now); err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask removes a task together with its allocated blocks.
func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID uint) error {
	if err := s.blocks.DeleteByTask(ctx, userID, taskID); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, userID, taskID)
}
