package model

import "time"

// Task statuses. A task that could not be fully scheduled is moved to
// StatusInsufficientTime and stays there until the user intervenes.
const (
	StatusPending          = "PENDING"
	StatusCompleted        = "COMPLETED"
	StatusInsufficientTime = "INSUFFICIENT_TIME_WARNING"
)

// Task is a unit of required effort with a due date and priority weight.
type Task struct {
	ID             uint  `gorm:"primaryKey"`
	UserID         uint  `gorm:"index"`
	SubjectID      *uint `gorm:"index"`
	Name           string
	DueDate        time.Time `gorm:"type:date"`
	RequiredHours  float64
	PriorityWeight int
	Status         string `gorm:"default:PENDING;index"`
	IsRecurring    bool   `gorm:"default:false"`
	CompletionDate *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
