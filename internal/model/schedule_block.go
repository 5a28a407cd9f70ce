package model

import "time"

// Recurrence patterns for schedule blocks. A recurring series is the set of
// blocks sharing (user, activity name, pattern); there is no series entity.
const (
	PatternOnce     = "once"
	PatternWeekly   = "weekly"
	PatternBiweekly = "biweekly"
)

// ScheduleBlock is one concrete time interval on the calendar. A block with
// a TaskID is allocated flexible work time; a block without one is a fixed
// commitment, possibly a single occurrence of a recurring series.
type ScheduleBlock struct {
	ID                uint  `gorm:"primaryKey"`
	UserID            uint  `gorm:"index"`
	TaskID            *uint `gorm:"index"`
	ActivityName      string
	StartTime         time.Time `gorm:"index"`
	EndTime           time.Time
	IsFixed           bool   `gorm:"default:false"`
	IsRecurring       bool   `gorm:"default:false"`
	RecurrencePattern string `gorm:"default:once"`
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
