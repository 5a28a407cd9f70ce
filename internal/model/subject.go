package model

import "time"

// Subject groups tasks by course or area of study.
type Subject struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;index:idx_user_subject_name,unique"`
	Name      string `gorm:"index:idx_user_subject_name,unique"`
	Teacher   string
	ColorTag  string
	Notes     string
	ShortNote string
	KeyTopics string
	CreatedAt time.Time
	UpdatedAt time.Time
	Tasks     []Task `gorm:"foreignKey:SubjectID"`
}

// SubjectNote is one titled note attached to a subject.
type SubjectNote struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"index"`
	SubjectID uint `gorm:"index"`
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
