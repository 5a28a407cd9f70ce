package model

import "time"

// User owns all planner data. Authentication itself happens outside the
// engine; the password hash is stored but never inspected here.
type User struct {
	ID             uint   `gorm:"primaryKey"`
	Username       string `gorm:"uniqueIndex"`
	PasswordHash   string
	TelegramChatID int64 `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
