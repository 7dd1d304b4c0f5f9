package models

import "time"

// Advertisement belongs to at most one user. UserID is a plain nullable
// reference; it is never checked against app_users on write.
type Advertisement struct {
	ID           uint      `gorm:"primaryKey"`
	Title        string    `gorm:"size:100"`
	Description  string    `gorm:"size:500"`
	Owner        string    `gorm:"size:50"`
	UserID       *uint     `gorm:"index"`
	CreationTime time.Time `gorm:"autoCreateTime"`
}

func (Advertisement) TableName() string { return "app_advertisements" }
