package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey"`
	Name         string    `gorm:"uniqueIndex;size:191;not null"`
	Email        string    `gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string    `gorm:"size:128;not null"`
	CreationTime time.Time `gorm:"autoCreateTime"`
}

func (User) TableName() string { return "app_users" }
