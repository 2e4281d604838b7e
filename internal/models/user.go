// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered author on the platform.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"size:150;not null;uniqueIndex" json:"username"`
	Email     string         `gorm:"size:254;not null;uniqueIndex" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	FirstName string         `gorm:"size:150" json:"first_name"`
	LastName  string         `gorm:"size:150" json:"last_name"`
	IsAdmin   bool           `gorm:"default:false" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Posts []Post `gorm:"foreignKey:AuthorID" json:"posts,omitempty"`
}
