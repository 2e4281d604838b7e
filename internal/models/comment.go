package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents a comment on a post. Deleting the post or the comment's
// author removes the comment with it; the repository delete paths carry the
// cascade since rows are soft-deleted.
type Comment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Text      string         `gorm:"type:text;not null" json:"text"`
	PostID    *uint          `gorm:"index" json:"post_id,omitempty"`
	Post      *Post          `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"post,omitempty"`
	AuthorID  uint           `gorm:"not null;index" json:"author_id"`
	Author    User           `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
