package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a published blog entry.
//
// Rows are soft-deleted, so the repository delete paths cascade explicitly:
// deleting the author deletes the post, deleting the post deletes its
// comments, deleting the group clears the post's group reference. The
// foreign key actions below back the same rules for hard deletes.
type Post struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Text      string `gorm:"type:text;not null" json:"text"`
	ImagePath string `gorm:"size:255" json:"image_path,omitempty"`
	AuthorID  uint   `gorm:"not null;index" json:"author_id"`
	Author    User   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	GroupID   *uint  `gorm:"index" json:"group_id,omitempty"`
	Group     *Group `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL" json:"group,omitempty"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int            `gorm:"->;-:migration" json:"comments_count"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
