package models

import "time"

// Group is an administrator-defined category posts may optionally belong to.
// End users cannot create groups; see the admin group handlers.
type Group struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Slug        string    `gorm:"size:50;not null;uniqueIndex" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Posts []Post `gorm:"foreignKey:GroupID" json:"posts,omitempty"`
}

// TableName specifies the table name for GORM.
func (Group) TableName() string {
	return "groups"
}
