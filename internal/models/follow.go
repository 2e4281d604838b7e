package models

import "time"

// Follow records a directed subscription: UserID follows AuthorID.
//
// The (user_id, author_id) pair is unique at the storage layer so that two
// concurrent follow attempts for the same pair resolve there: exactly one
// insert succeeds and the other reads as already-following. Deleting either
// user cascades the relation. Follows are immutable once created.
type Follow struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_follows_pair" json:"user_id"`
	AuthorID  uint      `gorm:"not null;uniqueIndex:idx_follows_pair" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`

	User   User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Author User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
}

// TableName specifies the table name for GORM.
func (Follow) TableName() string {
	return "follows"
}
