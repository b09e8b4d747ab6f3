package models

import "time"

// Comment is feedback left by a user who finished an approved booking of the
// item. Immutable after creation.
type Comment struct {
	ID       int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ItemID   int64     `json:"itemId" gorm:"index;not null"`
	Item     Item      `json:"-" gorm:"foreignKey:ItemID"`
	AuthorID int64     `json:"authorId" gorm:"index;not null"`
	Author   User      `json:"-" gorm:"foreignKey:AuthorID"`
	Text     string    `json:"text" gorm:"type:varchar(500);not null"`
	Created  time.Time `json:"created"`
}
