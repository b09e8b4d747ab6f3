package models

import "time"

// Request is an "I wish somebody shared an X" post. Read-only after creation;
// answers are computed at read time from items referencing it.
type Request struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	RequestorID int64     `json:"requestorId" gorm:"index;not null"`
	Requestor   User      `json:"-" gorm:"foreignKey:RequestorID"`
	Description string    `json:"description" gorm:"type:varchar(500)"`
	Created     time.Time `json:"created"`
}
