package models

// User represents a registered user of the marketplace.
type User struct {
	ID    int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name  string `json:"name" gorm:"type:varchar(255);not null"`
	Email string `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
}
