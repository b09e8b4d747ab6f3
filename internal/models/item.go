package models

// Item represents a thing an owner has listed for sharing.
// The owner reference never changes after creation.
type Item struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	OwnerID     int64  `json:"ownerId" gorm:"index;not null"`
	Owner       User   `json:"-" gorm:"foreignKey:OwnerID"`
	Name        string `json:"name" gorm:"type:varchar(255)"`
	Description string `json:"description" gorm:"type:varchar(500)"`
	Available   bool   `json:"available"`
	// RequestID links the item to the request it answers, if any.
	RequestID *int64   `json:"requestId" gorm:"index"`
	Request   *Request `json:"-" gorm:"foreignKey:RequestID"`
}
