package models

import "time"

// Editor is the reviewer profile attached 1:1 to a user with the editor
// role. Specialization decides which articles the editor may claim.
type Editor struct {
	ID             uint      `json:"id" gorm:"primarykey"`
	UserID         uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	User           User      `json:"user" gorm:"foreignKey:UserID"`
	Specialization EditType  `json:"specialization" gorm:"not null"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	CreatedAt      time.Time `json:"created_at"`
}
