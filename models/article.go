package models

import (
	"time"

	"gorm.io/gorm"
)

type ArticleStatus string

const (
	StatusPending   ArticleStatus = "PENDING"
	StatusSubmitted ArticleStatus = "SUBMITTED"
	StatusInReview  ArticleStatus = "IN_REVIEW"
	StatusCompleted ArticleStatus = "COMPLETED"
	StatusRejected  ArticleStatus = "REJECTED"
)

type EditType string

const (
	EditTypeGrammar       EditType = "GRAMMAR"
	EditTypeScientific    EditType = "SCIENTIFIC"
	EditTypeTechnical     EditType = "TECHNICAL"
	EditTypeComprehensive EditType = "COMPREHENSIVE"
)

func ValidEditType(t EditType) bool {
	switch t {
	case EditTypeGrammar, EditTypeScientific, EditTypeTechnical, EditTypeComprehensive:
		return true
	}
	return false
}

// Article is one manuscript moving through the review workflow.
// Status, EditorID, IsApproved, Approved* and EditedFile are written only
// by the lifecycle service; everything else treats them as read-only.
type Article struct {
	ID           uint           `json:"id" gorm:"primarykey"`
	Title        string         `json:"title" gorm:"not null"`
	AuthorID     uint           `json:"author_id" gorm:"not null"`
	Author       User           `json:"author" gorm:"foreignKey:AuthorID"`
	EditorID     *uint          `json:"editor_id"`
	Editor       *Editor        `json:"editor,omitempty" gorm:"foreignKey:EditorID"`
	OriginalFile string         `json:"original_file" gorm:"not null"`
	EditedFile   *string        `json:"edited_file"`
	EditType     EditType       `json:"edit_type" gorm:"not null"`
	Status       ArticleStatus  `json:"status" gorm:"default:'PENDING'"`
	Comments     string         `json:"comments"`
	IsApproved   bool           `json:"is_approved" gorm:"default:false"`
	ApprovedAt   *time.Time     `json:"approved_at"`
	ApprovedByID *uint          `json:"approved_by_id"`
	ApprovedBy   *User          `json:"approved_by,omitempty" gorm:"foreignKey:ApprovedByID"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}
