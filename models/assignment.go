package models

import "time"

// Assignment is one claim of an article by an editor. Rows are never
// deleted; Submit flips IsActive off so the ledger stays auditable.
// A partial unique index (see config.Migrate) guarantees at most one
// active assignment per article.
type Assignment struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	ArticleID  uint      `json:"article_id" gorm:"not null;uniqueIndex:idx_assignments_article_editor"`
	Article    *Article  `json:"article,omitempty" gorm:"foreignKey:ArticleID"`
	EditorID   uint      `json:"editor_id" gorm:"not null;uniqueIndex:idx_assignments_article_editor"`
	Editor     *Editor   `json:"editor,omitempty" gorm:"foreignKey:EditorID"`
	AssignedAt time.Time `json:"assigned_at"`
	IsActive   bool      `json:"is_active" gorm:"default:true"`
}
