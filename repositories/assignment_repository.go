package repositories

import (
	"errors"

	"manuscript-review/models"

	"gorm.io/gorm"
)

// AssignmentRepository is the assignment ledger: who holds what, since
// when. Rows are deactivated, never deleted.
type AssignmentRepository interface {
	Create(tx *gorm.DB, assignment *models.Assignment) error
	Deactivate(tx *gorm.DB, articleID, editorID uint) (int64, error)
	HasActive(articleID uint) (bool, error)
	GetActiveByEditor(editorID uint) ([]models.Assignment, error)
	GetByArticle(articleID uint) ([]models.Assignment, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

// Create inserts an active claim. The partial unique index on
// (article_id) WHERE is_active rejects a second active claim even when
// two transactions race; that violation surfaces as
// DuplicateAssignmentError.
func (r *assignmentRepository) Create(tx *gorm.DB, assignment *models.Assignment) error {
	if err := tx.Create(assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.DuplicateAssignmentError{ArticleID: assignment.ArticleID}
		}
		return err
	}
	return nil
}

func (r *assignmentRepository) Deactivate(tx *gorm.DB, articleID, editorID uint) (int64, error) {
	res := tx.Model(&models.Assignment{}).
		Where("article_id = ? AND editor_id = ? AND is_active = ?", articleID, editorID, true).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}

func (r *assignmentRepository) HasActive(articleID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Assignment{}).
		Where("article_id = ? AND is_active = ?", articleID, true).
		Count(&count).Error
	return count > 0, err
}

func (r *assignmentRepository) GetActiveByEditor(editorID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.Preload("Article").
		Where("editor_id = ? AND is_active = ?", editorID, true).
		Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepository) GetByArticle(articleID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.Where("article_id = ?", articleID).
		Order("assigned_at").
		Find(&assignments).Error
	return assignments, err
}
