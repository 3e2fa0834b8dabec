package repositories

import (
	"manuscript-review/models"

	"gorm.io/gorm"
)

type FeedbackRepository interface {
	Create(feedback *models.Feedback) error
	GetByAuthor(authorID uint) ([]models.Feedback, error)
	GetAll() ([]models.Feedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(feedback *models.Feedback) error {
	return r.db.Create(feedback).Error
}

func (r *feedbackRepository) GetByAuthor(authorID uint) ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	err := r.db.Preload("Article").
		Where("author_id = ?", authorID).
		Order("created_at").
		Find(&feedbacks).Error
	return feedbacks, err
}

func (r *feedbackRepository) GetAll() ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	err := r.db.Preload("Article").Preload("Author").
		Order("created_at").
		Find(&feedbacks).Error
	return feedbacks, err
}
