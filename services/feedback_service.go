package services

import (
	"manuscript-review/models"
	"manuscript-review/repositories"
)

type FeedbackService interface {
	CreateFeedback(req models.CreateFeedbackRequest, authorID uint) (*models.Feedback, error)
	GetFeedbacks(userID uint, role models.UserRole) ([]models.Feedback, error)
}

type feedbackService struct {
	feedbackRepo repositories.FeedbackRepository
	articleRepo  repositories.ArticleRepository
}

func NewFeedbackService(feedbackRepo repositories.FeedbackRepository, articleRepo repositories.ArticleRepository) FeedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		articleRepo:  articleRepo,
	}
}

func (s *feedbackService) CreateFeedback(req models.CreateFeedbackRequest, authorID uint) (*models.Feedback, error) {
	// The article must exist; the rating bounds are enforced by request
	// validation at the handler.
	if _, err := s.articleRepo.GetByID(req.ArticleID); err != nil {
		return nil, err
	}

	feedback := &models.Feedback{
		ArticleID: req.ArticleID,
		AuthorID:  authorID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := s.feedbackRepo.Create(feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

func (s *feedbackService) GetFeedbacks(userID uint, role models.UserRole) ([]models.Feedback, error) {
	if role == models.RoleAdmin {
		return s.feedbackRepo.GetAll()
	}
	return s.feedbackRepo.GetByAuthor(userID)
}
