package services

import (
	"manuscript-review/models"
	"manuscript-review/repositories"
)

// StatsService assembles the admin statistics snapshot. It only counts
// rows; all workflow writes stay with LifecycleService.
type StatsService interface {
	GetStatistics() (*models.Statistics, error)
}

type statsService struct {
	statsRepo repositories.StatsRepository
}

func NewStatsService(statsRepo repositories.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) GetStatistics() (*models.Statistics, error) {
	total, err := s.statsRepo.CountArticles()
	if err != nil {
		return nil, err
	}

	pending, err := s.statsRepo.CountArticlesByStatus(models.StatusPending)
	if err != nil {
		return nil, err
	}

	completed, err := s.statsRepo.CountArticlesByStatus(models.StatusCompleted)
	if err != nil {
		return nil, err
	}

	editors, err := s.statsRepo.CountActiveEditors()
	if err != nil {
		return nil, err
	}

	spans, err := s.statsRepo.CompletedTurnarounds()
	if err != nil {
		return nil, err
	}

	var avgHours float64
	if len(spans) > 0 {
		var totalHours float64
		for _, span := range spans {
			totalHours += span.UpdatedAt.Sub(span.CreatedAt).Hours()
		}
		avgHours = totalHours / float64(len(spans))
	}

	return &models.Statistics{
		TotalArticles:          total,
		PendingArticles:        pending,
		CompletedArticles:      completed,
		ActiveEditors:          editors,
		AverageProcessingHours: avgHours,
	}, nil
}
