package services

import (
	"testing"

	"manuscript-review/models"
	"manuscript-review/repositories"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type StatsServiceSuite struct {
	suite.Suite
	db        *gorm.DB
	svc       StatsService
	lifecycle LifecycleService

	admin  *models.User
	author *models.User
}

func TestStatsServiceSuite(t *testing.T) {
	suite.Run(t, new(StatsServiceSuite))
}

func (s *StatsServiceSuite) SetupTest() {
	s.db = newTestDB(s.T())
	articleRepo := repositories.NewArticleRepository(s.db)
	assignmentRepo := repositories.NewAssignmentRepository(s.db)
	s.svc = NewStatsService(repositories.NewStatsRepository(s.db))
	s.lifecycle = NewLifecycleService(s.db, articleRepo, assignmentRepo, zap.NewNop())

	s.admin = seedUser(s.T(), s.db, "admin", models.RoleAdmin)
	s.author = seedUser(s.T(), s.db, "author", models.RoleAuthor)
}

func (s *StatsServiceSuite) TestEmptySnapshot() {
	stats, err := s.svc.GetStatistics()
	s.Require().NoError(err)

	s.EqualValues(0, stats.TotalArticles)
	s.EqualValues(0, stats.PendingArticles)
	s.EqualValues(0, stats.CompletedArticles)
	s.EqualValues(0, stats.ActiveEditors)
	s.Zero(stats.AverageProcessingHours)
}

func (s *StatsServiceSuite) TestCountsReflectWorkflow() {
	editor := seedEditor(s.T(), s.db, "reviewer", models.EditTypeScientific)
	seedEditor(s.T(), s.db, "idle", models.EditTypeGrammar)

	seedArticle(s.T(), s.db, s.author.ID, models.EditTypeScientific, models.StatusPending)

	done := seedArticle(s.T(), s.db, s.author.ID, models.EditTypeScientific, models.StatusPending)
	_, err := s.lifecycle.Approve(done.ID, s.admin.ID)
	s.Require().NoError(err)
	_, err = s.lifecycle.Claim(done.ID, editor)
	s.Require().NoError(err)
	_, err = s.lifecycle.Submit(done.ID, editor, "articles/edited/1_paper.pdf", "")
	s.Require().NoError(err)

	stats, err := s.svc.GetStatistics()
	s.Require().NoError(err)

	s.EqualValues(2, stats.TotalArticles)
	s.EqualValues(1, stats.PendingArticles)
	s.EqualValues(1, stats.CompletedArticles)
	s.EqualValues(2, stats.ActiveEditors)
	s.GreaterOrEqual(stats.AverageProcessingHours, 0.0)
}
