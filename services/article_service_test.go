package services

import (
	"testing"

	"manuscript-review/models"
	"manuscript-review/repositories"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ArticleServiceSuite struct {
	suite.Suite
	db        *gorm.DB
	svc       ArticleService
	lifecycle LifecycleService

	admin  *models.User
	author *models.User
}

func TestArticleServiceSuite(t *testing.T) {
	suite.Run(t, new(ArticleServiceSuite))
}

func (s *ArticleServiceSuite) SetupTest() {
	s.db = newTestDB(s.T())
	articleRepo := repositories.NewArticleRepository(s.db)
	assignmentRepo := repositories.NewAssignmentRepository(s.db)
	s.svc = NewArticleService(articleRepo, assignmentRepo)
	s.lifecycle = NewLifecycleService(s.db, articleRepo, assignmentRepo, zap.NewNop())

	s.admin = seedUser(s.T(), s.db, "admin", models.RoleAdmin)
	s.author = seedUser(s.T(), s.db, "author", models.RoleAuthor)
}

func (s *ArticleServiceSuite) TestCreateArticleStartsPending() {
	article, err := s.svc.CreateArticle(models.CreateArticleRequest{
		Title:    "On the matter of matter",
		EditType: models.EditTypeScientific,
	}, s.author.ID, "articles/original/1_paper.pdf")
	s.Require().NoError(err)

	s.Equal(models.StatusPending, article.Status)
	s.Equal(s.author.ID, article.AuthorID)
	s.Nil(article.EditorID)
	s.False(article.IsApproved)
	s.Equal("articles/original/1_paper.pdf", article.OriginalFile)
}

func (s *ArticleServiceSuite) TestListAvailableFiltersPool() {
	editor := seedEditor(s.T(), s.db, "reviewer", models.EditTypeScientific)

	matching := seedArticle(s.T(), s.db, s.author.ID, models.EditTypeScientific, models.StatusPending)
	_, err := s.lifecycle.Approve(matching.ID, s.admin.ID)
	s.Require().NoError(err)

	// Wrong specialization, not approved, and already claimed articles
	// must all stay out of the pool.
	otherType := seedArticle(s.T(), s.db, s.author.ID, models.EditTypeGrammar, models.StatusPending)
	_, err = s.lifecycle.Approve(otherType.ID, s.admin.ID)
	s.Require().NoError(err)

	seedArticle(s.T(), s.db, s.author.ID, models.EditTypeScientific, models.StatusPending)

	claimed := seedArticle(s.T(), s.db, s.author.ID, models.EditTypeScientific, models.StatusPending)
	_, err = s.lifecycle.Approve(claimed.ID, s.admin.ID)
	s.Require().NoError(err)
	_, err = s.lifecycle.Claim(claimed.ID, editor)
	s.Require().NoError(err)

	available, err := s.svc.ListAvailable(editor)
	s.Require().NoError(err)
	s.Require().Len(available, 1)
	s.Equal(matching.ID, available[0].ID)
}

func (s *ArticleServiceSuite) TestListAssigned() {
	editor := seedEditor(s.T(), s.db, "reviewer", models.EditTypeTechnical)

	inProgress := seedArticle(s.T(), s.db, s.author.ID, models.EditTypeTechnical, models.StatusPending)
	_, err := s.lifecycle.Approve(inProgress.ID, s.admin.ID)
	s.Require().NoError(err)
	_, err = s.lifecycle.Claim(inProgress.ID, editor)
	s.Require().NoError(err)

	done := seedArticle(s.T(), s.db, s.author.ID, models.EditTypeTechnical, models.StatusPending)
	_, err = s.lifecycle.Approve(done.ID, s.admin.ID)
	s.Require().NoError(err)
	_, err = s.lifecycle.Claim(done.ID, editor)
	s.Require().NoError(err)
	_, err = s.lifecycle.Submit(done.ID, editor, "articles/edited/2_paper.pdf", "done")
	s.Require().NoError(err)

	assigned, err := s.svc.ListAssigned(editor)
	s.Require().NoError(err)
	s.Require().Len(assigned, 1)
	s.Equal(inProgress.ID, assigned[0].ID)
}

func (s *ArticleServiceSuite) TestDownloadGating() {
	editor := seedEditor(s.T(), s.db, "reviewer", models.EditTypeGrammar)
	stranger := seedUser(s.T(), s.db, "stranger", models.RoleAuthor)

	article := seedArticle(s.T(), s.db, s.author.ID, models.EditTypeGrammar, models.StatusPending)
	_, err := s.lifecycle.Approve(article.ID, s.admin.ID)
	s.Require().NoError(err)
	_, err = s.lifecycle.Claim(article.ID, editor)
	s.Require().NoError(err)

	// Not completed yet: even the author is refused with a state fault.
	_, err = s.svc.Download(article.ID, s.author.ID, nil)
	s.ErrorAs(err, &models.InvalidStateError{})

	_, err = s.lifecycle.Submit(article.ID, editor, "articles/edited/3_paper.pdf", "")
	s.Require().NoError(err)

	got, err := s.svc.Download(article.ID, s.author.ID, nil)
	s.Require().NoError(err)
	s.Require().NotNil(got.EditedFile)
	s.Equal("articles/edited/3_paper.pdf", *got.EditedFile)

	_, err = s.svc.Download(article.ID, editor.UserID, editor)
	s.NoError(err)

	_, err = s.svc.Download(article.ID, stranger.ID, nil)
	s.ErrorAs(err, &models.AuthorizationError{})
}

// Page and limit apply to every role scope, and total always counts the
// full scoped set, not the returned page.
func (s *ArticleServiceSuite) TestGetArticlesPaginatesEveryScope() {
	editor := seedEditor(s.T(), s.db, "reviewer", models.EditTypeScientific)

	for i := 0; i < 3; i++ {
		article := seedArticle(s.T(), s.db, s.author.ID, models.EditTypeScientific, models.StatusPending)
		_, err := s.lifecycle.Approve(article.ID, s.admin.ID)
		s.Require().NoError(err)
	}

	firstPage := models.ArticleListParams{Page: 1, Limit: 2}
	secondPage := models.ArticleListParams{Page: 2, Limit: 2}

	own, total, err := s.svc.GetArticles(firstPage, s.author.ID, models.RoleAuthor, nil)
	s.Require().NoError(err)
	s.Len(own, 2)
	s.EqualValues(3, total)

	own, total, err = s.svc.GetArticles(secondPage, s.author.ID, models.RoleAuthor, nil)
	s.Require().NoError(err)
	s.Len(own, 1)
	s.EqualValues(3, total)

	visible, total, err := s.svc.GetArticles(firstPage, editor.UserID, models.RoleEditor, editor)
	s.Require().NoError(err)
	s.Len(visible, 2)
	s.EqualValues(3, total)

	beyond := models.ArticleListParams{Page: 5, Limit: 2}
	visible, total, err = s.svc.GetArticles(beyond, editor.UserID, models.RoleEditor, editor)
	s.Require().NoError(err)
	s.Empty(visible)
	s.EqualValues(3, total)
}

func (s *ArticleServiceSuite) TestGetArticlesScopedByRole() {
	editor := seedEditor(s.T(), s.db, "reviewer", models.EditTypeScientific)

	seedArticle(s.T(), s.db, s.author.ID, models.EditTypeScientific, models.StatusPending)
	pool := seedArticle(s.T(), s.db, s.author.ID, models.EditTypeScientific, models.StatusPending)
	_, err := s.lifecycle.Approve(pool.ID, s.admin.ID)
	s.Require().NoError(err)

	params := models.ArticleListParams{Page: 1, Limit: 10}

	all, total, err := s.svc.GetArticles(params, s.admin.ID, models.RoleAdmin, nil)
	s.Require().NoError(err)
	s.Len(all, 2)
	s.EqualValues(2, total)

	own, _, err := s.svc.GetArticles(params, s.author.ID, models.RoleAuthor, nil)
	s.Require().NoError(err)
	s.Len(own, 2)

	visible, _, err := s.svc.GetArticles(params, editor.UserID, models.RoleEditor, editor)
	s.Require().NoError(err)
	s.Require().Len(visible, 1)
	s.Equal(pool.ID, visible[0].ID)
}
