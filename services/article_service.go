package services

import (
	"manuscript-review/models"
	"manuscript-review/repositories"
)

// ArticleService covers authoring and the read side of the workflow:
// creation into PENDING, the availability and assigned queues, role-scoped
// listing and download gating. It never writes status or assignment
// fields; those belong to LifecycleService.
type ArticleService interface {
	CreateArticle(req models.CreateArticleRequest, authorID uint, originalFileKey string) (*models.Article, error)
	GetArticle(id uint) (*models.Article, error)
	GetArticles(params models.ArticleListParams, userID uint, role models.UserRole, editor *models.Editor) ([]models.Article, int64, error)
	GetMyArticles(authorID uint) ([]models.Article, error)
	GetPending() ([]models.Article, error)
	ListAvailable(editor *models.Editor) ([]models.Article, error)
	ListAssigned(editor *models.Editor) ([]models.Article, error)
	Download(articleID, userID uint, editor *models.Editor) (*models.Article, error)
}

type articleService struct {
	articleRepo    repositories.ArticleRepository
	assignmentRepo repositories.AssignmentRepository
}

func NewArticleService(articleRepo repositories.ArticleRepository, assignmentRepo repositories.AssignmentRepository) ArticleService {
	return &articleService{
		articleRepo:    articleRepo,
		assignmentRepo: assignmentRepo,
	}
}

func (s *articleService) CreateArticle(req models.CreateArticleRequest, authorID uint, originalFileKey string) (*models.Article, error) {
	article := &models.Article{
		Title:        req.Title,
		AuthorID:     authorID,
		EditType:     req.EditType,
		OriginalFile: originalFileKey,
		Status:       models.StatusPending,
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(article.ID)
}

func (s *articleService) GetArticle(id uint) (*models.Article, error) {
	return s.articleRepo.GetByID(id)
}

// GetArticles scopes the listing by role: admins see everything, editors
// see their own plus the claimable pool, authors see their own. Every
// branch honors page/limit; total counts the scoped set before the page
// is cut.
func (s *articleService) GetArticles(params models.ArticleListParams, userID uint, role models.UserRole, editor *models.Editor) ([]models.Article, int64, error) {
	if role == models.RoleAdmin {
		return s.articleRepo.GetAll(params)
	}

	if editor != nil {
		assigned, err := s.articleRepo.GetAssigned(editor.ID)
		if err != nil {
			return nil, 0, err
		}
		available, err := s.articleRepo.GetAvailable(editor.Specialization)
		if err != nil {
			return nil, 0, err
		}
		articles := append(assigned, available...)
		return paginate(articles, params.Page, params.Limit), int64(len(articles)), nil
	}

	articles, err := s.articleRepo.GetByAuthor(userID)
	if err != nil {
		return nil, 0, err
	}
	return paginate(articles, params.Page, params.Limit), int64(len(articles)), nil
}

// paginate cuts one page out of an already-scoped listing. The editor
// scope merges two queries, so the page is taken after the merge.
func paginate(articles []models.Article, page, limit int) []models.Article {
	if page < 1 || limit < 1 {
		return articles
	}
	start := (page - 1) * limit
	if start >= len(articles) {
		return []models.Article{}
	}
	end := start + limit
	if end > len(articles) {
		end = len(articles)
	}
	return articles[start:end]
}

func (s *articleService) GetMyArticles(authorID uint) ([]models.Article, error) {
	return s.articleRepo.GetByAuthor(authorID)
}

func (s *articleService) GetPending() ([]models.Article, error) {
	return s.articleRepo.GetByStatus(models.StatusPending)
}

// ListAvailable is the claimable pool for this editor's specialization.
// Articles held by anyone are already gone from it: claiming moves them
// to IN_REVIEW. Claim re-checks every precondition in its transaction,
// so a stale listing costs the caller an error, never a double claim.
func (s *articleService) ListAvailable(editor *models.Editor) ([]models.Article, error) {
	return s.articleRepo.GetAvailable(editor.Specialization)
}

func (s *articleService) ListAssigned(editor *models.Editor) ([]models.Article, error) {
	return s.articleRepo.GetAssigned(editor.ID)
}

// Download gates access to the edited manuscript: only the author or the
// currently assigned editor, and only once the review is COMPLETED.
func (s *articleService) Download(articleID, userID uint, editor *models.Editor) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		return nil, err
	}

	isAuthor := article.AuthorID == userID
	isAssignedEditor := editor != nil && article.EditorID != nil && *article.EditorID == editor.ID
	if !isAuthor && !isAssignedEditor {
		return nil, models.AuthorizationError{Reason: "not the author or assigned editor of this article"}
	}

	if article.Status != models.StatusCompleted {
		return nil, models.InvalidStateError{Op: "download", Current: article.Status}
	}

	return article, nil
}
