package repositories

import (
	"errors"

	"manuscript-review/models"

	"gorm.io/gorm"
)

// ArticleRepository is the article store. Methods taking a *gorm.DB run
// inside the caller's transaction; the lifecycle service is the only
// caller of the write primitives.
type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetByIDTx(tx *gorm.DB, id uint) (*models.Article, error)
	GetByAuthor(authorID uint) ([]models.Article, error)
	GetByStatus(status models.ArticleStatus) ([]models.Article, error)
	GetAll(params models.ArticleListParams) ([]models.Article, int64, error)
	GetAvailable(specialization models.EditType) ([]models.Article, error)
	GetAssigned(editorID uint) ([]models.Article, error)
	// UpdateWhereStatus applies updates only if the article is still in
	// the expected status, reporting how many rows matched. Zero rows
	// means another transaction got there first.
	UpdateWhereStatus(tx *gorm.DB, id uint, expected models.ArticleStatus, updates map[string]interface{}) (int64, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	return r.GetByIDTx(r.db, id)
}

func (r *articleRepository) GetByIDTx(tx *gorm.DB, id uint) (*models.Article, error) {
	var article models.Article
	err := tx.Preload("Author").
		Preload("Editor.User").
		Preload("ApprovedBy").
		First(&article, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFoundError{Resource: "article", ID: id}
		}
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) GetByAuthor(authorID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Editor.User").
		Where("author_id = ?", authorID).
		Order("created_at").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) GetByStatus(status models.ArticleStatus) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Author").
		Where("status = ?", status).
		Order("created_at").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) GetAll(params models.ArticleListParams) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	query := r.db.Model(&models.Article{}).Preload("Author").Preload("Editor.User")
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	query.Count(&total)

	offset := (params.Page - 1) * params.Limit
	err := query.Order("created_at").Offset(offset).Limit(params.Limit).Find(&articles).Error
	return articles, total, err
}

// GetAvailable returns the claimable pool for one specialization:
// submitted, approved, matching edit type. Claiming flips status to
// IN_REVIEW, which is what removes an article from this pool.
func (r *articleRepository) GetAvailable(specialization models.EditType) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Author").
		Where("status = ? AND is_approved = ? AND edit_type = ?",
			models.StatusSubmitted, true, specialization).
		Order("created_at").
		Find(&articles).Error
	return articles, err
}

// GetAssigned returns the editor's in-progress queue: articles they hold
// with an active ledger row.
func (r *articleRepository) GetAssigned(editorID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Author").
		Joins("JOIN assignments ON assignments.article_id = articles.id").
		Where("articles.editor_id = ? AND assignments.editor_id = ? AND assignments.is_active = ?",
			editorID, editorID, true).
		Order("articles.created_at").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) UpdateWhereStatus(tx *gorm.DB, id uint, expected models.ArticleStatus, updates map[string]interface{}) (int64, error) {
	res := tx.Model(&models.Article{}).
		Where("id = ? AND status = ?", id, expected).
		Updates(updates)
	return res.RowsAffected, res.Error
}
