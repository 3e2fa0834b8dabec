package repositories

import (
	"time"

	"manuscript-review/models"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

// StatsRepository serves the statistics collector. Read-only: it never
// touches status, editor or assignment fields.
type StatsRepository interface {
	CountArticles() (int64, error)
	CountArticlesByStatus(status models.ArticleStatus) (int64, error)
	CountActiveEditors() (int64, error)
	CompletedTurnarounds() ([]Turnaround, error)
}

// Turnaround is the created→completed span of one finished article.
type Turnaround struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountArticles() (int64, error) {
	return r.count(sq.Select("COUNT(*)").From("articles").Where(sq.Eq{"deleted_at": nil}))
}

func (r *statsRepository) CountArticlesByStatus(status models.ArticleStatus) (int64, error) {
	return r.count(sq.Select("COUNT(*)").From("articles").
		Where(sq.Eq{"status": status, "deleted_at": nil}))
}

func (r *statsRepository) CountActiveEditors() (int64, error) {
	return r.count(sq.Select("COUNT(*)").From("editors").Where(sq.Eq{"is_active": true}))
}

// CompletedTurnarounds returns raw timestamps; the average is computed in
// the service so the SQL stays portable across postgres and sqlite.
func (r *statsRepository) CompletedTurnarounds() ([]Turnaround, error) {
	query, args, err := sq.Select("created_at", "updated_at").
		From("articles").
		Where(sq.Eq{"status": models.StatusCompleted, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var spans []Turnaround
	if err := r.db.Raw(query, args...).Scan(&spans).Error; err != nil {
		return nil, err
	}
	return spans, nil
}

func (r *statsRepository) count(builder sq.SelectBuilder) (int64, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	var n int64
	if err := r.db.Raw(query, args...).Scan(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
