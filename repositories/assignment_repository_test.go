package repositories

import (
	"testing"
	"time"

	"manuscript-review/config"
	"manuscript-review/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

func seedWorkflowRows(t *testing.T, db *gorm.DB) (*models.Article, []*models.Editor) {
	t.Helper()

	author := &models.User{Username: "author", Email: "author@example.com", Password: "x", Role: models.RoleAuthor}
	require.NoError(t, db.Create(author).Error)

	article := &models.Article{
		Title:        "Paper",
		AuthorID:     author.ID,
		EditType:     models.EditTypeScientific,
		OriginalFile: "articles/original/1_paper.pdf",
		Status:       models.StatusSubmitted,
	}
	require.NoError(t, db.Create(article).Error)

	editors := make([]*models.Editor, 0, 2)
	for _, name := range []string{"first", "second"} {
		user := &models.User{Username: name, Email: name + "@example.com", Password: "x", Role: models.RoleEditor}
		require.NoError(t, db.Create(user).Error)
		editor := &models.Editor{UserID: user.ID, Specialization: models.EditTypeScientific, IsActive: true}
		require.NoError(t, db.Create(editor).Error)
		editors = append(editors, editor)
	}
	return article, editors
}

func TestOneActiveAssignmentPerArticle(t *testing.T) {
	db := newTestDB(t)
	repo := NewAssignmentRepository(db)
	article, editors := seedWorkflowRows(t, db)

	err := repo.Create(db, &models.Assignment{
		ArticleID:  article.ID,
		EditorID:   editors[0].ID,
		AssignedAt: time.Now(),
		IsActive:   true,
	})
	require.NoError(t, err)

	// A second active claim, even by a different editor, hits the partial
	// unique index.
	err = repo.Create(db, &models.Assignment{
		ArticleID:  article.ID,
		EditorID:   editors[1].ID,
		AssignedAt: time.Now(),
		IsActive:   true,
	})
	require.ErrorAs(t, err, &models.DuplicateAssignmentError{})

	active, err := repo.HasActive(article.ID)
	require.NoError(t, err)
	require.True(t, active)
}

func TestDeactivatePreservesHistory(t *testing.T) {
	db := newTestDB(t)
	repo := NewAssignmentRepository(db)
	article, editors := seedWorkflowRows(t, db)

	require.NoError(t, repo.Create(db, &models.Assignment{
		ArticleID:  article.ID,
		EditorID:   editors[0].ID,
		AssignedAt: time.Now(),
		IsActive:   true,
	}))

	rows, err := repo.Deactivate(db, article.ID, editors[0].ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, rows)

	// Deactivating again matches nothing; the row itself stays for audit.
	rows, err = repo.Deactivate(db, article.ID, editors[0].ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, rows)

	history, err := repo.GetByArticle(article.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.False(t, history[0].IsActive)

	active, err := repo.HasActive(article.ID)
	require.NoError(t, err)
	require.False(t, active)
}

func TestInactiveRowAllowsNewClaimByOtherEditor(t *testing.T) {
	db := newTestDB(t)
	repo := NewAssignmentRepository(db)
	article, editors := seedWorkflowRows(t, db)

	require.NoError(t, repo.Create(db, &models.Assignment{
		ArticleID:  article.ID,
		EditorID:   editors[0].ID,
		AssignedAt: time.Now(),
		IsActive:   true,
	}))

	_, err := repo.Deactivate(db, article.ID, editors[0].ID)
	require.NoError(t, err)

	require.NoError(t, repo.Create(db, &models.Assignment{
		ArticleID:  article.ID,
		EditorID:   editors[1].ID,
		AssignedAt: time.Now(),
		IsActive:   true,
	}))

	assignments, err := repo.GetActiveByEditor(editors[1].ID)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	require.Equal(t, article.ID, assignments[0].ArticleID)
}
