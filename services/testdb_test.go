package services

import (
	"testing"

	"manuscript-review/config"
	"manuscript-review/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens an isolated in-memory database. The pool is capped at
// one connection so the in-memory database survives and concurrent
// transactions serialize deterministically; the exactly-one-winner
// guarantee under test still comes from the conditional update and the
// ledger's unique index, not from the pool size.
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

func seedUser(t *testing.T, db *gorm.DB, username string, role models.UserRole) *models.User {
	t.Helper()

	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedEditor(t *testing.T, db *gorm.DB, username string, specialization models.EditType) *models.Editor {
	t.Helper()

	user := seedUser(t, db, username, models.RoleEditor)
	editor := &models.Editor{
		UserID:         user.ID,
		Specialization: specialization,
		IsActive:       true,
	}
	require.NoError(t, db.Create(editor).Error)
	editor.User = *user
	return editor
}

func seedArticle(t *testing.T, db *gorm.DB, authorID uint, editType models.EditType, status models.ArticleStatus) *models.Article {
	t.Helper()

	article := &models.Article{
		Title:        "A study of things",
		AuthorID:     authorID,
		EditType:     editType,
		OriginalFile: "articles/original/1_manuscript.pdf",
		Status:       status,
	}
	require.NoError(t, db.Create(article).Error)
	return article
}
