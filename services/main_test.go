package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cppla/huxiang/config"
	"github.com/cppla/huxiang/models"
	"github.com/cppla/huxiang/utils"
)

func TestMain(m *testing.M) {
	utils.PasswordCost = bcrypt.MinCost
	os.Exit(m.Run())
}

// newTestDB opens a private in-memory SQLite database with every model migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.OpenDatabase(config.AppConfig{
		DBDriver:       "sqlite",
		DatabaseURI:    ":memory:",
		DBMaxOpenConns: 1,
		DBMaxIdleConns: 1,
	}, nil, models.All()...)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// newSharedTestDB opens a file-backed SQLite database served by several connections.
// Transactions begin IMMEDIATE and wait on the busy timeout, so concurrent writers interleave.
func newSharedTestDB(t *testing.T, conns int) *gorm.DB {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "shared.db") + "?_busy_timeout=10000&_txlock=immediate&_journal_mode=WAL"
	db, err := config.OpenDatabase(config.AppConfig{
		DBDriver:       "sqlite",
		DatabaseURI:    dsn,
		DBMaxOpenConns: conns,
		DBMaxIdleConns: conns,
	}, nil, models.All()...)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	u := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "not-a-real-hash",
		Role:         models.RoleUser,
		Active:       true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createPost(t *testing.T, db *gorm.DB, authorID uint, title, content, status string) *models.CommunityPost {
	t.Helper()
	p := &models.CommunityPost{
		Title:    title,
		Content:  content,
		AuthorID: authorID,
		Category: models.DefaultPostCategory,
		Status:   status,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

// createResource stores a published resource; offset moves created_at relative to now.
func createResource(t *testing.T, db *gorm.DB, title string, offset time.Duration) *models.CulturalResource {
	t.Helper()
	r := &models.CulturalResource{
		Title:       title,
		Description: "description of " + title,
		Content:     "content of " + title,
		Type:        "article",
		Category:    "history",
		Status:      models.StatusPublished,
		CreatedAt:   time.Now().Add(offset),
	}
	require.NoError(t, db.Create(r).Error)
	return r
}
