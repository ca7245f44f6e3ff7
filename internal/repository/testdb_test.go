package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shelftalk/shelftalk/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection so every statement sees the same in-memory database
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Follow{},
		&model.Book{},
		&model.Thread{},
		&model.Comment{},
		&model.ThreadLike{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id, username string) *model.User {
	t.Helper()
	u := &model.User{ID: id, Username: username, Password: "x"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedBook(t *testing.T, db *gorm.DB, isbn13, title string) *model.Book {
	t.Helper()
	b := &model.Book{ISBN13: isbn13, Title: title}
	require.NoError(t, db.Create(b).Error)
	return b
}
