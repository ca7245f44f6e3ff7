package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shelftalk/shelftalk/internal/model"
	"github.com/shelftalk/shelftalk/internal/repository"
)

type testEnv struct {
	db        *gorm.DB
	accounts  AccountService
	books     BookService
	community CommunityService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Follow{}, &model.Book{},
		&model.Thread{}, &model.Comment{}, &model.ThreadLike{},
	))

	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	bookRepo := repository.NewBookRepository(db)
	threadRepo := repository.NewThreadRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	return &testEnv{
		db:        db,
		accounts:  NewAccountService(userRepo, followRepo),
		books:     NewBookService(bookRepo),
		community: NewCommunityService(threadRepo, commentRepo, likeRepo, userRepo, bookRepo),
	}
}

func (e *testEnv) signup(t *testing.T, username string) *model.User {
	t.Helper()
	u, err := e.accounts.Signup(context.Background(), username, "secret")
	require.NoError(t, err)
	return u
}

func (e *testEnv) addBook(t *testing.T, isbn13, title string) {
	t.Helper()
	_, err := e.books.Upsert(context.Background(), &model.Book{ISBN13: isbn13, Title: title})
	require.NoError(t, err)
}
