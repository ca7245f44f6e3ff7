package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shelftalk/shelftalk/config"
	"github.com/shelftalk/shelftalk/internal/api/handler"
	"github.com/shelftalk/shelftalk/internal/auth"
	"github.com/shelftalk/shelftalk/internal/model"
	"github.com/shelftalk/shelftalk/internal/repository"
	"github.com/shelftalk/shelftalk/internal/service"
)

type testServer struct {
	router *gin.Engine
	books  service.BookService
}

func newTestServer(t *testing.T) *testServer {
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

	accounts := service.NewAccountService(userRepo, followRepo)
	books := service.NewBookService(bookRepo)
	community := service.NewCommunityService(threadRepo, commentRepo, likeRepo, userRepo, bookRepo)
	tokens := auth.NewManager("test-secret", 0, auth.NewMemoryDenylist())

	cfg := &config.Config{}
	cfg.Server.Mode = gin.TestMode

	h := handler.New(accounts, books, community, tokens)
	return &testServer{router: NewRouter(cfg, h, tokens), books: books}
}

func (s *testServer) addBook(t *testing.T, isbn13, title string) {
	t.Helper()
	_, err := s.books.Upsert(context.Background(), &model.Book{ISBN13: isbn13, Title: title})
	require.NoError(t, err)
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// data unwraps the response envelope.
func data(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var env struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.Data
}

func (s *testServer) signupAndLogin(t *testing.T, username string) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/v1/accounts/signup", "", gin.H{"username": username, "password": "secret"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = s.do(t, http.MethodPost, "/api/v1/accounts/login", "", gin.H{"username": username, "password": "secret"})
	require.Equal(t, http.StatusOK, w.Code)
	token, _ := data(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestSignup_Statuses(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/accounts/signup", "", gin.H{"username": "alice", "password": "pw"})
	require.Equal(t, http.StatusCreated, w.Code)
	body := data(t, w)
	require.Equal(t, "alice", body["username"])
	require.NotEmpty(t, body["id"])
	_, leaked := body["password"]
	require.False(t, leaked)

	// duplicate username
	w = s.do(t, http.MethodPost, "/api/v1/accounts/signup", "", gin.H{"username": "alice", "password": "pw"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// empty password fails binding
	w = s.do(t, http.MethodPost, "/api/v1/accounts/signup", "", gin.H{"username": "bob", "password": ""})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthRequired(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/accounts/profile/alice", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/community/threads", "", gin.H{
		"book_isbn13": "9780000000001", "title": "t", "content": "c", "rating": 3,
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/accounts/profile/alice", "garbage-token", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout_RevokesToken(t *testing.T) {
	s := newTestServer(t)
	token := s.signupAndLogin(t, "alice")

	w := s.do(t, http.MethodGet, "/api/v1/accounts/profile/alice", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/accounts/logout", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/accounts/profile/alice", token, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestThreadValidation(t *testing.T) {
	s := newTestServer(t)
	s.addBook(t, "9780000000001", "Dune")
	token := s.signupAndLogin(t, "alice")

	// rating out of range
	w := s.do(t, http.MethodPost, "/api/v1/community/threads", token, gin.H{
		"book_isbn13": "9780000000001", "title": "t", "content": "c", "rating": 9,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// malformed isbn
	w = s.do(t, http.MethodPost, "/api/v1/community/threads", token, gin.H{
		"book_isbn13": "not-an-isbn", "title": "t", "content": "c", "rating": 3,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// well-formed but unknown isbn
	w = s.do(t, http.MethodPost, "/api/v1/community/threads", token, gin.H{
		"book_isbn13": "9780000000404", "title": "t", "content": "c", "rating": 3,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestBooks_PublicReads(t *testing.T) {
	s := newTestServer(t)
	s.addBook(t, "9780000000001", "Dune")

	w := s.do(t, http.MethodGet, "/api/v1/books", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/books/9780000000001", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Dune", data(t, w)["title"])

	w = s.do(t, http.MethodGet, "/api/v1/books/9780000000404", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

// Mirrors the full community walkthrough: review, like, comment, delete.
func TestCommunityScenario(t *testing.T) {
	s := newTestServer(t)
	s.addBook(t, "9780000000001", "Dune")
	token1 := s.signupAndLogin(t, "user1")
	token2 := s.signupAndLogin(t, "user2")

	w := s.do(t, http.MethodPost, "/api/v1/community/threads", token1, gin.H{
		"book_isbn13": "9780000000001", "title": "A classic", "content": "Loved it", "rating": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	threadID, _ := data(t, w)["id"].(string)
	require.NotEmpty(t, threadID)

	// user2 fetches it
	w = s.do(t, http.MethodGet, "/api/v1/community/threads/"+threadID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "A classic", data(t, w)["title"])

	// user2 likes it
	w = s.do(t, http.MethodPost, fmt.Sprintf("/api/v1/community/threads/%s/likes", threadID), token2, nil)
	require.Equal(t, http.StatusOK, w.Code)
	like := data(t, w)
	require.Equal(t, true, like["liked"])
	require.EqualValues(t, 1, like["count"])

	// user2 comments
	w = s.do(t, http.MethodPost, fmt.Sprintf("/api/v1/community/threads/%s/comments", threadID), token2, gin.H{"content": "Nice review!"})
	require.Equal(t, http.StatusCreated, w.Code)

	// detail now lists exactly one comment
	w = s.do(t, http.MethodGet, "/api/v1/community/threads/"+threadID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := data(t, w)
	comments, ok := detail["comments"].([]any)
	require.True(t, ok)
	require.Len(t, comments, 1)

	// user2 cannot delete user1's thread
	w = s.do(t, http.MethodDelete, "/api/v1/community/threads/"+threadID, token2, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	// user1 deletes it
	w = s.do(t, http.MethodDelete, "/api/v1/community/threads/"+threadID, token1, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/community/threads/"+threadID, "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

// Mirrors the follow walkthrough: follow, profile listing, unfollow.
func TestFollowScenario(t *testing.T) {
	s := newTestServer(t)
	token1 := s.signupAndLogin(t, "user1")
	token2 := s.signupAndLogin(t, "user2")

	w := s.do(t, http.MethodGet, "/api/v1/accounts/profile/user2", token2, nil)
	require.Equal(t, http.StatusOK, w.Code)
	user2ID, _ := data(t, w)["id"].(string)
	require.NotEmpty(t, user2ID)

	w = s.do(t, http.MethodPost, "/api/v1/accounts/follow/"+user2ID, token1, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, data(t, w)["followed"])

	w = s.do(t, http.MethodGet, "/api/v1/accounts/profile/user2", token1, nil)
	require.Equal(t, http.StatusOK, w.Code)
	followers, ok := data(t, w)["followers"].([]any)
	require.True(t, ok)
	require.Len(t, followers, 1)
	first, ok := followers[0].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "user1", first["username"])

	// self-follow rejected
	w = s.do(t, http.MethodPost, "/api/v1/accounts/follow/"+user2ID, token2, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// toggle back
	w = s.do(t, http.MethodPost, "/api/v1/accounts/follow/"+user2ID, token1, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, false, data(t, w)["followed"])

	w = s.do(t, http.MethodGet, "/api/v1/accounts/profile/user2", token1, nil)
	require.Equal(t, http.StatusOK, w.Code)
	followers, _ = data(t, w)["followers"].([]any)
	require.Empty(t, followers)
}

func TestDeleteAccount(t *testing.T) {
	s := newTestServer(t)
	s.addBook(t, "9780000000001", "Dune")
	token1 := s.signupAndLogin(t, "user1")
	token2 := s.signupAndLogin(t, "user2")

	w := s.do(t, http.MethodPost, "/api/v1/community/threads", token1, gin.H{
		"book_isbn13": "9780000000001", "title": "t", "content": "c", "rating": 3,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	threadID, _ := data(t, w)["id"].(string)

	w = s.do(t, http.MethodDelete, "/api/v1/accounts/me", token1, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// authored thread went with the account
	w = s.do(t, http.MethodGet, "/api/v1/community/threads/"+threadID, "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/accounts/profile/user1", token2, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
