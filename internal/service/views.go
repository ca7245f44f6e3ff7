package service

import (
	"time"

	"github.com/shelftalk/shelftalk/internal/model"
)

// UserRef is the minimal author projection: never the password, never a
// recursive expansion.
type UserRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type Profile struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Followings []UserRef `json:"followings"`
	Followers  []UserRef `json:"followers"`
}

type ThreadSummary struct {
	ID           string    `json:"id"`
	User         UserRef   `json:"user"`
	BookISBN13   string    `json:"book_isbn13"`
	BookTitle    string    `json:"book_title"`
	Title        string    `json:"title"`
	Rating       int       `json:"rating"`
	CreatedAt    time.Time `json:"created_at"`
	LikeCount    int64     `json:"like_count"`
	CommentCount int64     `json:"comment_count"`
}

type ThreadDetail struct {
	ID        string        `json:"id"`
	User      UserRef       `json:"user"`
	Book      model.Book    `json:"book"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	Rating    int           `json:"rating"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	LikeCount int64         `json:"like_count"`
	Comments  []CommentView `json:"comments"`
}

type CommentView struct {
	ID        string    `json:"id"`
	User      UserRef   `json:"user"`
	ThreadID  string    `json:"thread_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LikeResult struct {
	Liked bool  `json:"liked"`
	Count int64 `json:"count"`
}

type FollowResult struct {
	Followed bool `json:"followed"`
}

func userRefs(users []*model.User) []UserRef {
	res := make([]UserRef, len(users))
	for i, u := range users {
		res[i] = UserRef{ID: u.ID, Username: u.Username}
	}
	return res
}
