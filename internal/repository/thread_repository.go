package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/shelftalk/shelftalk/internal/model"
)

// ThreadListRow is the list projection: author username, book title and the
// derived counts come back in the same query. Counts are computed from the
// join tables at read time, never stored.
type ThreadListRow struct {
	ID           string    `gorm:"column:id"`
	UserID       string    `gorm:"column:user_id"`
	Username     string    `gorm:"column:username"`
	BookISBN13   string    `gorm:"column:book_isbn13"`
	BookTitle    string    `gorm:"column:book_title"`
	Title        string    `gorm:"column:title"`
	Rating       int       `gorm:"column:rating"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	LikeCount    int64     `gorm:"column:like_count"`
	CommentCount int64     `gorm:"column:comment_count"`
}

type ThreadRepository interface {
	Create(ctx context.Context, t *model.Thread) error
	GetByID(ctx context.Context, id string) (*model.Thread, error)
	// List returns all threads newest first.
	List(ctx context.Context) ([]*ThreadListRow, error)
	Update(ctx context.Context, t *model.Thread) error
	// Delete removes the thread, its comments and its like rows in one
	// transaction so no orphans survive.
	Delete(ctx context.Context, id string) error
}

type threadRepository struct {
	db *gorm.DB
}

func NewThreadRepository(db *gorm.DB) ThreadRepository { return &threadRepository{db: db} }

func (r *threadRepository) Create(ctx context.Context, t *model.Thread) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *threadRepository) GetByID(ctx context.Context, id string) (*model.Thread, error) {
	var t model.Thread
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *threadRepository) List(ctx context.Context) ([]*ThreadListRow, error) {
	var rows []*ThreadListRow
	err := r.db.WithContext(ctx).
		Table("threads").
		Select(`threads.id, threads.user_id, users.username, threads.book_isbn13,
			books.title AS book_title, threads.title, threads.rating, threads.created_at,
			(SELECT COUNT(*) FROM thread_likes WHERE thread_likes.thread_id = threads.id) AS like_count,
			(SELECT COUNT(*) FROM comments WHERE comments.thread_id = threads.id) AS comment_count`).
		Joins("JOIN users ON users.id = threads.user_id").
		Joins("JOIN books ON books.isbn13 = threads.book_isbn13").
		Order("threads.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *threadRepository) Update(ctx context.Context, t *model.Thread) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *threadRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("thread_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("thread_id = ?", id).Delete(&model.ThreadLike{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Thread{}).Error
	})
}
