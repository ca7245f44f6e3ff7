package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/shelftalk/shelftalk/internal/model"
)

// CommentRow is a comment joined with its author's username.
type CommentRow struct {
	ID        string    `gorm:"column:id"`
	UserID    string    `gorm:"column:user_id"`
	Username  string    `gorm:"column:username"`
	ThreadID  string    `gorm:"column:thread_id"`
	Content   string    `gorm:"column:content"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

type CommentRepository interface {
	Create(ctx context.Context, c *model.Comment) error
	GetByID(ctx context.Context, id string) (*model.Comment, error)
	ListByThread(ctx context.Context, threadID string) ([]*CommentRow, error)
	Delete(ctx context.Context, id string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository { return &commentRepository{db: db} }

func (r *commentRepository) Create(ctx context.Context, c *model.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*model.Comment, error) {
	var c model.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *commentRepository) ListByThread(ctx context.Context, threadID string) ([]*CommentRow, error) {
	var rows []*CommentRow
	err := r.db.WithContext(ctx).
		Table("comments").
		Select("comments.id, comments.user_id, users.username, comments.thread_id, comments.content, comments.created_at, comments.updated_at").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.thread_id = ?", threadID).
		Order("comments.created_at ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *commentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Comment{}).Error
}
