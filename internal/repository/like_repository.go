package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shelftalk/shelftalk/internal/model"
)

type LikeRepository interface {
	// Toggle flips the actor's membership in the thread's like-set and
	// returns the post-toggle state and set size. The whole read-modify-write
	// runs in one transaction with the pair index as backstop.
	Toggle(ctx context.Context, threadID, userID string) (bool, int64, error)
	Count(ctx context.Context, threadID string) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository { return &likeRepository{db: db} }

func (r *likeRepository) Toggle(ctx context.Context, threadID, userID string) (bool, int64, error) {
	var (
		liked bool
		count int64
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("thread_id = ? AND user_id = ?", threadID, userID).Delete(&model.ThreadLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			l := &model.ThreadLike{ID: uuid.New().String(), ThreadID: threadID, UserID: userID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(l).Error; err != nil {
				return err
			}
			liked = true
		}
		return tx.Model(&model.ThreadLike{}).Where("thread_id = ?", threadID).Count(&count).Error
	})
	return liked, count, err
}

func (r *likeRepository) Count(ctx context.Context, threadID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.ThreadLike{}).Where("thread_id = ?", threadID).Count(&cnt).Error
	return cnt, err
}
