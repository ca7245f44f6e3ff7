package model

import "time"

// ThreadLike is one user's membership in a thread's like-set.
type ThreadLike struct {
	ID       string `gorm:"primaryKey;type:varchar(36)"`
	ThreadID string `gorm:"type:varchar(36);index:idx_like_thread;index:idx_like_pair,unique;not null"`
	UserID   string `gorm:"type:varchar(36);not null;index:idx_like_pair,unique"`
	// idx_like_pair = (thread_id, user_id), one like per user per thread
	CreatedAt time.Time
}

func (ThreadLike) TableName() string { return "thread_likes" }
