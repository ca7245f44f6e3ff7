package model

import "time"

// Comment belongs to one thread and one author. Comments are removed with
// their thread.
type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);index:idx_comment_user;not null"`
	ThreadID  string    `json:"thread_id" gorm:"type:varchar(36);index:idx_comment_thread;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Comment) TableName() string { return "comments" }

// OwnerID satisfies the mutation policy.
func (c *Comment) OwnerID() string { return c.UserID }
