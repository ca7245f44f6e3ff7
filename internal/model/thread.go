package model

import "time"

// Thread is a user-authored review tied to one book. Author and book are
// assigned at creation and never change afterwards.
type Thread struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string    `json:"user_id" gorm:"type:varchar(36);index:idx_thread_user;not null"`
	BookISBN13 string    `json:"book_isbn13" gorm:"column:book_isbn13;type:varchar(13);index:idx_thread_book;not null"`
	Title      string    `json:"title" gorm:"type:varchar(200);not null"`
	Content    string    `json:"content" gorm:"type:text"`
	Rating     int       `json:"rating" gorm:"not null"` // 1~5
	CreatedAt  time.Time `json:"created_at" gorm:"index:idx_thread_created"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Thread) TableName() string { return "threads" }

// OwnerID satisfies the mutation policy.
func (t *Thread) OwnerID() string { return t.UserID }
