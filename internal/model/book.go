package model

// Book is catalog reference data keyed by ISBN-13. Identity never changes;
// the remaining fields are overwritten on catalog refresh.
type Book struct {
	ISBN13      string `json:"isbn13" gorm:"column:isbn13;primaryKey;type:varchar(13)"`
	Title       string `json:"title" gorm:"type:varchar(200);not null"`
	Author      string `json:"author" gorm:"type:varchar(200)"`
	Publisher   string `json:"publisher" gorm:"type:varchar(100)"`
	Cover       string `json:"cover" gorm:"type:varchar(500)"`
	Description string `json:"description" gorm:"type:text"`
}

func (Book) TableName() string { return "books" }
