package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shelftalk/shelftalk/internal/model"
)

type BookRepository interface {
	List(ctx context.Context) ([]*model.Book, error)
	Get(ctx context.Context, isbn13 string) (*model.Book, error)
	// Upsert creates the book or overwrites every field of the existing row,
	// keyed strictly on ISBN-13. Reports whether a new row was created.
	Upsert(ctx context.Context, b *model.Book) (bool, error)
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository { return &bookRepository{db: db} }

func (r *bookRepository) List(ctx context.Context) ([]*model.Book, error) {
	var res []*model.Book
	err := r.db.WithContext(ctx).Find(&res).Error
	return res, err
}

func (r *bookRepository) Get(ctx context.Context, isbn13 string) (*model.Book, error) {
	var b model.Book
	if err := r.db.WithContext(ctx).Where("isbn13 = ?", isbn13).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookRepository) Upsert(ctx context.Context, b *model.Book) (bool, error) {
	var created bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&model.Book{}).Where("isbn13 = ?", b.ISBN13).Count(&cnt).Error; err != nil {
			return err
		}
		created = cnt == 0
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "isbn13"}},
			UpdateAll: true,
		}).Create(b).Error
	})
	return created, err
}
