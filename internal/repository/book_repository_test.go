package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shelftalk/shelftalk/internal/model"
)

func TestBookUpsert_Idempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookRepository(db)
	ctx := context.Background()

	b := &model.Book{ISBN13: "9780000000001", Title: "First Edition", Author: "A. Writer"}
	created, err := repo.Upsert(ctx, b)
	require.NoError(t, err)
	require.True(t, created)

	created, err = repo.Upsert(ctx, b)
	require.NoError(t, err)
	require.False(t, created)

	books, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Equal(t, "First Edition", books[0].Title)
}

func TestBookUpsert_OverwritesFields(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookRepository(db)
	ctx := context.Background()

	_, err := repo.Upsert(ctx, &model.Book{ISBN13: "9780000000002", Title: "Old Title"})
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, &model.Book{ISBN13: "9780000000002", Title: "New Title", Publisher: "Pub"})
	require.NoError(t, err)

	got, err := repo.Get(ctx, "9780000000002")
	require.NoError(t, err)
	require.Equal(t, "New Title", got.Title)
	require.Equal(t, "Pub", got.Publisher)
}

func TestBookGet_Missing(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookRepository(db)

	_, err := repo.Get(context.Background(), "9999999999999")
	require.Error(t, err)
}
