package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shelftalk/shelftalk/internal/model"
	"github.com/shelftalk/shelftalk/internal/repository"
)

type CreateThreadInput struct {
	BookISBN13 string
	Title      string
	Content    string
	Rating     int
}

// UpdateThreadInput carries the mutable fields only; nil means "leave as is".
// Author and book are immutable after creation.
type UpdateThreadInput struct {
	Title   *string
	Content *string
	Rating  *int
}

type CommunityService interface {
	ListThreads(ctx context.Context) ([]*ThreadSummary, error)
	CreateThread(ctx context.Context, actorID string, in CreateThreadInput) (*ThreadDetail, error)
	GetThread(ctx context.Context, id string) (*ThreadDetail, error)
	UpdateThread(ctx context.Context, actorID, id string, in UpdateThreadInput) (*ThreadDetail, error)
	DeleteThread(ctx context.Context, actorID, id string) error
	ToggleLike(ctx context.Context, actorID, threadID string) (*LikeResult, error)
	CreateComment(ctx context.Context, actorID, threadID, content string) (*CommentView, error)
	DeleteComment(ctx context.Context, actorID, commentID string) error
}

type communityService struct {
	threadRepo  repository.ThreadRepository
	commentRepo repository.CommentRepository
	likeRepo    repository.LikeRepository
	userRepo    repository.UserRepository
	bookRepo    repository.BookRepository
}

func NewCommunityService(
	threadRepo repository.ThreadRepository,
	commentRepo repository.CommentRepository,
	likeRepo repository.LikeRepository,
	userRepo repository.UserRepository,
	bookRepo repository.BookRepository,
) CommunityService {
	return &communityService{
		threadRepo:  threadRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		userRepo:    userRepo,
		bookRepo:    bookRepo,
	}
}

func validRating(r int) bool { return r >= 1 && r <= 5 }

func (s *communityService) ListThreads(ctx context.Context) ([]*ThreadSummary, error) {
	rows, err := s.threadRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]*ThreadSummary, len(rows))
	for i, row := range rows {
		res[i] = &ThreadSummary{
			ID:           row.ID,
			User:         UserRef{ID: row.UserID, Username: row.Username},
			BookISBN13:   row.BookISBN13,
			BookTitle:    row.BookTitle,
			Title:        row.Title,
			Rating:       row.Rating,
			CreatedAt:    row.CreatedAt,
			LikeCount:    row.LikeCount,
			CommentCount: row.CommentCount,
		}
	}
	return res, nil
}

func (s *communityService) CreateThread(ctx context.Context, actorID string, in CreateThreadInput) (*ThreadDetail, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title must not be empty", ErrValidation)
	}
	if !validRating(in.Rating) {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	if _, err := s.bookRepo.Get(ctx, in.BookISBN13); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: book %q", ErrNotFound, in.BookISBN13)
		}
		return nil, err
	}
	t := &model.Thread{
		ID:         uuid.New().String(),
		UserID:     actorID,
		BookISBN13: in.BookISBN13,
		Title:      in.Title,
		Content:    in.Content,
		Rating:     in.Rating,
	}
	if err := s.threadRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	return s.GetThread(ctx, t.ID)
}

func (s *communityService) GetThread(ctx context.Context, id string) (*ThreadDetail, error) {
	t, err := s.threadRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: thread %q", ErrNotFound, id)
		}
		return nil, err
	}
	return s.detail(ctx, t)
}

func (s *communityService) detail(ctx context.Context, t *model.Thread) (*ThreadDetail, error) {
	author, err := s.userRepo.GetByID(ctx, t.UserID)
	if err != nil {
		return nil, err
	}
	book, err := s.bookRepo.Get(ctx, t.BookISBN13)
	if err != nil {
		return nil, err
	}
	rows, err := s.commentRepo.ListByThread(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	likeCount, err := s.likeRepo.Count(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	comments := make([]CommentView, len(rows))
	for i, row := range rows {
		comments[i] = CommentView{
			ID:        row.ID,
			User:      UserRef{ID: row.UserID, Username: row.Username},
			ThreadID:  row.ThreadID,
			Content:   row.Content,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		}
	}
	return &ThreadDetail{
		ID:        t.ID,
		User:      UserRef{ID: author.ID, Username: author.Username},
		Book:      *book,
		Title:     t.Title,
		Content:   t.Content,
		Rating:    t.Rating,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
		LikeCount: likeCount,
		Comments:  comments,
	}, nil
}

func (s *communityService) UpdateThread(ctx context.Context, actorID, id string, in UpdateThreadInput) (*ThreadDetail, error) {
	t, err := s.threadRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: thread %q", ErrNotFound, id)
		}
		return nil, err
	}
	if !CanMutate(actorID, t) {
		return nil, fmt.Errorf("%w: only the author may modify a thread", ErrForbidden)
	}
	if in.Title != nil {
		if *in.Title == "" {
			return nil, fmt.Errorf("%w: title must not be empty", ErrValidation)
		}
		t.Title = *in.Title
	}
	if in.Content != nil {
		t.Content = *in.Content
	}
	if in.Rating != nil {
		if !validRating(*in.Rating) {
			return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
		}
		t.Rating = *in.Rating
	}
	if err := s.threadRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	return s.detail(ctx, t)
}

func (s *communityService) DeleteThread(ctx context.Context, actorID, id string) error {
	t, err := s.threadRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: thread %q", ErrNotFound, id)
		}
		return err
	}
	if !CanMutate(actorID, t) {
		return fmt.Errorf("%w: only the author may delete a thread", ErrForbidden)
	}
	return s.threadRepo.Delete(ctx, id)
}

func (s *communityService) ToggleLike(ctx context.Context, actorID, threadID string) (*LikeResult, error) {
	if _, err := s.threadRepo.GetByID(ctx, threadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: thread %q", ErrNotFound, threadID)
		}
		return nil, err
	}
	liked, count, err := s.likeRepo.Toggle(ctx, threadID, actorID)
	if err != nil {
		return nil, err
	}
	return &LikeResult{Liked: liked, Count: count}, nil
}

func (s *communityService) CreateComment(ctx context.Context, actorID, threadID, content string) (*CommentView, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content must not be empty", ErrValidation)
	}
	if _, err := s.threadRepo.GetByID(ctx, threadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: thread %q", ErrNotFound, threadID)
		}
		return nil, err
	}
	author, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	c := &model.Comment{
		ID:       uuid.New().String(),
		UserID:   actorID,
		ThreadID: threadID,
		Content:  content,
	}
	if err := s.commentRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return &CommentView{
		ID:        c.ID,
		User:      UserRef{ID: author.ID, Username: author.Username},
		ThreadID:  c.ThreadID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}, nil
}

func (s *communityService) DeleteComment(ctx context.Context, actorID, commentID string) error {
	c, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: comment %q", ErrNotFound, commentID)
		}
		return err
	}
	if !CanMutate(actorID, c) {
		return fmt.Errorf("%w: only the author may delete a comment", ErrForbidden)
	}
	return s.commentRepo.Delete(ctx, commentID)
}
