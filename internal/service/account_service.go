package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/shelftalk/shelftalk/internal/model"
	"github.com/shelftalk/shelftalk/internal/repository"
)

type AccountService interface {
	Signup(ctx context.Context, username, password string) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
	Profile(ctx context.Context, username string) (*Profile, error)
	ToggleFollow(ctx context.Context, actorID, targetID string) (*FollowResult, error)
	DeleteAccount(ctx context.Context, actorID string) error
}

type accountService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

func NewAccountService(userRepo repository.UserRepository, followRepo repository.FollowRepository) AccountService {
	return &accountService{userRepo: userRepo, followRepo: followRepo}
}

func (s *accountService) Signup(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username must not be empty", ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password must not be empty", ErrValidation)
	}
	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, fmt.Errorf("%w: username already taken", ErrValidation)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &model.User{ID: uuid.New().String(), Username: username, Password: string(hash)}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *accountService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}
	return u, nil
}

func (s *accountService) Profile(ctx context.Context, username string) (*Profile, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %q", ErrNotFound, username)
		}
		return nil, err
	}
	followings, err := s.followRepo.ListFollowings(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	followers, err := s.followRepo.ListFollowers(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	return &Profile{
		ID:         u.ID,
		Username:   u.Username,
		Followings: userRefs(followings),
		Followers:  userRefs(followers),
	}, nil
}

func (s *accountService) ToggleFollow(ctx context.Context, actorID, targetID string) (*FollowResult, error) {
	if actorID == targetID {
		return nil, ErrSelfFollow
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %q", ErrNotFound, targetID)
		}
		return nil, err
	}
	followed, err := s.followRepo.Toggle(ctx, actorID, targetID)
	if err != nil {
		return nil, err
	}
	return &FollowResult{Followed: followed}, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, actorID string) error {
	if _, err := s.userRepo.GetByID(ctx, actorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user %q", ErrNotFound, actorID)
		}
		return err
	}
	return s.userRepo.Delete(ctx, actorID)
}
