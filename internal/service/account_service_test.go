package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSignup_HashesPassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	u, err := env.accounts.Signup(ctx, "alice", "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	require.NotEqual(t, "hunter2", u.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("hunter2")))
}

func TestSignup_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.accounts.Signup(ctx, "alice", "")
	require.ErrorIs(t, err, ErrValidation)

	_, err = env.accounts.Signup(ctx, "alice", "pw")
	require.NoError(t, err)
	_, err = env.accounts.Signup(ctx, "alice", "pw2")
	require.ErrorIs(t, err, ErrValidation)
}

func TestAuthenticate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.signup(t, "alice")

	u, err := env.accounts.Authenticate(ctx, "alice", "secret")
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)

	_, err = env.accounts.Authenticate(ctx, "alice", "wrong")
	require.ErrorIs(t, err, ErrBadCredentials)
	_, err = env.accounts.Authenticate(ctx, "nobody", "secret")
	require.ErrorIs(t, err, ErrBadCredentials)
}

func TestToggleFollow_IdempotentPair(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.signup(t, "alice")
	b := env.signup(t, "bob")

	res, err := env.accounts.ToggleFollow(ctx, a.ID, b.ID)
	require.NoError(t, err)
	require.True(t, res.Followed)

	p, err := env.accounts.Profile(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, p.Followers, 1)
	require.Equal(t, "alice", p.Followers[0].Username)

	res, err = env.accounts.ToggleFollow(ctx, a.ID, b.ID)
	require.NoError(t, err)
	require.False(t, res.Followed)

	p, err = env.accounts.Profile(ctx, "bob")
	require.NoError(t, err)
	require.Empty(t, p.Followers)
}

func TestToggleFollow_SelfRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.signup(t, "alice")

	_, err := env.accounts.ToggleFollow(ctx, a.ID, a.ID)
	require.ErrorIs(t, err, ErrSelfFollow)

	// no state change
	p, err := env.accounts.Profile(ctx, "alice")
	require.NoError(t, err)
	require.Empty(t, p.Followers)
	require.Empty(t, p.Followings)
}

func TestToggleFollow_MissingTarget(t *testing.T) {
	env := newTestEnv(t)
	a := env.signup(t, "alice")

	_, err := env.accounts.ToggleFollow(context.Background(), a.ID, "no-such-user")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestProfile_Missing(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.accounts.Profile(context.Background(), "ghost")
	require.True(t, errors.Is(err, ErrNotFound))
}
