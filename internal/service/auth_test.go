package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal"
	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal/storage"
)

func newTestStorage(t *testing.T) *storage.FileStorage {
	t.Helper()
	s, err := storage.NewFileStorage(t.TempDir(), internal.NopLogger())
	assert.NoError(t, err)
	return s
}

func TestRegisterAndAuthenticate(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user, err := Register(ctx, s, &RegisterRequest{Username: "maria", Password: "hunter2hunter2"})
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "maria", user.Username)
	// Only the hash is stored.
	assert.NotContains(t, user.PasswordHash, "hunter2")

	got, err := Authenticate(ctx, s, "maria", "hunter2hunter2")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := Register(ctx, s, &RegisterRequest{Username: "maria", Password: "hunter2hunter2"})
	assert.NoError(t, err)

	_, err = Register(ctx, s, &RegisterRequest{Username: "maria", Password: "otherpassword"})
	assert.ErrorIs(t, err, internal.ErrDuplicateUsername)

	// No second row was created.
	u, err := s.GetUserByUsername(ctx, "maria")
	assert.NoError(t, err)
	assert.NotNil(t, u)
}

func TestAuthenticate_InvalidCredentials(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := Register(ctx, s, &RegisterRequest{Username: "maria", Password: "hunter2hunter2"})
	assert.NoError(t, err)

	_, err = Authenticate(ctx, s, "maria", "wrong-password")
	assert.ErrorIs(t, err, internal.ErrInvalidCredentials)

	_, err = Authenticate(ctx, s, "nobody", "hunter2hunter2")
	assert.ErrorIs(t, err, internal.ErrInvalidCredentials)
}
