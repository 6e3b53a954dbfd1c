package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal"
	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal/storage"
)

type RegisterRequest struct {
	Username string `form:"username" validate:"required,min=3,max=64"`
	Password string `form:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

func ValidateRegisterRequest(req *RegisterRequest) error {
	return validate.Struct(req)
}

func ValidateLoginRequest(req *LoginRequest) error {
	return validate.Struct(req)
}

// Register stores a bcrypt hash, never the password. A taken username fails
// with internal.ErrDuplicateUsername; the storage layer's unique constraint
// backs the check against concurrent registrations.
func Register(ctx context.Context, users storage.UserRepository, req *RegisterRequest) (*internal.User, error) {
	if _, err := users.GetUserByUsername(ctx, req.Username); err == nil {
		return nil, internal.ErrDuplicateUsername
	} else if !errors.Is(err, internal.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &internal.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		PasswordHash: string(hash),
	}
	if err := users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate returns internal.ErrInvalidCredentials for both unknown
// usernames and wrong passwords, so the two cases are indistinguishable.
func Authenticate(ctx context.Context, users storage.UserRepository, username, password string) (*internal.User, error) {
	user, err := users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, internal.ErrNotFound) {
			return nil, internal.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, internal.ErrInvalidCredentials
	}
	return user, nil
}
