package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal"
)

func TestSessionRoundTrip(t *testing.T) {
	m := NewSessionManager("secret", time.Hour, internal.NopLogger())

	token, err := m.Issue("user-123")
	assert.NoError(t, err)

	userID, err := m.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestSessionRejectsWrongSecret(t *testing.T) {
	issuer := NewSessionManager("secret-a", time.Hour, internal.NopLogger())
	verifier := NewSessionManager("secret-b", time.Hour, internal.NopLogger())

	token, err := issuer.Issue("user-123")
	assert.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.Error(t, err)
}

func TestSessionRejectsExpired(t *testing.T) {
	m := NewSessionManager("secret", -time.Minute, internal.NopLogger())

	token, err := m.Issue("user-123")
	assert.NoError(t, err)

	_, err = m.Parse(token)
	assert.Error(t, err)
}

func TestSessionRejectsGarbage(t *testing.T) {
	m := NewSessionManager("secret", time.Hour, internal.NopLogger())

	_, err := m.Parse("not-a-token")
	assert.Error(t, err)
}
