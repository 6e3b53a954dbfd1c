package auth

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal"
)

// CookieName holds the signed session token.
const CookieName = "habit_session"

var errInvalidSession = errors.New("invalid session token")

// SessionManager issues and parses the signed cookie that carries the
// authenticated user's id. Nothing else is stored client-side.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	logger internal.Logger
}

func NewSessionManager(secret string, ttl time.Duration, logger internal.Logger) *SessionManager {
	return &SessionManager{secret: []byte(secret), ttl: ttl, logger: logger}
}

func (m *SessionManager) Issue(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	})
	return token.SignedString(m.secret)
}

// Parse returns the user id a valid token was issued for.
func (m *SessionManager) Parse(raw string) (string, error) {
	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidSession
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", errInvalidSession
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errInvalidSession
	}
	return claims.Subject, nil
}

func (m *SessionManager) SetCookie(c *gin.Context, token string) {
	c.SetCookie(CookieName, token, int(m.ttl.Seconds()), "/", "", false, true)
}

func (m *SessionManager) ClearCookie(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}
