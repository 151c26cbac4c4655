// Package auth holds the signed-in session: the persisted bearer token
// and the user snapshot decoded from it.
package auth

import (
	"errors"
	"sync"

	"github.com/Kotlang/socialClient/logger"
	"github.com/Kotlang/socialClient/models"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Claim names used by the backend token.
const (
	claimUserId         = "user-id"
	claimDisplayName    = "display-name"
	claimNameIdentifier = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
	claimEmail          = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/emailaddress"
)

var ErrBadToken = errors.New("token is not a decodable JWT")

// Session carries the bearer token plus the user snapshot decoded from
// its claims. The token is parsed without signature verification: the
// backend stays the authority, claims are only used client-side for
// display and for gating author-only affordances.
type Session struct {
	mu    sync.RWMutex
	token string
	user  *models.SessionUser
}

// NewSession builds a session from a persisted token. An empty token
// yields a signed-out session; a malformed token is treated the same,
// with a warning.
func NewSession(token string) *Session {
	s := &Session{}
	if len(token) > 0 {
		if err := s.SignIn(token); err != nil {
			logger.Warn("Ignoring undecodable persisted token", zap.Error(err))
		}
	}
	return s
}

// SignIn installs a token and decodes the user snapshot from it.
func (s *Session) SignIn(token string) error {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return errors.Join(ErrBadToken, err)
	}

	userId := stringClaim(claims, claimUserId)
	if len(userId) == 0 {
		userId = stringClaim(claims, claimNameIdentifier)
	}
	displayName := stringClaim(claims, claimDisplayName)
	if len(displayName) == 0 {
		displayName = "User"
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = &models.SessionUser{
		UserId:      userId,
		DisplayName: displayName,
		Email:       stringClaim(claims, claimEmail),
	}
	return nil
}

// SignOut drops the token and the user snapshot.
func (s *Session) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
}

// Token returns the bearer token, empty when signed out. Satisfies
// rest.TokenSource.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the signed-in user snapshot, or nil when signed out.
func (s *Session) User() *models.SessionUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func stringClaim(claims jwt.MapClaims, name string) string {
	if value, ok := claims[name].(string); ok {
		return value
	}
	return ""
}
