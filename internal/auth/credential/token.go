// Package credential issues and verifies the bearer tokens and password hashes
// used by the auth feature.
package credential

import (
	"errors"
	"fmt"
	"time"

	"posts-backend/internal/common/apperror"

	"github.com/golang-jwt/jwt/v5"
)

// RefreshScope marks refresh tokens. Access tokens carry no scope.
const RefreshScope = "refresh"

// Claims is the payload of both access and refresh tokens.
type Claims struct {
	Scope string `json:"scope,omitempty"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenManager signs and validates HS256 tokens. It keeps no server-side
// state: a token is valid as long as its signature, expiry and scope check out.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// WithClock returns a copy of m that reads the current time from now.
func (m *TokenManager) WithClock(now func() time.Time) *TokenManager {
	cp := *m
	cp.now = now
	return &cp
}

func (m *TokenManager) IssueAccessToken(userID string) (string, error) {
	return m.sign(userID, m.accessTTL, "")
}

func (m *TokenManager) IssueRefreshToken(userID string) (string, error) {
	return m.sign(userID, m.refreshTTL, RefreshScope)
}

func (m *TokenManager) IssuePair(userID string) (TokenPair, error) {
	access, err := m.IssueAccessToken(userID)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := m.IssueRefreshToken(userID)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Decode validates token and returns its subject.
func (m *TokenManager) Decode(token string) (string, error) {
	claims, err := m.parse(token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// Refresh exchanges a refresh token for a new pair issued to the same subject.
// The presented token is not revoked.
func (m *TokenManager) Refresh(refreshToken string) (TokenPair, error) {
	claims, err := m.parse(refreshToken)
	if err != nil {
		return TokenPair{}, err
	}
	if claims.Scope != RefreshScope {
		return TokenPair{}, apperror.ErrInvalidScope
	}
	return m.IssuePair(claims.Subject)
}

func (m *TokenManager) sign(userID string, ttl time.Duration, scope string) (string, error) {
	now := m.now()
	claims := Claims{
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *TokenManager) parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		// The signature is checked before the claims, so an expired token
		// reaching this branch was signed by us.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperror.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", apperror.ErrTokenInvalid, err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", apperror.ErrTokenInvalid)
	}
	return claims, nil
}
