// Package jwtauth firma y valida los tokens de sesión (HS256).
package jwtauth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"pet-health-record/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = auth.ErrInvalidToken
	ErrWrongType    = auth.ErrWrongTokenType
)

type Config struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type Signer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

type tokenClaims struct {
	TokenType string `json:"token_type"`
	UserID    string `json:"user_id"`
	jwt.RegisteredClaims
}

func NewSigner(cfg Config) (*Signer, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, errors.New("jwt secret is required")
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = 5 * time.Minute
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = 24 * time.Hour
	}
	return &Signer{
		secret:     []byte(cfg.Secret),
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		now:        time.Now,
	}, nil
}

func (s *Signer) IssuePair(sub auth.Subject) (auth.TokenPair, error) {
	refresh, err := s.sign(sub, auth.TokenRefresh, s.refreshTTL)
	if err != nil {
		return auth.TokenPair{}, err
	}
	access, err := s.sign(sub, auth.TokenAccess, s.accessTTL)
	if err != nil {
		return auth.TokenPair{}, err
	}
	return auth.TokenPair{Refresh: refresh, Access: access}, nil
}

func (s *Signer) IssueAccess(sub auth.Subject) (string, error) {
	return s.sign(sub, auth.TokenAccess, s.accessTTL)
}

func (s *Signer) sign(sub auth.Subject, typ auth.TokenType, ttl time.Duration) (string, error) {
	now := s.now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		TokenType: string(typ),
		UserID:    strconv.FormatInt(sub.UserID, 10),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", typ, err)
	}
	return signed, nil
}

// Parse valida firma, expiración y tipo. Cualquier falla de firma o exp es
// ErrInvalidToken; un token válido de otro tipo es ErrWrongType.
func (s *Signer) Parse(raw string, want auth.TokenType) (auth.ParsedToken, error) {
	parsed, err := jwt.ParseWithClaims(raw, &tokenClaims{}, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return auth.ParsedToken{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return auth.ParsedToken{}, ErrInvalidToken
	}
	if auth.TokenType(claims.TokenType) != want {
		return auth.ParsedToken{}, ErrWrongType
	}

	userID, err := strconv.ParseInt(claims.UserID, 10, 64)
	if err != nil {
		return auth.ParsedToken{}, fmt.Errorf("%w: user_id: %v", ErrInvalidToken, err)
	}

	return auth.ParsedToken{
		Type:      want,
		UserID:    userID,
		JTI:       claims.ID,
		ExpiresAt: claims.ExpiresAt.Time.UTC(),
	}, nil
}
