package auth

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidToken   = errors.New("token is invalid or expired")
	ErrWrongTokenType = errors.New("token has wrong type")
)

// AuthVerifier verifica un access token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenSigner emite y valida tokens. Parse exige el tipo pedido.
type TokenSigner interface {
	IssuePair(sub Subject) (TokenPair, error)
	IssueAccess(sub Subject) (string, error)
	Parse(token string, want TokenType) (ParsedToken, error)
}

// RevocationStore guarda los jti de refresh tokens revocados (logout).
type RevocationStore interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
