package auth

import "time"

// Claims representa la información extraída del access token.
type Claims struct {
	UserID  int64
	Email   string
	IsStaff bool
}

// TokenType distingue access de refresh dentro del JWT.
type TokenType string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"
)

// TokenPair es lo que devuelven login y register.
type TokenPair struct {
	Refresh string `json:"refresh"`
	Access  string `json:"access"`
}

// Subject es lo que se firma en un token.
type Subject struct {
	UserID  int64
	Email   string
	IsStaff bool
}

// ParsedToken es un token ya validado (firma, exp y tipo).
type ParsedToken struct {
	Type      TokenType
	UserID    int64
	JTI       string
	ExpiresAt time.Time
}
