package cache

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedPrefix = "auth:refresh:revoked:"

// RevocationStore es la blacklist de refresh tokens (por jti) con TTL
// hasta la expiración del token.
type RevocationStore struct {
	client *redis.Client
}

func NewRevocationStore(client *redis.Client) *RevocationStore {
	return &RevocationStore{client: client}
}

func (s *RevocationStore) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// ya expiró; igual lo marcamos un rato por si hay clock skew
		ttl = time.Minute
	}
	return s.client.Set(ctx, revokedPrefix+strings.TrimSpace(jti), "1", ttl).Err()
}

func (s *RevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedPrefix+strings.TrimSpace(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
