package memory

import (
	"context"
	"strings"
	"time"
)

// RevocationStore es la blacklist de refresh tokens cuando no hay Redis.
type RevocationStore struct {
	s *Store
}

func (r *RevocationStore) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	for k, exp := range r.s.revoked {
		if exp.Before(now) {
			delete(r.s.revoked, k)
		}
	}
	r.s.revoked[strings.TrimSpace(jti)] = expiresAt
	return nil
}

func (r *RevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.revoked[strings.TrimSpace(jti)]
	return ok, nil
}
