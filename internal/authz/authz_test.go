package authz

import (
	"errors"
	"testing"

	"pet-health-record/internal/platform/apperr"
	"pet-health-record/internal/ports/auth"

	"github.com/stretchr/testify/assert"
)

func TestPredicates(t *testing.T) {
	owner := &auth.Claims{UserID: 1}
	other := &auth.Claims{UserID: 2}
	staff := &auth.Claims{UserID: 3, IsStaff: true}

	assert.False(t, Authenticated(nil))
	assert.False(t, Authenticated(&auth.Claims{}))

	assert.False(t, CanListUsers(owner))
	assert.True(t, CanListUsers(staff))

	assert.True(t, CanViewUser(owner, 1))
	assert.False(t, CanViewUser(other, 1))
	assert.True(t, CanViewUser(staff, 1))
	assert.False(t, CanViewUser(nil, 1))

	assert.True(t, OwnsPet(owner, 1))
	assert.False(t, OwnsPet(other, 1))
	assert.False(t, OwnsPet(staff, 1), "staff has no bypass on pets")
	assert.False(t, OwnsVaccination(staff, 1))
	assert.True(t, OwnsVaccination(owner, 1))
}

func TestRequireAuthenticated(t *testing.T) {
	assert.True(t, errors.Is(RequireAuthenticated(nil), apperr.ErrUnauthenticated))
	assert.NoError(t, RequireAuthenticated(&auth.Claims{UserID: 5}))
}
