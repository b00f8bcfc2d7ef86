package users

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	jwtauth "pet-health-record/internal/adapters/auth/jwt"
	"pet-health-record/internal/platform/apperr"
	"pet-health-record/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID   map[int64]User
	nextID int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]User{}}
}

func (r *testRepo) Create(ctx context.Context, u User) (User, error) {
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return User{}, ErrEmailTaken
		}
	}
	r.nextID++
	u.ID = r.nextID
	r.byID[u.ID] = u
	return u, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, apperr.ErrNotFound
	}
	return u, nil
}

func (r *testRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, apperr.ErrNotFound
}

func (r *testRepo) List(ctx context.Context) ([]User, error) {
	out := make([]User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *testRepo) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	u, ok := r.byID[id]
	if !ok {
		return apperr.ErrNotFound
	}
	u.LastLogin = &at
	r.byID[id] = u
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	delete(r.byID, id)
	return nil
}

type testRevocations map[string]time.Time

func (r testRevocations) Revoke(ctx context.Context, jti string, exp time.Time) error {
	r[jti] = exp
	return nil
}

func (r testRevocations) IsRevoked(ctx context.Context, jti string) (bool, error) {
	_, ok := r[jti]
	return ok, nil
}

func newTestService(t *testing.T) (*Service, *testRepo) {
	t.Helper()
	signer, err := jwtauth.NewSigner(jwtauth.Config{Secret: "test-secret"})
	require.NoError(t, err)

	repo := newTestRepo()
	svc := NewService(repo, signer, testRevocations{}, bcrypt.MinCost)
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc, repo
}

func validRegister() RegisterInput {
	return RegisterInput{
		Email:           "Owner1@Example.COM",
		FullName:        "Owner One",
		PhoneNumber:     "+1-555-0001",
		Password:        "Tr1cky-Horse!",
		PasswordConfirm: "Tr1cky-Horse!",
	}
}

func fieldErrors(t *testing.T, err error) apperr.FieldErrors {
	t.Helper()
	var fe apperr.FieldErrors
	require.True(t, errors.As(err, &fe), "expected field errors, got %v", err)
	return fe
}

func TestRegister_CreatesRegularUserWithTokens(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	u, pair, err := svc.Register(ctx, validRegister())
	require.NoError(t, err)

	assert.Equal(t, "Owner1@example.com", u.Email, "only the domain is lower-cased")
	assert.Equal(t, u.Email, u.Username)
	assert.False(t, u.IsStaff)
	assert.False(t, u.IsSuperuser)
	assert.True(t, u.IsActive)
	assert.NotEqual(t, "Tr1cky-Horse!", repo.byID[u.ID].PasswordHash)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)

	claims, err := svc.Verify(ctx, pair.Access)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, validRegister())
	require.NoError(t, err)

	t.Run("duplicate email", func(t *testing.T) {
		_, _, err := svc.Register(ctx, validRegister())
		assert.Equal(t, []string{"user with this email already exists."}, fieldErrors(t, err)["email"])
	})

	t.Run("mismatch", func(t *testing.T) {
		in := validRegister()
		in.Email = "other@example.com"
		in.PasswordConfirm = "something-else"
		_, _, err := svc.Register(ctx, in)
		assert.Equal(t, []string{"Password fields did not match."}, fieldErrors(t, err)["password"])
	})

	t.Run("weak password", func(t *testing.T) {
		in := validRegister()
		in.Email = "other@example.com"
		in.Password, in.PasswordConfirm = "1234567", "1234567"
		_, _, err := svc.Register(ctx, in)
		msgs := fieldErrors(t, err)["password"]
		assert.Contains(t, msgs, "This password is too short. It must contain at least 8 characters.")
		assert.Contains(t, msgs, "This password is too common.")
		assert.Contains(t, msgs, "This password is entirely numeric.")
	})

	t.Run("missing fields", func(t *testing.T) {
		_, _, err := svc.Register(ctx, RegisterInput{Email: "bad"})
		fe := fieldErrors(t, err)
		assert.Equal(t, []string{"Enter a valid email address."}, fe["email"])
		assert.Equal(t, []string{"This field is required."}, fe["full_name"])
		assert.Equal(t, []string{"This field is required."}, fe["password"])
	})
}

func TestAuthenticate(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	u, _, err := svc.Register(ctx, validRegister())
	require.NoError(t, err)
	require.Nil(t, repo.byID[u.ID].LastLogin)

	pair, err := svc.Authenticate(ctx, LoginInput{Email: "Owner1@example.com", Password: "Tr1cky-Horse!"})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.Access)
	require.NotNil(t, repo.byID[u.ID].LastLogin)

	_, err = svc.Authenticate(ctx, LoginInput{Email: "Owner1@example.com", Password: "wrong"})
	assert.True(t, errors.Is(err, apperr.ErrUnauthenticated))
	assert.EqualError(t, err, "No active account found with the given credentials")

	inactive := repo.byID[u.ID]
	inactive.IsActive = false
	repo.byID[u.ID] = inactive
	_, err = svc.Authenticate(ctx, LoginInput{Email: "Owner1@example.com", Password: "Tr1cky-Horse!"})
	assert.True(t, errors.Is(err, apperr.ErrUnauthenticated))

	_, err = svc.Verify(ctx, pair.Access)
	assert.True(t, errors.Is(err, apperr.ErrUnauthenticated), "inactive users are rejected")
}

func TestRefreshAndLogout(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, pair, err := svc.Register(ctx, validRegister())
	require.NoError(t, err)

	access, err := svc.Refresh(ctx, pair.Refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, access)

	_, err = svc.Refresh(ctx, pair.Access)
	assert.EqualError(t, err, "Token has wrong type")

	_, err = svc.Refresh(ctx, "not-a-token")
	assert.EqualError(t, err, "Token is invalid or expired")

	require.NoError(t, svc.Logout(ctx, pair.Refresh))
	_, err = svc.Refresh(ctx, pair.Refresh)
	assert.EqualError(t, err, "Token is blacklisted")
}

func TestListAndGet_Authorization(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	owner, _, err := svc.Register(ctx, validRegister())
	require.NoError(t, err)
	staff, err := svc.CreateUser(ctx, CreateUserInput{Email: "admin@example.com", Password: "x", IsStaff: true})
	require.NoError(t, err)

	ownerClaims := &auth.Claims{UserID: owner.ID}
	staffClaims := &auth.Claims{UserID: staff.ID, IsStaff: true}

	_, err = svc.List(ctx, nil)
	assert.True(t, errors.Is(err, apperr.ErrUnauthenticated))
	_, err = svc.List(ctx, ownerClaims)
	assert.True(t, errors.Is(err, apperr.ErrPermissionDenied))

	all, err := svc.List(ctx, staffClaims)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.Get(ctx, ownerClaims, owner.ID)
	assert.NoError(t, err)
	_, err = svc.Get(ctx, ownerClaims, staff.ID)
	assert.True(t, errors.Is(err, apperr.ErrPermissionDenied))
	_, err = svc.Get(ctx, staffClaims, owner.ID)
	assert.NoError(t, err)
	_, err = svc.Get(ctx, ownerClaims, 999)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "John.Doe@example.com", NormalizeEmail("  John.Doe@EXAMPLE.com "))
	assert.Equal(t, "no-at", NormalizeEmail("no-at"))
}

func TestValidatePassword(t *testing.T) {
	assert.Empty(t, ValidatePassword("Tr1cky-Horse!", "owner1@example.com"))
	assert.Contains(t, ValidatePassword("owner1example", "owner1@example.com"), "The password is too similar to the email.")
	assert.Contains(t, ValidatePassword("Password", ""), "This password is too common.")
}

var _ auth.AuthVerifier = (*Service)(nil)
