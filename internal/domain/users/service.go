package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-health-record/internal/authz"
	"pet-health-record/internal/platform/apperr"
	"pet-health-record/internal/platform/validation"
	"pet-health-record/internal/ports/auth"

	"golang.org/x/crypto/bcrypt"
)

const (
	msgBadCredentials   = "No active account found with the given credentials"
	msgTokenInvalid     = "Token is invalid or expired"
	msgTokenWrongType   = "Token has wrong type"
	msgTokenRevoked     = "Token is blacklisted"
	msgAccessInvalid    = "Given token not valid for any token type"
	msgUserNotFound     = "User not found"
	msgUserInactive     = "User is inactive"
	msgPasswordMismatch = "Password fields did not match."
	msgEmailTaken       = "user with this email already exists."
)

type Service struct {
	repo     Repository
	signer   auth.TokenSigner
	revoked  auth.RevocationStore
	validate *validation.Validator

	bcryptCost int
	now        func() time.Time
}

func NewService(repo Repository, signer auth.TokenSigner, revoked auth.RevocationStore, bcryptCost int) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		signer:     signer,
		revoked:    revoked,
		validate:   validation.New(),
		bcryptCost: bcryptCost,
		now:        time.Now,
	}
}

type RegisterInput struct {
	Email           string `json:"email" validate:"required,email,max=254"`
	FullName        string `json:"full_name" validate:"required,max=255"`
	PhoneNumber     string `json:"phone_number" validate:"max=20"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
}

// Register crea un usuario común (nunca staff) y devuelve un par de tokens.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, auth.TokenPair, error) {
	in.Email = NormalizeEmail(in.Email)
	in.FullName = strings.TrimSpace(in.FullName)
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)

	fields := apperr.FieldErrors{}
	if err := s.validate.Struct(in); err != nil {
		var fe apperr.FieldErrors
		if !errors.As(err, &fe) {
			return User{}, auth.TokenPair{}, err
		}
		fields = fe
	}
	if _, ok := fields["email"]; !ok && in.Email != "" {
		taken, err := s.emailTaken(ctx, in.Email)
		if err != nil {
			return User{}, auth.TokenPair{}, err
		}
		if taken {
			fields.Add("email", msgEmailTaken)
		}
	}
	if err := fields.OrNil(); err != nil {
		return User{}, auth.TokenPair{}, err
	}

	if in.Password != in.PasswordConfirm {
		return User{}, auth.TokenPair{}, apperr.Field("password", msgPasswordMismatch)
	}
	if msgs := ValidatePassword(in.Password, in.Email); len(msgs) > 0 {
		return User{}, auth.TokenPair{}, apperr.FieldErrors{"password": msgs}
	}

	u, err := s.create(ctx, User{
		Username:    in.Email,
		Email:       in.Email,
		FullName:    in.FullName,
		PhoneNumber: in.PhoneNumber,
		IsActive:    true,
	}, in.Password)
	if err != nil {
		return User{}, auth.TokenPair{}, err
	}

	pair, err := s.signer.IssuePair(subjectOf(u))
	if err != nil {
		return User{}, auth.TokenPair{}, err
	}
	return u, pair, nil
}

type CreateUserInput struct {
	Email       string
	Password    string
	FullName    string
	PhoneNumber string
	IsStaff     bool
	IsSuperuser bool
}

// CreateUser es el camino admin/seed: puede crear staff y no aplica la
// política de contraseñas.
func (s *Service) CreateUser(ctx context.Context, in CreateUserInput) (User, error) {
	email := NormalizeEmail(in.Email)
	if email == "" {
		return User{}, apperr.Field("email", "Users must have an email address.")
	}
	if in.Password == "" {
		return User{}, apperr.Field("password", "This field is required.")
	}

	return s.create(ctx, User{
		Username:    email,
		Email:       email,
		FullName:    strings.TrimSpace(in.FullName),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		IsStaff:     in.IsStaff || in.IsSuperuser,
		IsSuperuser: in.IsSuperuser,
		IsActive:    true,
	}, in.Password)
}

func (s *Service) create(ctx context.Context, u User, password string) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()
	u.PasswordHash = string(hash)
	u.DateJoined = now
	u.CreatedAt = now

	created, err := s.repo.Create(ctx, u)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return User{}, apperr.Field("email", msgEmailTaken)
		}
		return User{}, err
	}
	return created, nil
}

func (s *Service) emailTaken(ctx context.Context, email string) (bool, error) {
	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, apperr.ErrNotFound) {
		return false, nil
	}
	return false, err
}

type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Authenticate valida credenciales y emite refresh+access. Actualiza last_login.
func (s *Service) Authenticate(ctx context.Context, in LoginInput) (auth.TokenPair, error) {
	if err := s.validate.Struct(in); err != nil {
		return auth.TokenPair{}, err
	}

	u, err := s.repo.GetByEmail(ctx, NormalizeEmail(in.Email))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return auth.TokenPair{}, apperr.Unauthenticated(msgBadCredentials)
		}
		return auth.TokenPair{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil || !u.IsActive {
		return auth.TokenPair{}, apperr.Unauthenticated(msgBadCredentials)
	}

	pair, err := s.signer.IssuePair(subjectOf(u))
	if err != nil {
		return auth.TokenPair{}, err
	}
	if err := s.repo.UpdateLastLogin(ctx, u.ID, s.now().UTC()); err != nil {
		return auth.TokenPair{}, err
	}
	return pair, nil
}

// Refresh cambia un refresh token vigente (y no revocado) por un access nuevo.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	tok, err := s.parseRefresh(ctx, refreshToken)
	if err != nil {
		return "", err
	}

	u, err := s.repo.GetByID(ctx, tok.UserID)
	if err != nil || !u.IsActive {
		if err != nil && !errors.Is(err, apperr.ErrNotFound) {
			return "", err
		}
		return "", apperr.Unauthenticated(msgTokenInvalid)
	}
	return s.signer.IssueAccess(subjectOf(u))
}

// Logout revoca el refresh token hasta su expiración.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	tok, err := s.parseRefresh(ctx, refreshToken)
	if err != nil {
		return err
	}
	return s.revoked.Revoke(ctx, tok.JTI, tok.ExpiresAt)
}

func (s *Service) parseRefresh(ctx context.Context, raw string) (auth.ParsedToken, error) {
	if strings.TrimSpace(raw) == "" {
		return auth.ParsedToken{}, apperr.Field("refresh", "This field is required.")
	}

	tok, err := s.signer.Parse(raw, auth.TokenRefresh)
	if err != nil {
		if errors.Is(err, auth.ErrWrongTokenType) {
			return auth.ParsedToken{}, apperr.Unauthenticated(msgTokenWrongType)
		}
		return auth.ParsedToken{}, apperr.Unauthenticated(msgTokenInvalid)
	}

	revoked, err := s.revoked.IsRevoked(ctx, tok.JTI)
	if err != nil {
		return auth.ParsedToken{}, err
	}
	if revoked {
		return auth.ParsedToken{}, apperr.Unauthenticated(msgTokenRevoked)
	}
	return tok, nil
}

// Verify implementa auth.AuthVerifier para middleware.AuthContext.
func (s *Service) Verify(ctx context.Context, token string) (auth.Claims, error) {
	tok, err := s.signer.Parse(token, auth.TokenAccess)
	if err != nil {
		return auth.Claims{}, apperr.Unauthenticated(msgAccessInvalid)
	}

	u, err := s.repo.GetByID(ctx, tok.UserID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return auth.Claims{}, apperr.Unauthenticated(msgUserNotFound)
		}
		return auth.Claims{}, err
	}
	if !u.IsActive {
		return auth.Claims{}, apperr.Unauthenticated(msgUserInactive)
	}

	return auth.Claims{UserID: u.ID, Email: u.Email, IsStaff: u.IsStaff}, nil
}

// List es solo para staff.
func (s *Service) List(ctx context.Context, caller *auth.Claims) ([]User, error) {
	if err := authz.RequireAuthenticated(caller); err != nil {
		return nil, err
	}
	if !authz.CanListUsers(caller) {
		return nil, apperr.ErrPermissionDenied
	}
	return s.repo.List(ctx)
}

// Get: el propio usuario o staff. Un id inexistente es 404 antes que 403.
func (s *Service) Get(ctx context.Context, caller *auth.Claims, id int64) (User, error) {
	if err := authz.RequireAuthenticated(caller); err != nil {
		return User{}, err
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	if !authz.CanViewUser(caller, u.ID) {
		return User{}, apperr.ErrPermissionDenied
	}
	return u, nil
}

// Delete borra el usuario con sus mascotas y vacunaciones (admin/seed).
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Count se usa en el seed para no duplicar datos.
func (s *Service) Count(ctx context.Context) (int, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

// NormalizeEmail recorta espacios y pasa a minúsculas solo el dominio.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}

func subjectOf(u User) auth.Subject {
	return auth.Subject{UserID: u.ID, Email: u.Email, IsStaff: u.IsStaff}
}
