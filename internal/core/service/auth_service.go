package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/roomly/storefront-api/internal/api/metrics"
	"github.com/roomly/storefront-api/internal/core/domain"
	"github.com/roomly/storefront-api/internal/core/ports"
)

// bcryptCost is the work factor for password hashing.
const bcryptCost = 12

// AuthService implements login (delegated to the identity worker) and local
// registration.
type AuthService struct {
	identity  ports.IdentityClient
	repo      ports.AuthRepository
	mailer    ports.Mailer
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(
	identity ports.IdentityClient,
	repo ports.AuthRepository,
	mailer ports.Mailer,
	jwtSecret string,
	tokenTTL time.Duration,
	logger zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		identity:  identity,
		repo:      repo,
		mailer:    mailer,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Login verifies the credentials with the identity worker, then enriches the
// worker identity with the local user record when one exists. Enrichment
// fails OPEN: a store error at this point degrades to the worker-supplied
// identity and is never surfaced as a login failure.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Identity, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	ident, err := s.identity.Verify(ctx, email, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("denied").Inc()
		return "", nil, err
	}

	local, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		// Local data takes precedence over the worker's role.
		ident.UserID = local.ID
		ident.Role = local.Role
		ident.AccessCode = local.AccessCode
		if local.Name != "" {
			ident.Name = local.Name
		}
	case errors.Is(err, domain.ErrUserNotFound):
		// No local record; the worker identity stands on its own.
	default:
		s.logger.Warn().Err(err).Str("email", email).Msg("login enrichment unavailable, continuing with worker identity")
	}

	token, err := s.generateToken(ident)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return token, ident, nil
}

// Register creates a local END_USER account. All four fields are required;
// field presence is also validated at the transport boundary, so the check
// here is a guard for non-HTTP callers.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Name == "" || in.Email == "" || in.Phone == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		Role:         domain.RoleEndUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.Inc()
	s.logger.Info().Str("email", created.Email).Int64("user_id", created.ID).Msg("user registered")

	if s.mailer != nil {
		// Mail failures never fail the registration.
		go func(email, name string) {
			if err := s.mailer.SendWelcome(context.Background(), email, name); err != nil {
				s.logger.Warn().Err(err).Str("email", email).Msg("welcome mail failed")
			}
		}(created.Email, created.Name)
	}

	return created, nil
}

func (s *AuthService) generateToken(ident *domain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub":       ident.UserID,
		"email":     ident.Email,
		"role":      string(ident.Role),
		"api_token": ident.APIToken,
		"exp":       time.Now().Add(s.tokenTTL).Unix(),
	}
	if ident.AccessCode != "" {
		claims["access_code"] = ident.AccessCode
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
