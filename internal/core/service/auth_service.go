package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/vendly/auction-api/internal/api/metrics"
	"github.com/vendly/auction-api/internal/core/domain"
	"github.com/vendly/auction-api/internal/core/ports"
	"github.com/vendly/auction-api/internal/pkg/password"
	"github.com/vendly/auction-api/internal/pkg/token"
)

// AuthService implements registration, login, and session resolution.
type AuthService struct {
	users    ports.UserRepository
	profiles ports.ClientProfileRepository
	codec    *token.Codec
	limiter  ports.LoginLimiter
	audit    ports.AuditSink
	log      zerolog.Logger
}

// NewAuthService wires the auth flows. limiter and audit may be nil, which
// disables login throttling and the audit trail respectively.
func NewAuthService(
	users ports.UserRepository,
	profiles ports.ClientProfileRepository,
	codec *token.Codec,
	limiter ports.LoginLimiter,
	audit ports.AuditSink,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		profiles: profiles,
		codec:    codec,
		limiter:  limiter,
		audit:    audit,
		log:      log,
	}
}

// Register creates a user record and, for client-role users, a dependent
// pending-approval profile. The two writes are not transactional: a profile
// insert failure leaves the user record in place and is only logged.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	role := in.Role
	if role == "" {
		role = domain.RoleParticipant
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	_, err := s.users.FindByEmail(ctx, in.Email)
	if err == nil {
		metrics.RegistrationConflictsTotal.Inc()
		return nil, domain.ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
		IsActive:     true,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyRegistered) {
			metrics.RegistrationConflictsTotal.Inc()
		}
		return nil, err
	}

	if role == domain.RoleClient {
		profile := &domain.ClientProfile{
			UserID: created.ID,
			Status: domain.ProfilePendingApproval,
		}
		if err := s.profiles.Create(ctx, profile); err != nil {
			// Known consistency gap: the user exists without a profile and
			// no compensation runs. The response does not reflect this.
			metrics.ProfileCreationFailuresTotal.Inc()
			s.log.Error().Err(err).
				Str("user_id", created.ID).
				Msg("client profile creation failed after user insert")
		}
	}

	metrics.RegistrationsTotal.WithLabelValues(string(role)).Inc()
	s.record(ports.AuthEventInput{
		Type:      ports.AuthEventRegistered,
		Subject:   created.Email,
		UserID:    created.ID,
		Timestamp: time.Now().UTC(),
	})

	return created, nil
}

// Login verifies credentials for an email-or-username identifier and issues
// a bearer token whose subject is the user's email. Unknown identifier and
// wrong password both surface as ErrInvalidCredentials so callers cannot
// enumerate accounts.
func (s *AuthService) Login(ctx context.Context, identifier, pass string) (string, error) {
	if identifier == "" || pass == "" {
		return "", domain.ErrInvalidCredentials
	}

	if throttled := s.throttled(ctx, identifier); throttled {
		metrics.LoginsThrottledTotal.Inc()
		return "", domain.ErrTooManyAttempts
	}

	user, err := s.users.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", s.loginFailed(ctx, identifier)
		}
		return "", err
	}

	if !password.Verify(pass, user.PasswordHash) {
		return "", s.loginFailed(ctx, identifier)
	}

	signed, err := s.codec.Issue(user.Email)
	if err != nil {
		return "", err
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, identifier); err != nil {
			s.log.Warn().Err(err).Msg("login throttle reset failed")
		}
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.record(ports.AuthEventInput{
		Type:      ports.AuthEventLoginSucceeded,
		Subject:   identifier,
		UserID:    user.ID,
		Timestamp: time.Now().UTC(),
	})

	return signed, nil
}

// Authenticate resolves a bearer token to a live user record with a fresh
// storage read. Any failure, including a user deleted after issuance, maps
// to ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*domain.User, error) {
	subject, err := s.codec.Decode(tokenString)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	return user, nil
}

// throttled consults the login limiter. Limiter errors fail open so a Redis
// outage cannot lock every account out.
func (s *AuthService) throttled(ctx context.Context, identifier string) bool {
	if s.limiter == nil {
		return false
	}
	blocked, err := s.limiter.TooManyFailures(ctx, identifier)
	if err != nil {
		s.log.Warn().Err(err).Msg("login throttle check failed")
		return false
	}
	return blocked
}

func (s *AuthService) loginFailed(ctx context.Context, identifier string) error {
	if s.limiter != nil {
		if err := s.limiter.RecordFailure(ctx, identifier); err != nil {
			s.log.Warn().Err(err).Msg("login throttle record failed")
		}
	}
	metrics.LoginsTotal.WithLabelValues("failure").Inc()
	s.record(ports.AuthEventInput{
		Type:      ports.AuthEventLoginFailed,
		Subject:   identifier,
		Timestamp: time.Now().UTC(),
	})
	return domain.ErrInvalidCredentials
}

func (s *AuthService) record(event ports.AuthEventInput) {
	if s.audit != nil {
		s.audit.Enqueue(event)
	}
}
