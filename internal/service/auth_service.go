package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/travelwise/travelwise-api/internal/domain"
	"github.com/travelwise/travelwise-api/internal/platform/auth"
	"github.com/travelwise/travelwise-api/internal/session"
	"github.com/travelwise/travelwise-api/internal/store/memory"
	"github.com/travelwise/travelwise-api/pkg/events"
	"github.com/travelwise/travelwise-api/pkg/logger"
)

const defaultAvatar = "https://images.pexels.com/photos/614810/pexels-photo-614810.jpeg"

// AuthService validates credentials against the user directory and manages
// sessions. The verification policy lives behind CredentialVerifier; the
// authenticate contract is the same for every policy.
type AuthService struct {
	users      *memory.UserStore
	sessions   session.Store
	verifier   auth.CredentialVerifier
	bus        events.Publisher
	jwtSecret  string
	sessionTTL time.Duration
}

func NewAuthService(
	users *memory.UserStore,
	sessions session.Store,
	verifier auth.CredentialVerifier,
	bus events.Publisher,
	jwtSecret string,
	sessionTTL time.Duration,
) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		verifier:   verifier,
		bus:        bus,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
	}
}

// Authenticate returns the user for a valid email/password pair. An unknown
// email and a wrong password both come back as ErrInvalidCredentials;
// callers cannot tell them apart.
func (s *AuthService) Authenticate(email, password string) (*domain.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.verifier.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// Register appends a new "user"-role account with a fresh id and the default
// avatar. Returns ErrEmailExists when the email is already in the directory.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*domain.User, error) {
	hash, err := s.verifier.HashForRegistration(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.Add(domain.User{
		Email:        email,
		Name:         name,
		Role:         domain.RoleUser,
		Avatar:       defaultAvatar,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	event := events.UserRegisteredEvent{UserID: user.ID, Email: user.Email}
	if err := s.bus.Publish(ctx, events.UserRegistered, event); err != nil {
		logger.ErrorContext(ctx, "failed to publish user registered event", "error", err, "user_id", user.ID)
	}

	return user, nil
}

// Login authenticates and opens a session: the user record goes into the
// session store keyed by a fresh session id, and the returned token carries
// that id as its jti.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.Authenticate(email, password)
	if err != nil {
		return "", nil, err
	}

	jti := uuid.NewString()
	if err := s.sessions.Set(ctx, jti, user, s.sessionTTL); err != nil {
		return "", nil, fmt.Errorf("failed to store session: %w", err)
	}

	token, err := auth.NewSessionToken(jti, user.ID, user.Email, string(user.Role), s.jwtSecret, s.sessionTTL)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, user, nil
}

// Logout revokes the session record; the token is useless afterwards even
// though its signature stays valid until expiry.
func (s *AuthService) Logout(ctx context.Context, jti string) error {
	return s.sessions.Delete(ctx, jti)
}

// CurrentUser resolves a parsed token to a live user. The session store only
// answers "is this session still open"; the user record itself comes from the
// directory by id, so the result does not depend on what the session backend
// chose to serialize. A nil user with nil error means the session was revoked
// or expired.
func (s *AuthService) CurrentUser(ctx context.Context, tokenString string) (*domain.User, *auth.Claims, error) {
	claims, err := auth.Parse(tokenString, s.jwtSecret)
	if err != nil {
		return nil, nil, err
	}
	sess, err := s.sessions.Get(ctx, claims.ID)
	if err != nil {
		return nil, nil, err
	}
	if sess == nil {
		return nil, claims, nil
	}
	user, err := s.users.FindByID(sess.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return sess, claims, nil
		}
		return nil, nil, err
	}
	return user, claims, nil
}
