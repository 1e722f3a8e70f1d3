package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"github.com/shrimpsizemoose/frageverk/internal/models"
	"github.com/shrimpsizemoose/frageverk/internal/session"
	"github.com/shrimpsizemoose/frageverk/internal/store"
)

// ErrInvalidRegistration marks registration input the validator rejected.
var ErrInvalidRegistration = errors.New("invalid registration details")

// Register creates an account with a bcrypt password hash. Returns
// store.ErrConflict when the username or email is already taken; the
// OR-lookup catches the common case and the unique constraint catches
// two registrations racing for the same identity.
func (s *Service) Register(username, email, password string) (*models.User, error) {
	reg := models.Registration{
		Username: username,
		Email:    email,
		Password: password,
	}
	if err := reg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRegistration, err)
	}

	existing, err := s.Store.FindByUsernameOrEmail(username, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing accounts: %w", err)
	}
	if existing != nil {
		return nil, store.ErrConflict
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.Store.CreateUser(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate returns the matching user, or nil for both an unknown
// email and a wrong password. Callers must not tell those cases apart
// in anything user-visible.
func (s *Service) Authenticate(email, password string) (*models.User, error) {
	user, err := s.Store.GetUserByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return nil, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil
	}

	return user, nil
}

// StartSession opens a fresh authenticated session and returns its id.
func (s *Service) StartSession(ctx context.Context, user *models.User) (string, error) {
	sid := session.NewID()
	if err := s.Sessions.Set(ctx, sid, session.KeyUserID, strconv.FormatInt(user.ID, 10)); err != nil {
		return "", fmt.Errorf("failed to start session: %w", err)
	}
	if err := s.Sessions.Set(ctx, sid, session.KeyUsername, user.Username); err != nil {
		return "", fmt.Errorf("failed to start session: %w", err)
	}
	return sid, nil
}

// SessionUser resolves the authenticated user id and username for a
// session id; a zero user id means the session is anonymous or gone.
func (s *Service) SessionUser(ctx context.Context, sid string) (int64, string, error) {
	raw, err := s.Sessions.Get(ctx, sid, session.KeyUserID)
	if err != nil {
		return 0, "", err
	}
	if raw == "" {
		return 0, "", nil
	}

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("malformed user id in session: %w", err)
	}

	username, err := s.Sessions.Get(ctx, sid, session.KeyUsername)
	if err != nil {
		return 0, "", err
	}

	return userID, username, nil
}

func (s *Service) EndSession(ctx context.Context, sid string) error {
	return s.Sessions.Destroy(ctx, sid)
}
