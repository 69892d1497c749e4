// Package session manages user accounts and the process-wide current-user
// marker.
package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/roamplan/travel-planner-api/internal/ports/out/kvstore"
)

// Service stores credentials and the current-user key. The current user is
// a single shared key: last write wins, exactly like the mobile app this
// replaces.
type Service struct {
	kv     kvstore.Store
	logger *slog.Logger

	// HashCost is the bcrypt cost used for new credentials.
	HashCost int
}

func NewService(kv kvstore.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{kv: kv, logger: logger, HashCost: bcrypt.DefaultCost}
}

// Register stores a credential for username. An existing account with the
// same name is silently overwritten.
func (s *Service) Register(ctx context.Context, username, password string) error {
	if err := validateCredentials(username, password); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.HashCost)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, kvstore.UserKey(username), string(hash))
}

// Login reports whether password matches the stored credential. Unknown
// usernames and mismatches both come back false. The current-user marker
// is untouched either way.
func (s *Service) Login(ctx context.Context, username, password string) (bool, error) {
	if username == "" {
		return false, nil
	}
	stored, ok, err := s.kv.Get(ctx, kvstore.UserKey(username))
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	switch err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)); {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		// A corrupt stored hash reads as a failed login, not a server error.
		s.logger.Warn("unreadable credential record", "username", username, "err", err)
		return false, nil
	}
}

// SetCurrent marks username as the logged-in user.
func (s *Service) SetCurrent(ctx context.Context, username string) error {
	if strings.TrimSpace(username) == "" {
		return &Error{
			Status:  422,
			Code:    "VALIDATION_ERROR",
			Message: "invalid username",
			Details: map[string]any{"username": "must be non-empty"},
		}
	}
	return s.kv.Set(ctx, kvstore.CurrentUserKey, username)
}

// Current returns the logged-in username, or "" when nobody is.
func (s *Service) Current(ctx context.Context) (string, error) {
	v, ok, err := s.kv.Get(ctx, kvstore.CurrentUserKey)
	if err != nil || !ok {
		return "", err
	}
	return v, nil
}

// Logout clears the current-user marker. Logging out while logged out is
// fine.
func (s *Service) Logout(ctx context.Context) error {
	return s.kv.Delete(ctx, kvstore.CurrentUserKey)
}

func validateCredentials(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return &Error{
			Status:  422,
			Code:    "VALIDATION_ERROR",
			Message: "invalid username",
			Details: map[string]any{"username": "must be non-empty"},
		}
	}
	if password == "" {
		return &Error{
			Status:  422,
			Code:    "VALIDATION_ERROR",
			Message: "invalid password",
			Details: map[string]any{"password": "must be non-empty"},
		}
	}
	return nil
}
