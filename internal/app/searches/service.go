// Package searches keeps each user's recent destination searches.
package searches

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/roamplan/travel-planner-api/internal/domain"
	"github.com/roamplan/travel-planner-api/internal/platform/keylock"
	"github.com/roamplan/travel-planner-api/internal/ports/out/kvstore"
)

type Service struct {
	kv     kvstore.Store
	locks  *keylock.KeyedMutex
	logger *slog.Logger
}

func NewService(kv kvstore.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{kv: kv, locks: keylock.New(), logger: logger}
}

// Add records term in the user's history, trimmed and lower-cased.
// Duplicates, blank terms, and anonymous callers are all silently ignored:
// recording a search is best-effort and must never fail a page load.
func (s *Service) Add(ctx context.Context, username, term string) error {
	if username == "" {
		return nil
	}
	norm := domain.NormalizeSearchTerm(term)
	if norm == "" {
		return nil
	}

	unlock := s.locks.Lock(username)
	defer unlock()

	terms, err := s.List(ctx, username)
	if err != nil {
		return err
	}
	for _, t := range terms {
		if t == norm {
			return nil
		}
	}
	return s.save(ctx, username, append(terms, norm))
}

// List returns the user's history, oldest first. Anonymous callers get an
// empty list.
func (s *Service) List(ctx context.Context, username string) ([]string, error) {
	if username == "" {
		return []string{}, nil
	}
	raw, ok, err := s.kv.Get(ctx, kvstore.PastSearchesKey(username))
	if err != nil {
		return nil, err
	}
	if !ok {
		return []string{}, nil
	}
	var terms []string
	if err := json.Unmarshal([]byte(raw), &terms); err != nil {
		s.logger.Error("unreadable search history record", "username", username, "err", err)
		return []string{}, nil
	}
	if terms == nil {
		terms = []string{}
	}
	return terms, nil
}

// Delete removes term from the history. The lookup is by normalized form,
// so the caller's casing does not matter. An absent term is a no-op.
func (s *Service) Delete(ctx context.Context, username, term string) error {
	if username == "" {
		return nil
	}
	norm := domain.NormalizeSearchTerm(term)

	unlock := s.locks.Lock(username)
	defer unlock()

	terms, err := s.List(ctx, username)
	if err != nil {
		return err
	}
	kept := make([]string, 0, len(terms))
	for _, t := range terms {
		if t != norm {
			kept = append(kept, t)
		}
	}
	return s.save(ctx, username, kept)
}

func (s *Service) save(ctx context.Context, username string, terms []string) error {
	raw, err := json.Marshal(terms)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, kvstore.PastSearchesKey(username), string(raw))
}
