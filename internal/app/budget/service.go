// Package budget stores each user's trip budget: an expense list plus a
// spending limit.
package budget

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/roamplan/travel-planner-api/internal/domain"
	"github.com/roamplan/travel-planner-api/internal/platform/keylock"
	"github.com/roamplan/travel-planner-api/internal/ports/out/kvstore"
)

type Service struct {
	kv     kvstore.Store
	locks  *keylock.KeyedMutex
	logger *slog.Logger

	newExpenseID func() string
}

func NewService(kv kvstore.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		kv:           kv,
		locks:        keylock.New(),
		logger:       logger,
		newExpenseID: uuid.NewString,
	}
}

// Load returns the user's budget. A missing or unreadable record reads as
// an empty budget with no limit.
func (s *Service) Load(ctx context.Context, username string) (domain.Budget, error) {
	empty := domain.Budget{Expenses: []domain.Expense{}}

	raw, ok, err := s.kv.Get(ctx, kvstore.ExpensesKey(username))
	if err != nil {
		return domain.Budget{}, err
	}
	if !ok {
		return empty, nil
	}
	var b domain.Budget
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		s.logger.Error("unreadable budget record", "username", username, "err", err)
		return empty, nil
	}
	if b.Expenses == nil {
		b.Expenses = []domain.Expense{}
	}
	return b, nil
}

// Save replaces the user's budget wholesale.
func (s *Service) Save(ctx context.Context, username string, b domain.Budget) error {
	if username == "" {
		return &Error{Status: 401, Code: "NOT_LOGGED_IN", Message: "not logged in"}
	}
	unlock := s.locks.Lock(username)
	defer unlock()
	return s.save(ctx, username, b)
}

// AddExpense appends one expense, generating an id when the caller
// supplies none, and returns the stored record.
func (s *Service) AddExpense(ctx context.Context, username string, e domain.Expense) (domain.Expense, error) {
	if username == "" {
		return domain.Expense{}, &Error{Status: 401, Code: "NOT_LOGGED_IN", Message: "not logged in"}
	}
	if strings.TrimSpace(e.Name) == "" {
		return domain.Expense{}, &Error{
			Status:  422,
			Code:    "VALIDATION_ERROR",
			Message: "invalid expense",
			Details: map[string]any{"name": "must be non-empty"},
		}
	}
	if e.Amount < 0 {
		return domain.Expense{}, &Error{
			Status:  422,
			Code:    "VALIDATION_ERROR",
			Message: "invalid expense",
			Details: map[string]any{"amount": "must not be negative"},
		}
	}
	if e.ID == "" {
		e.ID = s.newExpenseID()
	}

	unlock := s.locks.Lock(username)
	defer unlock()

	b, err := s.Load(ctx, username)
	if err != nil {
		return domain.Expense{}, err
	}
	b.Expenses = append(b.Expenses, e)
	if err := s.save(ctx, username, b); err != nil {
		return domain.Expense{}, err
	}
	return e, nil
}

// Summary computes the derived totals for the user's stored budget.
func (s *Service) Summary(ctx context.Context, username string) (domain.BudgetSummary, error) {
	b, err := s.Load(ctx, username)
	if err != nil {
		return domain.BudgetSummary{}, err
	}
	return domain.Summarize(b), nil
}

func (s *Service) save(ctx context.Context, username string, b domain.Budget) error {
	if b.Expenses == nil {
		b.Expenses = []domain.Expense{}
	}
	raw, err := json.Marshal(b)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, kvstore.ExpensesKey(username), string(raw))
}
