package budget

import (
	"context"
	"errors"
	"testing"

	memkvstore "github.com/roamplan/travel-planner-api/internal/adapters/memory/kvstore"
	"github.com/roamplan/travel-planner-api/internal/domain"
	"github.com/roamplan/travel-planner-api/internal/ports/out/kvstore"
)

func newTestService() (*Service, *memkvstore.Store) {
	kv := memkvstore.NewStore()
	return NewService(kv, nil), kv
}

func TestService_LoadDefaultsToEmptyBudget(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	b, err := svc.Load(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(b.Expenses) != 0 || b.Limit != "" {
		t.Fatalf("budget=%+v, want empty", b)
	}
}

func TestService_SaveThenLoadRoundTrip(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	ctx := context.Background()

	in := domain.Budget{
		Expenses: []domain.Expense{
			{ID: "e1", Name: "Flights", Amount: 450, Color: "#ff0000"},
			{ID: "e2", Name: "Hotels", Amount: 600, Color: "#00ff00"},
		},
		Limit: "2000",
	}
	if err := svc.Save(ctx, "alice", in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := svc.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(out.Expenses) != 2 || out.Limit != "2000" {
		t.Fatalf("budget=%+v", out)
	}
	if out.Expenses[0] != in.Expenses[0] {
		t.Fatalf("expense=%+v, want %+v", out.Expenses[0], in.Expenses[0])
	}
}

func TestService_AddExpenseGeneratesID(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.AddExpense(ctx, "alice", domain.Expense{Name: "Food", Amount: 120})
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected a generated id")
	}

	b, _ := svc.Load(ctx, "alice")
	if len(b.Expenses) != 1 || b.Expenses[0].ID != created.ID {
		t.Fatalf("budget=%+v, want the created expense", b)
	}
}

func TestService_AddExpenseValidation(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	ctx := context.Background()
	ae := (*Error)(nil)

	_, err := svc.AddExpense(ctx, "", domain.Expense{Name: "Food", Amount: 1})
	if !errors.As(err, &ae) || ae.Status != 401 || ae.Code != "NOT_LOGGED_IN" {
		t.Fatalf("err=%v, want NOT_LOGGED_IN 401", err)
	}

	_, err = svc.AddExpense(ctx, "alice", domain.Expense{Name: "  ", Amount: 1})
	if !errors.As(err, &ae) || ae.Status != 422 {
		t.Fatalf("err=%v, want VALIDATION_ERROR 422 for blank name", err)
	}

	_, err = svc.AddExpense(ctx, "alice", domain.Expense{Name: "Food", Amount: -5})
	if !errors.As(err, &ae) || ae.Status != 422 {
		t.Fatalf("err=%v, want VALIDATION_ERROR 422 for negative amount", err)
	}
}

func TestService_UnreadableRecordReadsAsEmpty(t *testing.T) {
	t.Parallel()

	svc, kv := newTestService()
	ctx := context.Background()

	if err := kv.Set(ctx, kvstore.ExpensesKey("alice"), "not json"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	b, err := svc.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(b.Expenses) != 0 || b.Limit != "" {
		t.Fatalf("budget=%+v, want empty", b)
	}
}

func TestService_SummaryUsesStoredBudget(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	ctx := context.Background()

	err := svc.Save(ctx, "alice", domain.Budget{
		Expenses: []domain.Expense{{ID: "e1", Name: "Flights", Amount: 500}},
		Limit:    "1000",
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	sum, err := svc.Summary(ctx, "alice")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.TotalSpent != 500 || sum.Limit != 1000 || sum.Remaining != 500 || sum.Percentage != 50 {
		t.Fatalf("summary=%+v", sum)
	}
}
