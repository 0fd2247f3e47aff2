package service

import (
	"errors"
	"testing"

	"finance_tracker/internal/domain"
)

func TestBudgetValidation(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "alice")
	category := seedCategory(t, db, "Groceries")

	t.Run("negative limit rejected", func(t *testing.T) {
		_, err := CreateBudget(db, user.ID, BudgetInput{Limit: -1, CategoryID: category.ID})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("negative limit = %v, want ErrValidation", err)
		}
	})

	t.Run("zero limit allowed", func(t *testing.T) {
		budget, err := CreateBudget(db, user.ID, BudgetInput{Limit: 0, CategoryID: category.ID})
		if err != nil {
			t.Fatalf("zero limit: %v", err)
		}
		if budget.Limit != 0 {
			t.Errorf("limit = %v, want 0", budget.Limit)
		}
	})

	t.Run("unknown period rejected", func(t *testing.T) {
		_, err := CreateBudget(db, user.ID, BudgetInput{Limit: 100, Period: "yearly", CategoryID: category.ID})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("unknown period = %v, want ErrValidation", err)
		}
	})

	t.Run("missing category rejected", func(t *testing.T) {
		_, err := CreateBudget(db, user.ID, BudgetInput{Limit: 100})
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("missing category = %v, want ErrValidation", err)
		}
	})
}

func TestCreateBudgetDefaultPeriod(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "alice")
	category := seedCategory(t, db, "Groceries")

	budget, err := CreateBudget(db, user.ID, BudgetInput{Limit: 500, CategoryID: category.ID})
	if err != nil {
		t.Fatalf("CreateBudget: %v", err)
	}
	if budget.Period != domain.PeriodMonthly {
		t.Errorf("period = %q, want monthly", budget.Period)
	}
	if budget.Category.Name != "Groceries" {
		t.Errorf("category not preloaded: %+v", budget.Category)
	}
}

func TestUpdateBudget(t *testing.T) {
	db := testDB(t)
	user := seedUser(t, db, "alice")
	category := seedCategory(t, db, "Groceries")

	budget, err := CreateBudget(db, user.ID, BudgetInput{Limit: 500, Period: domain.PeriodWeekly, CategoryID: category.ID})
	if err != nil {
		t.Fatalf("CreateBudget: %v", err)
	}

	t.Run("replaces limit and period", func(t *testing.T) {
		updated, err := UpdateBudget(db, user.ID, budget.ID, BudgetInput{Limit: 250, Period: domain.PeriodDaily})
		if err != nil {
			t.Fatalf("UpdateBudget: %v", err)
		}
		if updated.Limit != 250 || updated.Period != domain.PeriodDaily {
			t.Errorf("update not applied: %+v", updated)
		}
	})

	t.Run("empty period keeps the current one", func(t *testing.T) {
		updated, err := UpdateBudget(db, user.ID, budget.ID, BudgetInput{Limit: 300})
		if err != nil {
			t.Fatalf("UpdateBudget: %v", err)
		}
		if updated.Period != domain.PeriodDaily {
			t.Errorf("period = %q, want daily", updated.Period)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		if _, err := UpdateBudget(db, user.ID, 9999, BudgetInput{Limit: 1}); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("UpdateBudget(9999) = %v, want ErrNotFound", err)
		}
	})
}

func TestBudgetCrossUserIsolation(t *testing.T) {
	db := testDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	category := seedCategory(t, db, "Groceries")

	created, err := CreateBudget(db, alice.ID, BudgetInput{Limit: 500, CategoryID: category.ID})
	if err != nil {
		t.Fatalf("CreateBudget: %v", err)
	}

	if rows, err := ListBudgets(db, bob.ID, 1, 10); err != nil || len(rows) != 0 {
		t.Errorf("bob sees %d of alice's budgets (err %v)", len(rows), err)
	}
	if _, err := GetBudget(db, bob.ID, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("cross-user get = %v, want ErrNotFound", err)
	}
	if _, err := DeleteBudget(db, bob.ID, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("cross-user delete = %v, want ErrNotFound", err)
	}
}
