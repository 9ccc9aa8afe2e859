package usecase

import (
	"strings"
	"testing"

	"github.com/shandysiswandi/expensio/internal/expense/entity"
)

func TestSummary_GroupsByCategory(t *testing.T) {

	// Arrange
	fx := newFixture(t)
	fx.repo.expenses[1] = &entity.Expense{
		ID: 1, UserID: 10, Category: entity.CategoryTravel,
		AmountCents: 100_00, Currency: "USD", Status: entity.ExpenseStatusApproved,
	}
	fx.repo.expenses[2] = &entity.Expense{
		ID: 2, UserID: 10, Category: entity.CategoryTravel,
		AmountCents: 50_00, Currency: "USD", Status: entity.ExpenseStatusPending,
	}
	fx.repo.expenses[3] = &entity.Expense{
		ID: 3, UserID: 10, Category: entity.CategoryMeals,
		AmountCents: 20_00, Currency: "USD", Status: entity.ExpenseStatusRejected,
	}
	fx.repo.expenses[4] = &entity.Expense{
		ID: 4, UserID: 99, Category: entity.CategoryMeals, // someone else's
		AmountCents: 999_00, Currency: "USD", Status: entity.ExpenseStatusApproved,
	}
	ctx := authCtx(10, "dina@example.com", "employee")

	// Act
	out, err := fx.uc.Summary(ctx)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.TotalCents != 170_00 {
		t.Fatalf("expected total 17000 for the caller only, got %d", out.TotalCents)
	}

	if len(out.Categories) != 2 {
		t.Fatalf("expected two categories, got %+v", out.Categories)
	}

	byName := map[entity.Category]entity.CategorySummary{}
	for _, c := range out.Categories {
		byName[c.Category] = c
	}

	travel := byName[entity.CategoryTravel]
	if travel.Count != 2 || travel.TotalCents != 150_00 || travel.ApprovedCents != 100_00 || travel.PendingCents != 50_00 {
		t.Fatalf("unexpected travel summary: %+v", travel)
	}

	meals := byName[entity.CategoryMeals]
	if meals.Count != 1 || meals.RejectedCents != 20_00 {
		t.Fatalf("unexpected meals summary: %+v", meals)
	}

	// Categories arrive sorted for stable responses.
	for i := 1; i < len(out.Categories); i++ {
		if strings.Compare(out.Categories[i-1].Category.String(), out.Categories[i].Category.String()) > 0 {
			t.Fatalf("categories are not sorted: %+v", out.Categories)
		}
	}
}

func TestSummary_EmptyForNewUser(t *testing.T) {

	// Arrange
	fx := newFixture(t)
	ctx := authCtx(10, "dina@example.com", "employee")

	// Act
	out, err := fx.uc.Summary(ctx)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Categories) != 0 || out.TotalCents != 0 {
		t.Fatalf("expected empty summary, got %+v", out)
	}
}
