package usecase

import (
	"testing"

	"github.com/shandysiswandi/expensio/internal/expense/entity"
	"github.com/shandysiswandi/expensio/internal/pkg/goerror"
)

func TestSubmit_PendingWithoutRule(t *testing.T) {

	// Arrange
	fx := newFixture(t)
	ctx := authCtx(10, "dina@example.com", "employee")

	// Act
	out, err := fx.uc.Submit(ctx, SubmitInput{
		Category:    "travel",
		AmountCents: 125_00,
		Currency:    "usd",
		Description: "Taxi to client site",
	})

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != entity.ExpenseStatusPending {
		t.Fatalf("expected pending status, got %v", out.Status)
	}
	if out.Currency != "USD" {
		t.Fatalf("expected normalized currency, got %q", out.Currency)
	}

	if len(fx.pub.submitted) != 1 || fx.pub.submitted[0].ExpenseID != out.ID {
		t.Fatalf("expected one submitted event, got %+v", fx.pub.submitted)
	}
}

func TestSubmit_AutoApprovedUnderRuleThreshold(t *testing.T) {

	// Arrange
	fx := newFixture(t)
	fx.repo.rules[ruleKey(entity.CategoryMeals, "USD")] = &entity.ApprovalRule{
		ID: 99, Category: entity.CategoryMeals, Currency: "USD", MaxAmountCents: 50_00,
	}
	ctx := authCtx(10, "dina@example.com", "employee")

	// Act
	out, err := fx.uc.Submit(ctx, SubmitInput{
		Category:    "meals",
		AmountCents: 42_00,
		Currency:    "USD",
	})

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != entity.ExpenseStatusApproved {
		t.Fatalf("amount under threshold should auto-approve, got %v", out.Status)
	}
}

func TestSubmit_PendingOverRuleThreshold(t *testing.T) {

	// Arrange
	fx := newFixture(t)
	fx.repo.rules[ruleKey(entity.CategoryMeals, "USD")] = &entity.ApprovalRule{
		ID: 99, Category: entity.CategoryMeals, Currency: "USD", MaxAmountCents: 50_00,
	}
	ctx := authCtx(10, "dina@example.com", "employee")

	// Act
	out, err := fx.uc.Submit(ctx, SubmitInput{
		Category:    "meals",
		AmountCents: 50_01,
		Currency:    "USD",
	})

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != entity.ExpenseStatusPending {
		t.Fatalf("amount over threshold must wait for a decision, got %v", out.Status)
	}
}

func TestSubmit_IdempotencyKeyBlocksReplay(t *testing.T) {

	// Arrange
	fx := newFixture(t)
	ctx := authCtx(10, "dina@example.com", "employee")
	in := SubmitInput{
		IdempotencyKey: "retry-abc",
		Category:       "travel",
		AmountCents:    125_00,
		Currency:       "USD",
	}

	if _, err := fx.uc.Submit(ctx, in); err != nil {
		t.Fatalf("first submission should succeed: %v", err)
	}

	// Act
	_, err := fx.uc.Submit(ctx, in)

	// Assert
	assertErrCode(t, err, goerror.CodeConflict)
	if len(fx.repo.expenses) != 1 {
		t.Fatalf("replay must not create a second expense, got %d", len(fx.repo.expenses))
	}
}

func TestSubmit_UnknownCategory(t *testing.T) {

	// Arrange
	fx := newFixture(t)
	ctx := authCtx(10, "dina@example.com", "employee")

	// Act
	_, err := fx.uc.Submit(ctx, SubmitInput{
		Category:    "yachts",
		AmountCents: 1_000_00,
		Currency:    "USD",
	})

	// Assert
	assertErrCode(t, err, goerror.CodeInvalidInput)
}

func TestSubmit_RequiresAuthentication(t *testing.T) {

	// Arrange
	fx := newFixture(t)

	// Act
	_, err := fx.uc.Submit(t.Context(), SubmitInput{
		Category:    "travel",
		AmountCents: 125_00,
		Currency:    "USD",
	})

	// Assert
	assertErrCode(t, err, goerror.CodeUnauthorized)
}
