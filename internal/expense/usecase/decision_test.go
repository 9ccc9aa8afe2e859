package usecase

import (
	"testing"

	"github.com/shandysiswandi/expensio/internal/expense/entity"
	"github.com/shandysiswandi/expensio/internal/pkg/goerror"
)

func pendingExpense(id, userID int64) *entity.Expense {
	return &entity.Expense{
		ID: id, UserID: userID, UserEmail: "dina@example.com",
		Category: entity.CategoryTravel, AmountCents: 125_00, Currency: "USD",
		Status: entity.ExpenseStatusPending,
	}
}

func TestDecide_ApprovesPendingExpense(t *testing.T) {

	// Arrange
	fx := newFixture(t)
	fx.repo.expenses[1] = pendingExpense(1, 10)
	ctx := authCtx(20, "boss@example.com", "manager")

	// Act
	out, err := fx.uc.Decide(ctx, DecisionInput{ExpenseID: 1, Decision: "approve", Note: "ok"})

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != entity.ExpenseStatusApproved {
		t.Fatalf("expected approved, got %v", out.Status)
	}

	e := fx.repo.expenses[1]
	if e.DecidedBy == nil || *e.DecidedBy != 20 {
		t.Fatalf("expected decided_by 20, got %v", e.DecidedBy)
	}

	if len(fx.pub.decided) != 1 || fx.pub.decided[0].ExpenseID != 1 {
		t.Fatalf("expected one decided event, got %+v", fx.pub.decided)
	}
}

func TestDecide_SecondDecisionConflicts(t *testing.T) {

	// Arrange
	fx := newFixture(t)
	fx.repo.expenses[1] = pendingExpense(1, 10)
	ctx := authCtx(20, "boss@example.com", "manager")

	if _, err := fx.uc.Decide(ctx, DecisionInput{ExpenseID: 1, Decision: "reject", Note: "no receipt"}); err != nil {
		t.Fatalf("first decision should succeed: %v", err)
	}

	// Act
	_, err := fx.uc.Decide(ctx, DecisionInput{ExpenseID: 1, Decision: "approve"})

	// Assert
	assertErrCode(t, err, goerror.CodeConflict)

	if fx.repo.expenses[1].Status != entity.ExpenseStatusRejected {
		t.Fatalf("first decision must stand, got %v", fx.repo.expenses[1].Status)
	}
}

func TestDecide_OwnExpenseForbidden(t *testing.T) {

	// Arrange
	fx := newFixture(t)
	fx.repo.expenses[1] = pendingExpense(1, 20)
	ctx := authCtx(20, "boss@example.com", "manager")

	// Act
	_, err := fx.uc.Decide(ctx, DecisionInput{ExpenseID: 1, Decision: "approve"})

	// Assert
	assertErrCode(t, err, goerror.CodeForbidden)
}

func TestDecide_UnknownExpense(t *testing.T) {

	// Arrange
	fx := newFixture(t)
	ctx := authCtx(20, "boss@example.com", "manager")

	// Act
	_, err := fx.uc.Decide(ctx, DecisionInput{ExpenseID: 404, Decision: "approve"})

	// Assert
	assertErrCode(t, err, goerror.CodeNotFound)
}
