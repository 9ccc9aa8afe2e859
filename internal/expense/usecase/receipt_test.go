package usecase

import (
	"strings"
	"testing"

	"github.com/shandysiswandi/expensio/internal/pkg/goerror"
)

func TestReceiptUpload_StoresFileAndKey(t *testing.T) {

	// Arrange
	fx := newFixture(t)
	fx.repo.expenses[1] = pendingExpense(1, 10)
	ctx := authCtx(10, "dina@example.com", "employee")

	// Act
	out, err := fx.uc.ReceiptUpload(ctx, ReceiptUploadInput{
		ExpenseID:   1,
		File:        strings.NewReader("%PDF-1.4 receipt bytes"),
		ContentType: "application/pdf",
	})

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ReceiptKey == "" {
		t.Fatalf("expected a receipt key")
	}

	if fx.repo.expenses[1].ReceiptKey != out.ReceiptKey {
		t.Fatalf("receipt key not persisted on the expense")
	}

	if len(fx.store.objects) != 1 || string(fx.store.objects[0].Body) != "%PDF-1.4 receipt bytes" {
		t.Fatalf("file body was not stored, got %+v", fx.store.objects)
	}
}

func TestReceiptUpload_OtherUsersExpenseHidden(t *testing.T) {

	// Arrange
	fx := newFixture(t)
	fx.repo.expenses[1] = pendingExpense(1, 10)
	ctx := authCtx(77, "mallory@example.com", "employee")

	// Act
	_, err := fx.uc.ReceiptUpload(ctx, ReceiptUploadInput{
		ExpenseID: 1,
		File:      strings.NewReader("x"),
	})

	// Assert
	assertErrCode(t, err, goerror.CodeNotFound)
}

func TestReceiptURL_SignsStoredKey(t *testing.T) {

	// Arrange
	fx := newFixture(t)
	e := pendingExpense(1, 10)
	e.ReceiptKey = "receipts/abc"
	fx.repo.expenses[1] = e
	ctx := authCtx(10, "dina@example.com", "employee")

	// Act
	out, err := fx.uc.ReceiptURL(ctx, ReceiptURLInput{ExpenseID: 1})

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.URL, "receipts/abc") {
		t.Fatalf("expected signed url for the stored key, got %q", out.URL)
	}
}

func TestReceiptURL_NoReceipt(t *testing.T) {

	// Arrange
	fx := newFixture(t)
	fx.repo.expenses[1] = pendingExpense(1, 10)
	ctx := authCtx(10, "dina@example.com", "employee")

	// Act
	_, err := fx.uc.ReceiptURL(ctx, ReceiptURLInput{ExpenseID: 1})

	// Assert
	assertErrCode(t, err, goerror.CodeNotFound)
}

func TestReceiptURL_ManagerCanView(t *testing.T) {

	// Arrange
	fx := newFixture(t)
	e := pendingExpense(1, 10)
	e.ReceiptKey = "receipts/abc"
	fx.repo.expenses[1] = e
	ctx := authCtx(20, "boss@example.com", "manager")

	// Act
	_, err := fx.uc.ReceiptURL(ctx, ReceiptURLInput{ExpenseID: 1})

	// Assert
	if err != nil {
		t.Fatalf("managers can view receipts: %v", err)
	}
}
