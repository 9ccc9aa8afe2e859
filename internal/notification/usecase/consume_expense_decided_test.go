package usecase

import (
	"testing"
)

func TestConsumeExpenseDecided_ApprovedWithNote(t *testing.T) {
	// Arrange
	fx := newFixture(t)

	// Act
	err := fx.uc.ConsumeExpenseDecided(t.Context(), ConsumeExpenseDecidedInput{
		ExpenseID: 101,
		UserID:    7,
		UserEmail: "dina@example.com",
		Decision:  "Approved",
		Note:      "Within travel policy",
	})

	// Assert
	if err != nil {
		t.Fatalf("ConsumeExpenseDecided() error = %v", err)
	}

	msg := assertSentTo(t, fx.mail, "dina@example.com")
	if msg.Subject != "Expense approved" {
		t.Fatalf("subject = %q, want %q", msg.Subject, "Expense approved")
	}
	hasSubstr(t, msg.TextBody, "#101 has been approved", "decision body")
	hasSubstr(t, msg.TextBody, "Within travel policy", "decision body")
}

func TestConsumeExpenseDecided_RejectedWithoutNote(t *testing.T) {
	// Arrange
	fx := newFixture(t)

	// Act
	err := fx.uc.ConsumeExpenseDecided(t.Context(), ConsumeExpenseDecidedInput{
		ExpenseID: 102,
		UserID:    7,
		UserEmail: "dina@example.com",
		Decision:  "Rejected",
	})

	// Assert
	if err != nil {
		t.Fatalf("ConsumeExpenseDecided() error = %v", err)
	}

	msg := assertSentTo(t, fx.mail, "dina@example.com")
	if msg.Subject != "Expense rejected" {
		t.Fatalf("subject = %q, want %q", msg.Subject, "Expense rejected")
	}
	hasSubstr(t, msg.TextBody, "#102 has been rejected", "decision body")
}

func TestConsumeExpenseDecided_UnknownDecisionIsDropped(t *testing.T) {
	// Arrange
	fx := newFixture(t)

	// Act
	err := fx.uc.ConsumeExpenseDecided(t.Context(), ConsumeExpenseDecidedInput{
		ExpenseID: 103,
		UserID:    7,
		UserEmail: "dina@example.com",
		Decision:  "Maybe",
	})

	// Assert
	if err != nil {
		t.Fatalf("ConsumeExpenseDecided() error = %v, want nil", err)
	}
	if len(fx.mail.sent) != 0 {
		t.Fatalf("sent emails = %d, want 0", len(fx.mail.sent))
	}
}
