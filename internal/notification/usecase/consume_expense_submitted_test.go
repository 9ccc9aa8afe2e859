package usecase

import (
	"testing"
)

func TestConsumeExpenseSubmitted_SendsConfirmation(t *testing.T) {
	// Arrange
	fx := newFixture(t)

	// Act
	err := fx.uc.ConsumeExpenseSubmitted(t.Context(), ConsumeExpenseSubmittedInput{
		ExpenseID:   101,
		UserID:      7,
		UserEmail:   "dina@example.com",
		Category:    "travel",
		AmountCents: 12345,
		Currency:    "USD",
	})

	// Assert
	if err != nil {
		t.Fatalf("ConsumeExpenseSubmitted() error = %v", err)
	}

	msg := assertSentTo(t, fx.mail, "dina@example.com")
	if msg.Subject != "Expense received" {
		t.Fatalf("subject = %q, want %q", msg.Subject, "Expense received")
	}
	hasSubstr(t, msg.TextBody, "123.45 USD", "confirmation body")
	hasSubstr(t, msg.TextBody, "travel", "confirmation body")
	hasSubstr(t, msg.TextBody, "#101", "confirmation body")
}

func TestConsumeExpenseSubmitted_GivesUpAfterRetries(t *testing.T) {
	// Arrange
	fx := newFixture(t)
	fx.mail.failures = 10

	// Act
	err := fx.uc.ConsumeExpenseSubmitted(t.Context(), ConsumeExpenseSubmittedInput{
		ExpenseID:   101,
		UserID:      7,
		UserEmail:   "dina@example.com",
		Category:    "travel",
		AmountCents: 12345,
		Currency:    "USD",
	})

	// Assert: the error surfaces so the broker can redeliver.
	if err == nil {
		t.Fatal("ConsumeExpenseSubmitted() error = nil, want delivery failure")
	}
	if fx.mail.attempts != 4 {
		t.Fatalf("send attempts = %d, want 4", fx.mail.attempts)
	}
}
