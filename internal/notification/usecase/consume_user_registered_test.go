package usecase

import (
	"testing"
)

func TestConsumeUserRegistered_SendsWelcomeEmail(t *testing.T) {
	// Arrange
	fx := newFixture(t)

	// Act
	err := fx.uc.ConsumeUserRegistered(t.Context(), ConsumeUserRegisteredInput{
		UserID:   7,
		Email:    "dina@example.com",
		FullName: "Dina Putri",
	})

	// Assert
	if err != nil {
		t.Fatalf("ConsumeUserRegistered() error = %v", err)
	}

	msg := assertSentTo(t, fx.mail, "dina@example.com")
	if msg.Subject != "Welcome to Expensio" {
		t.Fatalf("subject = %q, want %q", msg.Subject, "Welcome to Expensio")
	}
	hasSubstr(t, msg.TextBody, "Dina Putri", "welcome body")
}

func TestConsumeUserRegistered_InvalidPayloadIsDropped(t *testing.T) {
	// Arrange
	fx := newFixture(t)

	// Act
	err := fx.uc.ConsumeUserRegistered(t.Context(), ConsumeUserRegisteredInput{
		UserID:   7,
		Email:    "not-an-email",
		FullName: "Dina Putri",
	})

	// Assert: a malformed event must not be redelivered.
	if err != nil {
		t.Fatalf("ConsumeUserRegistered() error = %v, want nil", err)
	}
	if len(fx.mail.sent) != 0 {
		t.Fatalf("sent emails = %d, want 0", len(fx.mail.sent))
	}
}

func TestConsumeUserRegistered_RetriesTransientFailure(t *testing.T) {
	// Arrange
	fx := newFixture(t)
	fx.mail.failures = 1

	// Act
	err := fx.uc.ConsumeUserRegistered(t.Context(), ConsumeUserRegisteredInput{
		UserID:   7,
		Email:    "dina@example.com",
		FullName: "Dina Putri",
	})

	// Assert
	if err != nil {
		t.Fatalf("ConsumeUserRegistered() error = %v", err)
	}
	if fx.mail.attempts != 2 {
		t.Fatalf("send attempts = %d, want 2", fx.mail.attempts)
	}
	assertSentTo(t, fx.mail, "dina@example.com")
}
