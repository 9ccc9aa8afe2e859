package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shandysiswandi/expensio/internal/pkg/goerror"
)

func TestPasswordForgot_IssuesCodeAndEmailsIt(t *testing.T) {

	// Arrange
	fx := newFixture(t, newFakeRepo(&fakeUser{id: 1, email: "dina@example.com", fullName: "Dina Putri"}))

	// Act
	out, err := fx.uc.PasswordForgot(context.Background(), PasswordForgotInput{Email: "Dina@Example.com"})

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Email != "dina@example.com" {
		t.Fatalf("expected normalized email, got %q", out.Email)
	}

	u := fx.repo.users["dina@example.com"]
	if u.otpSecret == nil || *u.otpSecret != "482913" {
		t.Fatalf("expected stored code 482913, got %v", u.otpSecret)
	}

	wantExpiry := fx.clock.now.Add(5 * time.Minute)
	if u.otpExpiry == nil || !u.otpExpiry.Equal(wantExpiry) {
		t.Fatalf("expected expiry %v, got %v", wantExpiry, u.otpExpiry)
	}

	if len(fx.mail.sent) != 1 || fx.mail.sent[0].Code != "482913" || fx.mail.sent[0].To != "dina@example.com" {
		t.Fatalf("expected one email with the stored code, got %+v", fx.mail.sent)
	}
}

func TestPasswordForgot_ReusesUnexpiredCode(t *testing.T) {

	// Arrange
	code := "653097"
	expiry := time.Date(2025, 6, 1, 10, 2, 0, 0, time.UTC) // two minutes left
	fx := newFixture(t, newFakeRepo(&fakeUser{
		id: 1, email: "dina@example.com", fullName: "Dina Putri",
		otpSecret: &code, otpExpiry: &expiry,
	}))

	// Act
	_, err := fx.uc.PasswordForgot(context.Background(), PasswordForgotInput{Email: "dina@example.com"})

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u := fx.repo.users["dina@example.com"]
	if u.otpSecret == nil || *u.otpSecret != code {
		t.Fatalf("active code must not be replaced, got %v", u.otpSecret)
	}
	if u.otpExpiry == nil || !u.otpExpiry.Equal(expiry) {
		t.Fatalf("active expiry must not move, got %v", u.otpExpiry)
	}

	if len(fx.mail.sent) != 1 || fx.mail.sent[0].Code != code {
		t.Fatalf("expected the existing code to be re-sent, got %+v", fx.mail.sent)
	}
}

func TestPasswordForgot_ReplacesExpiredCode(t *testing.T) {

	// Arrange
	code := "653097"
	expiry := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) // an hour stale
	fx := newFixture(t, newFakeRepo(&fakeUser{
		id: 1, email: "dina@example.com", fullName: "Dina Putri",
		otpSecret: &code, otpExpiry: &expiry,
	}))

	// Act
	_, err := fx.uc.PasswordForgot(context.Background(), PasswordForgotInput{Email: "dina@example.com"})

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u := fx.repo.users["dina@example.com"]
	if u.otpSecret == nil || *u.otpSecret != "482913" {
		t.Fatalf("expected a fresh code to replace the expired one, got %v", u.otpSecret)
	}
	if len(fx.mail.sent) != 1 || fx.mail.sent[0].Code != "482913" {
		t.Fatalf("expected the fresh code to be emailed, got %+v", fx.mail.sent)
	}
}

func TestPasswordForgot_UnknownEmail(t *testing.T) {

	// Arrange
	fx := newFixture(t, newFakeRepo())

	// Act
	_, err := fx.uc.PasswordForgot(context.Background(), PasswordForgotInput{Email: "ghost@example.com"})

	// Assert
	assertErrCode(t, err, goerror.CodeNotFound)
	if len(fx.mail.sent) != 0 {
		t.Fatalf("no email should be sent for unknown users, got %+v", fx.mail.sent)
	}
}

func TestPasswordForgot_DeliveryFailure(t *testing.T) {

	// Arrange
	fx := newFixture(t, newFakeRepo(&fakeUser{id: 1, email: "dina@example.com", fullName: "Dina Putri"}))
	fx.mail.err = errors.New("smtp: connection refused")

	// Act
	_, err := fx.uc.PasswordForgot(context.Background(), PasswordForgotInput{Email: "dina@example.com"})

	// Assert
	assertErrCode(t, err, goerror.CodeInternal)
}
