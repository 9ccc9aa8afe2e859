package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shandysiswandi/expensio/internal/pkg/goerror"
	"github.com/shandysiswandi/expensio/internal/pkg/hash"
)

func TestPasswordReset_ReplacesPassword(t *testing.T) {

	// Arrange
	bcrypt := hash.NewBcrypt(4, "")
	oldHash, _ := bcrypt.Hash("OldSecret1!")
	fx := newFixture(t, newFakeRepo(&fakeUser{
		id: 1, email: "dina@example.com", fullName: "Dina Putri", password: string(oldHash),
	}))

	// Act
	out, err := fx.uc.PasswordReset(context.Background(), PasswordResetInput{
		Email:       "dina@example.com",
		NewPassword: "NewSecret2!",
	})

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Email != "dina@example.com" {
		t.Fatalf("unexpected output email %q", out.Email)
	}

	u := fx.repo.users["dina@example.com"]
	if !bcrypt.Verify(u.password, "NewSecret2!") {
		t.Fatalf("stored password does not match the new password")
	}
	if bcrypt.Verify(u.password, "OldSecret1!") {
		t.Fatalf("old password must no longer match")
	}
}

func TestPasswordReset_DoesNotRequirePriorVerification(t *testing.T) {

	// Arrange: an unconsumed challenge is still installed.
	code := "482913"
	expiry := time.Date(2025, 6, 1, 10, 5, 0, 0, time.UTC)
	fx := newFixture(t, newFakeRepo(&fakeUser{
		id: 1, email: "dina@example.com", fullName: "Dina Putri",
		otpSecret: &code, otpExpiry: &expiry,
	}))

	// Act
	_, err := fx.uc.PasswordReset(context.Background(), PasswordResetInput{
		Email:       "dina@example.com",
		NewPassword: "NewSecret2!",
	})

	// Assert
	if err != nil {
		t.Fatalf("reset is independent of the verification step: %v", err)
	}

	u := fx.repo.users["dina@example.com"]
	if u.otpSecret == nil {
		t.Fatalf("reset must not touch the challenge state")
	}
}

func TestPasswordReset_UnknownEmail(t *testing.T) {

	// Arrange
	fx := newFixture(t, newFakeRepo())

	// Act
	_, err := fx.uc.PasswordReset(context.Background(), PasswordResetInput{
		Email:       "ghost@example.com",
		NewPassword: "NewSecret2!",
	})

	// Assert
	assertErrCode(t, err, goerror.CodeNotFound)
}

func TestPasswordReset_WeakPassword(t *testing.T) {

	// Arrange
	fx := newFixture(t, newFakeRepo(&fakeUser{id: 1, email: "dina@example.com", fullName: "Dina Putri"}))

	// Act
	_, err := fx.uc.PasswordReset(context.Background(), PasswordResetInput{
		Email:       "dina@example.com",
		NewPassword: "short",
	})

	// Assert
	assertErrCode(t, err, goerror.CodeInvalidInput)
}
