package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shandysiswandi/expensio/internal/pkg/goerror"
)

func challengedUser(code string, expiry time.Time) *fakeUser {
	return &fakeUser{
		id: 1, email: "dina@example.com", fullName: "Dina Putri",
		otpSecret: &code, otpExpiry: &expiry,
	}
}

func TestOTPVerify_JustBeforeExpiry(t *testing.T) {

	// Arrange
	issued := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	fx := newFixture(t, newFakeRepo(challengedUser("482913", issued.Add(5*time.Minute))))
	fx.clock.now = issued.Add(299 * time.Second)

	// Act
	out, err := fx.uc.OTPVerify(context.Background(), OTPVerifyInput{Email: "dina@example.com", Code: "482913"})

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Email != "dina@example.com" {
		t.Fatalf("unexpected output email %q", out.Email)
	}

	u := fx.repo.users["dina@example.com"]
	if u.otpSecret != nil || u.otpExpiry != nil {
		t.Fatalf("both code and expiry must be consumed together, got secret=%v expiry=%v", u.otpSecret, u.otpExpiry)
	}
}

func TestOTPVerify_JustAfterExpiry(t *testing.T) {

	// Arrange
	issued := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	fx := newFixture(t, newFakeRepo(challengedUser("482913", issued.Add(5*time.Minute))))
	fx.clock.now = issued.Add(301 * time.Second)

	// Act
	_, err := fx.uc.OTPVerify(context.Background(), OTPVerifyInput{Email: "dina@example.com", Code: "482913"})

	// Assert
	assertErrCode(t, err, goerror.CodeBadRequest)

	u := fx.repo.users["dina@example.com"]
	if u.otpSecret == nil || u.otpExpiry == nil {
		t.Fatalf("expired challenge must stay until superseded, got secret=%v expiry=%v", u.otpSecret, u.otpExpiry)
	}
}

func TestOTPVerify_SecondAttemptFindsNoChallenge(t *testing.T) {

	// Arrange
	fx := newFixture(t, newFakeRepo(challengedUser("482913", time.Date(2025, 6, 1, 10, 5, 0, 0, time.UTC))))

	if _, err := fx.uc.OTPVerify(context.Background(), OTPVerifyInput{Email: "dina@example.com", Code: "482913"}); err != nil {
		t.Fatalf("first verification should succeed: %v", err)
	}

	// Act
	_, err := fx.uc.OTPVerify(context.Background(), OTPVerifyInput{Email: "dina@example.com", Code: "482913"})

	// Assert
	assertErrCode(t, err, goerror.CodeBadRequest)
}

func TestOTPVerify_WrongCodeLeavesChallengeActive(t *testing.T) {

	// Arrange
	expiry := time.Date(2025, 6, 1, 10, 5, 0, 0, time.UTC)
	fx := newFixture(t, newFakeRepo(challengedUser("482913", expiry)))

	// Act
	_, err := fx.uc.OTPVerify(context.Background(), OTPVerifyInput{Email: "dina@example.com", Code: "111111"})

	// Assert
	assertErrCode(t, err, goerror.CodeBadRequest)

	u := fx.repo.users["dina@example.com"]
	if u.otpSecret == nil || *u.otpSecret != "482913" {
		t.Fatalf("a wrong guess must not consume the challenge, got %v", u.otpSecret)
	}

	// The real code still works afterwards.
	if _, err := fx.uc.OTPVerify(context.Background(), OTPVerifyInput{Email: "dina@example.com", Code: "482913"}); err != nil {
		t.Fatalf("correct code should still verify: %v", err)
	}
}

func TestOTPVerify_NoChallengeIssued(t *testing.T) {

	// Arrange
	fx := newFixture(t, newFakeRepo(&fakeUser{id: 1, email: "dina@example.com", fullName: "Dina Putri"}))

	// Act
	_, err := fx.uc.OTPVerify(context.Background(), OTPVerifyInput{Email: "dina@example.com", Code: "482913"})

	// Assert
	assertErrCode(t, err, goerror.CodeBadRequest)
}

func TestOTPVerify_UnknownEmail(t *testing.T) {

	// Arrange
	fx := newFixture(t, newFakeRepo())

	// Act
	_, err := fx.uc.OTPVerify(context.Background(), OTPVerifyInput{Email: "ghost@example.com", Code: "482913"})

	// Assert
	assertErrCode(t, err, goerror.CodeNotFound)
}
