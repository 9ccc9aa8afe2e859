package usecase

import (
	"context"
	"testing"

	"github.com/shandysiswandi/expensio/internal/identity/entity"
	"github.com/shandysiswandi/expensio/internal/pkg/goerror"
	"github.com/shandysiswandi/expensio/internal/pkg/hash"
)

func TestLogin_Success(t *testing.T) {

	// Arrange
	pwHash, _ := hash.NewBcrypt(4, "").Hash("Secret123!")
	fx := newFixture(t, newFakeRepo(&fakeUser{
		id: 1, email: "dina@example.com", fullName: "Dina Putri",
		password: string(pwHash), role: entity.RoleManager,
	}))

	// Act
	out, err := fx.uc.Login(context.Background(), LoginInput{
		Email:    "dina@example.com",
		Password: "Secret123!",
	})

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.AccessToken != "signed-token" {
		t.Fatalf("expected access token from signer, got %q", out.AccessToken)
	}
	if out.Role != entity.RoleManager {
		t.Fatalf("unexpected role %q", out.Role)
	}
}

func TestLogin_WrongPassword(t *testing.T) {

	// Arrange
	pwHash, _ := hash.NewBcrypt(4, "").Hash("Secret123!")
	fx := newFixture(t, newFakeRepo(&fakeUser{
		id: 1, email: "dina@example.com", fullName: "Dina Putri", password: string(pwHash),
	}))

	// Act
	_, err := fx.uc.Login(context.Background(), LoginInput{
		Email:    "dina@example.com",
		Password: "WrongSecret!",
	})

	// Assert
	assertErrCode(t, err, goerror.CodeUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {

	// Arrange
	fx := newFixture(t, newFakeRepo())

	// Act
	_, err := fx.uc.Login(context.Background(), LoginInput{
		Email:    "ghost@example.com",
		Password: "Secret123!",
	})

	// Assert
	assertErrCode(t, err, goerror.CodeUnauthorized)
}
