package usecase

import (
	"context"
	"testing"

	"github.com/shandysiswandi/expensio/internal/identity/entity"
	"github.com/shandysiswandi/expensio/internal/pkg/goerror"
)

func TestSignup_CreatesEmployeeAndPublishesEvent(t *testing.T) {

	// Arrange
	fx := newFixture(t, newFakeRepo())

	// Act
	out, err := fx.uc.Signup(context.Background(), SignupInput{
		Email:    "Dina@Example.com",
		FullName: "Dina Putri",
		Password: "Secret123!",
	})

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Email != "dina@example.com" {
		t.Fatalf("expected normalized email, got %q", out.Email)
	}
	if out.Role != entity.RoleEmployee {
		t.Fatalf("new accounts start as employee, got %q", out.Role)
	}

	u := fx.repo.users["dina@example.com"]
	if u == nil {
		t.Fatalf("user was not persisted")
	}
	if u.password == "Secret123!" {
		t.Fatalf("password must be stored hashed")
	}

	if err := fx.grm.Wait(); err != nil {
		t.Fatalf("background publish failed: %v", err)
	}
	if len(fx.pub.events) != 1 || fx.pub.events[0].Email != "dina@example.com" {
		t.Fatalf("expected one registration event, got %+v", fx.pub.events)
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {

	// Arrange
	fx := newFixture(t, newFakeRepo(&fakeUser{id: 7, email: "dina@example.com", fullName: "Dina Putri"}))

	// Act
	_, err := fx.uc.Signup(context.Background(), SignupInput{
		Email:    "dina@example.com",
		FullName: "Dina Putri",
		Password: "Secret123!",
	})

	// Assert
	assertErrCode(t, err, goerror.CodeConflict)
}

func TestSignup_InvalidFullName(t *testing.T) {

	// Arrange
	fx := newFixture(t, newFakeRepo())

	// Act
	_, err := fx.uc.Signup(context.Background(), SignupInput{
		Email:    "dina@example.com",
		FullName: "Dina123",
		Password: "Secret123!",
	})

	// Assert
	assertErrCode(t, err, goerror.CodeInvalidInput)
}
