package jwt

import (
	"errors"
	"strings"
	"testing"
	"time"
)

type fixedClock struct {
	now time.Time
}

func (f *fixedClock) Now() time.Time { return f.now }

type staticUUID struct{}

func (staticUUID) Generate() string { return "token-id-1" }

func testSecret() []byte {
	return []byte(strings.Repeat("s", 64))
}

func TestSymmetric_GenerateAndVerify(t *testing.T) {
	// Arrange
	clk := &fixedClock{now: time.Now()}
	s, err := NewHS512(Config{
		Secret:     testSecret(),
		Issuer:     "expensio",
		Audiences:  []string{"expensio-web"},
		TTLMinutes: time.Hour,
		Clock:      clk,
		UUID:       staticUUID{},
	})
	if err != nil {
		t.Fatalf("NewHS512() error = %v", err)
	}

	// Act
	token, err := s.Generate(42, "dina@example.com", "employee")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	claims, err := s.Verify(token)

	// Assert
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("UserID = %d, want 42", claims.UserID)
	}
	if claims.UserEmail != "dina@example.com" {
		t.Fatalf("UserEmail = %q, want %q", claims.UserEmail, "dina@example.com")
	}
	if claims.UserRole != "employee" {
		t.Fatalf("UserRole = %q, want %q", claims.UserRole, "employee")
	}
}

func TestSymmetric_VerifyExpiredToken(t *testing.T) {
	// Arrange: issue a token that expired an hour ago.
	clk := &fixedClock{now: time.Now().Add(-2 * time.Hour)}
	s, err := NewHS512(Config{
		Secret:     testSecret(),
		Issuer:     "expensio",
		Audiences:  []string{"expensio-web"},
		TTLMinutes: time.Hour,
		Clock:      clk,
		UUID:       staticUUID{},
	})
	if err != nil {
		t.Fatalf("NewHS512() error = %v", err)
	}

	token, err := s.Generate(42, "dina@example.com", "employee")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// Act
	_, err = s.Verify(token)

	// Assert
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("Verify() error = %v, want ErrTokenExpired", err)
	}
}

func TestNewHS512_RejectsShortSecret(t *testing.T) {
	// Act
	_, err := NewHS512(Config{Secret: []byte("too-short")})

	// Assert
	if !errors.Is(err, ErrSigningKeyTooShort) {
		t.Fatalf("NewHS512() error = %v, want ErrSigningKeyTooShort", err)
	}
}
