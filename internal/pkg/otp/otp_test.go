package otp

import (
	"strconv"
	"testing"
)

func TestNumericGeneratorGenerate(t *testing.T) {
	// Arrange
	gen := NewNumeric()

	for range 500 {
		// Act
		code, err := gen.Generate()

		// Assert
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("Generate() = %q, want 6 characters", code)
		}
		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("Generate() = %q, not numeric: %v", code, err)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("Generate() = %d, want within [100000, 999999]", n)
		}
	}
}
