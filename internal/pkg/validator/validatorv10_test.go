package validator

import "testing"

type signupPayload struct {
	Email    string `validate:"required,email"`
	FullName string `validate:"required,alphaspace,max=100"`
	Password string `validate:"required,password"`
}

func TestV10Validator_SatisfiesValidator(t *testing.T) {
	// Arrange
	v10, err := NewV10Validator()
	if err != nil {
		t.Fatalf("NewV10Validator() error = %v", err)
	}

	// Act
	var v Validator = v10
	err = v.Validate(signupPayload{Email: "dina@example.com", FullName: "Dina Putri", Password: "s3cret-pass"})

	// Assert
	if err != nil {
		t.Fatalf("Validate() through interface error = %v", err)
	}
}

func TestV10Validator_CustomTags(t *testing.T) {
	// Arrange
	v, err := NewV10Validator()
	if err != nil {
		t.Fatalf("NewV10Validator() error = %v", err)
	}

	cases := []struct {
		name    string
		in      signupPayload
		wantErr bool
	}{
		{
			name: "valid payload",
			in:   signupPayload{Email: "dina@example.com", FullName: "Dina Putri", Password: "s3cret-pass"},
		},
		{
			name:    "full name with digits",
			in:      signupPayload{Email: "dina@example.com", FullName: "Dina123", Password: "s3cret-pass"},
			wantErr: true,
		},
		{
			name:    "password too short",
			in:      signupPayload{Email: "dina@example.com", FullName: "Dina Putri", Password: "short"},
			wantErr: true,
		},
		{
			name:    "malformed email",
			in:      signupPayload{Email: "not-an-email", FullName: "Dina Putri", Password: "s3cret-pass"},
			wantErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			// Act
			err := v.Validate(c.in)

			// Assert
			if (err != nil) != c.wantErr {
				t.Fatalf("Validate() error = %v, wantErr = %v", err, c.wantErr)
			}
		})
	}
}
