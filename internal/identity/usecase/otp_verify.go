package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/expensio/internal/pkg/goerror"
)

type OTPVerifyInput struct {
	Email string `validate:"required,email"`
	Code  string `validate:"required,len=6,numeric"`
}

type OTPVerifyOutput struct {
	Email string
}

// OTPVerify checks the submitted reset code against the stored one.
//
// A successful verification consumes the code: both the code and its expiry
// are cleared in one conditional statement, so a second submission of the
// same code observes no active challenge. Expired codes are rejected but left
// in place until a new request supersedes them.
func (s *Usecase) OTPVerify(ctx context.Context, in OTPVerifyInput) (*OTPVerifyOutput, error) {
	ctx, span := s.startSpan(ctx, "OTPVerify")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	chal, err := s.repoDB.GetUserChallenge(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get reset code", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if chal.OTPSecret == nil || chal.OTPExpiry == nil {
		return nil, goerror.NewBusiness("No active verification code", goerror.CodeBadRequest)
	}

	if s.clock.Now().After(*chal.OTPExpiry) {
		return nil, goerror.NewBusiness("Verification code has expired", goerror.CodeBadRequest)
	}

	cleared, err := s.repoDB.ClearChallengeByCode(ctx, in.Email, in.Code)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo clear reset code", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !cleared {
		return nil, goerror.NewBusiness("Invalid verification code", goerror.CodeBadRequest)
	}

	return &OTPVerifyOutput{Email: in.Email}, nil
}
