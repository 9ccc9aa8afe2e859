package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/expensio/internal/pkg/goerror"
)

type PasswordForgotInput struct {
	Email string `validate:"required,email"`
}

type PasswordForgotOutput struct {
	Email string
}

// PasswordForgot issues a reset code for the user and emails it.
//
// Only one code is live per user at a time: while an unexpired code exists,
// repeated requests re-send that same code instead of minting a new one. The
// write is a single conditional update so two concurrent requests can never
// both install a code; the loser re-reads and re-sends the winner's code.
func (s *Usecase) PasswordForgot(ctx context.Context, in PasswordForgotInput) (*PasswordForgotOutput, error) {
	ctx, span := s.startSpan(ctx, "PasswordForgot")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	code, err := s.codeGen.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate reset code", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	now := s.clock.Now()
	expiresAt := now.Add(s.challengeTTL())

	won, err := s.repoDB.SetChallengeIfExpired(ctx, user.Email, code, expiresAt, now)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo set reset code", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !won {
		// An unexpired code is already installed; re-send it as is.
		chal, err := s.repoDB.GetUserChallenge(ctx, user.Email)
		if err != nil {
			slog.ErrorContext(ctx, "failed to repo get active reset code", "user_id", user.ID, "error", err)
			return nil, goerror.NewServer(err)
		}
		if chal.OTPSecret == nil || chal.OTPExpiry == nil {
			// The active code was consumed between our update and read. Treat
			// it as a delivery race and let the user retry.
			return nil, goerror.NewServerMsg(nil, "Failed to issue reset code")
		}

		code = *chal.OTPSecret
		expiresAt = *chal.OTPExpiry
	}

	if err := s.repoMail.SendOTP(ctx, OTPEmail{
		To:        user.Email,
		Code:      code,
		ExpiresAt: expiresAt,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to send reset code email", "user_id", user.ID, "error", err)
		return nil, goerror.NewServerMsg(err, "Failed to send OTP email")
	}

	return &PasswordForgotOutput{Email: user.Email}, nil
}
