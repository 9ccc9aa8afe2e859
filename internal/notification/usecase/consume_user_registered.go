package usecase

import (
	"context"
	"fmt"
	"log/slog"
)

type ConsumeUserRegisteredInput struct {
	UserID   int64  `validate:"required,gt=0"`
	Email    string `validate:"required,email"`
	FullName string `validate:"required,alphaspace,max=100"`
}

// ConsumeUserRegistered sends the welcome email for a freshly created
// account. Invalid payloads are dropped, not redelivered.
func (s *Usecase) ConsumeUserRegistered(ctx context.Context, in ConsumeUserRegisteredInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeUserRegistered")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "Validation failed", "error", err)
		return nil
	}

	appName := s.cfg.GetString("app.name")
	body := fmt.Sprintf(
		"Hi %s,\n\nYour %s account is ready. You can now sign in and start submitting expenses.\n\nIf you did not create this account, contact your administrator.",
		in.FullName, appName,
	)

	if err := s.sendWithRetry(ctx, mailMessage(in.Email, "Welcome to "+appName, body)); err != nil {
		slog.ErrorContext(ctx, "failed to send welcome email", "user_id", in.UserID, "error", err)
		return err
	}

	return nil
}
