package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

type ConsumeExpenseDecidedInput struct {
	ExpenseID int64  `validate:"required,gt=0"`
	UserID    int64  `validate:"required,gt=0"`
	UserEmail string `validate:"required,email"`
	Decision  string `validate:"required,oneof=Approved Rejected"`
	Note      string `validate:"max=500"`
}

// ConsumeExpenseDecided tells the submitter how their expense was decided,
// including the reviewer's note when one was left.
func (s *Usecase) ConsumeExpenseDecided(ctx context.Context, in ConsumeExpenseDecidedInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeExpenseDecided")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "Validation failed", "error", err)
		return nil
	}

	decision := strings.ToLower(in.Decision)
	body := fmt.Sprintf("Your expense #%d has been %s.", in.ExpenseID, decision)
	if in.Note != "" {
		body += fmt.Sprintf("\n\nReviewer note: %s", in.Note)
	}
	body += "\n\nSign in to see the full details."

	if err := s.sendWithRetry(ctx, mailMessage(in.UserEmail, "Expense "+decision, body)); err != nil {
		slog.ErrorContext(ctx, "failed to send decision email", "expense_id", in.ExpenseID, "error", err)
		return err
	}

	return nil
}
