package usecase

import (
	"context"
	"fmt"
	"log/slog"
)

type ConsumeExpenseSubmittedInput struct {
	ExpenseID   int64  `validate:"required,gt=0"`
	UserID      int64  `validate:"required,gt=0"`
	UserEmail   string `validate:"required,email"`
	Category    string `validate:"required"`
	AmountCents int64  `validate:"required,gt=0"`
	Currency    string `validate:"required,len=3,alpha"`
}

// ConsumeExpenseSubmitted confirms to the submitter that their expense
// entered the review pipeline.
func (s *Usecase) ConsumeExpenseSubmitted(ctx context.Context, in ConsumeExpenseSubmittedInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeExpenseSubmitted")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "Validation failed", "error", err)
		return nil
	}

	body := fmt.Sprintf(
		"We received your %s expense of %s.\n\nYou will get another email once it has been reviewed. Reference: #%d.",
		in.Category, formatAmount(in.AmountCents, in.Currency), in.ExpenseID,
	)

	if err := s.sendWithRetry(ctx, mailMessage(in.UserEmail, "Expense received", body)); err != nil {
		slog.ErrorContext(ctx, "failed to send submission email", "expense_id", in.ExpenseID, "error", err)
		return err
	}

	return nil
}
