package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/expensio/internal/expense/entity"
	"github.com/shandysiswandi/expensio/internal/pkg/goerror"
	"github.com/shandysiswandi/expensio/internal/pkg/idempotency"
)

type SubmitInput struct {
	IdempotencyKey string
	Category       string `validate:"required"`
	AmountCents    int64  `validate:"required,gt=0"`
	Currency       string `validate:"required,len=3,alpha"`
	Description    string `validate:"max=500"`
}

type SubmitOutput struct {
	ID          int64
	Category    entity.Category
	AmountCents int64
	Currency    string
	Status      entity.ExpenseStatus
}

// Submit records a new expense for the authenticated user. When an approval
// rule covers the category and the amount is at or below its threshold, the
// expense is approved on the spot; otherwise it waits for a manager.
//
// Clients may send an Idempotency-Key header to make retries safe; repeated
// submissions with the same key are rejected instead of double-booked.
func (s *Usecase) Submit(ctx context.Context, in SubmitInput) (*SubmitOutput, error) {
	ctx, span := s.startSpan(ctx, "Submit")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	category := entity.ParseCategory(in.Category)
	if category.IsUnknown() {
		return nil, goerror.NewInvalidInput(nil, "category", "is not a recognized expense category")
	}

	var out *SubmitOutput
	run := func(ctx context.Context) error {
		status := entity.ExpenseStatusPending
		rule, err := s.repoDB.GetApprovalRule(ctx, category, in.Currency)
		if err != nil && !errors.Is(err, goerror.ErrNotFound) {
			slog.ErrorContext(ctx, "failed to repo get approval rule", "category", category, "error", err)
			return goerror.NewServer(err)
		}
		if rule != nil && in.AmountCents <= rule.MaxAmountCents {
			status = entity.ExpenseStatusApproved
		}

		exp := entity.NewExpense{
			ID:          s.uid.Generate(),
			UserID:      clm.UserID,
			Category:    category,
			AmountCents: in.AmountCents,
			Currency:    in.Currency,
			Description: strings.TrimSpace(in.Description),
			Status:      status,
		}

		if err := s.repoDB.CreateExpense(ctx, exp); err != nil {
			slog.ErrorContext(ctx, "failed to repo create expense", "user_id", clm.UserID, "error", err)
			return goerror.NewServer(err)
		}

		if err := s.repoMessaging.PublishExpenseSubmitted(ctx, ExpenseSubmittedEvent{
			ExpenseID:   exp.ID,
			UserID:      clm.UserID,
			UserEmail:   clm.UserEmail,
			Category:    exp.Category,
			AmountCents: exp.AmountCents,
			Currency:    exp.Currency,
		}); err != nil {
			slog.ErrorContext(ctx, "failed to publish expense submitted", "expense_id", exp.ID, "error", err)
		}

		out = &SubmitOutput{
			ID:          exp.ID,
			Category:    exp.Category,
			AmountCents: exp.AmountCents,
			Currency:    exp.Currency,
			Status:      status,
		}
		return nil
	}

	if in.IdempotencyKey == "" {
		if err := run(ctx); err != nil {
			return nil, err
		}
		return out, nil
	}

	err = s.idemp.Exec(ctx, "expense:submit:"+in.IdempotencyKey, run)
	switch {
	case errors.Is(err, idempotency.ErrAlreadyInProgress):
		return nil, goerror.NewBusiness("A submission with this idempotency key is in progress", goerror.CodeConflict)
	case errors.Is(err, idempotency.ErrAlreadyCompleted):
		return nil, goerror.NewBusiness("A submission with this idempotency key was already processed", goerror.CodeConflict)
	case err != nil:
		return nil, err
	}

	return out, nil
}
