package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/expensio/internal/expense/entity"
	"github.com/shandysiswandi/expensio/internal/pkg/goerror"
)

type DetailInput struct {
	ExpenseID int64 `validate:"required,gt=0"`
}

type DetailOutput struct {
	Expense entity.Expense
}

func (s *Usecase) Detail(ctx context.Context, in DetailInput) (*DetailOutput, error) {
	ctx, span := s.startSpan(ctx, "Detail")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	exp, err := s.repoDB.GetExpenseByID(ctx, in.ExpenseID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Expense not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get expense", "expense_id", in.ExpenseID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if exp.UserID != clm.UserID && !canModerate(clm.UserRole) {
		// Hide existence from other employees.
		return nil, goerror.NewBusiness("Expense not found", goerror.CodeNotFound)
	}

	return &DetailOutput{Expense: *exp}, nil
}
