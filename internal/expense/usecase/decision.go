package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/expensio/internal/expense/entity"
	"github.com/shandysiswandi/expensio/internal/pkg/goerror"
)

type DecisionInput struct {
	ExpenseID int64  `validate:"required,gt=0"`
	Decision  string `validate:"required,oneof=approve reject"`
	Note      string `validate:"max=500"`
}

type DecisionOutput struct {
	ExpenseID int64
	Status    entity.ExpenseStatus
}

// Decide approves or rejects a pending expense. The transition is guarded by
// a conditional update, so two managers racing on the same expense cannot
// both win; the loser gets a conflict.
func (s *Usecase) Decide(ctx context.Context, in DecisionInput) (*DecisionOutput, error) {
	ctx, span := s.startSpan(ctx, "Decide")
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

	if exp.UserID == clm.UserID {
		return nil, goerror.NewBusiness("Cannot decide on your own expense", goerror.CodeForbidden)
	}

	status := entity.ExpenseStatusApproved
	if in.Decision == "reject" {
		status = entity.ExpenseStatusRejected
	}

	decided, err := s.repoDB.DecideExpense(ctx, entity.Decision{
		ExpenseID: exp.ID,
		DecidedBy: clm.UserID,
		Status:    status,
		Note:      strings.TrimSpace(in.Note),
		DecidedAt: s.clock.Now(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo decide expense", "expense_id", exp.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !decided {
		return nil, goerror.NewBusiness("Expense has already been decided", goerror.CodeConflict)
	}

	if err := s.repoMessaging.PublishExpenseDecided(ctx, ExpenseDecidedEvent{
		ExpenseID: exp.ID,
		UserID:    exp.UserID,
		UserEmail: exp.UserEmail,
		Decision:  status,
		DecidedBy: clm.UserID,
		Note:      strings.TrimSpace(in.Note),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish expense decided", "expense_id", exp.ID, "error", err)
	}

	return &DecisionOutput{ExpenseID: exp.ID, Status: status}, nil
}
