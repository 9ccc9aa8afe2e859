package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/expensio/internal/expense/entity"
	"github.com/shandysiswandi/expensio/internal/pkg/goerror"
)

type ListInput struct {
	Statuses   []string
	Categories []string
	Size       int32
	Page       int32
}

type ListOutput struct {
	Page     int32
	Size     int32
	Total    int64
	Expenses []entity.Expense
}

// List returns the caller's expenses. Managers and admins see every user's
// expenses; employees only their own.
func (s *Usecase) List(ctx context.Context, in ListInput) (*ListOutput, error) {
	ctx, span := s.startSpan(ctx, "List")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	if in.Size <= 0 || in.Size > 100 {
		in.Size = 10 // default limit
	}
	filterData := entity.ExpenseListFilterData{
		Statuses:   entity.ParseSafeExpenseStatuses(in.Statuses),
		Categories: entity.ParseSafeCategories(in.Categories),
		Size:       in.Size,
		Page:       (max(in.Page, 1) - 1) * in.Size,
	}
	if !canModerate(clm.UserRole) {
		filterData.IsFilterByUser = true
		filterData.UserID = clm.UserID
	}
	if len(filterData.Statuses) > 0 {
		filterData.IsFilterByStatus = true
	}
	if len(filterData.Categories) > 0 {
		filterData.IsFilterByCategory = true
	}

	expenses, count, err := s.repoDB.GetExpenseList(ctx, filterData)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list expenses", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ListOutput{
		Page:     max(in.Page, 1),
		Size:     in.Size,
		Total:    count,
		Expenses: expenses,
	}, nil
}
