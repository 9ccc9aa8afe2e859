package usecase

import (
	"context"
	"log/slog"
	"sort"

	"github.com/samber/lo"
	"github.com/shandysiswandi/expensio/internal/expense/entity"
	"github.com/shandysiswandi/expensio/internal/pkg/goerror"
)

type SummaryOutput struct {
	Categories []entity.CategorySummary
	TotalCents int64
}

// Summary aggregates the caller's expenses by category.
func (s *Usecase) Summary(ctx context.Context) (*SummaryOutput, error) {
	ctx, span := s.startSpan(ctx, "Summary")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	expenses, err := s.repoDB.GetExpensesByUser(ctx, clm.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user expenses", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	grouped := lo.GroupBy(expenses, func(e entity.Expense) entity.Category {
		return e.Category
	})

	categories := make([]entity.CategorySummary, 0, len(grouped))
	for category, items := range grouped {
		cs := entity.CategorySummary{
			Category: category,
			Count:    len(items),
			TotalCents: lo.SumBy(items, func(e entity.Expense) int64 {
				return e.AmountCents
			}),
		}

		for _, e := range items {
			switch e.Status {
			case entity.ExpenseStatusApproved:
				cs.ApprovedCents += e.AmountCents
			case entity.ExpenseStatusPending:
				cs.PendingCents += e.AmountCents
			case entity.ExpenseStatusRejected:
				cs.RejectedCents += e.AmountCents
			}
		}

		categories = append(categories, cs)
	}

	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Category < categories[j].Category
	})

	return &SummaryOutput{
		Categories: categories,
		TotalCents: lo.SumBy(categories, func(c entity.CategorySummary) int64 {
			return c.TotalCents
		}),
	}, nil
}
