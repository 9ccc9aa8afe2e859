package inbound

import (
	"context"

	"github.com/shandysiswandi/expensio/internal/notification/usecase"
)

type uc interface {
	ConsumeUserRegistered(ctx context.Context, in usecase.ConsumeUserRegisteredInput) error
	ConsumeExpenseSubmitted(ctx context.Context, in usecase.ConsumeExpenseSubmittedInput) error
	ConsumeExpenseDecided(ctx context.Context, in usecase.ConsumeExpenseDecidedInput) error
}
