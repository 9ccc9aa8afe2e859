package inbound

import (
	"context"

	"github.com/shandysiswandi/expensio/internal/expense/usecase"
	"github.com/shandysiswandi/expensio/internal/pkg/router"
)

type uc interface {
	Submit(ctx context.Context, in usecase.SubmitInput) (*usecase.SubmitOutput, error)
	List(ctx context.Context, in usecase.ListInput) (*usecase.ListOutput, error)
	Detail(ctx context.Context, in usecase.DetailInput) (*usecase.DetailOutput, error)
	Decide(ctx context.Context, in usecase.DecisionInput) (*usecase.DecisionOutput, error)
	Summary(ctx context.Context) (*usecase.SummaryOutput, error)

	ReceiptUpload(ctx context.Context, in usecase.ReceiptUploadInput) (*usecase.ReceiptUploadOutput, error)
	ReceiptURL(ctx context.Context, in usecase.ReceiptURLInput) (*usecase.ReceiptURLOutput, error)

	RuleCreate(ctx context.Context, in usecase.RuleCreateInput) (*usecase.RuleCreateOutput, error)
	RuleList(ctx context.Context) (*usecase.RuleListOutput, error)
	RuleDelete(ctx context.Context, in usecase.RuleDeleteInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Expenses (need authenticated)
	r.POST("/api/expenses", end.Submit)
	r.GET("/api/expenses", end.List)
	r.GET("/api/expenses/:id", end.Detail)
	// Summary has its own prefix so it cannot collide with the :id wildcard.
	r.GET("/api/expenses-summary", end.Summary)

	// Receipts (need authenticated)
	r.POST("/api/expenses/:id/receipt", end.ReceiptUpload)
	r.GET("/api/expenses/:id/receipt", end.ReceiptURL)

	// Decisions (need authenticated & authorization)
	r.POST("/api/expenses/:id/decision", end.Decide)

	// Approval rules (need authenticated & authorization)
	r.POST("/api/approval-rules", end.RuleCreate)
	r.GET("/api/approval-rules", end.RuleList)
	r.DELETE("/api/approval-rules/:id", end.RuleDelete)
}
