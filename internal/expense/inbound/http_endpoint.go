package inbound

import (
	"github.com/shandysiswandi/expensio/internal/expense/entity"
	"github.com/shandysiswandi/expensio/internal/expense/usecase"
	"github.com/shandysiswandi/expensio/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for expense workflows.
type HTTPEndpoint struct {
	uc uc
}

func toExpenseResponse(e entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:           e.ID,
		UserID:       e.UserID,
		UserEmail:    e.UserEmail,
		Category:     e.Category.String(),
		AmountCents:  e.AmountCents,
		Currency:     e.Currency,
		Description:  e.Description,
		Status:       e.Status.String(),
		HasReceipt:   e.ReceiptKey != "",
		DecidedBy:    e.DecidedBy,
		DecisionNote: e.DecisionNote,
		CreatedAt:    e.CreatedAt,
		DecidedAt:    e.DecidedAt,
	}
}

// Submit records a new expense. Retries are safe when the client sends an
// Idempotency-Key header.
func (h *HTTPEndpoint) Submit(r *router.Request) (any, error) {
	var req SubmitRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Submit(r.Context(), usecase.SubmitInput{
		IdempotencyKey: r.Header.Get("Idempotency-Key"),
		Category:       req.Category,
		AmountCents:    req.AmountCents,
		Currency:       req.Currency,
		Description:    req.Description,
	})
	if err != nil {
		return nil, err
	}

	return SubmitResponse{
		ID:          resp.ID,
		Category:    resp.Category.String(),
		AmountCents: resp.AmountCents,
		Currency:    resp.Currency,
		Status:      resp.Status.String(),
	}, nil
}

// List returns a page of expenses visible to the caller.
func (h *HTTPEndpoint) List(r *router.Request) (any, error) {
	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}

	size, err := r.GetQueryInt32("size")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.List(r.Context(), usecase.ListInput{
		Statuses:   r.GetQueries("statuses"),
		Categories: r.GetQueries("categories"),
		Page:       page,
		Size:       size,
	})
	if err != nil {
		return nil, err
	}

	expenses := make([]ExpenseResponse, len(resp.Expenses))
	for i, e := range resp.Expenses {
		expenses[i] = toExpenseResponse(e)
	}

	return ExpensesResponse{
		Expenses: expenses,
		page:     resp.Page,
		size:     resp.Size,
		total:    resp.Total,
	}, nil
}

// Detail returns one expense.
func (h *HTTPEndpoint) Detail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.Detail(r.Context(), usecase.DetailInput{ExpenseID: id})
	if err != nil {
		return nil, err
	}

	return toExpenseResponse(resp.Expense), nil
}

// Decide approves or rejects a pending expense.
func (h *HTTPEndpoint) Decide(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req DecisionRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Decide(r.Context(), usecase.DecisionInput{
		ExpenseID: id,
		Decision:  req.Decision,
		Note:      req.Note,
	})
	if err != nil {
		return nil, err
	}

	return DecisionResponse{
		ID:     resp.ExpenseID,
		Status: resp.Status.String(),
	}, nil
}

// Summary aggregates the caller's expenses by category.
func (h *HTTPEndpoint) Summary(r *router.Request) (any, error) {
	resp, err := h.uc.Summary(r.Context())
	if err != nil {
		return nil, err
	}

	categories := make([]CategorySummaryResponse, len(resp.Categories))
	for i, c := range resp.Categories {
		categories[i] = CategorySummaryResponse{
			Category:      c.Category.String(),
			Count:         c.Count,
			TotalCents:    c.TotalCents,
			ApprovedCents: c.ApprovedCents,
			PendingCents:  c.PendingCents,
			RejectedCents: c.RejectedCents,
		}
	}

	return SummaryResponse{
		Categories: categories,
		TotalCents: resp.TotalCents,
	}, nil
}

// ReceiptUpload attaches a receipt file sent as multipart form data.
func (h *HTTPEndpoint) ReceiptUpload(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	file, err := r.StreamSingleFile("receipt")
	if err != nil {
		return nil, err
	}
	defer file.Close()

	resp, err := h.uc.ReceiptUpload(r.Context(), usecase.ReceiptUploadInput{
		ExpenseID:   id,
		File:        file,
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return nil, err
	}

	return ReceiptUploadResponse{
		ID:         resp.ExpenseID,
		ReceiptKey: resp.ReceiptKey,
	}, nil
}

// ReceiptURL returns a short-lived download link for the receipt.
func (h *HTTPEndpoint) ReceiptURL(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.ReceiptURL(r.Context(), usecase.ReceiptURLInput{ExpenseID: id})
	if err != nil {
		return nil, err
	}

	return ReceiptURLResponse{URL: resp.URL}, nil
}

// RuleCreate installs an auto-approval threshold.
func (h *HTTPEndpoint) RuleCreate(r *router.Request) (any, error) {
	var req RuleCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.RuleCreate(r.Context(), usecase.RuleCreateInput{
		Category:       req.Category,
		Currency:       req.Currency,
		MaxAmountCents: req.MaxAmountCents,
	})
	if err != nil {
		return nil, err
	}

	return RuleCreateResponse{RuleResponse: RuleResponse{
		ID:             resp.Rule.ID,
		Category:       resp.Rule.Category.String(),
		Currency:       resp.Rule.Currency,
		MaxAmountCents: resp.Rule.MaxAmountCents,
	}}, nil
}

// RuleList returns all approval rules.
func (h *HTTPEndpoint) RuleList(r *router.Request) (any, error) {
	resp, err := h.uc.RuleList(r.Context())
	if err != nil {
		return nil, err
	}

	rules := make([]RuleResponse, len(resp.Rules))
	for i, rule := range resp.Rules {
		rules[i] = RuleResponse{
			ID:             rule.ID,
			Category:       rule.Category.String(),
			Currency:       rule.Currency,
			MaxAmountCents: rule.MaxAmountCents,
		}
	}

	return RulesResponse{Rules: rules}, nil
}

// RuleDelete removes an approval rule.
func (h *HTTPEndpoint) RuleDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.RuleDelete(r.Context(), usecase.RuleDeleteInput{RuleID: id}); err != nil {
		return nil, err
	}

	return RuleDeleteResponse{}, nil
}
