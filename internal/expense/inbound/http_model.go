package inbound

import (
	"net/http"
	"time"
)

type SubmitRequest struct {
	Category    string `json:"category"`
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
}

type SubmitResponse struct {
	ID          int64  `json:"id,string"`
	Category    string `json:"category"`
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
}

func (SubmitResponse) Message() string {
	return "Expense submitted."
}

func (SubmitResponse) StatusCode() int {
	return http.StatusCreated
}

type ExpenseResponse struct {
	ID           int64      `json:"id,string"`
	UserID       int64      `json:"user_id,string"`
	UserEmail    string     `json:"user_email"`
	Category     string     `json:"category"`
	AmountCents  int64      `json:"amount_cents"`
	Currency     string     `json:"currency"`
	Description  string     `json:"description,omitempty"`
	Status       string     `json:"status"`
	HasReceipt   bool       `json:"has_receipt"`
	DecidedBy    *int64     `json:"decided_by,omitempty"`
	DecisionNote string     `json:"decision_note,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	DecidedAt    *time.Time `json:"decided_at,omitempty"`
}

type ExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`

	page  int32
	size  int32
	total int64
}

func (r ExpensesResponse) Meta() map[string]any {
	return map[string]any{
		"page":  r.page,
		"size":  r.size,
		"total": r.total,
	}
}

type DecisionRequest struct {
	Decision string `json:"decision"`
	Note     string `json:"note"`
}

type DecisionResponse struct {
	ID     int64  `json:"id,string"`
	Status string `json:"status"`
}

func (DecisionResponse) Message() string {
	return "Decision recorded."
}

type ReceiptUploadResponse struct {
	ID         int64  `json:"id,string"`
	ReceiptKey string `json:"receipt_key"`
}

func (ReceiptUploadResponse) Message() string {
	return "Receipt uploaded."
}

func (ReceiptUploadResponse) StatusCode() int {
	return http.StatusCreated
}

type ReceiptURLResponse struct {
	URL string `json:"url"`
}

type CategorySummaryResponse struct {
	Category      string `json:"category"`
	Count         int    `json:"count"`
	TotalCents    int64  `json:"total_cents"`
	ApprovedCents int64  `json:"approved_cents"`
	PendingCents  int64  `json:"pending_cents"`
	RejectedCents int64  `json:"rejected_cents"`
}

type SummaryResponse struct {
	Categories []CategorySummaryResponse `json:"categories"`
	TotalCents int64                     `json:"total_cents"`
}

type RuleCreateRequest struct {
	Category       string `json:"category"`
	Currency       string `json:"currency"`
	MaxAmountCents int64  `json:"max_amount_cents"`
}

type RuleResponse struct {
	ID             int64  `json:"id,string"`
	Category       string `json:"category"`
	Currency       string `json:"currency"`
	MaxAmountCents int64  `json:"max_amount_cents"`
}

type RuleCreateResponse struct {
	RuleResponse
}

func (RuleCreateResponse) Message() string {
	return "Approval rule created."
}

func (RuleCreateResponse) StatusCode() int {
	return http.StatusCreated
}

type RulesResponse struct {
	Rules []RuleResponse `json:"rules"`
}

type RuleDeleteResponse struct{}

func (RuleDeleteResponse) Message() string {
	return "Approval rule deleted."
}
