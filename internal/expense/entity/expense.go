package entity

import "time"

type Expense struct {
	ID           int64
	UserID       int64
	UserEmail    string
	Category     Category
	AmountCents  int64
	Currency     string
	Description  string
	Status       ExpenseStatus
	ReceiptKey   string
	DecidedBy    *int64
	DecisionNote string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DecidedAt    *time.Time
}

type NewExpense struct {
	ID          int64
	UserID      int64
	Category    Category
	AmountCents int64
	Currency    string
	Description string
	Status      ExpenseStatus
}

// Decision records a manager's verdict on a pending expense.
type Decision struct {
	ExpenseID int64
	DecidedBy int64
	Status    ExpenseStatus
	Note      string
	DecidedAt time.Time
}

type ExpenseListFilterData struct {
	IsFilterByUser     bool
	IsFilterByStatus   bool
	IsFilterByCategory bool
	UserID             int64
	Statuses           []ExpenseStatus
	Categories         []Category
	Size               int32
	Page               int32
}

// ApprovalRule auto-approves submissions in a category at or below the
// threshold. At most one active rule exists per category and currency.
type ApprovalRule struct {
	ID             int64
	Category       Category
	Currency       string
	MaxAmountCents int64
	CreatedBy      int64
	CreatedAt      time.Time
}

type NewApprovalRule struct {
	ID             int64
	Category       Category
	Currency       string
	MaxAmountCents int64
	CreatedBy      int64
}

// CategorySummary aggregates a user's expenses within one category.
type CategorySummary struct {
	Category      Category
	Count         int
	TotalCents    int64
	ApprovedCents int64
	PendingCents  int64
	RejectedCents int64
}
