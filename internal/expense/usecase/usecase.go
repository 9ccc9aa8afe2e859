package usecase

import (
	"context"
	"io"
	"time"

	"github.com/shandysiswandi/expensio/internal/expense/entity"
	"github.com/shandysiswandi/expensio/internal/pkg/clock"
	"github.com/shandysiswandi/expensio/internal/pkg/config"
	"github.com/shandysiswandi/expensio/internal/pkg/goerror"
	"github.com/shandysiswandi/expensio/internal/pkg/idempotency"
	"github.com/shandysiswandi/expensio/internal/pkg/instrument"
	"github.com/shandysiswandi/expensio/internal/pkg/jwt"
	"github.com/shandysiswandi/expensio/internal/pkg/uid"
	"github.com/shandysiswandi/expensio/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type ExpenseSubmittedEvent struct {
	ExpenseID   int64
	UserID      int64
	UserEmail   string
	Category    entity.Category
	AmountCents int64
	Currency    string
}

type ExpenseDecidedEvent struct {
	ExpenseID int64
	UserID    int64
	UserEmail string
	Decision  entity.ExpenseStatus
	DecidedBy int64
	Note      string
}

type repoMessaging interface {
	PublishExpenseSubmitted(ctx context.Context, msg ExpenseSubmittedEvent) error
	PublishExpenseDecided(ctx context.Context, msg ExpenseDecidedEvent) error
}

// repoReceipt stores receipt files and produces short-lived download links.
type repoReceipt interface {
	Store(ctx context.Context, key string, r io.Reader, contentType string) error
	SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

type repoDB interface {
	GetExpenseByID(ctx context.Context, id int64) (*entity.Expense, error)
	GetExpenseList(ctx context.Context, filter entity.ExpenseListFilterData) ([]entity.Expense, int64, error)
	GetExpensesByUser(ctx context.Context, userID int64) ([]entity.Expense, error)
	GetApprovalRule(ctx context.Context, category entity.Category, currency string) (*entity.ApprovalRule, error)
	GetApprovalRuleList(ctx context.Context) ([]entity.ApprovalRule, error)

	CreateExpense(ctx context.Context, in entity.NewExpense) error
	CreateApprovalRule(ctx context.Context, in entity.NewApprovalRule) error

	// DecideExpense applies the decision only while the expense is pending.
	// It reports whether a row changed.
	DecideExpense(ctx context.Context, d entity.Decision) (bool, error)

	UpdateExpenseReceipt(ctx context.Context, id int64, receiptKey string) error

	DeleteApprovalRule(ctx context.Context, id int64) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	repoReceipt   repoReceipt
	idemp         idempotency.Idempotency
	validator     validator.Validator
	cfg           config.Config
	uid           uid.NumberID
	uuid          uid.StringID
	clock         clock.Clocker
	ins           instrument.Instrumentation
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	RepoReceipt   repoReceipt
	Idempotency   idempotency.Idempotency
	Validator     validator.Validator
	Config        config.Config
	UID           uid.NumberID
	UUID          uid.StringID
	Clock         clock.Clocker
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		repoReceipt:   dep.RepoReceipt,
		idemp:         dep.Idempotency,
		validator:     dep.Validator,
		cfg:           dep.Config,
		uid:           dep.UID,
		uuid:          dep.UUID,
		clock:         dep.Clock,
		ins:           dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("expense.usecase").Start(ctx, name)
}

func (s *Usecase) authenticated(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}
	return clm, nil
}

// canModerate reports whether the role may act on other users' expenses.
func canModerate(role string) bool {
	return role == "manager" || role == "admin"
}
