package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/shandysiswandi/expensio/internal/expense/entity"
	"github.com/shandysiswandi/expensio/internal/pkg/config"
	"github.com/shandysiswandi/expensio/internal/pkg/goerror"
	"github.com/shandysiswandi/expensio/internal/pkg/idempotency"
	"github.com/shandysiswandi/expensio/internal/pkg/instrument"
	"github.com/shandysiswandi/expensio/internal/pkg/jwt"
	"github.com/shandysiswandi/expensio/internal/pkg/validator"
)

type fakeRepo struct {
	expenses map[int64]*entity.Expense
	rules    map[string]*entity.ApprovalRule // key category|currency
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		expenses: map[int64]*entity.Expense{},
		rules:    map[string]*entity.ApprovalRule{},
	}
}

func ruleKey(category entity.Category, currency string) string {
	return category.String() + "|" + currency
}

func (f *fakeRepo) GetExpenseByID(_ context.Context, id int64) (*entity.Expense, error) {
	e, ok := f.expenses[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeRepo) GetExpenseList(_ context.Context, filter entity.ExpenseListFilterData) ([]entity.Expense, int64, error) {
	out := make([]entity.Expense, 0, len(f.expenses))
	for _, e := range f.expenses {
		if filter.IsFilterByUser && e.UserID != filter.UserID {
			continue
		}
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepo) GetExpensesByUser(_ context.Context, userID int64) ([]entity.Expense, error) {
	out := make([]entity.Expense, 0)
	for _, e := range f.expenses {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetApprovalRule(_ context.Context, category entity.Category, currency string) (*entity.ApprovalRule, error) {
	r, ok := f.rules[ruleKey(category, currency)]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return r, nil
}

func (f *fakeRepo) GetApprovalRuleList(_ context.Context) ([]entity.ApprovalRule, error) {
	out := make([]entity.ApprovalRule, 0, len(f.rules))
	for _, r := range f.rules {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRepo) CreateExpense(_ context.Context, in entity.NewExpense) error {
	f.expenses[in.ID] = &entity.Expense{
		ID:          in.ID,
		UserID:      in.UserID,
		Category:    in.Category,
		AmountCents: in.AmountCents,
		Currency:    in.Currency,
		Description: in.Description,
		Status:      in.Status,
	}
	return nil
}

func (f *fakeRepo) CreateApprovalRule(_ context.Context, in entity.NewApprovalRule) error {
	key := ruleKey(in.Category, in.Currency)
	if _, ok := f.rules[key]; ok {
		return goerror.ErrConflict
	}
	f.rules[key] = &entity.ApprovalRule{
		ID:             in.ID,
		Category:       in.Category,
		Currency:       in.Currency,
		MaxAmountCents: in.MaxAmountCents,
		CreatedBy:      in.CreatedBy,
	}
	return nil
}

func (f *fakeRepo) DecideExpense(_ context.Context, d entity.Decision) (bool, error) {
	e, ok := f.expenses[d.ExpenseID]
	if !ok || e.Status != entity.ExpenseStatusPending {
		return false, nil
	}

	e.Status = d.Status
	e.DecidedBy = &d.DecidedBy
	e.DecisionNote = d.Note
	e.DecidedAt = &d.DecidedAt
	return true, nil
}

func (f *fakeRepo) UpdateExpenseReceipt(_ context.Context, id int64, receiptKey string) error {
	e, ok := f.expenses[id]
	if !ok {
		return goerror.ErrNotFound
	}
	e.ReceiptKey = receiptKey
	return nil
}

func (f *fakeRepo) DeleteApprovalRule(_ context.Context, id int64) error {
	for key, r := range f.rules {
		if r.ID == id {
			delete(f.rules, key)
			return nil
		}
	}
	return goerror.ErrNotFound
}

type fakePublisher struct {
	submitted []ExpenseSubmittedEvent
	decided   []ExpenseDecidedEvent
}

func (f *fakePublisher) PublishExpenseSubmitted(_ context.Context, msg ExpenseSubmittedEvent) error {
	f.submitted = append(f.submitted, msg)
	return nil
}

func (f *fakePublisher) PublishExpenseDecided(_ context.Context, msg ExpenseDecidedEvent) error {
	f.decided = append(f.decided, msg)
	return nil
}

type storedObject struct {
	Key  string
	Body []byte
}

type fakeReceiptStore struct {
	objects []storedObject
}

func (f *fakeReceiptStore) Store(_ context.Context, key string, r io.Reader, _ string) error {
	body, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.objects = append(f.objects, storedObject{Key: key, Body: body})
	return nil
}

func (f *fakeReceiptStore) SignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://storage.example.com/" + key + "?signed=1", nil
}

// fakeIdempotency mimics the redis tracker: first use of a key runs the
// function, later uses report completion or failure.
type fakeIdempotency struct {
	states map[string]idempotency.State
}

func newFakeIdempotency() *fakeIdempotency {
	return &fakeIdempotency{states: map[string]idempotency.State{}}
}

func (f *fakeIdempotency) Acquire(_ context.Context, key string, _ time.Duration) (idempotency.State, error) {
	if st, ok := f.states[key]; ok {
		return st, nil
	}
	f.states[key] = idempotency.StateInProgress
	return idempotency.StateInProgress, nil
}

func (f *fakeIdempotency) MarkCompleted(_ context.Context, key string, _ time.Duration) error {
	f.states[key] = idempotency.StateCompleted
	return nil
}

func (f *fakeIdempotency) MarkFailed(_ context.Context, key string, _ time.Duration) error {
	f.states[key] = idempotency.StateFailed
	return nil
}

func (f *fakeIdempotency) Exec(ctx context.Context, key string, fn func(context.Context) error, _ ...idempotency.Option) error {
	switch f.states[key] {
	case idempotency.StateInProgress:
		return idempotency.ErrAlreadyInProgress
	case idempotency.StateCompleted:
		return idempotency.ErrAlreadyCompleted
	case idempotency.StateFailed:
		return idempotency.ErrAlreadyFailed
	}

	f.states[key] = idempotency.StateInProgress
	if err := fn(ctx); err != nil {
		f.states[key] = idempotency.StateFailed
		return err
	}
	f.states[key] = idempotency.StateCompleted
	return nil
}

type seqID struct {
	last int64
}

func (s *seqID) Generate() int64 {
	s.last++
	return s.last
}

type seqUUID struct {
	last int
}

func (s *seqUUID) Generate() string {
	s.last++
	return "uuid-" + string(rune('0'+s.last))
}

type fixedClock struct {
	now time.Time
}

func (f *fixedClock) Now() time.Time { return f.now }

type fixture struct {
	uc    *Usecase
	repo  *fakeRepo
	pub   *fakePublisher
	store *fakeReceiptStore
	idemp *fakeIdempotency
	clock *fixedClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("building validator: %v", err)
	}

	cfg, err := config.NewViperFromBytes("yaml", []byte("modules:\n  expense:\n    receipt_url_ttl_minutes: 15\n"))
	if err != nil {
		t.Fatalf("building config: %v", err)
	}

	repo := newFakeRepo()
	pub := &fakePublisher{}
	store := &fakeReceiptStore{}
	idemp := newFakeIdempotency()
	clk := &fixedClock{now: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}

	uc := New(Dependency{
		RepoDB:        repo,
		RepoMessaging: pub,
		RepoReceipt:   store,
		Idempotency:   idemp,
		Validator:     v,
		Config:        cfg,
		UID:           &seqID{},
		UUID:          &seqUUID{},
		Clock:         clk,
		Instrument:    instrument.NewNoop(),
	})

	return &fixture{uc: uc, repo: repo, pub: pub, store: store, idemp: idemp, clock: clk}
}

func authCtx(userID int64, email, role string) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{
		UserID:    userID,
		UserEmail: email,
		UserRole:  role,
	})
}

func assertErrCode(t *testing.T, err error, code goerror.Code) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error with code %v, got nil", code)
	}

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *goerror.Error, got %T: %v", err, err)
	}

	if gerr.Code() != code {
		t.Fatalf("expected error code %v, got %v (message %q)", code, gerr.Code(), gerr.Msg())
	}
}
