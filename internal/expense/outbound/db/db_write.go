package db

import (
	"context"

	"github.com/shandysiswandi/expensio/internal/expense/entity"
	"github.com/shandysiswandi/expensio/internal/pkg/goerror"
)

func (s *DB) CreateExpense(ctx context.Context, in entity.NewExpense) (err error) {
	ctx, span := s.startSpan(ctx, "CreateExpense")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO expenses (id, user_id, category, amount_cents, currency, description, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, in.ID, in.UserID, in.Category.String(), in.AmountCents, in.Currency, in.Description, int16(in.Status))

	return s.mapError(err)
}

func (s *DB) CreateApprovalRule(ctx context.Context, in entity.NewApprovalRule) (err error) {
	ctx, span := s.startSpan(ctx, "CreateApprovalRule")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO approval_rules (id, category, currency, max_amount_cents, created_by)
		VALUES ($1, $2, $3, $4, $5)
	`, in.ID, in.Category.String(), in.Currency, in.MaxAmountCents, in.CreatedBy)

	return s.mapError(err)
}

// DecideExpense moves a pending expense to its final status. The pending
// guard makes the first decision win and every later one a no-op.
func (s *DB) DecideExpense(ctx context.Context, d entity.Decision) (_ bool, err error) {
	ctx, span := s.startSpan(ctx, "DecideExpense")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `
		UPDATE expenses
		SET status = $2, decided_by = $3, decision_note = $4, decided_at = $5, updated_at = NOW()
		WHERE id = $1 AND status = $6
	`, d.ExpenseID, int16(d.Status), d.DecidedBy, d.Note, d.DecidedAt, int16(entity.ExpenseStatusPending))
	if err != nil {
		return false, s.mapError(err)
	}

	return tag.RowsAffected() == 1, nil
}

func (s *DB) UpdateExpenseReceipt(ctx context.Context, id int64, receiptKey string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateExpenseReceipt")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		UPDATE expenses
		SET receipt_key = $2, updated_at = NOW()
		WHERE id = $1
	`, id, receiptKey)

	return s.mapError(err)
}

func (s *DB) DeleteApprovalRule(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteApprovalRule")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `DELETE FROM approval_rules WHERE id = $1`, id)
	if err != nil {
		return s.mapError(err)
	}

	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
