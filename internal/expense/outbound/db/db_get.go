package db

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/expensio/internal/expense/entity"
)

const expenseColumns = `
	e.id, e.user_id, u.email, e.category, e.amount_cents, e.currency, e.description,
	e.status, e.receipt_key, e.decided_by, e.decision_note, e.created_at, e.updated_at, e.decided_at`

func scanExpense(row pgx.Row) (entity.Expense, error) {
	var e entity.Expense
	var category string
	var status int16
	err := row.Scan(
		&e.ID, &e.UserID, &e.UserEmail, &category, &e.AmountCents, &e.Currency, &e.Description,
		&status, &e.ReceiptKey, &e.DecidedBy, &e.DecisionNote, &e.CreatedAt, &e.UpdatedAt, &e.DecidedAt,
	)
	if err != nil {
		return entity.Expense{}, err
	}

	e.Category = entity.ParseCategory(category)
	e.Status = entity.ExpenseStatus(status)
	return e, nil
}

func (s *DB) GetExpenseByID(ctx context.Context, id int64) (_ *entity.Expense, err error) {
	ctx, span := s.startSpan(ctx, "GetExpenseByID")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `
		SELECT`+expenseColumns+`
		FROM expenses e
		JOIN users u ON u.id = e.user_id
		WHERE e.id = $1
	`, id)

	e, err := scanExpense(row)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &e, nil
}

func (s *DB) GetExpenseList(ctx context.Context, filter entity.ExpenseListFilterData) (_ []entity.Expense, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "GetExpenseList")
	defer func() { s.endSpan(span, err) }()

	where := make([]string, 0, 3)
	args := make([]any, 0, 5)

	if filter.IsFilterByUser {
		args = append(args, filter.UserID)
		where = append(where, `e.user_id = $`+strconv.Itoa(len(args)))
	}
	if filter.IsFilterByStatus {
		statuses := make([]int16, len(filter.Statuses))
		for i, st := range filter.Statuses {
			statuses[i] = int16(st)
		}
		args = append(args, statuses)
		where = append(where, `e.status = ANY($`+strconv.Itoa(len(args))+`)`)
	}
	if filter.IsFilterByCategory {
		categories := make([]string, len(filter.Categories))
		for i, c := range filter.Categories {
			categories[i] = c.String()
		}
		args = append(args, categories)
		where = append(where, `e.category = ANY($`+strconv.Itoa(len(args))+`)`)
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err = s.conn.QueryRow(ctx, `SELECT COUNT(*) FROM expenses e`+clause, args...).Scan(&total); err != nil {
		return nil, 0, s.mapError(err)
	}

	args = append(args, filter.Size)
	limitPos := len(args)
	args = append(args, filter.Page)
	offsetPos := len(args)

	rows, err := s.conn.Query(ctx, `
		SELECT`+expenseColumns+`
		FROM expenses e
		JOIN users u ON u.id = e.user_id`+clause+`
		ORDER BY e.created_at DESC
		LIMIT $`+strconv.Itoa(limitPos)+` OFFSET $`+strconv.Itoa(offsetPos),
		args...)
	if err != nil {
		return nil, 0, s.mapError(err)
	}

	expenses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Expense, error) {
		return scanExpense(row)
	})
	if err != nil {
		return nil, 0, s.mapError(err)
	}

	return expenses, total, nil
}

func (s *DB) GetExpensesByUser(ctx context.Context, userID int64) (_ []entity.Expense, err error) {
	ctx, span := s.startSpan(ctx, "GetExpensesByUser")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, `
		SELECT`+expenseColumns+`
		FROM expenses e
		JOIN users u ON u.id = e.user_id
		WHERE e.user_id = $1
		ORDER BY e.created_at DESC
	`, userID)
	if err != nil {
		return nil, s.mapError(err)
	}

	expenses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Expense, error) {
		return scanExpense(row)
	})
	if err != nil {
		return nil, s.mapError(err)
	}

	return expenses, nil
}

func (s *DB) GetApprovalRule(ctx context.Context, category entity.Category, currency string) (_ *entity.ApprovalRule, err error) {
	ctx, span := s.startSpan(ctx, "GetApprovalRule")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `
		SELECT id, category, currency, max_amount_cents, created_by, created_at
		FROM approval_rules
		WHERE category = $1 AND currency = $2
	`, category.String(), currency)

	var r entity.ApprovalRule
	var cat string
	if err = row.Scan(&r.ID, &cat, &r.Currency, &r.MaxAmountCents, &r.CreatedBy, &r.CreatedAt); err != nil {
		return nil, s.mapError(err)
	}
	r.Category = entity.ParseCategory(cat)

	return &r, nil
}

func (s *DB) GetApprovalRuleList(ctx context.Context) (_ []entity.ApprovalRule, err error) {
	ctx, span := s.startSpan(ctx, "GetApprovalRuleList")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, `
		SELECT id, category, currency, max_amount_cents, created_by, created_at
		FROM approval_rules
		ORDER BY category, currency
	`)
	if err != nil {
		return nil, s.mapError(err)
	}

	rules, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.ApprovalRule, error) {
		var r entity.ApprovalRule
		var cat string
		if err := row.Scan(&r.ID, &cat, &r.Currency, &r.MaxAmountCents, &r.CreatedBy, &r.CreatedAt); err != nil {
			return entity.ApprovalRule{}, err
		}
		r.Category = entity.ParseCategory(cat)
		return r, nil
	})
	if err != nil {
		return nil, s.mapError(err)
	}

	return rules, nil
}
