package db

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/expensio/internal/identity/entity"
)

func (s *DB) GetUserByEmail(ctx context.Context, email string) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByEmail")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `
		SELECT id, email, full_name, role, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email)

	var u entity.User
	var role string
	if err = row.Scan(&u.ID, &u.Email, &u.FullName, &role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, s.mapError(err)
	}
	u.Role = entity.ParseUserRole(role)

	return &u, nil
}

func (s *DB) GetUserByID(ctx context.Context, id int64) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByID")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `
		SELECT id, email, full_name, role, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id)

	var u entity.User
	var role string
	if err = row.Scan(&u.ID, &u.Email, &u.FullName, &role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, s.mapError(err)
	}
	u.Role = entity.ParseUserRole(role)

	return &u, nil
}

func (s *DB) GetUserLoginInfo(ctx context.Context, email string) (_ *entity.UserLoginInfo, err error) {
	ctx, span := s.startSpan(ctx, "GetUserLoginInfo")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `
		SELECT id, email, full_name, role, password
		FROM users
		WHERE email = $1
	`, email)

	var u entity.UserLoginInfo
	var role string
	if err = row.Scan(&u.ID, &u.Email, &u.FullName, &role, &u.Password); err != nil {
		return nil, s.mapError(err)
	}
	u.Role = entity.ParseUserRole(role)

	return &u, nil
}

func (s *DB) GetUserChallenge(ctx context.Context, email string) (_ *entity.UserChallenge, err error) {
	ctx, span := s.startSpan(ctx, "GetUserChallenge")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `
		SELECT id, email, otp_secret, otp_expiry
		FROM users
		WHERE email = $1
	`, email)

	var c entity.UserChallenge
	if err = row.Scan(&c.UserID, &c.Email, &c.OTPSecret, &c.OTPExpiry); err != nil {
		return nil, s.mapError(err)
	}

	return &c, nil
}

func (s *DB) GetUserList(ctx context.Context, filter entity.UserListFilterData) (_ []entity.User, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "GetUserList")
	defer func() { s.endSpan(span, err) }()

	where := make([]string, 0, 2)
	args := make([]any, 0, 4)

	if filter.IsFilterBySearch {
		args = append(args, "%"+filter.Search+"%")
		where = append(where, `(email ILIKE $1 OR full_name ILIKE $1)`)
	}
	if filter.IsFilterByRole {
		args = append(args, entity.ToStringSlice(filter.Roles))
		where = append(where, `role = ANY($`+itoa(len(args))+`)`)
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err = s.conn.QueryRow(ctx, `SELECT COUNT(*) FROM users`+clause, args...).Scan(&total); err != nil {
		return nil, 0, s.mapError(err)
	}

	args = append(args, filter.Size)
	limitPos := len(args)
	args = append(args, filter.Page)
	offsetPos := len(args)

	rows, err := s.conn.Query(ctx, `
		SELECT id, email, full_name, role, created_at, updated_at
		FROM users`+clause+`
		ORDER BY created_at DESC
		LIMIT $`+itoa(limitPos)+` OFFSET $`+itoa(offsetPos),
		args...)
	if err != nil {
		return nil, 0, s.mapError(err)
	}

	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.User, error) {
		var u entity.User
		var role string
		if err := row.Scan(&u.ID, &u.Email, &u.FullName, &role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return entity.User{}, err
		}
		u.Role = entity.ParseUserRole(role)
		return u, nil
	})
	if err != nil {
		return nil, 0, s.mapError(err)
	}

	return users, total, nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
