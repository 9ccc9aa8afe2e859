package db

import (
	"context"

	"github.com/shandysiswandi/expensio/internal/identity/entity"
)

func (s *DB) CreateUser(ctx context.Context, user entity.NewUser, passwordHash string) (err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO users (id, email, full_name, password, role)
		VALUES ($1, $2, $3, $4, $5)
	`, user.ID, user.Email, user.FullName, passwordHash, user.Role.String())

	return s.mapError(err)
}
