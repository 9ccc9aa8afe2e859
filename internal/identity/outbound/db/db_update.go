package db

import (
	"context"
	"time"

	"github.com/shandysiswandi/expensio/internal/identity/entity"
)

// SetChallengeIfExpired installs a reset code only when the slot is free: no
// code yet, or the previous one already expired at instant now. Concurrent
// callers race on this single statement and exactly one wins.
func (s *DB) SetChallengeIfExpired(ctx context.Context, email, code string, expiresAt, now time.Time) (_ bool, err error) {
	ctx, span := s.startSpan(ctx, "SetChallengeIfExpired")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `
		UPDATE users
		SET otp_secret = $2, otp_expiry = $3, updated_at = NOW()
		WHERE email = $1 AND (otp_secret IS NULL OR otp_expiry IS NULL OR otp_expiry < $4)
	`, email, code, expiresAt, now)
	if err != nil {
		return false, s.mapError(err)
	}

	return tag.RowsAffected() == 1, nil
}

// ClearChallengeByCode consumes a matching reset code, wiping the code and its
// expiry together so no half-cleared state can be observed.
func (s *DB) ClearChallengeByCode(ctx context.Context, email, code string) (_ bool, err error) {
	ctx, span := s.startSpan(ctx, "ClearChallengeByCode")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `
		UPDATE users
		SET otp_secret = NULL, otp_expiry = NULL, updated_at = NOW()
		WHERE email = $1 AND otp_secret = $2
	`, email, code)
	if err != nil {
		return false, s.mapError(err)
	}

	return tag.RowsAffected() == 1, nil
}

func (s *DB) UpdateUserPassword(ctx context.Context, userID int64, passwordHash string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateUserPassword")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		UPDATE users
		SET password = $2, updated_at = NOW()
		WHERE id = $1
	`, userID, passwordHash)

	return s.mapError(err)
}

func (s *DB) UpdateUserRole(ctx context.Context, userID int64, role entity.UserRole) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateUserRole")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		UPDATE users
		SET role = $2, updated_at = NOW()
		WHERE id = $1
	`, userID, role.String())

	return s.mapError(err)
}
