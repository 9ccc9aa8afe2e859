package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/expensio/internal/identity/entity"
	"github.com/shandysiswandi/expensio/internal/pkg/goerror"
	"github.com/shandysiswandi/expensio/internal/pkg/jwt"
)

type UserRoleInput struct {
	UserID int64  `validate:"required,gt=0"`
	Role   string `validate:"required,oneof=employee manager admin"`
}

type UserRoleOutput struct {
	ID    int64
	Email string
	Role  entity.UserRole
}

func (s *Usecase) UserRole(ctx context.Context, in UserRoleInput) (*UserRoleOutput, error) {
	ctx, span := s.startSpan(ctx, "UserRole")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	if clm.UserID == in.UserID {
		return nil, goerror.NewBusiness("Cannot change your own role", goerror.CodeForbidden)
	}

	user, err := s.repoDB.GetUserByID(ctx, in.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by id", "user_id", in.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	role := entity.ParseUserRole(in.Role)
	if err := s.repoDB.UpdateUserRole(ctx, user.ID, role); err != nil {
		slog.ErrorContext(ctx, "failed to repo update user role", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &UserRoleOutput{
		ID:    user.ID,
		Email: user.Email,
		Role:  role,
	}, nil
}
