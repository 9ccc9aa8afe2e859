package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/expensio/internal/identity/entity"
	"github.com/shandysiswandi/expensio/internal/pkg/goerror"
)

type SignupInput struct {
	Email    string `validate:"required,email"`
	FullName string `validate:"required,alphaspace,max=100"`
	Password string `validate:"required,password"`
}

type SignupOutput struct {
	ID       int64
	Email    string
	FullName string
	Role     entity.UserRole
}

func (s *Usecase) Signup(ctx context.Context, in SignupInput) (*SignupOutput, error) {
	ctx, span := s.startSpan(ctx, "Signup")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.FullName = strings.TrimSpace(in.FullName)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	passwordHash, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, goerror.NewServer(err)
	}

	user := entity.NewUser{
		ID:       s.uid.Generate(),
		Email:    in.Email,
		FullName: in.FullName,
		Role:     entity.RoleEmployee,
	}

	if err := s.repoDB.CreateUser(ctx, user, string(passwordHash)); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return nil, goerror.NewBusiness("Email already registered", goerror.CodeConflict)
		}

		slog.ErrorContext(ctx, "failed to repo create user", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	s.goroutine.Go(ctx, func(ctx context.Context) error {
		if err := s.repoMessaging.PublishUserRegistered(ctx, UserRegisteredEvent{
			UserID:   user.ID,
			Email:    user.Email,
			FullName: user.FullName,
		}); err != nil {
			slog.ErrorContext(ctx, "failed to publish user registered", "user_id", user.ID, "error", err)
		}
		return nil
	})

	return &SignupOutput{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
	}, nil
}
