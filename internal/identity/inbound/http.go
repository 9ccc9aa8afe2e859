package inbound

import (
	"context"

	"github.com/shandysiswandi/expensio/internal/identity/usecase"
	"github.com/shandysiswandi/expensio/internal/pkg/router"
)

type uc interface {
	Signup(ctx context.Context, in usecase.SignupInput) (*usecase.SignupOutput, error)
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)

	PasswordForgot(ctx context.Context, in usecase.PasswordForgotInput) (*usecase.PasswordForgotOutput, error)
	OTPVerify(ctx context.Context, in usecase.OTPVerifyInput) (*usecase.OTPVerifyOutput, error)
	PasswordReset(ctx context.Context, in usecase.PasswordResetInput) (*usecase.PasswordResetOutput, error)

	UserGet(ctx context.Context, in usecase.UserGetInput) (*usecase.UserGetOutput, error)
	UserList(ctx context.Context, in usecase.UserListInput) (*usecase.UserListOutput, error)
	UserRole(ctx context.Context, in usecase.UserRoleInput) (*usecase.UserRoleOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Account lifecycle
	r.POST("/api/signup", end.Signup)
	r.POST("/api/login", end.Login)

	// Password reset flow
	r.POST("/api/forgot-password", end.PasswordForgot)
	r.POST("/api/verify-otp", end.OTPVerify)
	r.POST("/api/reset-password", end.PasswordReset)

	// User directory
	r.GET("/api/user/:email", end.UserGet)

	// User administration (need authenticated & authorization)
	r.GET("/api/users", end.UserList)
	r.PATCH("/api/users/:id/role", end.UserRole)
}
