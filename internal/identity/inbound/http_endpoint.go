package inbound

import (
	"strings"

	"github.com/shandysiswandi/expensio/internal/identity/usecase"
	"github.com/shandysiswandi/expensio/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for account and password reset workflows.
type HTTPEndpoint struct {
	uc uc
}

// Signup creates a new account with the default employee role.
func (h *HTTPEndpoint) Signup(r *router.Request) (any, error) {
	var req SignupRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Signup(r.Context(), usecase.SignupInput{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return SignupResponse{
		ID:       resp.ID,
		Email:    resp.Email,
		FullName: resp.FullName,
		Role:     resp.Role.String(),
	}, nil
}

// Login authenticates a user and returns an access token.
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{
		AccessToken: resp.AccessToken,
		User: UserResponse{
			ID:       resp.UserID,
			Email:    resp.Email,
			FullName: resp.FullName,
			Role:     resp.Role.String(),
		},
	}, nil
}

// PasswordForgot issues a reset code and emails it to the account owner.
func (h *HTTPEndpoint) PasswordForgot(r *router.Request) (any, error) {
	var req PasswordForgotRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.PasswordForgot(r.Context(), usecase.PasswordForgotInput{Email: req.Email})
	if err != nil {
		return nil, err
	}

	return PasswordForgotResponse{Email: resp.Email}, nil
}

// OTPVerify checks a submitted reset code and consumes it on success.
func (h *HTTPEndpoint) OTPVerify(r *router.Request) (any, error) {
	var req OTPVerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.OTPVerify(r.Context(), usecase.OTPVerifyInput{
		Email: req.Email,
		Code:  req.Code,
	})
	if err != nil {
		return nil, err
	}

	return OTPVerifyResponse{Email: resp.Email}, nil
}

// PasswordReset replaces the account password.
func (h *HTTPEndpoint) PasswordReset(r *router.Request) (any, error) {
	var req PasswordResetRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.PasswordReset(r.Context(), usecase.PasswordResetInput{
		Email:       req.Email,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return nil, err
	}

	return PasswordResetResponse{Email: resp.Email}, nil
}

// UserGet returns the public profile for an email address.
func (h *HTTPEndpoint) UserGet(r *router.Request) (any, error) {
	resp, err := h.uc.UserGet(r.Context(), usecase.UserGetInput{Email: r.GetParam("email")})
	if err != nil {
		return nil, err
	}

	return UserResponse{
		ID:        resp.ID,
		Email:     resp.Email,
		FullName:  resp.FullName,
		Role:      resp.Role.String(),
		CreatedAt: resp.CreatedAt,
	}, nil
}

// UserList returns a paged user directory.
func (h *HTTPEndpoint) UserList(r *router.Request) (any, error) {
	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}

	size, err := r.GetQueryInt32("size")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.UserList(r.Context(), usecase.UserListInput{
		Search: strings.TrimSpace(r.GetQuery("search")),
		Roles:  r.GetQueries("roles"),
		Page:   page,
		Size:   size,
	})
	if err != nil {
		return nil, err
	}

	users := make([]UserResponse, len(resp.Users))
	for i, u := range resp.Users {
		users[i] = UserResponse{
			ID:        u.ID,
			Email:     u.Email,
			FullName:  u.FullName,
			Role:      u.Role.String(),
			CreatedAt: u.CreatedAt,
		}
	}

	return UsersResponse{
		Users: users,
		page:  resp.Page,
		size:  resp.Size,
		total: resp.Total,
	}, nil
}

// UserRole changes another user's role.
func (h *HTTPEndpoint) UserRole(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req UserRoleRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.UserRole(r.Context(), usecase.UserRoleInput{
		UserID: id,
		Role:   req.Role,
	})
	if err != nil {
		return nil, err
	}

	return UserRoleResponse{
		ID:    resp.ID,
		Email: resp.Email,
		Role:  resp.Role.String(),
	}, nil
}
