package inbound

import (
	"net/http"
	"time"
)

type SignupRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type SignupResponse struct {
	ID       int64  `json:"id,string"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

func (SignupResponse) Message() string {
	return "Registration successful."
}

func (SignupResponse) StatusCode() int {
	return http.StatusCreated
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type PasswordForgotRequest struct {
	Email string `json:"email"`
}

type PasswordForgotResponse struct {
	Email string `json:"email"`
}

func (PasswordForgotResponse) Message() string {
	return "A password reset code has been sent to your email."
}

type OTPVerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type OTPVerifyResponse struct {
	Email string `json:"email"`
}

func (OTPVerifyResponse) Message() string {
	return "Verification successful. You may now reset your password."
}

type PasswordResetRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"new_password"`
}

type PasswordResetResponse struct {
	Email string `json:"email"`
}

func (PasswordResetResponse) Message() string {
	return "Password has been reset."
}

type UserResponse struct {
	ID        int64     `json:"id,string"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

type UsersResponse struct {
	Users []UserResponse `json:"users"`

	page  int32
	size  int32
	total int64
}

func (r UsersResponse) Meta() map[string]any {
	return map[string]any{
		"page":  r.page,
		"size":  r.size,
		"total": r.total,
	}
}

type UserRoleRequest struct {
	Role string `json:"role"`
}

type UserRoleResponse struct {
	ID    int64  `json:"id,string"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (UserRoleResponse) Message() string {
	return "User role updated."
}
