package entity

import "time"

type User struct {
	ID        int64
	Email     string
	FullName  string
	Role      UserRole
	CreatedAt time.Time
	UpdatedAt time.Time
}

type NewUser struct {
	ID       int64
	Email    string
	FullName string
	Role     UserRole
}

type UserLoginInfo struct {
	ID       int64
	Email    string
	FullName string
	Role     UserRole
	Password string // hashed
}

// UserChallenge carries the reset-code state of a single user. OTPSecret and
// OTPExpiry are nil when no code has ever been issued or the last one was
// consumed.
type UserChallenge struct {
	UserID    int64
	Email     string
	OTPSecret *string
	OTPExpiry *time.Time
}

type UserListFilterData struct {
	IsFilterBySearch bool
	IsFilterByRole   bool
	Search           string
	Roles            []UserRole
	Size             int32
	Page             int32
}
