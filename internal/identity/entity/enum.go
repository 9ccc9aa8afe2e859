package entity

// UserRole determines which endpoints a user may call. Roles are stored as
// text and inherit through the RBAC policy: admin > manager > employee.
type UserRole string

const (
	RoleUnknown  UserRole = ""
	RoleEmployee UserRole = "employee"
	RoleManager  UserRole = "manager"
	RoleAdmin    UserRole = "admin"
)

func ParseUserRole(raw string) UserRole {
	switch raw {
	case "employee":
		return RoleEmployee
	case "manager":
		return RoleManager
	case "admin":
		return RoleAdmin
	default:
		return RoleUnknown
	}
}

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsUnknown() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleAdmin:
		return false
	default:
		return true
	}
}

func ParseSafeUserRoles(raws []string) []UserRole {
	out := make([]UserRole, 0)
	seen := map[UserRole]struct{}{}

	for _, v := range raws {
		r := ParseUserRole(v)
		if r.IsUnknown() {
			continue
		}

		if _, ok := seen[r]; ok {
			continue
		}

		seen[r] = struct{}{}
		out = append(out, r)
	}

	return out
}

func ToStringSlice(roles []UserRole) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}
