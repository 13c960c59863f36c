package account

import (
	"database/sql/driver"
	"fmt"
)

// ===============================
// Role
// ===============================

type Role string

const (
	RoleClient       Role = "client"
	RoleProfessional Role = "professional"
)

// ParseRole accepts the stored role values. Older rows carry "user" for
// clients.
func ParseRole(s string) (Role, error) {
	switch s {
	case "client", "user":
		return RoleClient, nil
	case "professional":
		return RoleProfessional, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) Valid() bool {
	return r == RoleClient || r == RoleProfessional
}

func (r Role) String() string {
	return string(r)
}

func (r *Role) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case nil:
		raw = "client"
	default:
		return fmt.Errorf("role: unsupported type %T", src)
	}

	parsed, err := ParseRole(raw)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (r Role) Value() (driver.Value, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("role: invalid value %q", string(r))
	}
	return string(r), nil
}
