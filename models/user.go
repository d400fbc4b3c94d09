package models

import "fmt"

// Role is the kind of account a viewer holds.
type Role string

const (
	RoleStudent      Role = "student"
	RoleProfessional Role = "professional"
	RoleCompany      Role = "company"
)

// ParseRole converts a raw claim value into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleProfessional, RoleCompany:
		return true
	}
	return false
}

// Viewer is the authenticated user looking at a listing. A nil *Viewer is an
// anonymous visitor.
type Viewer struct {
	ID       string `json:"userid"`
	Username string `json:"username,omitempty"`
	Role     Role   `json:"role"`
}
