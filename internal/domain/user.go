package domain

import "time"

const (
	RoleAgent = "agent"
	RoleAdmin = "admin"
)

type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	Active       bool       `json:"active"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// RoleSatisfies implements the agent < admin precedence: an admin passes
// every agent gate, the reverse does not hold.
func RoleSatisfies(userRole, required string) bool {
	order := map[string]int{RoleAgent: 1, RoleAdmin: 2}
	u, ok := order[userRole]
	if !ok {
		return false
	}
	r, ok := order[required]
	if !ok {
		return false
	}
	return u >= r
}
