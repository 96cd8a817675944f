// Package users holds the user role family: each role is a variant that
// describes itself. Roles are created by name through the variant registry
// instead of through one creator type per role.
package users

import (
	"github.com/arthur-debert/patterns/pkg/registry"
)

// User is the capability every role variant exposes
type User interface {
	Role() string
	Describe() string
}

// Canonical role names
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// Admin is the administrator role
type Admin struct{}

func (Admin) Role() string     { return RoleAdmin }
func (Admin) Describe() string { return "Я Адміністратор." }

// Manager is the supervising role
type Manager struct{}

func (Manager) Role() string     { return RoleManager }
func (Manager) Describe() string { return "Я Менеджер." }

// Employee is the worker role
type Employee struct{}

func (Employee) Role() string     { return RoleEmployee }
func (Employee) Describe() string { return "Я Працівник." }

var roles = registry.NewVariants[User]("user")

func init() {
	roles.MustRegister(RoleAdmin, func() User { return Admin{} })
	roles.MustRegister(RoleManager, func() User { return Manager{} })
	roles.MustRegister(RoleEmployee, func() User { return Employee{} })

	for alias, role := range map[string]string{
		"administrator": RoleAdmin,
		"supervisor":    RoleManager,
		"worker":        RoleEmployee,
	} {
		if err := roles.Alias(alias, role); err != nil {
			panic(err)
		}
	}
}

// Create builds the user variant for role. Unknown roles fail with
// UNKNOWN_VARIANT.
func Create(role string) (User, error) {
	return roles.Create(role)
}

// Roles lists the canonical role names
func Roles() []string {
	return roles.Names()
}

// Variants exposes the role registry so callers can add roles
func Variants() *registry.Variants[User] {
	return roles
}
