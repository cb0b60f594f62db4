package domain

// Role enumerates the access levels granted by the helpdesk backend.
type Role string

const (
	RoleEmployee       Role = "employee"
	RoleAdmin          Role = "admin"
	RoleSuperAdmin     Role = "super_admin"
	RoleDepartmentHead Role = "department_head"
)

// Resolver is a user account belonging to a department's assignee pool.
type Resolver struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DepartmentID string `json:"department_id"`
}
