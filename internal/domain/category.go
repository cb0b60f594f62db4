package domain

// Category classifies a ticket within its owning department.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DepartmentID string `json:"department_id"`
}
