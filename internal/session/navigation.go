package session

import "github.com/providesk/helpdesk-gateway/internal/domain"

// MenuEntry is one navigation item offered to a role.
type MenuEntry struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

var employeeMenu = []MenuEntry{
	{Label: "Dashboard", Path: "/dashboard"},
	{Label: "Ticket", Path: "/ticket"},
}

// MenuFor returns the navigation entries a role may see. Unknown roles get
// nothing.
func MenuFor(role domain.Role) []MenuEntry {
	switch role {
	case domain.RoleSuperAdmin:
		return append(append([]MenuEntry{}, employeeMenu...),
			MenuEntry{Label: "Organization", Path: "/organization"},
		)
	case domain.RoleAdmin:
		return append(append([]MenuEntry{}, employeeMenu...),
			MenuEntry{Label: "Department", Path: "/department"},
			MenuEntry{Label: "Categories", Path: "/category"},
			MenuEntry{Label: "Employees", Path: "/users"},
		)
	case domain.RoleDepartmentHead:
		return append(append([]MenuEntry{}, employeeMenu...),
			MenuEntry{Label: "Employees", Path: "/users"},
		)
	case domain.RoleEmployee:
		return append([]MenuEntry{}, employeeMenu...)
	default:
		return []MenuEntry{}
	}
}
