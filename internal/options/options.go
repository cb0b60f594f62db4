// Package options projects raw backend collections into the ordered
// label/value pairs a selection control consumes. All projections are pure:
// absent collections or parent keys yield an empty slice, never an error.
package options

import "github.com/providesk/helpdesk-gateway/internal/domain"

// Option is a single selectable entry.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ForDepartments lists departments belonging to the selected organization.
func ForDepartments(departments []domain.Department, organizationID string) []Option {
	opts := make([]Option, 0, len(departments))
	if organizationID == "" {
		return opts
	}
	for _, dept := range departments {
		if dept.OrganizationID != organizationID {
			continue
		}
		opts = append(opts, Option{Label: dept.Name, Value: dept.ID})
	}
	return opts
}

// ForCategories lists categories belonging to the selected department.
func ForCategories(categories []domain.Category, departmentID string) []Option {
	opts := make([]Option, 0, len(categories))
	if departmentID == "" {
		return opts
	}
	for _, cat := range categories {
		if cat.DepartmentID != departmentID {
			continue
		}
		opts = append(opts, Option{Label: cat.Name, Value: cat.ID})
	}
	return opts
}

// ForResolvers lists the assignee pool of the selected department.
func ForResolvers(resolvers []domain.Resolver, departmentID string) []Option {
	opts := make([]Option, 0, len(resolvers))
	if departmentID == "" {
		return opts
	}
	for _, r := range resolvers {
		if r.DepartmentID != departmentID {
			continue
		}
		opts = append(opts, Option{Label: r.Name, Value: r.ID})
	}
	return opts
}

// ForTicketTypes lists the static ticket type choices.
func ForTicketTypes() []Option {
	opts := make([]Option, 0, len(domain.TicketTypes))
	for _, t := range domain.TicketTypes {
		opts = append(opts, Option{Label: string(t), Value: string(t)})
	}
	return opts
}
