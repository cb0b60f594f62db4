// Package listing holds the dashboard filter state and the client-side
// pagination applied to the listing results.
package listing

import (
	"net/url"
	"strings"

	"github.com/providesk/helpdesk-gateway/internal/domain"
)

// Default page sizes: the filter fetches in windows of 30, the dashboard
// displays 10 rows per page.
const (
	DefaultPerPage = 30
	DisplayPerPage = 10
)

// Filter captures the dashboard's filter criteria and pagination window.
// Zero values mean "not filtering on this field" and are omitted from the
// upstream query.
type Filter struct {
	Status       string
	Type         string
	Department   string
	Category     string
	Title        string
	AssignedToMe bool
	CreatedByMe  bool
	Page         int
	PerPage      int

	departmentID string
}

// NewFilter returns the dashboard's default filter state.
func NewFilter() Filter {
	return Filter{PerPage: DefaultPerPage}
}

// SetDepartment selects a department by name, resolving its identifier from
// the known department list to drive the dependent category query. Changing
// the department clears the category selection, which belonged to the old
// department's option set.
func (f *Filter) SetDepartment(name string, departments []domain.Department) {
	f.Department = name
	f.Category = ""
	f.departmentID = ""
	for _, dept := range departments {
		if dept.Name == name {
			f.departmentID = dept.ID
			break
		}
	}
}

// DepartmentID returns the identifier resolved by SetDepartment, or empty.
func (f Filter) DepartmentID() string {
	return f.departmentID
}

// QueryValues maps the filter onto listing query parameters. Fields holding
// their empty or default value are omitted entirely rather than sent as
// empty strings.
func (f Filter) QueryValues() url.Values {
	params := url.Values{}
	if f.Type != "" {
		params.Set("type", f.Type)
	}
	if f.Category != "" {
		params.Set("category", f.Category)
	}
	if f.Status != "" {
		params.Set("status", f.Status)
	}
	if f.Department != "" {
		params.Set("department", f.Department)
	}
	if f.AssignedToMe {
		params.Set("assigned_to_me", "true")
	}
	if f.CreatedByMe {
		params.Set("created_by_me", "true")
	}
	return params
}

// MatchTitle filters summaries by case-insensitive title substring. The
// title search never leaves the client; the listing endpoint does not
// accept it.
func (f Filter) MatchTitle(items []domain.ComplaintSummary) []domain.ComplaintSummary {
	if f.Title == "" {
		return items
	}
	needle := strings.ToLower(f.Title)
	matched := make([]domain.ComplaintSummary, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), needle) {
			matched = append(matched, item)
		}
	}
	return matched
}

// Paginate slices one page out of the full result set. Pages beyond the end
// yield an empty slice. The caller reports the length of the full set as the
// total, not the slice length.
func Paginate(items []domain.ComplaintSummary, page, perPage int) []domain.ComplaintSummary {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if page < 0 {
		page = 0
	}
	start := page * perPage
	if start >= len(items) {
		return []domain.ComplaintSummary{}
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
