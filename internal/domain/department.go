package domain

// Department represents an organizational unit tickets are raised against.
// Selecting a department invalidates any previously chosen category and
// resolver, since both belong to the department's option sets.
type Department struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	OrganizationID string `json:"organization_id"`
}
