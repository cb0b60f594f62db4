// Package draft holds a user's in-progress ticket: the cascading selection
// state and the field validation rules gating submission.
package draft

import (
	"fmt"
	"strings"

	"github.com/providesk/helpdesk-gateway/internal/domain"
)

// Field names accepted by SetField. They match the create payload keys.
const (
	FieldTitle        = "title"
	FieldDescription  = "description"
	FieldOrganization = "organization_id"
	FieldDepartment   = "department_id"
	FieldCategory     = "category_id"
	FieldTicketType   = "ticket_type"
	FieldResolver     = "resolver_id"
)

// Draft is an in-progress ticket. A zero draft is valid; New seeds the
// organization from the signed-in profile when one is known.
type Draft struct {
	Title          string
	Description    string
	OrganizationID string
	DepartmentID   string
	CategoryID     string
	TicketType     string
	ResolverID     string
}

// New returns an empty draft scoped to the given organization.
func New(organizationID string) *Draft {
	return &Draft{OrganizationID: organizationID}
}

// SetField is the single mutation entry point for the draft. Changing a
// parent selection clears every dependent child in the same transition:
// a department change invalidates category and resolver, an organization
// change additionally invalidates the department. This prevents a stale
// category or resolver id from another department riding along into the
// create payload.
func (d *Draft) SetField(name, value string) error {
	switch name {
	case FieldTitle:
		d.Title = value
	case FieldDescription:
		d.Description = value
	case FieldOrganization:
		d.OrganizationID = value
		d.DepartmentID = ""
		d.CategoryID = ""
		d.ResolverID = ""
	case FieldDepartment:
		d.DepartmentID = value
		d.CategoryID = ""
		d.ResolverID = ""
	case FieldCategory:
		d.CategoryID = value
	case FieldTicketType:
		d.TicketType = value
	case FieldResolver:
		d.ResolverID = value
	default:
		return fmt.Errorf("unknown draft field %q", name)
	}
	return nil
}

// Reset returns the draft to its initial empty state, keeping the
// organization scope.
func (d *Draft) Reset() {
	org := d.OrganizationID
	*d = Draft{OrganizationID: org}
}

// Payload builds the create-ticket payload from the draft. Attachment
// references come from the upload batch, never from local file names.
func (d *Draft) Payload(assetURLs []string) domain.TicketPayload {
	return domain.TicketPayload{
		Title:        strings.TrimSpace(d.Title),
		Description:  strings.TrimSpace(d.Description),
		CategoryID:   d.CategoryID,
		DepartmentID: d.DepartmentID,
		TicketType:   domain.TicketType(d.TicketType),
		ResolverID:   d.ResolverID,
		AssetURL:     assetURLs,
	}
}
