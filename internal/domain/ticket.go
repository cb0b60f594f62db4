package domain

// TicketType distinguishes complaints from requests.
type TicketType string

const (
	TicketTypeComplaint TicketType = "complaint"
	TicketTypeRequest   TicketType = "request"
)

// TicketTypes lists the selectable ticket types in display order.
var TicketTypes = []TicketType{TicketTypeComplaint, TicketTypeRequest}

// TicketStatus enumerates lifecycle states reported by the helpdesk backend.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusAssigned   TicketStatus = "assigned"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
)

// StagedFile is a locally staged attachment that has not yet been uploaded
// to object storage.
type StagedFile struct {
	FileName    string
	ContentType string
	Size        int64
	Content     []byte
}

// TicketPayload is the creation payload sent to the helpdesk backend.
// AssetURL holds upload-result references, never local file names.
type TicketPayload struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	CategoryID   string     `json:"category_id"`
	DepartmentID string     `json:"department_id"`
	TicketType   TicketType `json:"ticket_type"`
	ResolverID   string     `json:"resolver_id"`
	AssetURL     []string   `json:"asset_url"`
}
