package dto

import "github.com/providesk/helpdesk-gateway/internal/domain"

// TicketCreatedResponse acknowledges a completed submission.
type TicketCreatedResponse struct {
	Status      string `json:"status"`
	Attachments int    `json:"attachments"`
}

// TicketListResponse is one dashboard page plus the full filtered count.
type TicketListResponse struct {
	Data    []domain.ComplaintSummary `json:"data"`
	Page    int                       `json:"page"`
	PerPage int                       `json:"per_page"`
	Total   int                       `json:"total"`
}
