package domain

// ComplaintSummary is the read-only projection returned by the ticket
// listing endpoint and rendered on the dashboard.
type ComplaintSummary struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Status     TicketStatus `json:"status"`
	RaisedBy   string       `json:"raised_by"`
	CreatedAt  string       `json:"created_at"`
	UpdatedAt  string       `json:"updated_time"`
	AssignedTo string       `json:"assigned_to"`
	Department string       `json:"department"`
}
