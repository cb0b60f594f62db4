package domain

// Organization is the top of the selection hierarchy; it scopes which
// departments a user can raise tickets against.
type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
