package dto

import "github.com/providesk/helpdesk-gateway/internal/domain"

// GoogleLoginRequest carries the identity provider's signed credential.
type GoogleLoginRequest struct {
	Credential string `json:"credential"`
}

// SessionResponse is returned after a successful login.
type SessionResponse struct {
	SessionID     string                `json:"session_id"`
	Name          string                `json:"name"`
	Email         string                `json:"email"`
	Picture       string                `json:"picture"`
	Role          domain.Role           `json:"role"`
	Organizations []domain.Organization `json:"organizations"`
}
