package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/providesk/helpdesk-gateway/internal/api/dto"
	"github.com/providesk/helpdesk-gateway/internal/client"
	"github.com/providesk/helpdesk-gateway/internal/session"
	apperrors "github.com/providesk/helpdesk-gateway/pkg/util"
)

// LoginAPI is the slice of the upstream client the auth handler needs.
type LoginAPI interface {
	Login(ctx context.Context, email, name string) (*client.LoginResult, error)
}

// AuthHandler exchanges identity-provider credentials for sessions.
type AuthHandler struct {
	api      LoginAPI
	sessions *session.Store
}

// NewAuthHandler constructs handler.
func NewAuthHandler(api LoginAPI, sessions *session.Store) *AuthHandler {
	return &AuthHandler{api: api, sessions: sessions}
}

// Google handles POST /auth/google: decode the signed credential, log in
// against the backend, persist the session.
func (h *AuthHandler) Google(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Credential == "" {
		return apperrors.NewValidationError("credential required", nil)
	}

	profile, err := session.DecodeCredential(req.Credential)
	if err != nil {
		return err
	}

	result, err := h.api.Login(c.UserContext(), profile.Email, profile.Name)
	if err != nil {
		return err
	}
	if result.AuthToken == "" {
		return apperrors.NewUnauthorized("backend issued no auth token")
	}

	sess := &session.Session{
		Profile:       profile,
		AuthToken:     result.AuthToken,
		Role:          result.Role,
		Organizations: result.Organizations,
	}
	if err := h.sessions.Save(c.UserContext(), sess); err != nil {
		return apperrors.MapError(err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.SessionResponse{
		SessionID:     sess.ID,
		Name:          profile.Name,
		Email:         profile.Email,
		Picture:       profile.Picture,
		Role:          result.Role,
		Organizations: result.Organizations,
	}})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, ok := session.FromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("session required")
	}
	if err := h.sessions.Delete(c.UserContext(), sess.ID); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "logged_out"}})
}

// Navigation handles GET /navigation: role-scoped menu entries.
func (h *AuthHandler) Navigation(c *fiber.Ctx) error {
	sess, ok := session.FromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("session required")
	}
	return c.JSON(fiber.Map{"data": session.MenuFor(sess.Role)})
}
