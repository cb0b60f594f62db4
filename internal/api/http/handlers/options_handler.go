package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/providesk/helpdesk-gateway/internal/domain"
	"github.com/providesk/helpdesk-gateway/internal/options"
	"github.com/providesk/helpdesk-gateway/internal/session"
	apperrors "github.com/providesk/helpdesk-gateway/pkg/util"
)

// CatalogAPI is the slice of the upstream client serving dropdown data.
type CatalogAPI interface {
	Departments(ctx context.Context, authToken, organizationID string) ([]domain.Department, error)
	Categories(ctx context.Context, authToken, departmentID string) ([]domain.Category, error)
	Resolvers(ctx context.Context, authToken, departmentID string) ([]domain.Resolver, error)
}

// OptionsHandler serves the cascading dropdown option lists.
type OptionsHandler struct {
	api CatalogAPI
}

// NewOptionsHandler constructs handler.
func NewOptionsHandler(api CatalogAPI) *OptionsHandler {
	return &OptionsHandler{api: api}
}

// Departments handles GET /options/departments. Without an explicit
// organization_id the session's first organization scopes the query, the
// same seed a fresh draft gets.
func (h *OptionsHandler) Departments(c *fiber.Ctx) error {
	sess, ok := session.FromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("session required")
	}
	organizationID := c.Query("organization_id")
	if organizationID == "" {
		organizationID = sess.DefaultOrganization()
	}

	departments, err := h.api.Departments(c.UserContext(), sess.AuthToken, organizationID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": options.ForDepartments(departments, organizationID)})
}

// Categories handles GET /options/categories?department_id=.
func (h *OptionsHandler) Categories(c *fiber.Ctx) error {
	sess, ok := session.FromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("session required")
	}
	departmentID := c.Query("department_id")
	if departmentID == "" {
		return c.JSON(fiber.Map{"data": []options.Option{}})
	}

	categories, err := h.api.Categories(c.UserContext(), sess.AuthToken, departmentID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": options.ForCategories(categories, departmentID)})
}

// Resolvers handles GET /options/resolvers?department_id=.
func (h *OptionsHandler) Resolvers(c *fiber.Ctx) error {
	sess, ok := session.FromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("session required")
	}
	departmentID := c.Query("department_id")
	if departmentID == "" {
		return c.JSON(fiber.Map{"data": []options.Option{}})
	}

	resolvers, err := h.api.Resolvers(c.UserContext(), sess.AuthToken, departmentID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": options.ForResolvers(resolvers, departmentID)})
}

// TicketTypes handles GET /options/ticket_types.
func (h *OptionsHandler) TicketTypes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": options.ForTicketTypes()})
}
