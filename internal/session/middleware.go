package session

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/providesk/helpdesk-gateway/pkg/util"
)

const sessionKey = "active_session"

// Middleware loads the caller's session from the bearer session id and
// rejects requests without an authenticated one.
type Middleware struct {
	store *Store
}

// NewMiddleware constructs middleware.
func NewMiddleware(store *Store) *Middleware {
	return &Middleware{store: store}
}

// Handle enforces an authenticated session for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	sess, err := m.store.Get(c.UserContext(), parts[1])
	if err == ErrNotFound {
		return apperrors.NewUnauthorized("session expired")
	}
	if err != nil {
		return apperrors.MapError(err)
	}
	if !sess.Authenticated() {
		return apperrors.NewUnauthorized("login incomplete")
	}

	SetContext(c, sess)
	return c.Next()
}

// SetContext attaches a session to the request context.
func SetContext(c *fiber.Ctx, sess *Session) {
	c.Locals(sessionKey, sess)
}

// FromContext retrieves the session loaded by Handle.
func FromContext(c *fiber.Ctx) (*Session, bool) {
	val := c.Locals(sessionKey)
	if val == nil {
		return nil, false
	}
	sess, ok := val.(*Session)
	return sess, ok
}
