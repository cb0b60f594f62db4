// Package client talks to the upstream helpdesk REST backend. It owns no
// business rules; it shuttles JSON and maps transport failures onto the
// gateway's error kinds.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/providesk/helpdesk-gateway/internal/config"
	"github.com/providesk/helpdesk-gateway/internal/domain"
	apperrors "github.com/providesk/helpdesk-gateway/pkg/util"
)

// API is the upstream helpdesk client.
type API struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// New builds a client against the configured upstream.
func New(cfg config.UpstreamConfig, logger *zap.Logger) *API {
	return &API{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout()},
		logger:  logger,
	}
}

// LoginResult is the auth payload issued by the backend after a
// provider-verified login.
type LoginResult struct {
	AuthToken     string                `json:"auth_token"`
	Name          string                `json:"name"`
	Email         string                `json:"email"`
	Role          domain.Role           `json:"role"`
	Organizations []domain.Organization `json:"organizations"`
}

type loginRequest struct {
	User struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"user"`
}

// Login exchanges the decoded identity for a backend session.
func (a *API) Login(ctx context.Context, email, name string) (*LoginResult, error) {
	var req loginRequest
	req.User.Email = email
	req.User.Name = name

	var envelope struct {
		Data LoginResult `json:"data"`
	}
	if err := a.doJSON(ctx, http.MethodPost, "/users/login", "", nil, req, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// Departments lists departments scoped to an organization.
func (a *API) Departments(ctx context.Context, authToken, organizationID string) ([]domain.Department, error) {
	params := url.Values{}
	if organizationID != "" {
		params.Set("organization_id", organizationID)
	}
	var envelope struct {
		Data []domain.Department `json:"data"`
	}
	if err := a.doJSON(ctx, http.MethodGet, "/departments", authToken, params, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// Categories lists categories scoped to a department.
func (a *API) Categories(ctx context.Context, authToken, departmentID string) ([]domain.Category, error) {
	params := url.Values{}
	if departmentID != "" {
		params.Set("department_id", departmentID)
	}
	var envelope struct {
		Data []domain.Category `json:"data"`
	}
	if err := a.doJSON(ctx, http.MethodGet, "/categories", authToken, params, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// Resolvers lists a department's assignee pool.
func (a *API) Resolvers(ctx context.Context, authToken, departmentID string) ([]domain.Resolver, error) {
	params := url.Values{}
	if departmentID != "" {
		params.Set("department_id", departmentID)
	}
	var envelope struct {
		Data []domain.Resolver `json:"data"`
	}
	if err := a.doJSON(ctx, http.MethodGet, "/users", authToken, params, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// ListTickets fetches complaint summaries for the given filter parameters.
// Absent filters must already be omitted from params.
func (a *API) ListTickets(ctx context.Context, authToken string, params url.Values) ([]domain.ComplaintSummary, error) {
	var envelope struct {
		Data []domain.ComplaintSummary `json:"data"`
	}
	if err := a.doJSON(ctx, http.MethodGet, "/tickets", authToken, params, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

type createTicketRequest struct {
	Ticket domain.TicketPayload `json:"ticket"`
}

// CreateTicket issues the create call. Failures map to CreateError; the
// caller decides what happens to the draft.
func (a *API) CreateTicket(ctx context.Context, authToken string, payload domain.TicketPayload) error {
	err := a.doJSON(ctx, http.MethodPost, "/tickets", authToken, nil, createTicketRequest{Ticket: payload}, nil)
	if err != nil {
		return apperrors.NewCreateError(err)
	}
	return nil
}

func (a *API) doJSON(ctx context.Context, method, path, authToken string, params url.Values, body, out any) error {
	endpoint := a.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return apperrors.NewBadGateway("helpdesk backend unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		a.logger.Warn("upstream call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return apperrors.NewBadGateway(fmt.Sprintf("helpdesk backend returned %d", resp.StatusCode), nil)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
