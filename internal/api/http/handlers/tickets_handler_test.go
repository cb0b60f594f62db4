package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/providesk/helpdesk-gateway/internal/api/dto"
	"github.com/providesk/helpdesk-gateway/internal/domain"
	"github.com/providesk/helpdesk-gateway/internal/observability"
	"github.com/providesk/helpdesk-gateway/internal/session"
	apperrors "github.com/providesk/helpdesk-gateway/pkg/util"
)

type fakeTicketAPI struct {
	listResult  []domain.ComplaintSummary
	listQueries []url.Values
	created     []domain.TicketPayload
	createFails bool
}

func (f *fakeTicketAPI) ListTickets(_ context.Context, _ string, params url.Values) ([]domain.ComplaintSummary, error) {
	f.listQueries = append(f.listQueries, params)
	return f.listResult, nil
}

func (f *fakeTicketAPI) CreateTicket(_ context.Context, _ string, payload domain.TicketPayload) error {
	if f.createFails {
		return apperrors.NewCreateError(errors.New("backend down"))
	}
	f.created = append(f.created, payload)
	return nil
}

func (f *fakeTicketAPI) Departments(_ context.Context, _, organizationID string) ([]domain.Department, error) {
	return []domain.Department{
		{ID: "d1", Name: "IT", OrganizationID: organizationID},
		{ID: "d2", Name: "Admin", OrganizationID: organizationID},
	}, nil
}

type fakeStorage struct {
	failFile string
	stored   int
}

func (f *fakeStorage) Store(_ context.Context, file domain.StagedFile, pathHint string) (string, error) {
	if file.FileName == f.failFile {
		return "", errors.New("storage rejected file")
	}
	f.stored++
	return fmt.Sprintf("%s/%s", pathHint, file.FileName), nil
}

func testApp(api *fakeTicketAPI, storage *fakeStorage) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		session.SetContext(c, &session.Session{
			ID:            "s1",
			AuthToken:     "tok-123",
			Role:          domain.RoleEmployee,
			Organizations: []domain.Organization{{ID: "org1", Name: "Providesk"}},
		})
		return c.Next()
	})
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		if err != nil {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"error": domainErr.Code})
		}
		return nil
	})

	h := NewTicketsHandler(api, storage, "attachments", observability.NewMetrics(), zap.NewNop())
	app.Post("/tickets", h.Create)
	app.Get("/tickets", h.List)
	return app
}

func multipartBody(t *testing.T, fields map[string]string, files []string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for _, name := range files {
		part, err := writer.CreateFormFile("attachments", name)
		require.NoError(t, err)
		_, err = part.Write([]byte("content"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func validFields() map[string]string {
	return map[string]string{
		"department_id": "d1",
		"category_id":   "c1",
		"ticket_type":   "complaint",
		"resolver_id":   "u1",
		"title":         "Broken printer",
		"description":   "No output since Monday",
	}
}

func TestCreateTicketEndToEnd(t *testing.T) {
	api := &fakeTicketAPI{}
	storage := &fakeStorage{}
	app := testApp(api, storage)

	body, contentType := multipartBody(t, validFields(), []string{"a.png", "b.png"})
	req := httptest.NewRequest(http.MethodPost, "/tickets", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	require.Len(t, api.created, 1)
	payload := api.created[0]
	assert.Equal(t, "Broken printer", payload.Title)
	assert.ElementsMatch(t, []string{"attachments/a.png", "attachments/b.png"}, payload.AssetURL)
	assert.Equal(t, 2, storage.stored)
}

func TestCreateTicketValidationFailure(t *testing.T) {
	api := &fakeTicketAPI{}
	app := testApp(api, &fakeStorage{})

	fields := validFields()
	fields["title"] = "bad title?!"
	body, contentType := multipartBody(t, fields, nil)
	req := httptest.NewRequest(http.MethodPost, "/tickets", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Empty(t, api.created, "no create call on validation failure")
}

func TestCreateTicketUploadFailureAborts(t *testing.T) {
	api := &fakeTicketAPI{}
	app := testApp(api, &fakeStorage{failFile: "b.png"})

	body, contentType := multipartBody(t, validFields(), []string{"a.png", "b.png"})
	req := httptest.NewRequest(http.MethodPost, "/tickets", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Empty(t, api.created, "create never fires when any upload fails")
}

func TestListTicketsPaginatesFullFilteredSet(t *testing.T) {
	api := &fakeTicketAPI{}
	for i := 0; i < 45; i++ {
		api.listResult = append(api.listResult, domain.ComplaintSummary{
			ID:    fmt.Sprintf("t%d", i),
			Title: "Ticket",
		})
	}
	app := testApp(api, &fakeStorage{})

	req := httptest.NewRequest(http.MethodGet, "/tickets?type=request&assigned_to_me=true&page=1&per_page=30", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var result dto.TicketListResponse
	require.NoError(t, json.Unmarshal(raw, &result))

	assert.Len(t, result.Data, 15, "second page holds the remainder")
	assert.Equal(t, 45, result.Total, "total reports the full filtered set")
	assert.Equal(t, 1, result.Page)

	require.Len(t, api.listQueries, 1)
	query := api.listQueries[0]
	assert.Equal(t, "request", query.Get("type"))
	assert.Equal(t, "true", query.Get("assigned_to_me"))
	_, hasStatus := query["status"]
	assert.False(t, hasStatus, "defaults omitted from the upstream query")
}

func TestListTicketsResolvesDepartmentAndTitleLocally(t *testing.T) {
	api := &fakeTicketAPI{listResult: []domain.ComplaintSummary{
		{ID: "t1", Title: "Broken printer"},
		{ID: "t2", Title: "AC not cooling"},
	}}
	app := testApp(api, &fakeStorage{})

	req := httptest.NewRequest(http.MethodGet, "/tickets?department=Admin&title=printer", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var result dto.TicketListResponse
	require.NoError(t, json.Unmarshal(raw, &result))

	require.Len(t, result.Data, 1)
	assert.Equal(t, "t1", result.Data[0].ID)

	require.Len(t, api.listQueries, 1)
	query := api.listQueries[0]
	assert.Equal(t, "Admin", query.Get("department"))
	_, hasTitle := query["title"]
	assert.False(t, hasTitle, "title search stays client-side")
}
