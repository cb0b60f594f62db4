package handlers

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/providesk/helpdesk-gateway/internal/api/dto"
	"github.com/providesk/helpdesk-gateway/internal/domain"
	"github.com/providesk/helpdesk-gateway/internal/draft"
	"github.com/providesk/helpdesk-gateway/internal/listing"
	"github.com/providesk/helpdesk-gateway/internal/observability"
	"github.com/providesk/helpdesk-gateway/internal/session"
	"github.com/providesk/helpdesk-gateway/internal/submit"
	"github.com/providesk/helpdesk-gateway/internal/upload"
	apperrors "github.com/providesk/helpdesk-gateway/pkg/util"
)

// TicketAPI is the slice of the upstream client serving ticket traffic.
type TicketAPI interface {
	ListTickets(ctx context.Context, authToken string, params url.Values) ([]domain.ComplaintSummary, error)
	CreateTicket(ctx context.Context, authToken string, payload domain.TicketPayload) error
	Departments(ctx context.Context, authToken, organizationID string) ([]domain.Department, error)
}

// TicketsHandler runs the submission pipeline and the dashboard listing.
type TicketsHandler struct {
	api        TicketAPI
	storage    upload.ObjectStorage
	pathPrefix string
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(api TicketAPI, storage upload.ObjectStorage, pathPrefix string, metrics *observability.Metrics, logger *zap.Logger) *TicketsHandler {
	return &TicketsHandler{
		api:        api,
		storage:    storage,
		pathPrefix: pathPrefix,
		metrics:    metrics,
		logger:     logger,
	}
}

// ticketCreator binds the session's auth token onto the create call.
type ticketCreator struct {
	api       TicketAPI
	authToken string
}

func (t ticketCreator) CreateTicket(ctx context.Context, payload domain.TicketPayload) error {
	return t.api.CreateTicket(ctx, t.authToken, payload)
}

// Fields applied in parent-first order so the cascade clears nothing the
// request itself supplied.
var draftFieldOrder = []string{
	draft.FieldOrganization,
	draft.FieldDepartment,
	draft.FieldCategory,
	draft.FieldTicketType,
	draft.FieldResolver,
	draft.FieldTitle,
	draft.FieldDescription,
}

// Create handles POST /tickets: multipart fields plus attachment files, run
// through validation, the upload batch, and the create call.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	sess, ok := session.FromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("session required")
	}

	d := draft.New(sess.DefaultOrganization())
	for _, field := range draftFieldOrder {
		if value := c.FormValue(field); value != "" {
			if err := d.SetField(field, value); err != nil {
				return apperrors.NewValidationError(err.Error(), nil)
			}
		}
	}

	staged, err := stagedFiles(c)
	if err != nil {
		return apperrors.NewValidationError("unreadable attachment", nil)
	}
	uploads := upload.NewCoordinator(h.storage, h.pathPrefix)
	uploads.AddFiles(staged...)

	controller := submit.NewController(d, uploads, ticketCreator{api: h.api, authToken: sess.AuthToken}, h.logger)
	fieldErrs, err := controller.Submit(c.UserContext())
	if len(fieldErrs) > 0 {
		details := make(map[string]any, len(fieldErrs))
		for field, msg := range fieldErrs {
			details[field] = msg
		}
		return apperrors.NewValidationError("ticket fields failed validation", details)
	}
	if err != nil {
		h.metrics.RecordUploadBatch(len(staged), true)
		return err
	}
	h.metrics.RecordUploadBatch(len(staged), false)

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.TicketCreatedResponse{
		Status:      "created",
		Attachments: len(staged),
	}})
}

// List handles GET /tickets: map active filters onto the upstream query,
// filter by title locally, then paginate the full result set.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	sess, ok := session.FromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("session required")
	}

	filter := listing.NewFilter()
	filter.Status = c.Query("status")
	filter.Type = c.Query("type")
	filter.Category = c.Query("category")
	filter.Title = c.Query("title")
	filter.AssignedToMe = c.QueryBool("assigned_to_me")
	filter.CreatedByMe = c.QueryBool("created_by_me")
	filter.Page = parseIntDefault(c.Query("page"), 0)
	filter.PerPage = parseIntDefault(c.Query("per_page"), listing.DisplayPerPage)

	if department := c.Query("department"); department != "" {
		departments, err := h.api.Departments(c.UserContext(), sess.AuthToken, sess.DefaultOrganization())
		if err != nil {
			return err
		}
		filter.SetDepartment(department, departments)
	}

	items, err := h.api.ListTickets(c.UserContext(), sess.AuthToken, filter.QueryValues())
	if err != nil {
		return err
	}

	full := filter.MatchTitle(items)
	page := listing.Paginate(full, filter.Page, filter.PerPage)

	return c.JSON(dto.TicketListResponse{
		Data:    page,
		Page:    filter.Page,
		PerPage: filter.PerPage,
		Total:   len(full),
	})
}

func stagedFiles(c *fiber.Ctx) ([]domain.StagedFile, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// no multipart body means no attachments
		return nil, nil
	}
	headers := form.File["attachments"]
	staged := make([]domain.StagedFile, 0, len(headers))
	for _, header := range headers {
		file, err := readStagedFile(header)
		if err != nil {
			return nil, err
		}
		staged = append(staged, file)
	}
	return staged, nil
}

func readStagedFile(header *multipart.FileHeader) (domain.StagedFile, error) {
	src, err := header.Open()
	if err != nil {
		return domain.StagedFile{}, err
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return domain.StagedFile{}, err
	}
	return domain.StagedFile{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        int64(len(content)),
		Content:     content,
	}, nil
}

func parseIntDefault(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed < 0 {
		return def
	}
	return parsed
}
