// Package submit orchestrates the ticket submission pipeline: validation,
// attachment upload, then the create call. It is the one place failure
// policy is decided.
package submit

import (
	"context"

	"go.uber.org/zap"

	"github.com/providesk/helpdesk-gateway/internal/domain"
	"github.com/providesk/helpdesk-gateway/internal/draft"
	"github.com/providesk/helpdesk-gateway/internal/upload"
)

// State names the controller's position in the pipeline.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateUploading  State = "uploading"
	StateCreating   State = "creating"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// TicketCreator issues the create call against the helpdesk backend.
type TicketCreator interface {
	CreateTicket(ctx context.Context, payload domain.TicketPayload) error
}

// Controller drives one draft through submission. No automatic retries are
// performed; every retry is a user-initiated resubmission of the same draft.
type Controller struct {
	draft   *draft.Draft
	uploads *upload.Coordinator
	creator TicketCreator
	logger  *zap.Logger
	state   State
}

// NewController wires a controller around one draft and its staged files.
func NewController(d *draft.Draft, uploads *upload.Coordinator, creator TicketCreator, logger *zap.Logger) *Controller {
	return &Controller{
		draft:   d,
		uploads: uploads,
		creator: creator,
		logger:  logger,
		state:   StateIdle,
	}
}

// State reports the controller's current state.
func (c *Controller) State() State {
	return c.state
}

// Submit runs the pipeline once.
//
// Validation failure returns the field errors and issues no network call.
// An upload or create failure aborts the submission in the failed state
// with the draft and staged files preserved; calling Submit again retries.
// Only a fully successful run resets the draft and clears the staged list.
func (c *Controller) Submit(ctx context.Context) (map[string]string, error) {
	c.state = StateValidating
	if fieldErrs := c.draft.Validate(); len(fieldErrs) > 0 {
		c.state = StateIdle
		return fieldErrs, nil
	}

	c.state = StateUploading
	refs, err := c.uploads.UploadAll(ctx)
	if err != nil {
		c.fail("attachment batch failed", err)
		return nil, err
	}

	c.state = StateCreating
	payload := c.draft.Payload(refs)
	if err := c.creator.CreateTicket(ctx, payload); err != nil {
		c.fail("ticket create failed", err)
		return nil, err
	}

	c.state = StateSucceeded
	c.draft.Reset()
	c.uploads.Reset()
	c.logger.Info("ticket created",
		zap.String("department_id", payload.DepartmentID),
		zap.String("ticket_type", string(payload.TicketType)),
		zap.Int("attachments", len(payload.AssetURL)),
	)
	return nil, nil
}

// fail leaves the controller in the failed state with the draft and staged
// files intact; the next Submit call starts the pipeline over.
func (c *Controller) fail(msg string, err error) {
	c.state = StateFailed
	c.logger.Warn(msg, zap.Error(err))
}
