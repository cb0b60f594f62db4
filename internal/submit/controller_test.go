package submit

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/providesk/helpdesk-gateway/internal/domain"
	"github.com/providesk/helpdesk-gateway/internal/draft"
	"github.com/providesk/helpdesk-gateway/internal/upload"
)

type fakeStorage struct {
	fail bool
}

func (f *fakeStorage) Store(_ context.Context, file domain.StagedFile, pathHint string) (string, error) {
	if f.fail {
		return "", errors.New("storage down")
	}
	return fmt.Sprintf("%s/%s", pathHint, file.FileName), nil
}

type fakeCreator struct {
	fail     bool
	payloads []domain.TicketPayload
}

func (f *fakeCreator) CreateTicket(_ context.Context, payload domain.TicketPayload) error {
	if f.fail {
		return errors.New("backend rejected ticket")
	}
	f.payloads = append(f.payloads, payload)
	return nil
}

func validDraft() *draft.Draft {
	d := draft.New("org1")
	// parent-first so the cascade clears nothing set here
	fields := [][2]string{
		{draft.FieldDepartment, "d1"},
		{draft.FieldCategory, "c1"},
		{draft.FieldTicketType, "request"},
		{draft.FieldResolver, "u1"},
		{draft.FieldTitle, " New keyboard "},
		{draft.FieldDescription, "Current one has a dead key"},
	}
	for _, field := range fields {
		if err := d.SetField(field[0], field[1]); err != nil {
			panic(err)
		}
	}
	return d
}

func newController(d *draft.Draft, storage upload.ObjectStorage, creator TicketCreator) (*Controller, *upload.Coordinator) {
	uploads := upload.NewCoordinator(storage, "attachments")
	return NewController(d, uploads, creator, zap.NewNop()), uploads
}

func TestValidationFailureIssuesNoNetworkCall(t *testing.T) {
	d := draft.New("org1")
	creator := &fakeCreator{}
	controller, _ := newController(d, &fakeStorage{}, creator)

	fieldErrs, err := controller.Submit(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, fieldErrs)
	assert.Empty(t, creator.payloads)
	assert.Equal(t, StateIdle, controller.State())
}

func TestUploadFailureAbortsWithoutCreateCall(t *testing.T) {
	d := validDraft()
	creator := &fakeCreator{}
	controller, uploads := newController(d, &fakeStorage{fail: true}, creator)
	uploads.AddFiles(domain.StagedFile{FileName: "evidence.png"}, domain.StagedFile{FileName: "log.txt"})

	before := *d
	fieldErrs, err := controller.Submit(context.Background())

	require.Error(t, err)
	assert.Empty(t, fieldErrs)
	assert.Empty(t, creator.payloads, "create must never fire when any upload fails")
	assert.Equal(t, before, *d, "draft preserved for a retry")
	assert.Len(t, uploads.Files(), 2, "staged files preserved for a retry")
	assert.Equal(t, StateFailed, controller.State())
}

func TestCreateFailurePreservesDraft(t *testing.T) {
	d := validDraft()
	creator := &fakeCreator{fail: true}
	controller, _ := newController(d, &fakeStorage{}, creator)

	before := *d
	_, err := controller.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, before, *d)
	assert.Equal(t, StateFailed, controller.State())
}

func TestSuccessfulSubmissionResetsDraftAndStagedFiles(t *testing.T) {
	d := validDraft()
	creator := &fakeCreator{}
	controller, uploads := newController(d, &fakeStorage{}, creator)
	uploads.AddFiles(
		domain.StagedFile{FileName: "a.png"},
		domain.StagedFile{FileName: "b.png"},
		domain.StagedFile{FileName: "c.png"},
	)

	fieldErrs, err := controller.Submit(context.Background())
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.Equal(t, StateSucceeded, controller.State())

	require.Len(t, creator.payloads, 1)
	payload := creator.payloads[0]
	assert.Equal(t, "New keyboard", payload.Title, "title submitted trimmed")
	assert.ElementsMatch(t, []string{
		"attachments/a.png",
		"attachments/b.png",
		"attachments/c.png",
	}, payload.AssetURL, "asset_url carries exactly the upload references")

	assert.Equal(t, &draft.Draft{OrganizationID: "org1"}, d, "draft reset to its empty initial state")
	assert.Empty(t, uploads.Files(), "staged list cleared")
}

func TestRetryAfterFailureSucceeds(t *testing.T) {
	d := validDraft()
	storage := &fakeStorage{fail: true}
	creator := &fakeCreator{}
	controller, uploads := newController(d, storage, creator)
	uploads.AddFiles(domain.StagedFile{FileName: "a.png"})

	_, err := controller.Submit(context.Background())
	require.Error(t, err)

	// user-initiated resubmission after the outage clears
	storage.fail = false
	fieldErrs, err := controller.Submit(context.Background())
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
	require.Len(t, creator.payloads, 1)
	assert.Equal(t, []string{"attachments/a.png"}, creator.payloads[0].AssetURL)
}
