package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullDraft() *Draft {
	return &Draft{
		Title:          "Broken monitor",
		Description:    "Screen flickers since Monday",
		OrganizationID: "org1",
		DepartmentID:   "d1",
		CategoryID:     "c1",
		TicketType:     "complaint",
		ResolverID:     "u1",
	}
}

func TestSetDepartmentClearsCategoryAndResolver(t *testing.T) {
	d := fullDraft()

	require.NoError(t, d.SetField(FieldDepartment, "d2"))

	assert.Equal(t, "d2", d.DepartmentID)
	assert.Empty(t, d.CategoryID)
	assert.Empty(t, d.ResolverID)
	// unrelated fields survive the cascade
	assert.Equal(t, "Broken monitor", d.Title)
	assert.Equal(t, "complaint", d.TicketType)
}

func TestDepartmentCascadeHoldsAcrossRepeatedChanges(t *testing.T) {
	d := fullDraft()
	for _, dept := range []string{"d2", "d3", "d2"} {
		require.NoError(t, d.SetField(FieldCategory, "stale"))
		require.NoError(t, d.SetField(FieldResolver, "stale"))
		require.NoError(t, d.SetField(FieldDepartment, dept))
		assert.Empty(t, d.CategoryID)
		assert.Empty(t, d.ResolverID)
	}
}

func TestSetOrganizationClearsWholeHierarchy(t *testing.T) {
	d := fullDraft()

	require.NoError(t, d.SetField(FieldOrganization, "org2"))

	assert.Equal(t, "org2", d.OrganizationID)
	assert.Empty(t, d.DepartmentID)
	assert.Empty(t, d.CategoryID)
	assert.Empty(t, d.ResolverID)
}

func TestSetFieldUnknownName(t *testing.T) {
	d := New("org1")
	assert.Error(t, d.SetField("priority", "high"))
}

func TestResetKeepsOrganizationScope(t *testing.T) {
	d := fullDraft()
	d.Reset()
	assert.Equal(t, &Draft{OrganizationID: "org1"}, d)
}

func TestPayloadTrimsTextAndUsesUploadReferences(t *testing.T) {
	d := fullDraft()
	d.Title = "  Broken monitor \n"
	d.Description = " flickers "

	payload := d.Payload([]string{"attachments/1_a.png", "attachments/2_b.png"})

	assert.Equal(t, "Broken monitor", payload.Title)
	assert.Equal(t, "flickers", payload.Description)
	assert.Equal(t, []string{"attachments/1_a.png", "attachments/2_b.png"}, payload.AssetURL)
	assert.Equal(t, "c1", payload.CategoryID)
	assert.Equal(t, "d1", payload.DepartmentID)
	assert.Equal(t, "u1", payload.ResolverID)
}
