package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nwhitfield/weekplan-api/internal/models"
	"github.com/nwhitfield/weekplan-api/internal/repository"
	appErrors "github.com/nwhitfield/weekplan-api/pkg/errors"
)

func newExportFixture(t *testing.T) (*ExportService, string) {
	t.Helper()
	catalog := repository.NewCatalogRepository()
	catalog.ReplaceActivities([]models.Activity{
		{
			ID: "band", Name: "Band", LocationID: "hall", CategoryTags: []string{"music"},
			TimeSlots: []models.TimeSlot{slotOn(models.Friday, 540, 600)},
		},
		{
			ID: "swim", Name: "Swimming", LocationID: "pool", CategoryTags: []string{"sport"},
			TimeSlots: []models.TimeSlot{
				slotOn(models.Monday, 960, 1020),
				slotOn(models.Monday, 540, 600),
			},
		},
	})
	catalog.ReplaceLocations([]models.Location{
		{ID: "pool", Name: "City Pool"},
	})

	sets := repository.NewScheduleSetRepository()
	set := sets.Create()
	_, err := sets.AddActivity(set.ID, "band")
	require.NoError(t, err)
	_, err = sets.AddActivity(set.ID, "swim")
	require.NoError(t, err)

	return NewExportService(sets, catalog, zap.NewNop()), set.ID
}

func TestExportRenderCSV(t *testing.T) {
	svc, setID := newExportFixture(t)

	result, err := svc.Render(context.Background(), setID, ExportCSV)
	require.NoError(t, err)
	assert.Equal(t, "set-a-weekly-plan.csv", result.FileName)
	assert.Equal(t, "text/csv", result.ContentType)

	lines := strings.Split(strings.TrimSpace(string(result.Body)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Day,Start,End,Activity,Location,Category", lines[0])
	// Rows come out day-ordered, then by start time; the unknown hall location
	// falls back to its id.
	assert.Equal(t, "MONDAY,09:00,10:00,Swimming,City Pool,sport", lines[1])
	assert.Equal(t, "MONDAY,16:00,17:00,Swimming,City Pool,sport", lines[2])
	assert.Equal(t, "FRIDAY,09:00,10:00,Band,hall,music", lines[3])
}

func TestExportRenderPDF(t *testing.T) {
	svc, setID := newExportFixture(t)

	result, err := svc.Render(context.Background(), setID, ExportPDF)
	require.NoError(t, err)
	assert.Equal(t, "set-a-weekly-plan.pdf", result.FileName)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, strings.HasPrefix(string(result.Body), "%PDF"))
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	svc, setID := newExportFixture(t)

	_, err := svc.Render(context.Background(), setID, ExportFormat("xlsx"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestExportUnknownSet(t *testing.T) {
	svc, _ := newExportFixture(t)

	_, err := svc.Render(context.Background(), "nope", ExportCSV)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
