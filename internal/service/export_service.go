package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/nwhitfield/weekplan-api/internal/models"
	appErrors "github.com/nwhitfield/weekplan-api/pkg/errors"
	"github.com/nwhitfield/weekplan-api/pkg/export"
)

// ExportFormat identifies a supported export encoding.
type ExportFormat string

const (
	ExportCSV ExportFormat = "csv"
	ExportPDF ExportFormat = "pdf"
)

// ExportResult carries rendered bytes plus response metadata.
type ExportResult struct {
	FileName    string
	ContentType string
	Body        []byte
}

type exportSetReader interface {
	FindByID(id string) (models.ScheduleSet, bool)
}

// ExportService renders a schedule set's weekly plan as CSV or PDF.
type ExportService struct {
	sets    exportSetReader
	catalog setCatalogReader
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	logger  *zap.Logger
}

// NewExportService builds the exporter.
func NewExportService(sets exportSetReader, catalog setCatalogReader, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		sets:    sets,
		catalog: catalog,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		logger:  logger,
	}
}

var weekdayOrder = map[models.Weekday]int{
	models.Monday:    0,
	models.Tuesday:   1,
	models.Wednesday: 2,
	models.Thursday:  3,
	models.Friday:    4,
	models.Saturday:  5,
	models.Sunday:    6,
}

// Render produces the weekly plan of one set in the requested format.
func (s *ExportService) Render(ctx context.Context, setID string, format ExportFormat) (*ExportResult, error) {
	set, ok := s.sets.FindByID(setID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "schedule set not found")
	}

	dataset := s.buildDataset(set)

	switch format {
	case ExportCSV:
		body, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return &ExportResult{
			FileName:    exportFileName(set.Name, "csv"),
			ContentType: "text/csv",
			Body:        body,
		}, nil
	case ExportPDF:
		body, err := s.pdf.Render(dataset, set.Name)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return &ExportResult{
			FileName:    exportFileName(set.Name, "pdf"),
			ContentType: "application/pdf",
			Body:        body,
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

type exportRow struct {
	slot     models.TimeSlot
	activity models.Activity
	location string
}

func (s *ExportService) buildDataset(set models.ScheduleSet) export.Dataset {
	rows := make([]exportRow, 0)
	for _, activityID := range set.ActivityIDs {
		activity, found := s.catalog.ActivityByID(activityID)
		if !found {
			continue
		}
		locationName := activity.LocationID
		if location, ok := s.catalog.LocationByID(activity.LocationID); ok {
			locationName = location.Name
		}
		for _, slot := range activity.TimeSlots {
			rows = append(rows, exportRow{slot: slot, activity: activity, location: locationName})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if weekdayOrder[rows[i].slot.Day] != weekdayOrder[rows[j].slot.Day] {
			return weekdayOrder[rows[i].slot.Day] < weekdayOrder[rows[j].slot.Day]
		}
		return rows[i].slot.StartMinute < rows[j].slot.StartMinute
	})

	headers := []string{"Day", "Start", "End", "Activity", "Location", "Category"}
	dataset := export.Dataset{Headers: headers, Rows: make([]map[string]string, 0, len(rows))}
	for _, row := range rows {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Day":      string(row.slot.Day),
			"Start":    clockTime(row.slot.StartMinute),
			"End":      clockTime(row.slot.EndMinute),
			"Activity": row.activity.Name,
			"Location": row.location,
			"Category": row.activity.PrimaryCategory(),
		})
	}
	return dataset
}

func clockTime(minuteOfDay int) string {
	return fmt.Sprintf("%02d:%02d", minuteOfDay/60, minuteOfDay%60)
}

func exportFileName(setName, ext string) string {
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(setName), " ", "-"))
	if slug == "" {
		slug = "schedule"
	}
	return fmt.Sprintf("%s-weekly-plan.%s", slug, ext)
}
