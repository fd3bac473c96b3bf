package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/agency-dashboard-api/internal/dto"
	"github.com/noah-isme/agency-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/agency-dashboard-api/pkg/errors"
	"github.com/noah-isme/agency-dashboard-api/pkg/export"
)

// ExportFormat names a rendered report type.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

type postViewLister interface {
	List(ctx context.Context, clientID string) ([]dto.PostView, error)
}

type clientLister interface {
	List(ctx context.Context) ([]models.Client, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportResult is a rendered report ready to be streamed.
type ExportResult struct {
	Filename    string
	ContentType string
	Payload     []byte
}

var postExportHeaders = []string{"Client", "Content Type", "Date", "Status", "Timeliness", "Link", "Notes"}

// ExportService renders the post schedule report.
type ExportService struct {
	posts   postViewLister
	clients clientLister
	csv     csvRenderer
	pdf     pdfRenderer
	logger  *zap.Logger
	now     func() time.Time
}

// NewExportService constructs an ExportService; nil renderers fall back to the defaults.
func NewExportService(posts postViewLister, clients clientLister, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{posts: posts, clients: clients, csv: csv, pdf: pdf, logger: logger, now: time.Now}
}

// ParseExportFormat validates a format name, defaulting to CSV.
func ParseExportFormat(raw string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ExportFormatCSV:
		return ExportFormatCSV, nil
	case ExportFormatPDF:
		return ExportFormatPDF, nil
	default:
		return "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", raw))
	}
}

// Posts renders every post (or one client's posts) with its current timeliness.
func (s *ExportService) Posts(ctx context.Context, clientID string, format ExportFormat) (*ExportResult, error) {
	clientID = strings.TrimSpace(clientID)
	views, err := s.posts.List(ctx, clientID)
	if err != nil {
		return nil, err
	}
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(clients))
	for _, client := range clients {
		names[client.ID] = client.Name
	}

	dataset := export.Dataset{Headers: postExportHeaders}
	for _, view := range views {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Client":       names[view.ClientID],
			"Content Type": view.ContentType,
			"Date":         view.Date.Format(dateLayout),
			"Status":       string(view.Status),
			"Timeliness":   view.TimelinessLabel,
			"Link":         deref(view.Link),
			"Notes":        deref(view.Notes),
		})
	}

	title := "Post schedule"
	if name, ok := names[clientID]; ok && clientID != "" {
		title = "Post schedule - " + name
	}

	var payload []byte
	var contentType string
	switch format {
	case ExportFormatPDF:
		payload, err = s.pdf.Render(dataset, title)
		contentType = "application/pdf"
	default:
		format = ExportFormatCSV
		payload, err = s.csv.Render(dataset)
		contentType = "text/csv; charset=utf-8"
	}
	if err != nil {
		s.logger.Error("render export failed", zap.String("format", string(format)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	return &ExportResult{
		Filename:    buildExportFilename(clientID, format, s.now()),
		ContentType: contentType,
		Payload:     payload,
	}, nil
}

func buildExportFilename(clientID string, format ExportFormat, at time.Time) string {
	scope := "all"
	if clientID != "" {
		scope = sanitizeFilename(clientID)
	}
	return fmt.Sprintf("posts_%s_%s.%s", scope, at.UTC().Format("20060102_150405"), format)
}

func sanitizeFilename(raw string) string {
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-", "..", ".")
	result := replacer.Replace(raw)
	if len(result) > 100 {
		return result[:100]
	}
	return result
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
