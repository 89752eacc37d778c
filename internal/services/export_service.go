package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"corecrm/internal/models"
	"corecrm/internal/repositories"
)

const exportPageSize = 500

var ErrUnsupportedFormat = errors.New("unsupported export format")

// ExportResult is a fully rendered export file ready to be sent as an
// attachment.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders every customer matching a filter into a downloadable
// file. The filter semantics are exactly those of the listing.
type ExportService struct {
	customerRepo repositories.CustomerRepositoryInterface
	logger       CustomerLoggerInterface
	metrics      MetricsRecorderInterface
	now          func() time.Time
}

// NewExportService creates a new export service
func NewExportService(
	customerRepo repositories.CustomerRepositoryInterface,
	logger CustomerLoggerInterface,
	metrics MetricsRecorderInterface,
) ExportServiceInterface {
	return &ExportService{
		customerRepo: customerRepo,
		logger:       logger,
		metrics:      metrics,
		now:          time.Now,
	}
}

// Export collects all matching records and encodes them as csv or json.
// The filename carries the export date, clientes_2025-01-31.csv style.
func (s *ExportService) Export(ctx context.Context, format, term, status string) (*ExportResult, error) {
	format = strings.ToLower(format)
	if format != "csv" && format != "json" {
		return nil, ErrUnsupportedFormat
	}

	customers, err := s.collectAll(term, status)
	if err != nil {
		return nil, err
	}

	var data []byte
	var contentType string

	switch format {
	case "csv":
		data, err = encodeCSV(customers)
		contentType = "text/csv"
	case "json":
		data, err = encodeJSON(customers)
		contentType = "application/json"
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}

	s.logger.LogExportRequested(ctx, format, len(customers))
	s.metrics.IncrementCounter("customer_export", map[string]string{"format": format})

	return &ExportResult{
		Filename:    fmt.Sprintf("clientes_%s.%s", s.now().Format("2006-01-02"), format),
		ContentType: contentType,
		Data:        data,
	}, nil
}

// collectAll walks the listing page by page under a fixed filter until the
// result set is exhausted.
func (s *ExportService) collectAll(term, status string) ([]*models.Customer, error) {
	var all []*models.Customer

	for page := 1; ; page++ {
		customers, total, err := s.customerRepo.List(models.CustomerFilters{
			Term:     term,
			Status:   status,
			Page:     page,
			PageSize: exportPageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to collect customers for export: %w", err)
		}

		all = append(all, customers...)
		if len(customers) < exportPageSize || int64(len(all)) >= total {
			break
		}
	}

	return all, nil
}

func encodeCSV(customers []*models.Customer) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"nome", "email", "telefone", "status", "observacoes", "created_at"}); err != nil {
		return nil, err
	}

	for _, c := range customers {
		record := []string{
			c.Name,
			c.Email,
			c.Phone,
			string(c.Status),
			c.Notes,
			c.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func encodeJSON(customers []*models.Customer) ([]byte, error) {
	type exportRecord struct {
		ID        uint   `json:"id"`
		Name      string `json:"nome"`
		Email     string `json:"email"`
		Phone     string `json:"telefone"`
		Status    string `json:"status"`
		Notes     string `json:"observacoes"`
		CreatedAt string `json:"created_at"`
	}

	records := make([]exportRecord, 0, len(customers))
	for _, c := range customers {
		records = append(records, exportRecord{
			ID:        c.ID,
			Name:      c.Name,
			Email:     c.Email,
			Phone:     c.Phone,
			Status:    string(c.Status),
			Notes:     c.Notes,
			CreatedAt: c.CreatedAt.Format(time.RFC3339),
		})
	}

	return json.MarshalIndent(records, "", "  ")
}
