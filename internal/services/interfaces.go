package services

import (
	"context"
	"time"

	"corecrm/internal/models"
)

// CustomerServiceInterface defines the contract for customer record operations
type CustomerServiceInterface interface {
	ListCustomers(ctx context.Context, filters models.CustomerFilters) (*CustomerListResult, error)
	GetCustomer(ctx context.Context, id uint) (*models.Customer, error)
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	UpdateCustomer(ctx context.Context, customer *models.Customer) error
	DeleteCustomer(ctx context.Context, id uint) error
	GetCustomerStats(ctx context.Context) (*models.CustomerStats, error)
}

// ExportServiceInterface defines the contract for customer export operations
type ExportServiceInterface interface {
	Export(ctx context.Context, format, term, status string) (*ExportResult, error)
}

// CustomerGeneratorInterface generates realistic customer data for development seeding
type CustomerGeneratorInterface interface {
	GenerateCustomer() *models.Customer
	GenerateCustomers(count int) []*models.Customer
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CustomerLoggerInterface interface {
	LogListQueryStarted(ctx context.Context, term, status string, page int)
	LogListQueryCompleted(ctx context.Context, resultsCount int, total int64, durationMs int64)
	LogListQueryFailed(ctx context.Context, errorMsg string, durationMs int64)
	LogCustomerCreated(ctx context.Context, customerID uint, status string)
	LogCustomerUpdated(ctx context.Context, customerID uint, status string)
	LogCustomerDeleted(ctx context.Context, customerID uint)
	LogExportRequested(ctx context.Context, format string, recordCount int)
	LogValidationFailure(ctx context.Context, operation string, problems []string)
}
