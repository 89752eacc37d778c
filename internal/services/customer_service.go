package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"corecrm/internal/models"
	"corecrm/internal/repositories"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ValidationError carries the full problem list from a rejected record so
// callers can surface every field error at once.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Problems, "; ")
}

// CustomerListResult is one page of customers plus the pagination metadata
// computed under the same filter.
type CustomerListResult struct {
	Customers  []*models.Customer
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// CustomerService handles customer record business operations
type CustomerService struct {
	customerRepo repositories.CustomerRepositoryInterface
	logger       CustomerLoggerInterface
	metrics      MetricsRecorderInterface
	pageSize     int
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customerRepo repositories.CustomerRepositoryInterface,
	logger CustomerLoggerInterface,
	metrics MetricsRecorderInterface,
	pageSize int,
) CustomerServiceInterface {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &CustomerService{
		customerRepo: customerRepo,
		logger:       logger,
		metrics:      metrics,
		pageSize:     pageSize,
	}
}

// ListCustomers returns one page of the filtered listing. The page is clamped
// to >= 1 and the page size to the configured bounds before the query runs, so
// garbage input degrades to the first page instead of an error. Out-of-range
// pages come back empty with the real total.
func (s *CustomerService) ListCustomers(ctx context.Context, filters models.CustomerFilters) (*CustomerListResult, error) {
	start := time.Now()

	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.PageSize <= 0 {
		filters.PageSize = s.pageSize
	}
	if filters.PageSize > MaxPageSize {
		filters.PageSize = MaxPageSize
	}
	filters.Term = strings.TrimSpace(filters.Term)

	s.logger.LogListQueryStarted(ctx, filters.Term, filters.Status, filters.Page)

	customers, total, err := s.customerRepo.List(filters)
	if err != nil {
		s.logger.LogListQueryFailed(ctx, err.Error(), time.Since(start).Milliseconds())
		s.metrics.IncrementCounter("customer_list_query", map[string]string{"status": "error"})
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	totalPages := int((total + int64(filters.PageSize) - 1) / int64(filters.PageSize))
	if totalPages < 1 {
		totalPages = 1
	}

	s.logger.LogListQueryCompleted(ctx, len(customers), total, time.Since(start).Milliseconds())
	s.metrics.IncrementCounter("customer_list_query", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("customer_list_query", time.Since(start))

	return &CustomerListResult{
		Customers:  customers,
		Total:      total,
		Page:       filters.Page,
		PageSize:   filters.PageSize,
		TotalPages: totalPages,
	}, nil
}

// GetCustomer retrieves a single customer record
func (s *CustomerService) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return customer, nil
}

// CreateCustomer validates and persists a new customer record. All field
// problems are returned together as a ValidationError.
func (s *CustomerService) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	if customer.Status == "" {
		customer.Status = models.StatusProspect
	}

	if problems := customer.Validate(); len(problems) > 0 {
		s.logger.LogValidationFailure(ctx, "create_customer", problems)
		return &ValidationError{Problems: problems}
	}

	if err := s.customerRepo.Create(customer); err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	s.logger.LogCustomerCreated(ctx, customer.ID, string(customer.Status))
	s.metrics.IncrementCounter("customer_created", map[string]string{"status": string(customer.Status)})

	return nil
}

// UpdateCustomer validates and persists changes to an existing record using
// the same rules as creation. A record that vanished between the edit form
// and the save reports ErrCustomerNotFound.
func (s *CustomerService) UpdateCustomer(ctx context.Context, customer *models.Customer) error {
	if problems := customer.Validate(); len(problems) > 0 {
		s.logger.LogValidationFailure(ctx, "update_customer", problems)
		return &ValidationError{Problems: problems}
	}

	if err := s.customerRepo.Update(customer); err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return err
		}
		return fmt.Errorf("failed to update customer: %w", err)
	}

	s.logger.LogCustomerUpdated(ctx, customer.ID, string(customer.Status))
	s.metrics.IncrementCounter("customer_updated", map[string]string{"status": string(customer.Status)})

	return nil
}

// DeleteCustomer hard deletes a record. Deleting an already-deleted record
// reports ErrCustomerNotFound.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uint) error {
	if err := s.customerRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	s.logger.LogCustomerDeleted(ctx, id)
	s.metrics.IncrementCounter("customer_deleted", nil)

	return nil
}

// GetCustomerStats returns the total plus per-status counts and refreshes the
// per-status gauges.
func (s *CustomerService) GetCustomerStats(ctx context.Context) (*models.CustomerStats, error) {
	total, err := s.customerRepo.Count("", "")
	if err != nil {
		return nil, fmt.Errorf("failed to get customer stats: %w", err)
	}

	stats := &models.CustomerStats{
		Total:    total,
		ByStatus: make(map[models.Status]int64, len(models.AllStatuses())),
	}

	for _, status := range models.AllStatuses() {
		count, err := s.customerRepo.CountByStatus(status)
		if err != nil {
			return nil, fmt.Errorf("failed to count customers by status: %w", err)
		}
		stats.ByStatus[status] = count
		s.metrics.RecordGauge("customers_by_status", float64(count), map[string]string{"status": string(status)})
	}

	return stats, nil
}
