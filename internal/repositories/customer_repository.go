package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"corecrm/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
)

// CustomerRepository handles database operations for customer records
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) CustomerRepositoryInterface {
	return &CustomerRepository{
		db: db,
	}
}

// Create creates a new customer record in the database
func (r *CustomerRepository) Create(customer *models.Customer) error {
	if customer == nil {
		return errors.New("customer cannot be nil")
	}

	if err := r.db.Create(customer).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

// GetByID retrieves a customer by its ID
func (r *CustomerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer by ID: %w", err)
	}

	return &customer, nil
}

// List returns one page of customers plus the total count under the same
// predicate, so pagination math never drifts from the visible rows.
func (r *CustomerRepository) List(filters models.CustomerFilters) ([]*models.Customer, int64, error) {
	var customers []*models.Customer
	var total int64

	baseQuery := applyFilters(r.db.Model(&models.Customer{}), filters.Term, filters.Status)

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	if err := baseQuery.Order("created_at DESC, id ASC").
		Offset(filters.Offset()).
		Limit(filters.PageSize).
		Find(&customers).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, total, nil
}

// Count counts customers matching the search term and status filter
func (r *CustomerRepository) Count(term, status string) (int64, error) {
	var total int64

	query := applyFilters(r.db.Model(&models.Customer{}), term, status)
	if err := query.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}

	return total, nil
}

// CountByStatus counts customers in a single status
func (r *CustomerRepository) CountByStatus(status models.Status) (int64, error) {
	var total int64

	if err := r.db.Model(&models.Customer{}).
		Where("status = ?", status).
		Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count customers by status: %w", err)
	}

	return total, nil
}

// Update saves changed fields of an existing customer and refreshes UpdatedAt
func (r *CustomerRepository) Update(customer *models.Customer) error {
	if customer == nil {
		return errors.New("customer cannot be nil")
	}
	if customer.ID == 0 {
		return ErrCustomerNotFound
	}

	customer.UpdatedAt = time.Now()

	result := r.db.Model(&models.Customer{}).
		Where("id = ?", customer.ID).
		Updates(map[string]interface{}{
			"name":       customer.Name,
			"email":      customer.Email,
			"phone":      customer.Phone,
			"status":     customer.Status,
			"notes":      customer.Notes,
			"updated_at": customer.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// Delete hard deletes a customer. A second delete of the same ID reports
// ErrCustomerNotFound instead of succeeding silently.
func (r *CustomerRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Customer{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// applyFilters builds the list predicate: a case-insensitive substring match
// across name, email and phone, AND an exact status match. Both parts are
// optional; with neither set the query matches every row.
func applyFilters(query *gorm.DB, term, status string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(phone) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	if status != "" {
		query = query.Where("status = ?", status)
	}

	return query
}
