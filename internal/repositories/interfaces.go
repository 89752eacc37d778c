package repositories

import (
	"corecrm/internal/models"
)

// CustomerRepositoryInterface defines the contract for customer repository operations
type CustomerRepositoryInterface interface {
	Create(customer *models.Customer) error
	GetByID(id uint) (*models.Customer, error)
	List(filters models.CustomerFilters) ([]*models.Customer, int64, error)
	Count(term, status string) (int64, error)
	CountByStatus(status models.Status) (int64, error)
	Update(customer *models.Customer) error
	Delete(id uint) error
}
