package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"corecrm/internal/database"
	"corecrm/internal/models"
	"corecrm/internal/repositories"

	"github.com/stretchr/testify/suite"
)

func TestCustomerService(t *testing.T) {
	suite.Run(t, new(CustomerServiceSuite))
}

type CustomerServiceSuite struct {
	suite.Suite
	db      *database.DB
	repo    repositories.CustomerRepositoryInterface
	metrics *recordingMetrics
	service CustomerServiceInterface
	ctx     context.Context
}

func (s *CustomerServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = repositories.NewCustomerRepository(s.db.DB)
	s.metrics = newRecordingMetrics()
	s.service = NewCustomerService(s.repo, newTestLogger(), s.metrics, DefaultPageSize)
	s.ctx = context.Background()
}

func (s *CustomerServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *CustomerServiceSuite) seedCustomers(count int, status models.Status) {
	base := time.Now().Add(-time.Duration(count+1) * time.Minute)
	for i := 0; i < count; i++ {
		customer := &models.Customer{
			Name:      fmt.Sprintf("Customer %03d", i),
			Email:     fmt.Sprintf("customer%03d@example.com", i),
			Status:    status,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			UpdatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		s.Require().NoError(s.db.Create(customer).Error)
	}
}

func (s *CustomerServiceSuite) TestListCustomers_Defaults() {
	s.seedCustomers(3, models.StatusActive)

	result, err := s.service.ListCustomers(s.ctx, models.CustomerFilters{})
	s.NoError(err)
	s.Equal(1, result.Page)
	s.Equal(DefaultPageSize, result.PageSize)
	s.Equal(int64(3), result.Total)
	s.Equal(1, result.TotalPages)
	s.Len(result.Customers, 3)
}

func (s *CustomerServiceSuite) TestListCustomers_ClampsPage() {
	s.seedCustomers(2, models.StatusActive)

	result, err := s.service.ListCustomers(s.ctx, models.CustomerFilters{Page: -5})
	s.NoError(err)
	s.Equal(1, result.Page)
	s.Len(result.Customers, 2)
}

func (s *CustomerServiceSuite) TestListCustomers_ClampsPageSize() {
	s.seedCustomers(1, models.StatusActive)

	result, err := s.service.ListCustomers(s.ctx, models.CustomerFilters{Page: 1, PageSize: 5000})
	s.NoError(err)
	s.Equal(MaxPageSize, result.PageSize)
}

func (s *CustomerServiceSuite) TestListCustomers_TotalPagesFloorsAtOne() {
	result, err := s.service.ListCustomers(s.ctx, models.CustomerFilters{})
	s.NoError(err)
	s.Equal(int64(0), result.Total)
	s.Equal(1, result.TotalPages)
	s.Empty(result.Customers)
}

func (s *CustomerServiceSuite) TestListCustomers_TotalPagesRoundsUp() {
	s.seedCustomers(45, models.StatusBlocked)

	result, err := s.service.ListCustomers(s.ctx, models.CustomerFilters{
		Status:   "blocked",
		Page:     2,
		PageSize: 20,
	})
	s.NoError(err)
	s.Equal(int64(45), result.Total)
	s.Equal(3, result.TotalPages)
	s.Len(result.Customers, 20)

	// Page 2 under newest-first ordering starts at record 21
	s.Equal("Customer 024", result.Customers[0].Name)
	s.Equal("Customer 005", result.Customers[19].Name)
}

func (s *CustomerServiceSuite) TestCreateCustomer() {
	customer := &models.Customer{
		Name:  "Ana Souza",
		Email: "ana@example.com",
	}

	err := s.service.CreateCustomer(s.ctx, customer)
	s.NoError(err)
	s.NotZero(customer.ID)
	s.Equal(models.StatusProspect, customer.Status)
	s.Equal(1, s.metrics.counterValue("customer_created:prospect"))

	found, err := s.service.GetCustomer(s.ctx, customer.ID)
	s.NoError(err)
	s.Equal(customer.Name, found.Name)
	s.Equal(customer.Email, found.Email)
}

func (s *CustomerServiceSuite) TestCreateCustomer_ValidationError() {
	customer := &models.Customer{
		Name:  "",
		Email: "broken@",
	}

	err := s.service.CreateCustomer(s.ctx, customer)
	s.Error(err)

	var validationErr *ValidationError
	s.ErrorAs(err, &validationErr)
	s.Len(validationErr.Problems, 2)
	s.Zero(customer.ID)
}

func (s *CustomerServiceSuite) TestUpdateCustomer() {
	customer := &models.Customer{Name: "Ana Souza", Status: models.StatusProspect}
	s.Require().NoError(s.service.CreateCustomer(s.ctx, customer))

	previousUpdatedAt := customer.UpdatedAt
	time.Sleep(10 * time.Millisecond)

	customer.Status = models.StatusActive
	customer.Notes = "signed the contract"
	err := s.service.UpdateCustomer(s.ctx, customer)
	s.NoError(err)

	updated, err := s.service.GetCustomer(s.ctx, customer.ID)
	s.NoError(err)
	s.Equal(models.StatusActive, updated.Status)
	s.Equal("signed the contract", updated.Notes)
	s.True(updated.UpdatedAt.After(previousUpdatedAt))
}

func (s *CustomerServiceSuite) TestUpdateCustomer_ValidationError() {
	customer := &models.Customer{Name: "Ana Souza"}
	s.Require().NoError(s.service.CreateCustomer(s.ctx, customer))

	customer.Name = "  "
	err := s.service.UpdateCustomer(s.ctx, customer)

	var validationErr *ValidationError
	s.ErrorAs(err, &validationErr)
	s.Equal([]string{"name is required"}, validationErr.Problems)
}

func (s *CustomerServiceSuite) TestUpdateCustomer_Vanished() {
	customer := &models.Customer{
		ID:     9999,
		Name:   "Ghost",
		Status: models.StatusProspect,
	}

	err := s.service.UpdateCustomer(s.ctx, customer)
	s.ErrorIs(err, repositories.ErrCustomerNotFound)
}

func (s *CustomerServiceSuite) TestDeleteCustomer_Twice() {
	customer := &models.Customer{Name: "Ana Souza"}
	s.Require().NoError(s.service.CreateCustomer(s.ctx, customer))

	s.NoError(s.service.DeleteCustomer(s.ctx, customer.ID))

	err := s.service.DeleteCustomer(s.ctx, customer.ID)
	s.ErrorIs(err, repositories.ErrCustomerNotFound)
}

func (s *CustomerServiceSuite) TestGetCustomer_NotFound() {
	_, err := s.service.GetCustomer(s.ctx, 424242)
	s.ErrorIs(err, repositories.ErrCustomerNotFound)
}

func (s *CustomerServiceSuite) TestGetCustomerStats() {
	s.seedCustomers(3, models.StatusActive)
	s.seedCustomers(2, models.StatusBlocked)

	stats, err := s.service.GetCustomerStats(s.ctx)
	s.NoError(err)
	s.Equal(int64(5), stats.Total)
	s.Equal(int64(3), stats.ByStatus[models.StatusActive])
	s.Equal(int64(2), stats.ByStatus[models.StatusBlocked])
	s.Equal(int64(0), stats.ByStatus[models.StatusProspect])
	s.Equal(int64(0), stats.ByStatus[models.StatusInactive])
}
