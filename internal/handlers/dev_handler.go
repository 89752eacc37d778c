package handlers

import (
	"net/http"

	"corecrm/internal/models"
	"corecrm/internal/repositories"
	"corecrm/internal/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	db           *gorm.DB
	customerRepo repositories.CustomerRepositoryInterface
	generator    services.CustomerGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(db *gorm.DB, customerRepo repositories.CustomerRepositoryInterface) *DevHandler {
	return &DevHandler{
		db:           db,
		customerRepo: customerRepo,
		generator:    services.NewCustomerGenerator(),
	}
}

// RegisterRoutes wires the development endpoints onto the router. Callers
// must only do this in development environments.
func (h *DevHandler) RegisterRoutes(e *echo.Echo) {
	dev := e.Group("/api/dev")
	dev.POST("/clientes/generate-test-data", h.GenerateTestData)
	dev.DELETE("/clientes/test-data", h.ClearTestData)
}

// GenerateTestData fills the customer base with realistic fake records so
// the listing, search and pagination can be exercised locally.
//
// Method: POST /api/dev/clientes/generate-test-data
// Environment: Development only
//
// Query parameters:
//   - count: Number of customers to generate (default: 50, max: 500)
func (h *DevHandler) GenerateTestData(c echo.Context) error {
	count := getIntParam(c, "count", 50)
	if count < 1 {
		count = 1
	}
	if count > 500 {
		count = 500
	}

	customers := h.generator.GenerateCustomers(count)

	created := 0
	for _, customer := range customers {
		if err := h.customerRepo.Create(customer); err != nil {
			continue
		}
		created++
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":           "test data generated successfully",
		"customers_created": created,
	})
}

// ClearTestData removes every customer record.
//
// Method: DELETE /api/dev/clientes/test-data
// Environment: Development only
func (h *DevHandler) ClearTestData(c echo.Context) error {
	result := h.db.Where("1 = 1").Delete(&models.Customer{})
	if result.Error != nil {
		return SendSystemError(c, result.Error)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":           "test data cleared",
		"customers_deleted": result.RowsAffected,
	})
}
