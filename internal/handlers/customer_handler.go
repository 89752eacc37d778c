package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"corecrm/internal/dto"
	apierrors "corecrm/internal/errors"
	"corecrm/internal/models"
	"corecrm/internal/repositories"
	"corecrm/internal/services"

	"github.com/labstack/echo/v4"
)

const adminListPath = "/admin/clientes"

// CustomerHandler handles customer record HTTP requests
type CustomerHandler struct {
	customerService services.CustomerServiceInterface
	exportService   services.ExportServiceInterface
	logger          services.CustomerLoggerInterface
	metrics         services.MetricsRecorderInterface
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(
	customerService services.CustomerServiceInterface,
	exportService services.ExportServiceInterface,
	logger services.CustomerLoggerInterface,
	metrics services.MetricsRecorderInterface,
) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		exportService:   exportService,
		logger:          logger,
		metrics:         metrics,
	}
}

// RegisterRoutes wires the customer endpoints onto the router
func (h *CustomerHandler) RegisterRoutes(e *echo.Echo) {
	admin := e.Group(adminListPath)
	admin.GET("/buscar", h.SearchCustomers)
	admin.GET("/exportar", h.ExportCustomers)
	admin.GET("/stats", h.GetStats)
	admin.GET("/flash", h.GetFlash)
	admin.GET("/:id", h.GetCustomer)
	admin.POST("/salvar", h.CreateCustomer)
	admin.POST("/atualizar/:id", h.UpdateCustomer)
	admin.POST("/excluir/:id", h.DeleteCustomer)

	e.GET("/api/clientes", h.ListCustomersAPI)
}

// SearchCustomers serves the admin listing used by the live search box
// @Summary Search customers (admin listing)
// @Description Paginated customer listing filtered by a free text term and a status
// @Tags Customers
// @Produce json
// @Param q query string false "Search term matched against name, email and phone"
// @Param status query string false "Status filter" Enums(prospect, active, inactive, blocked)
// @Param page query int false "Page number (1-based)" default(1)
// @Success 200 {object} dto.SearchCustomersResponse "One page of customers"
// @Failure 422 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request parameters"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/clientes/buscar [get]
func (h *CustomerHandler) SearchCustomers(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SearchCustomersRequest
	if err := c.Bind(&req); err != nil {
		h.logger.LogValidationFailure(ctx, "customer_search", []string{err.Error()})
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request parameters"))
	}
	if err := c.Validate(req); err != nil {
		h.logger.LogValidationFailure(ctx, "customer_search", []string{err.Error()})
		return err
	}

	result, err := h.customerService.ListCustomers(ctx, models.CustomerFilters{
		Term:   req.Term,
		Status: req.Status,
		Page:   req.Page,
	})
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SearchCustomersResponse{
		Customers:  dto.NewCustomerResponseList(result.Customers),
		Total:      result.Total,
		Page:       result.Page,
		TotalPages: result.TotalPages,
	})
}

// ListCustomersAPI serves the JSON API listing with the data/meta/filters envelope
// @Summary List customers (JSON API)
// @Tags Customers
// @Produce json
// @Param search query string false "Search term"
// @Param status query string false "Status filter" Enums(prospect, active, inactive, blocked)
// @Param page query int false "Page number (1-based)" default(1)
// @Param per_page query int false "Page size (max 100)" default(20)
// @Success 200 {object} dto.ListCustomersAPIResponse "One page of customers"
// @Failure 422 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request parameters"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/clientes [get]
func (h *CustomerHandler) ListCustomersAPI(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ListCustomersAPIRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request parameters"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	result, err := h.customerService.ListCustomers(ctx, models.CustomerFilters{
		Term:     req.Search,
		Status:   req.Status,
		Page:     req.Page,
		PageSize: req.PerPage,
	})
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListCustomersAPIResponse{
		Data: dto.NewCustomerResponseList(result.Customers),
		Meta: dto.ListMeta{
			CurrentPage: result.Page,
			PerPage:     result.PageSize,
			Total:       result.Total,
			TotalPages:  result.TotalPages,
		},
		Filters: dto.ListFilters{
			Search: req.Search,
			Status: req.Status,
		},
	})
}

// GetCustomer fetches one record, the data source of the edit form
// @Summary Get customer by ID
// @Tags Customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} dto.CustomerResponse "Customer record"
// @Failure 400 {object} errors.ErrorResponse "CUSTOMER_002 - Invalid customer ID format"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/clientes/{id} [get]
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	id, err := parseCustomerID(c)
	if err != nil {
		return SendError(c, apierrors.CustomerInvalidID)
	}

	customer, err := h.customerService.GetCustomer(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return SendError(c, apierrors.CustomerNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCustomerResponse(customer))
}

// CreateCustomer handles the admin create form submission. A valid record
// redirects back to the listing with a success flash; an invalid one returns
// the full problem list so the form can re-render with every error.
// @Summary Create customer (form)
// @Tags Customers
// @Accept x-www-form-urlencoded
// @Produce json
// @Success 303 "Redirect to the listing with a success flash"
// @Failure 422 {object} errors.ErrorResponse "VALIDATION_001 - Record rejected with problem list"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/clientes/salvar [post]
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SaveCustomerRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	customer := req.ToModel()
	if err := h.customerService.CreateCustomer(ctx, customer); err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			return c.JSON(http.StatusUnprocessableEntity,
				apierrors.NewValidationErrorFromList(validationErr.Problems, getTraceID(c)))
		}
		return SendSystemError(c, err)
	}

	setFlash(c, "success", "Cliente criado com sucesso")
	return c.Redirect(http.StatusSeeOther, adminListPath)
}

// UpdateCustomer handles the admin edit form submission. A record that
// vanished between form load and save redirects with a not-found flash
// instead of failing hard.
// @Summary Update customer (form)
// @Tags Customers
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id path int true "Customer ID"
// @Success 303 "Redirect to the listing with a flash"
// @Failure 400 {object} errors.ErrorResponse "CUSTOMER_002 - Invalid customer ID format"
// @Failure 422 {object} errors.ErrorResponse "VALIDATION_001 - Record rejected with problem list"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/clientes/atualizar/{id} [post]
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseCustomerID(c)
	if err != nil {
		return SendError(c, apierrors.CustomerInvalidID)
	}

	var req dto.SaveCustomerRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	customer := req.ToModel()
	customer.ID = id

	if err := h.customerService.UpdateCustomer(ctx, customer); err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			return c.JSON(http.StatusUnprocessableEntity,
				apierrors.NewValidationErrorFromList(validationErr.Problems, getTraceID(c)))
		}
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			setFlash(c, "error", "Cliente não encontrado")
			return c.Redirect(http.StatusSeeOther, adminListPath)
		}
		return SendSystemError(c, err)
	}

	setFlash(c, "success", "Cliente atualizado com sucesso")
	return c.Redirect(http.StatusSeeOther, adminListPath)
}

// DeleteCustomer handles the delete form submission. The outcome is always a
// redirect with a flash; deleting an already-deleted record reports failure
// without a 5xx.
// @Summary Delete customer (form)
// @Tags Customers
// @Param id path int true "Customer ID"
// @Success 303 "Redirect to the listing with a flash"
// @Router /admin/clientes/excluir/{id} [post]
func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseCustomerID(c)
	if err != nil {
		setFlash(c, "error", "Cliente inválido")
		return c.Redirect(http.StatusSeeOther, adminListPath)
	}

	if err := h.customerService.DeleteCustomer(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			setFlash(c, "error", "Cliente não encontrado")
		} else {
			setFlash(c, "error", "Erro ao excluir cliente")
		}
		return c.Redirect(http.StatusSeeOther, adminListPath)
	}

	setFlash(c, "success", "Cliente excluído com sucesso")
	return c.Redirect(http.StatusSeeOther, adminListPath)
}

// ExportCustomers streams the current filter as a downloadable file
// @Summary Export customers
// @Tags Customers
// @Produce text/csv
// @Produce json
// @Param format query string false "Export format" Enums(csv, json) default(csv)
// @Param search query string false "Search term"
// @Param status query string false "Status filter" Enums(prospect, active, inactive, blocked)
// @Success 200 {file} file "Export file attachment"
// @Failure 400 {object} errors.ErrorResponse "EXPORT_001 - Unsupported export format"
// @Failure 500 {object} errors.ErrorResponse "EXPORT_002 - Export could not be generated"
// @Router /admin/clientes/exportar [get]
func (h *CustomerHandler) ExportCustomers(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ExportCustomersRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request parameters"))
	}
	if req.Format == "" {
		req.Format = "csv"
	}

	result, err := h.exportService.Export(ctx, req.Format, req.Search, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedFormat) {
			return SendError(c, apierrors.ExportUnsupportedFormat)
		}
		return SendError(c, apierrors.ExportFailed)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", result.Filename))
	return c.Blob(http.StatusOK, result.ContentType, result.Data)
}

// GetStats serves the dashboard widget counters
// @Summary Customer stats
// @Tags Customers
// @Produce json
// @Success 200 {object} dto.CustomerStatsResponse "Total and per-status counts"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /admin/clientes/stats [get]
func (h *CustomerHandler) GetStats(c echo.Context) error {
	stats, err := h.customerService.GetCustomerStats(c.Request().Context())
	if err != nil {
		return SendSystemError(c, err)
	}

	byStatus := make(map[string]int64, len(stats.ByStatus))
	for status, count := range stats.ByStatus {
		byStatus[string(status)] = count
	}

	return c.JSON(http.StatusOK, dto.CustomerStatsResponse{
		Total:    stats.Total,
		ByStatus: byStatus,
	})
}

func parseCustomerID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid customer id: %q", c.Param("id"))
	}
	return uint(id), nil
}
