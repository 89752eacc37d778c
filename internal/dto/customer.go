package dto

import (
	"time"

	"corecrm/internal/models"
)

// SearchCustomersRequest carries the query parameters of the admin listing
// endpoint. Page is clamped server-side, so no lower bound here.
type SearchCustomersRequest struct {
	Term   string `query:"q"`
	Status string `query:"status" validate:"omitempty,customer_status"`
	Page   int    `query:"page"`
}

// ListCustomersAPIRequest carries the query parameters of the JSON API listing
type ListCustomersAPIRequest struct {
	Search  string `query:"search"`
	Status  string `query:"status" validate:"omitempty,customer_status"`
	Page    int    `query:"page"`
	PerPage int    `query:"per_page" validate:"omitempty,min=1,max=100"`
}

// CustomerResponse is the wire representation of one customer. Key names are
// fixed by the admin front end and must not change.
type CustomerResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"nome"`
	Email       string `json:"email"`
	Phone       string `json:"telefone"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
	StatusColor string `json:"status_color"`
	Notes       string `json:"observacoes"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// SearchCustomersResponse is the envelope of the admin listing endpoint
type SearchCustomersResponse struct {
	Customers  []*CustomerResponse `json:"clientes"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	TotalPages int                 `json:"totalPages"`
}

// ListCustomersAPIResponse is the envelope of the JSON API listing
type ListCustomersAPIResponse struct {
	Data    []*CustomerResponse `json:"data"`
	Meta    ListMeta            `json:"meta"`
	Filters ListFilters         `json:"filters"`
}

// ListMeta carries pagination metadata for the API envelope
type ListMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
}

// ListFilters echoes the filter the listing was computed under
type ListFilters struct {
	Search string `json:"search"`
	Status string `json:"status"`
}

// SaveCustomerRequest carries the admin form fields for create and update.
// Field rules of record live in the model's Validate; the tags only guard
// request shape.
type SaveCustomerRequest struct {
	Name   string `json:"nome" form:"nome"`
	Email  string `json:"email" form:"email"`
	Phone  string `json:"telefone" form:"telefone"`
	Status string `json:"status" form:"status"`
	Notes  string `json:"observacoes" form:"observacoes"`
}

// ToModel builds a customer record from the form fields
func (r *SaveCustomerRequest) ToModel() *models.Customer {
	return &models.Customer{
		Name:   r.Name,
		Email:  r.Email,
		Phone:  r.Phone,
		Status: models.Status(r.Status),
		Notes:  r.Notes,
	}
}

// ExportCustomersRequest carries the export endpoint parameters
type ExportCustomersRequest struct {
	Format string `query:"format" validate:"omitempty,export_format"`
	Search string `query:"search"`
	Status string `query:"status" validate:"omitempty,customer_status"`
}

// CustomerStatsResponse is the dashboard widget payload
type CustomerStatsResponse struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
}

// FlashMessage is a one-shot notification produced by form submissions
type FlashMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// NewCustomerResponse maps a customer record onto the wire shape
func NewCustomerResponse(c *models.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Status:      string(c.Status),
		StatusLabel: c.Status.Label(),
		StatusColor: c.Status.Color(),
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.Format(time.RFC3339),
	}
}

// NewCustomerResponseList maps a page of records onto the wire shape. It
// always returns a non-nil slice so the envelope serializes as [] rather
// than null.
func NewCustomerResponseList(customers []*models.Customer) []*CustomerResponse {
	responses := make([]*CustomerResponse, 0, len(customers))
	for _, c := range customers {
		responses = append(responses, NewCustomerResponse(c))
	}
	return responses
}
