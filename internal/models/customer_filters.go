package models

// CustomerFilters contains filtering and pagination options for customer
// list queries. List and Count must be driven by the same Term/Status pair
// for pagination math to stay consistent.
type CustomerFilters struct {
	Term     string
	Status   string
	Page     int
	PageSize int
}

// Offset converts the 1-based page into a row offset. Callers clamp Page
// to >= 1 before the query layer sees it.
func (f CustomerFilters) Offset() int {
	return (f.Page - 1) * f.PageSize
}
