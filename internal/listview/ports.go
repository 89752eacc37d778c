package listview

import (
	"context"
	"net/url"
)

// Page is one fetched slice of the listing plus its pagination metadata.
type Page struct {
	Rows       []RowModel
	Total      int64
	Page       int
	TotalPages int
}

// ListClient fetches one page of the listing for a given query state.
type ListClient interface {
	Fetch(ctx context.Context, state QueryState) (*Page, error)
}

// RowRenderer receives the wholesale replacement row set after a successful
// refresh. Implementations own the actual presentation.
type RowRenderer interface {
	Render(rows []RowModel, total int64, page, totalPages int)
}

// URLStore receives the encoded query parameters of the state that was just
// applied, so the address bar stays shareable.
type URLStore interface {
	SetQuery(values url.Values)
}

// Notifier shows transient, auto-dismissable notifications.
type Notifier interface {
	Notify(level, message string)
}
