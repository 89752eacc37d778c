package listview

import (
	"net/url"
	"strconv"
)

// QueryState is the full description of what the listing is showing: the
// search term, the status filter, and the 1-based page.
type QueryState struct {
	Term   string
	Status string
	Page   int
}

// EncodeQuery serializes a QueryState into browser URL parameters. Empty
// filters are dropped, and the page param is omitted on page 1 so filter
// changes produce clean URLs.
func EncodeQuery(state QueryState) url.Values {
	values := url.Values{}
	if state.Term != "" {
		values.Set("search", state.Term)
	}
	if state.Status != "" {
		values.Set("status", state.Status)
	}
	if state.Page > 1 {
		values.Set("page", strconv.Itoa(state.Page))
	}
	return values
}

// DecodeQuery restores a QueryState from URL parameters. An absent or
// malformed page clamps to 1.
func DecodeQuery(values url.Values) QueryState {
	state := QueryState{
		Term:   values.Get("search"),
		Status: values.Get("status"),
		Page:   1,
	}
	if raw := values.Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 1 {
			state.Page = page
		}
	}
	return state
}
