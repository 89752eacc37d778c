package models

// CustomerStats aggregates record counts for the dashboard widget
type CustomerStats struct {
	Total    int64            `json:"total"`
	ByStatus map[Status]int64 `json:"by_status"`
}
