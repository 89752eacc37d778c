package listview

import (
	"time"

	"corecrm/internal/dto"
)

const maxNotesRunes = 50

// RowModel is the presentation-ready shape of one listing row. It carries no
// rendering technology, only the derived strings a renderer needs.
type RowModel struct {
	ID          uint
	Name        string
	Email       string
	Phone       string
	Status      string
	StatusLabel string
	BadgeClass  string
	Notes       string
	CreatedAt   string
}

// NewRowModel maps one transport record to its row model: badge classes from
// the status color, notes truncated to fit the column, and a short creation
// date.
func NewRowModel(customer dto.CustomerResponse) RowModel {
	return RowModel{
		ID:          customer.ID,
		Name:        customer.Name,
		Email:       customer.Email,
		Phone:       customer.Phone,
		Status:      customer.Status,
		StatusLabel: customer.StatusLabel,
		BadgeClass:  "badge-" + customer.StatusColor,
		Notes:       truncateNotes(customer.Notes),
		CreatedAt:   formatCreatedAt(customer.CreatedAt),
	}
}

// truncateNotes caps the notes column at maxNotesRunes runes, ellipsis
// included, without splitting multi-byte characters.
func truncateNotes(notes string) string {
	runes := []rune(notes)
	if len(runes) <= maxNotesRunes {
		return notes
	}
	return string(runes[:maxNotesRunes-1]) + "…"
}

func formatCreatedAt(raw string) string {
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return parsed.Format("02/01/2006")
}
