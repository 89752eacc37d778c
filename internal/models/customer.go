package models

import (
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Status is the closed set of customer lifecycle states.
type Status string

const (
	StatusProspect Status = "prospect"
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusBlocked  Status = "blocked"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// AllStatuses returns the valid statuses in display order.
func AllStatuses() []Status {
	return []Status{StatusProspect, StatusActive, StatusInactive, StatusBlocked}
}

// Valid reports whether s is a member of the closed status set.
func (s Status) Valid() bool {
	switch s {
	case StatusProspect, StatusActive, StatusInactive, StatusBlocked:
		return true
	}
	return false
}

// Label returns the human-readable name for the status.
func (s Status) Label() string {
	switch s {
	case StatusProspect:
		return "Prospect"
	case StatusActive:
		return "Active"
	case StatusInactive:
		return "Inactive"
	case StatusBlocked:
		return "Blocked"
	default:
		return string(s)
	}
}

// Color returns the badge color associated with the status.
func (s Status) Color() string {
	switch s {
	case StatusActive:
		return "green"
	case StatusInactive:
		return "gray"
	case StatusProspect:
		return "blue"
	case StatusBlocked:
		return "red"
	default:
		return "gray"
	}
}

// Customer is the administrative customer record.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null;index" json:"name"`
	Email     string    `gorm:"type:varchar(255);index" json:"email"`
	Phone     string    `gorm:"type:varchar(30)" json:"phone"`
	Status    Status    `gorm:"type:varchar(20);not null;default:'prospect';index" json:"status"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (c *Customer) TableName() string {
	return "clientes"
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.Status == "" {
		c.Status = StatusProspect
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return nil
}

// Validate checks every field rule independently and returns all problems
// found, so a form can surface them together. An empty slice means valid.
// It never touches storage and is deterministic for a given receiver.
func (c *Customer) Validate() []string {
	var problems []string

	if strings.TrimSpace(c.Name) == "" {
		problems = append(problems, "name is required")
	}

	if c.Email != "" && !emailRegex.MatchString(c.Email) {
		problems = append(problems, "email must be a valid email address")
	}

	if !c.Status.Valid() {
		problems = append(problems, "status must be one of: prospect, active, inactive, blocked")
	}

	return problems
}

// IsPersisted reports whether the record has ever been saved.
func (c *Customer) IsPersisted() bool {
	return c.ID != 0
}
