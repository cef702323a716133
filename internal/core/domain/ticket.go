package domain

import (
	"errors"
	"time"
)

// TicketCategory routes a support ticket to the right desk.
type TicketCategory string

const (
	TicketTechnical TicketCategory = "technical"
	TicketHR        TicketCategory = "hr"
	TicketAdmin     TicketCategory = "admin"
	TicketFacility  TicketCategory = "facility"
)

func (c TicketCategory) Valid() bool {
	switch c {
	case TicketTechnical, TicketHR, TicketAdmin, TicketFacility:
		return true
	}
	return false
}

// TicketPriority is the urgency reported by the employee.
type TicketPriority string

const (
	TicketLow    TicketPriority = "low"
	TicketMedium TicketPriority = "medium"
	TicketHigh   TicketPriority = "high"
	TicketUrgent TicketPriority = "urgent"
)

func (p TicketPriority) Valid() bool {
	switch p {
	case TicketLow, TicketMedium, TicketHigh, TicketUrgent:
		return true
	}
	return false
}

// TicketStatus represents the handling state of a ticket.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in-progress"
	TicketResolved   TicketStatus = "resolved"
	TicketClosed     TicketStatus = "closed"
)

func (s TicketStatus) Valid() bool {
	switch s {
	case TicketOpen, TicketInProgress, TicketResolved, TicketClosed:
		return true
	}
	return false
}

// Ticket is a support request raised by an employee and handled by HR.
type Ticket struct {
	ID          string         `json:"id" bson:"_id,omitempty"`
	Employee    string         `json:"employee" bson:"employee"` // employee email
	Title       string         `json:"title" bson:"title"`
	Description string         `json:"description" bson:"description"`
	Category    TicketCategory `json:"category" bson:"category"`
	Priority    TicketPriority `json:"priority" bson:"priority"`
	Status      TicketStatus   `json:"status" bson:"status"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" bson:"updated_at"`
	HRResponse  string         `json:"hr_response,omitempty" bson:"hr_response,omitempty"`
}

var ErrTicketNotFound = errors.New("ticket not found")
