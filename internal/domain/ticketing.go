package domain

import (
	"time"

	"gorm.io/gorm"
)

type TicketingStatus string

const (
	TicketingOpen       TicketingStatus = "OPEN"
	TicketingClosed     TicketingStatus = "CLOSED"
	TicketingLastPlaces TicketingStatus = "LAST_PLACES"
)

// Ticketing is a sellable ticket batch tied to one festival. TotalTickets is
// fixed at creation; only AvailableTickets and Status move afterwards.
type Ticketing struct {
	Name             string          `json:"name" gorm:"primaryKey;size:100"`
	FestivalID       string          `json:"festival" gorm:"size:20;not null;index"`
	TotalTickets     uint            `json:"total_tickets" gorm:"not null"`
	AvailableTickets uint            `json:"available_tickets"`
	Status           TicketingStatus `json:"status" gorm:"size:25;default:OPEN"`
	OpenedAt         time.Time       `json:"opened_at" gorm:"autoCreateTime"`

	Festival *Festival `json:"-" gorm:"foreignKey:FestivalID;constraint:OnDelete:CASCADE"`
}

func (Ticketing) TableName() string { return "ticketing" }

func (t *Ticketing) BeforeCreate(tx *gorm.DB) error {
	if t.AvailableTickets == 0 {
		t.AvailableTickets = t.TotalTickets
	}
	if t.Status == "" {
		t.Status = TicketingOpen
	}
	t.RefreshStatus()
	return nil
}

func (t *Ticketing) BeforeSave(tx *gorm.DB) error {
	// Creation defaults are handled in BeforeCreate; OpenedAt is still zero here.
	if !t.OpenedAt.IsZero() {
		t.RefreshStatus()
	}
	return nil
}

// RefreshStatus derives Status from availability: sold out closes the batch,
// 10% or fewer remaining flags last places.
func (t *Ticketing) RefreshStatus() {
	switch {
	case t.AvailableTickets == 0:
		t.Status = TicketingClosed
	case t.TotalTickets > 0 && t.AvailableTickets*10 <= t.TotalTickets:
		t.Status = TicketingLastPlaces
	default:
		t.Status = TicketingOpen
	}
}
