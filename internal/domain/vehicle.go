package domain

import "time"

type VehicleType string

const (
	TypeCar        VehicleType = "car"
	TypeMotorcycle VehicleType = "motorcycle"
)

type PeriodUnit string

const (
	UnitMonths PeriodUnit = "months"
	UnitWeeks  PeriodUnit = "weeks"
)

func (u PeriodUnit) Valid() bool {
	return u == UnitMonths || u == UnitWeeks
}

// NoCedula is stored when the subscription holder gave no national id.
const NoCedula = "No"

// HourlySession is a vehicle parked under pay-on-exit billing. It exists from
// registration until it is billed and removed; there is no intermediate state.
type HourlySession struct {
	Plate     string      `json:"plate"`
	Type      VehicleType `json:"type"`
	EntryTime time.Time   `json:"entry_time"`
}

// Subscription is a vehicle under a prepaid monthly or weekly arrangement.
// Renewal mutates it in place; removal assumes the balance is settled and
// credits AmountDue to the revenue total.
type Subscription struct {
	Plate           string      `json:"plate"`
	Type            VehicleType `json:"type"`
	HolderName      string      `json:"holder_name"`
	Cedula          string      `json:"cedula"`
	Duration        int         `json:"duration"`
	ExpiresAt       time.Time   `json:"expires_at"`
	FormattedExpiry string      `json:"formatted_expiry"`
	AmountDue       float64     `json:"amount_due"`
}

// RevenueSnapshot is the running collected total and when it was last saved.
type RevenueSnapshot struct {
	Total   float64   `json:"total"`
	SavedAt time.Time `json:"savedAt"`
}

// Occupancy is the per-type count across both populations against the limits.
type Occupancy struct {
	Cars      int `json:"cars"`
	CarLimit  int `json:"car_limit"`
	Motos     int `json:"motos"`
	MotoLimit int `json:"moto_limit"`
}

type RegisterHourlyDTO struct {
	Plate string `json:"plate" binding:"required"`
}

// NormalizePlateDTO carries one keystroke of a plate field from a thin client.
// Text may be empty (backspacing the field clear).
type NormalizePlateDTO struct {
	Previous string `json:"previous"`
	Text     string `json:"text"`
}

// NormalizedPlateDTO is the field value the client should display.
type NormalizedPlateDTO struct {
	Plate    string `json:"plate"`
	Complete bool   `json:"complete"`
}

// HourlyTicketDTO is what the receipt/printing collaborator consumes.
type HourlyTicketDTO struct {
	TicketID  string      `json:"ticket_id"`
	Plate     string      `json:"plate"`
	Type      VehicleType `json:"type"`
	EntryTime time.Time   `json:"entry_time"`
	Barcode   string      `json:"barcode"`
}

// BillReceiptDTO is returned when an hourly session is billed out.
type BillReceiptDTO struct {
	Plate        string      `json:"plate"`
	Type         VehicleType `json:"type"`
	Hours        int         `json:"hours"`
	Amount       float64     `json:"amount"`
	RevenueTotal float64     `json:"revenue_total"`
}

type RegisterSubscriptionDTO struct {
	Plate    string     `json:"plate" binding:"required"`
	Name     string     `json:"name" binding:"required,max=20"`
	Cedula   string     `json:"cedula,omitempty"`
	Duration int        `json:"duration" binding:"required,min=1"`
	Unit     PeriodUnit `json:"unit" binding:"required"`
}

// RemovalReceiptDTO is returned when a subscription is deleted and its
// balance is credited to the revenue total.
type RemovalReceiptDTO struct {
	Plate          string  `json:"plate"`
	AmountCredited float64 `json:"amount_credited"`
	RevenueTotal   float64 `json:"revenue_total"`
}

type RenewSubscriptionDTO struct {
	Duration int        `json:"duration" binding:"required,min=1"`
	Unit     PeriodUnit `json:"unit" binding:"required"`
	Paid     bool       `json:"paid"`
}
