package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shashiranjanraj/feastbook/pkg/validate"
)

// OrderCodePrefix starts every generated order code.
const OrderCodePrefix = "ORD-"

// Order books one set menu for a number of tables on an event date.
// EventDate carries no time of day: it is always UTC midnight.
type Order struct {
	Code       string    `bson:"code"        json:"code"        validate:"required,pattern=order_code"`
	CustomerID string    `bson:"customer_id" json:"customer_id" validate:"required,pattern=customer_id"`
	MenuID     string    `bson:"menu_id"     json:"menu_id"     validate:"required,pattern=menu_id"`
	Tables     int       `bson:"tables"      json:"tables"      validate:"gte=0"`
	EventDate  time.Time `bson:"event_date"  json:"event_date"  validate:"required,date"`
}

// NewOrder builds an order with a freshly generated code.
func NewOrder(customerID, menuID string, tables int, eventDate time.Time) *Order {
	o := &Order{
		Code:       NewOrderCode(),
		CustomerID: customerID,
		MenuID:     menuID,
		Tables:     tables,
		EventDate:  eventDate,
	}
	o.Normalize()
	return o
}

// NewOrderCode returns "ORD-" followed by the first 8 hex digits of a random
// UUID, upper-cased.
func NewOrderCode() string {
	return OrderCodePrefix + strings.ToUpper(uuid.NewString()[:8])
}

// Normalize upper-cases the identifiers and truncates EventDate to its day.
func (o *Order) Normalize() {
	o.Code = NormalizeID(o.Code)
	o.CustomerID = NormalizeID(o.CustomerID)
	o.MenuID = NormalizeID(o.MenuID)
	if !o.EventDate.IsZero() {
		o.EventDate = DateOnly(o.EventDate)
	}
}

// Key identifies the order in a registry. Equality uses the same key.
func (o Order) Key() string { return NormalizeID(o.Code) }

func (o Order) Equal(other Order) bool { return o.Key() == other.Key() }

// SameTriple reports whether both orders book the same menu for the same
// customer on the same day.
func (o Order) SameTriple(other Order) bool {
	return NormalizeID(o.CustomerID) == NormalizeID(other.CustomerID) &&
		NormalizeID(o.MenuID) == NormalizeID(other.MenuID) &&
		SameDay(o.EventDate, other.EventDate)
}

// FormattedDate renders EventDate as dd/mm/yyyy.
func (o Order) FormattedDate() string {
	return o.EventDate.Format(validate.DateLayout)
}

func (o Order) Validate() map[string]string {
	return validate.Struct(o)
}

// DateOnly keeps the calendar date of t (in t's own location) at UTC midnight.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay compares two times by calendar date only.
func SameDay(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}
