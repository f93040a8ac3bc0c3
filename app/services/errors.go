package services

import (
	"errors"

	"github.com/shashiranjanraj/feastbook/pkg/recordstore"
	"github.com/shashiranjanraj/feastbook/pkg/storage"
)

// Registry errors. Callers match them with errors.Is; returned errors wrap
// them with the offending id.
var (
	ErrNilCustomer      = errors.New("customer is nil")
	ErrCustomerExists   = errors.New("customer already exists")
	ErrCustomerNotFound = errors.New("customer not found")

	ErrNilOrder         = errors.New("order is nil")
	ErrOrderCodeMissing = errors.New("order has no code")
	ErrUnknownCustomer  = errors.New("order references an unknown customer")
	ErrUnknownMenu      = errors.New("order references an unknown set menu")
	ErrDuplicateOrder   = errors.New("an order for this customer, menu and date already exists")
	ErrOrderExists      = errors.New("order code already exists")
	ErrOrderNotFound    = errors.New("order not found")
	ErrCostOverflow     = errors.New("total cost is out of range")
)

// IsNotFound reports lookup misses.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCustomerNotFound) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, storage.ErrNotExist)
}

// IsConflict reports duplicate ids and duplicate orders.
func IsConflict(err error) bool {
	return errors.Is(err, ErrCustomerExists) ||
		errors.Is(err, ErrOrderExists) ||
		errors.Is(err, ErrDuplicateOrder)
}

// IsReferential reports orders pointing at a missing customer or menu.
func IsReferential(err error) bool {
	return errors.Is(err, ErrUnknownCustomer) || errors.Is(err, ErrUnknownMenu)
}

// IsCorrupt reports a stored stream that exists but cannot be decoded.
func IsCorrupt(err error) bool {
	return errors.Is(err, recordstore.ErrCorrupt)
}
