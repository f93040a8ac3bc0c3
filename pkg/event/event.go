// Package event provides a simple synchronous event dispatcher.
//
// Registries fire an event after every state change; listeners (metrics,
// audit logging) subscribe at boot:
//
//	event.Listen(event.OrderPlaced, func(p interface{}) { ... })
package event

import (
	"sync"
)

// Event names fired by the registries.
const (
	CustomerCreated = "customer.created"
	CustomerUpdated = "customer.updated"
	OrderPlaced     = "order.placed"
	OrderUpdated    = "order.updated"
	OrderRejected   = "order.rejected"
	RegistrySaved   = "registry.saved"
	RegistryLoaded  = "registry.loaded"
)

// Change is the payload of the customer.* and order.* mutation events.
type Change struct {
	Registry string // "customers" | "orders"
	ID       string
}

// Rejection is the payload of order.rejected.
type Rejection struct {
	Reason string // "nil" | "unknown_customer" | "unknown_menu" | "duplicate" | "exists" | "not_found" | "missing_code"
	Err    error
}

// Persisted is the payload of registry.saved and registry.loaded.
type Persisted struct {
	Registry string
	Path     string
	Count    int
}

// Handler is a function that receives an event payload.
type Handler func(payload interface{})

var (
	mu       sync.RWMutex
	handlers = map[string][]Handler{}
)

// Listen registers a handler for the given event name.
func Listen(event string, handler Handler) {
	mu.Lock()
	defer mu.Unlock()
	handlers[event] = append(handlers[event], handler)
}

// Fire dispatches an event synchronously to all registered listeners, in
// registration order.
func Fire(event string, payload interface{}) {
	mu.RLock()
	hs := make([]Handler, len(handlers[event]))
	copy(hs, handlers[event])
	mu.RUnlock()

	for _, h := range hs {
		h(payload)
	}
}

// HasListeners reports whether anything listens for event.
func HasListeners(event string) bool {
	mu.RLock()
	defer mu.RUnlock()
	return len(handlers[event]) > 0
}

// Flush removes all listeners (useful in tests).
func Flush() {
	mu.Lock()
	defer mu.Unlock()
	handlers = map[string][]Handler{}
}
