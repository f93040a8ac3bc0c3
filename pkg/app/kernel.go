package app

// pkg/app/kernel.go - the event listeners every session installs.
// Listeners are global; they are bound once per process no matter how many
// Applications are built (tests build many).

import (
	"sync"

	"github.com/shashiranjanraj/feastbook/pkg/event"
	"github.com/shashiranjanraj/feastbook/pkg/logger"
)

var auditOnce sync.Once

// bindAuditLog writes one debug line per registry mutation and one warning
// per rejected order.
func bindAuditLog() {
	auditOnce.Do(func() {
		for _, name := range []string{
			event.CustomerCreated,
			event.CustomerUpdated,
			event.OrderPlaced,
			event.OrderUpdated,
		} {
			event.Listen(name, func(p interface{}) {
				if c, ok := p.(event.Change); ok {
					logger.Debug("registry changed", "event", name, "registry", c.Registry, "id", c.ID)
				}
			})
		}

		event.Listen(event.OrderRejected, func(p interface{}) {
			if r, ok := p.(event.Rejection); ok {
				logger.Warn("order rejected", "reason", r.Reason, "err", r.Err)
			}
		})

		for _, name := range []string{event.RegistrySaved, event.RegistryLoaded} {
			event.Listen(name, func(p interface{}) {
				if r, ok := p.(event.Persisted); ok {
					logger.Info(name, "registry", r.Registry, "path", r.Path, "records", r.Count)
				}
			})
		}
	})
}
