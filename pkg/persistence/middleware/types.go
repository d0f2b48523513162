// Package middleware wraps history stores with cross-cutting behavior.
package middleware

import "github.com/aretw0/strobe/pkg/ports"

// Middleware allows wrapping a HistoryStore to add behavior.
type Middleware func(ports.HistoryStore) ports.HistoryStore

// Chain applies middlewares to a store, first middleware outermost.
func Chain(store ports.HistoryStore, middlewares ...Middleware) ports.HistoryStore {
	for i := len(middlewares) - 1; i >= 0; i-- {
		store = middlewares[i](store)
	}
	return store
}
