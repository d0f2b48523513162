// Package ports defines the driven-side interfaces of the Strobe
// engine. Adapters (in-memory, Redis) implement them; the engine and
// hosts depend only on the interfaces.
package ports
