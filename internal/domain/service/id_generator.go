// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// IDGenerator proposes identifiers for new accounts, documents and files.
// Identifiers are generated client-side so a failed write can be compensated by id.
type IDGenerator interface {
	NewID() string
}
