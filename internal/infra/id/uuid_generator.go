// Package id provides identifier generation for new backend records.
package id

import (
	"strings"

	"snapgram/internal/domain/service"

	"github.com/google/uuid"
)

type uuidGenerator struct{}

// NewUUIDGenerator returns an IDGenerator producing 32-character hex ids
// (a UUIDv4 without dashes), which every backend accepts as a document, file or account id.
func NewUUIDGenerator() service.IDGenerator {
	return uuidGenerator{}
}

func (uuidGenerator) NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
