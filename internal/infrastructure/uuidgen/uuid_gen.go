// Package uuidgen issues entity identifiers.
package uuidgen

import (
	"github.com/google/uuid"

	"github.com/brandkit-io/brandkit-backend/internal/domain/contract"
)

// Generator produces random (v4) UUID strings for new entities.
type Generator struct{}

var _ contract.IUUIDGenerator = (*Generator)(nil)

func NewGenerator() contract.IUUIDGenerator {
	return &Generator{}
}

func (g *Generator) NewUUID() string {
	return uuid.NewString()
}
