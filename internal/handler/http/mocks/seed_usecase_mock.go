package mocks

import (
	"context"
	"errors"

	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
)

// MockSeedUseCase is a mock implementation of the ISeedUseCase interface
type MockSeedUseCase struct {
	ShouldFailSeed bool

	// SeedCalls counts invocations so idempotency tests can assert gating.
	SeedCalls int
}

var _ usecasecontract.ISeedUseCase = (*MockSeedUseCase)(nil)

func NewMockSeedUseCase() *MockSeedUseCase {
	return &MockSeedUseCase{}
}

func (m *MockSeedUseCase) Seed(ctx context.Context) (*usecasecontract.SeedReport, error) {
	m.SeedCalls++
	if m.ShouldFailSeed {
		return nil, errors.New("seed failed")
	}
	return &usecasecontract.SeedReport{Industries: 10, Templates: 6, DemoUser: m.SeedCalls == 1}, nil
}
