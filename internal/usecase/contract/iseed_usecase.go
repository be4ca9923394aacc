package usecasecontract

import "context"

// SeedReport summarizes what a seeding run wrote.
type SeedReport struct {
	Industries int  `json:"industries"`
	Templates  int  `json:"templates"`
	DemoUser   bool `json:"demoUser"`
}

// ISeedUseCase populates the stores with the industry taxonomy, the template
// library and a demo account. Runs are idempotent.
type ISeedUseCase interface {
	Seed(ctx context.Context) (*SeedReport, error)
}
