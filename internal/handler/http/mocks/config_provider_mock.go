package mocks

import (
	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
)

// MockConfigProvider is a mock implementation of the IConfigProvider interface
type MockConfigProvider struct {
	Environment   string
	DataDir       string
	UploadsDir    string
	SeedKey       string
	DevAuthBypass bool
}

var _ usecasecontract.IConfigProvider = (*MockConfigProvider)(nil)

func NewMockConfigProvider() *MockConfigProvider {
	return &MockConfigProvider{
		Environment: "test",
		DataDir:     "data",
		UploadsDir:  "uploads",
		SeedKey:     "test-seed-key",
	}
}

func (m *MockConfigProvider) GetEnvironment() string           { return m.Environment }
func (m *MockConfigProvider) IsProduction() bool               { return m.Environment == "production" }
func (m *MockConfigProvider) GetDataDir() string               { return m.DataDir }
func (m *MockConfigProvider) GetUploadsDir() string            { return m.UploadsDir }
func (m *MockConfigProvider) GetSeedKey() string               { return m.SeedKey }
func (m *MockConfigProvider) GetAIServiceAPIKey() string       { return "" }
func (m *MockConfigProvider) GetAIModel() string               { return "gpt-3.5-turbo" }
func (m *MockConfigProvider) GetAITemperature() float64        { return 0.7 }
func (m *MockConfigProvider) GetPhotoServiceAccessKey() string { return "" }
func (m *MockConfigProvider) GetDevAuthBypass() bool           { return m.DevAuthBypass }
