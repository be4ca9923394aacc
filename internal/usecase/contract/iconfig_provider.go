package usecasecontract

// IConfigProvider exposes the configuration values usecases need.
type IConfigProvider interface {
	GetEnvironment() string
	IsProduction() bool
	GetDataDir() string
	GetUploadsDir() string
	GetSeedKey() string
	GetAIServiceAPIKey() string
	GetAIModel() string
	GetAITemperature() float64
	GetPhotoServiceAccessKey() string
	GetDevAuthBypass() bool
}
