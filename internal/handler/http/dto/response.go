package dto

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SeedResponse is the envelope of GET /api/seed. The legacy {success, error}
// shape is kept for the 401 case.
type SeedResponse struct {
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
	Industries int    `json:"industries,omitempty"`
	Templates  int    `json:"templates,omitempty"`
	DemoUser   bool   `json:"demoUser,omitempty"`
}

// HealthResponse is the liveness payload of GET /api/health.
type HealthResponse struct {
	Status         string `json:"status"`
	Environment    string `json:"environment"`
	StorageBackend string `json:"storageBackend"`
	Time           string `json:"time"`
}
