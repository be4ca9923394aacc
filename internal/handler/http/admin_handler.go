package http

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/brandkit-io/brandkit-backend/internal/handler/http/dto"
	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
	"github.com/gin-gonic/gin"
)

// AdminHandler serves the seed and health endpoints.
type AdminHandler struct {
	seedUC         usecasecontract.ISeedUseCase
	config         usecasecontract.IConfigProvider
	storageBackend string
}

func NewAdminHandler(seedUC usecasecontract.ISeedUseCase, config usecasecontract.IConfigProvider, storageBackend string) *AdminHandler {
	return &AdminHandler{seedUC: seedUC, config: config, storageBackend: storageBackend}
}

// Seed handles GET /api/seed?key=. An unset seed key disables the endpoint.
func (h *AdminHandler) Seed(c *gin.Context) {
	secret := h.config.GetSeedKey()
	key := c.Query("key")
	if secret == "" || subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
		c.JSON(http.StatusUnauthorized, dto.SeedResponse{Success: false, Error: "Unauthorized"})
		return
	}
	report, err := h.seedUC.Seed(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SeedResponse{
		Success:    true,
		Industries: report.Industries,
		Templates:  report.Templates,
		DemoUser:   report.DemoUser,
	})
}

// Health handles GET /api/health.
func (h *AdminHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:         "ok",
		Environment:    h.config.GetEnvironment(),
		StorageBackend: h.storageBackend,
		Time:           time.Now().Format(time.RFC3339),
	})
}
