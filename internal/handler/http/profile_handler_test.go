package http_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
	handler "github.com/brandkit-io/brandkit-backend/internal/handler/http"
	"github.com/brandkit-io/brandkit-backend/internal/handler/http/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type uuidGenStub struct{}

func (uuidGenStub) NewUUID() string { return "fixed-uuid" }

func setupProfileRouter(profileUC *mocks.MockProfileUseCase, userID string) *gin.Engine {
	h := handler.NewProfileHandler(profileUC, uuidGenStub{}, mocks.NewMockConfigProvider())
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(handler.ContextUserIDKey, userID)
	})
	r.GET("/api/profile", h.GetProfile)
	r.POST("/api/profile", h.UpsertProfile)
	r.GET("/api/profile/industries", h.GetIndustries)
	r.PUT("/api/branding/voice", h.UpdateVoice)
	r.PUT("/api/branding/colors", h.UpdateColors)
	return r
}

func multipartProfileRequest(t *testing.T, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		assert.NoError(t, mw.WriteField(k, v))
	}
	assert.NoError(t, mw.Close())
	req, _ := http.NewRequest("POST", "/api/profile", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUpsertProfile_DefaultsWithoutLogo(t *testing.T) {
	r := setupProfileRouter(mocks.NewMockProfileUseCase(), "mock-user-id")

	req := multipartProfileRequest(t, map[string]string{
		"businessName":    "Ann's Bakery",
		"industry":        "Food & Beverage",
		"niche":           "Bakeries",
		"targetAudience":  `["families"]`,
		"locationType":    "physical",
		"socialPlatforms": `["instagram"]`,
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var profile entity.BusinessProfile
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "Ann's Bakery", profile.BusinessName)
	assert.Equal(t, entity.DefaultLogo, profile.Logo)
	assert.Equal(t, entity.DefaultBrandColors(), profile.BrandColors)
	assert.Equal(t, []string{"families"}, profile.TargetAudience)
}

func TestUpsertProfile_VoiceTooLong(t *testing.T) {
	r := setupProfileRouter(mocks.NewMockProfileUseCase(), "mock-user-id")

	req := multipartProfileRequest(t, map[string]string{
		"businessName":  "Ann's Bakery",
		"industry":      "Food & Beverage",
		"businessVoice": `["warm","playful","edgy"]`,
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "businessVoice")
}

func TestUpsertProfile_MissingAudience(t *testing.T) {
	r := setupProfileRouter(mocks.NewMockProfileUseCase(), "mock-user-id")

	req := multipartProfileRequest(t, map[string]string{
		"businessName":    "Ann's Bakery",
		"industry":        "Food & Beverage",
		"socialPlatforms": `["instagram"]`,
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "targetAudience")
}

func TestGetProfile_NotFound(t *testing.T) {
	profileUC := mocks.NewMockProfileUseCase()
	profileUC.ProfileNotFound = true
	r := setupProfileRouter(profileUC, "mock-user-id")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/profile", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateVoice_TooManyEntries(t *testing.T) {
	r := setupProfileRouter(mocks.NewMockProfileUseCase(), "mock-user-id")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/branding/voice", bytes.NewBufferString(`{"businessVoice":["warm","playful","edgy"]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateColors(t *testing.T) {
	r := setupProfileRouter(mocks.NewMockProfileUseCase(), "mock-user-id")

	body := `{"brandColors":{"primary":"#112233","secondary":"#ffffff","accent":"#cccccc"}}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/branding/colors", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "#112233")
}
