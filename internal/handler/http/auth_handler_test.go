package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	handler "github.com/brandkit-io/brandkit-backend/internal/handler/http"
	"github.com/brandkit-io/brandkit-backend/internal/handler/http/dto"
	"github.com/brandkit-io/brandkit-backend/internal/handler/http/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupAuthRouter(h *handler.AuthHandler) *gin.Engine {
	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/google", h.GoogleLogin)
	return r
}

func TestRegister(t *testing.T) {
	mockAuth := mocks.NewMockAuthUseCase()
	h := handler.NewAuthHandler(mockAuth)
	r := setupAuthRouter(h)

	payload := dto.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret1"}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AuthResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "test@example.com", resp.User.Email)
	// The password hash must never appear in any auth response.
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "$2a$")
}

func TestRegister_MissingFields(t *testing.T) {
	h := handler.NewAuthHandler(mocks.NewMockAuthUseCase())
	r := setupAuthRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/register", bytes.NewBufferString(`{"email":"ann@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	mockAuth := mocks.NewMockAuthUseCase()
	mockAuth.ShouldFailRegister = true
	h := handler.NewAuthHandler(mockAuth)
	r := setupAuthRouter(h)

	payload := dto.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret1"}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	h := handler.NewAuthHandler(mocks.NewMockAuthUseCase())
	r := setupAuthRouter(h)

	payload := dto.LoginRequest{Email: "test@example.com", Password: "secret1"}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock_access_token")
}

func TestLogin_BadCredentials(t *testing.T) {
	mockAuth := mocks.NewMockAuthUseCase()
	mockAuth.ShouldFailLogin = true
	h := handler.NewAuthHandler(mockAuth)
	r := setupAuthRouter(h)

	payload := dto.LoginRequest{Email: "test@example.com", Password: "wrong"}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Not authorized")
}

func TestGoogleLogin(t *testing.T) {
	h := handler.NewAuthHandler(mocks.NewMockAuthUseCase())
	r := setupAuthRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/google", bytes.NewBufferString(`{"idToken":"some-token"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock_access_token")
}
