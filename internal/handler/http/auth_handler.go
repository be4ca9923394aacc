package http

import (
	"net/http"

	"github.com/brandkit-io/brandkit-backend/internal/handler/http/dto"
	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC usecasecontract.IAuthUseCase
}

func NewAuthHandler(authUC usecasecontract.IAuthUseCase) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	user, token, err := h.authUC.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.AuthResponse{Token: token, User: dto.ToUserResponse(user)})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	user, token, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.AuthResponse{Token: token, User: dto.ToUserResponse(user)})
}

// GoogleLogin handles POST /api/auth/google.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	user, token, err := h.authUC.LoginWithGoogle(c.Request.Context(), req.IDToken)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.AuthResponse{Token: token, User: dto.ToUserResponse(user)})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Not authorized")
		return
	}
	user, err := h.authUC.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"user": dto.ToUserResponse(user)})
}
