package http

import (
	"net/http"

	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
	"github.com/brandkit-io/brandkit-backend/internal/handler/http/dto"
	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUC    usecasecontract.IPostUseCase
	contentUC usecasecontract.IContentUseCase
	profileUC usecasecontract.IProfileUseCase
}

func NewPostHandler(postUC usecasecontract.IPostUseCase, contentUC usecasecontract.IContentUseCase, profileUC usecasecontract.IProfileUseCase) *PostHandler {
	return &PostHandler{postUC: postUC, contentUC: contentUC, profileUC: profileUC}
}

// CreatePost handles POST /api/posts.
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Not authorized")
		return
	}
	var req dto.PostRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	post, err := h.postUC.CreatePost(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, post)
}

// ListPosts handles GET /api/posts.
func (h *PostHandler) ListPosts(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Not authorized")
		return
	}
	posts, err := h.postUC.ListPosts(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, posts)
}

// ListScheduledPosts handles GET /api/posts/scheduled.
func (h *PostHandler) ListScheduledPosts(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Not authorized")
		return
	}
	posts, err := h.postUC.ListScheduledPosts(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, posts)
}

// GetPost handles GET /api/posts/:id.
func (h *PostHandler) GetPost(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Not authorized")
		return
	}
	post, err := h.postUC.GetPost(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, post)
}

// UpdatePost handles PUT /api/posts/:id.
func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Not authorized")
		return
	}
	var req dto.PostRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	post, err := h.postUC.UpdatePost(c.Request.Context(), userID, c.Param("id"), req.ToInput())
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, post)
}

// UpdatePostStatus handles PUT /api/posts/:id/status.
func (h *PostHandler) UpdatePostStatus(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Not authorized")
		return
	}
	var req dto.UpdateStatusRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	post, err := h.postUC.UpdatePostStatus(c.Request.Context(), userID, c.Param("id"), entity.PostStatus(req.Status), req.ScheduledDate)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, post)
}

// DeletePost handles DELETE /api/posts/:id.
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Not authorized")
		return
	}
	if err := h.postUC.DeletePost(c.Request.Context(), userID, c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "post deleted")
}

// GeneratePost handles POST /api/posts/generate. The result is returned to the
// client without being persisted.
func (h *PostHandler) GeneratePost(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Not authorized")
		return
	}
	var req dto.GenerateContentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	profile := h.callerProfile(c, userID)
	content, err := h.contentUC.GeneratePost(c.Request.Context(), profile, usecasecontract.ContentParams{
		Topic:       req.Topic,
		Platform:    req.Platform,
		ContentType: req.ContentType,
		Tone:        req.Tone,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, content)
}

// callerProfile loads the caller's profile for generation context. A missing
// profile is fine; generation degrades to generic branding.
func (h *PostHandler) callerProfile(c *gin.Context, userID string) *entity.BusinessProfile {
	profile, err := h.profileUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		return nil
	}
	return profile
}
