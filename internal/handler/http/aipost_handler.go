package http

import (
	"net/http"
	"strings"

	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
	"github.com/brandkit-io/brandkit-backend/internal/handler/http/dto"
	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
	"github.com/gin-gonic/gin"
)

// AIPostHandler serves the /api/ai-posts routes, which use the richer
// CreativeContent envelope and can persist the result in one call.
type AIPostHandler struct {
	contentUC  usecasecontract.IContentUseCase
	postUC     usecasecontract.IPostUseCase
	profileUC  usecasecontract.IProfileUseCase
	templateUC usecasecontract.ITemplateUseCase
}

func NewAIPostHandler(contentUC usecasecontract.IContentUseCase, postUC usecasecontract.IPostUseCase, profileUC usecasecontract.IProfileUseCase, templateUC usecasecontract.ITemplateUseCase) *AIPostHandler {
	return &AIPostHandler{contentUC: contentUC, postUC: postUC, profileUC: profileUC, templateUC: templateUC}
}

// ListTemplates handles GET /api/ai-posts/templates.
func (h *AIPostHandler) ListTemplates(c *gin.Context) {
	templates, err := h.templateUC.ListTemplates(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, templates)
}

// Generate handles POST /api/ai-posts/generate.
func (h *AIPostHandler) Generate(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Not authorized")
		return
	}
	var req dto.GenerateContentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	content, err := h.generate(c, userID, req)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, content)
}

// Preview handles POST /api/ai-posts/preview: same generation, plus the brand
// palette the client renders the preview with.
func (h *AIPostHandler) Preview(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Not authorized")
		return
	}
	var req dto.GenerateContentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	content, err := h.generate(c, userID, req)
	if err != nil {
		RespondError(c, err)
		return
	}
	colors := entity.DefaultBrandColors()
	if profile := h.callerProfile(c, userID); profile != nil {
		colors = profile.BrandColors
	}
	SuccessHandler(c, http.StatusOK, gin.H{"content": content, "brandColors": colors})
}

// Create handles POST /api/ai-posts: generate and persist as a draft post.
func (h *AIPostHandler) Create(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Not authorized")
		return
	}
	var req dto.GenerateContentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	content, err := h.generate(c, userID, req)
	if err != nil {
		RespondError(c, err)
		return
	}
	post, err := h.postUC.CreatePost(c.Request.Context(), userID, usecasecontract.PostInput{
		Content:          content.MainText,
		Headline:         content.Headline,
		CallToAction:     content.CallToAction,
		Hashtags:         joinHashtags(content.Hashtags),
		ImageDescription: content.ImageDescription,
		Platform:         entity.Platform(req.Platform),
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, post)
}

// GenerateHashtags handles POST /api/ai-posts/hashtags.
func (h *AIPostHandler) GenerateHashtags(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Not authorized")
		return
	}
	var req dto.GenerateHashtagsRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	tags, err := h.contentUC.GenerateHashtags(c.Request.Context(), h.callerProfile(c, userID), req.Topic, req.Count)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"hashtags": tags})
}

// GenerateCalendar handles POST /api/ai-posts/calendar.
func (h *AIPostHandler) GenerateCalendar(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Not authorized")
		return
	}
	var req dto.GenerateCalendarRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	entries, err := h.contentUC.GenerateCalendar(c.Request.Context(), h.callerProfile(c, userID), req.Days)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"calendar": entries})
}

// GenerateBio handles POST /api/ai-posts/bio.
func (h *AIPostHandler) GenerateBio(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Not authorized")
		return
	}
	var req dto.GenerateBioRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	bio, err := h.contentUC.GenerateBio(c.Request.Context(), h.callerProfile(c, userID), req.Platform)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"bio": bio})
}

func (h *AIPostHandler) generate(c *gin.Context, userID string, req dto.GenerateContentRequest) (*entity.CreativeContent, error) {
	return h.contentUC.GenerateCreative(c.Request.Context(), h.callerProfile(c, userID), usecasecontract.ContentParams{
		Topic:       req.Topic,
		Platform:    req.Platform,
		ContentType: req.ContentType,
		Tone:        req.Tone,
	})
}

func (h *AIPostHandler) callerProfile(c *gin.Context, userID string) *entity.BusinessProfile {
	profile, err := h.profileUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		return nil
	}
	return profile
}

func joinHashtags(tags []string) string {
	return strings.Join(tags, " ")
}
