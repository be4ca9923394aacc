package http

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/brandkit-io/brandkit-backend/internal/domain/contract"
	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
	"github.com/brandkit-io/brandkit-backend/internal/handler/http/dto"
	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC usecasecontract.IProfileUseCase
	uuidGen   contract.IUUIDGenerator
	config    usecasecontract.IConfigProvider
}

func NewProfileHandler(profileUC usecasecontract.IProfileUseCase, uuidGen contract.IUUIDGenerator, config usecasecontract.IConfigProvider) *ProfileHandler {
	return &ProfileHandler{profileUC: profileUC, uuidGen: uuidGen, config: config}
}

// GetProfile handles GET /api/profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Not authorized")
		return
	}
	profile, err := h.profileUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, profile)
}

// UpsertProfile handles POST /api/profile. The body is multipart form data
// with an optional logo file; object and array fields arrive as JSON strings.
func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Not authorized")
		return
	}

	input := usecasecontract.ProfileUpsertInput{
		BusinessName:    c.PostForm("businessName"),
		Industry:        c.PostForm("industry"),
		Niche:           c.PostForm("niche"),
		BusinessVoice:   parseStringList(c.PostForm("businessVoice")),
		TargetAudience:  parseStringList(c.PostForm("targetAudience")),
		LocationType:    entity.LocationType(c.PostForm("locationType")),
		Website:         c.PostForm("website"),
		SocialPlatforms: parseStringList(c.PostForm("socialPlatforms")),
	}
	if raw := c.PostForm("location"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.Location); err != nil {
			ErrorHandler(c, http.StatusBadRequest, "location must be a JSON object")
			return
		}
	}
	if raw := c.PostForm("contactDetails"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.ContactDetails); err != nil {
			ErrorHandler(c, http.StatusBadRequest, "contactDetails must be a JSON object")
			return
		}
	}
	if raw := c.PostForm("brandColors"); raw != "" {
		var colors entity.BrandColors
		if err := json.Unmarshal([]byte(raw), &colors); err != nil {
			ErrorHandler(c, http.StatusBadRequest, "brandColors must be a JSON object")
			return
		}
		input.BrandColors = &colors
	}

	if file, err := c.FormFile("logo"); err == nil && file != nil {
		path, err := h.saveLogo(c, file)
		if err != nil {
			ErrorHandler(c, http.StatusInternalServerError, "failed to store logo")
			return
		}
		input.LogoPath = path
		// A fresh logo without explicit colors drives the palette.
		if input.BrandColors == nil {
			colors := h.profileUC.ExtractLogoColors(path)
			input.BrandColors = &colors
		}
	}

	profile, err := h.profileUC.UpsertProfile(c.Request.Context(), userID, input)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, profile)
}

// GetIndustries handles GET /api/profile/industries.
func (h *ProfileHandler) GetIndustries(c *gin.Context) {
	industries, err := h.profileUC.GetIndustries(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, industries)
}

// SuggestTargetAudiences handles GET /api/profile/target-audiences/:industry/:niche.
func (h *ProfileHandler) SuggestTargetAudiences(c *gin.Context) {
	audiences, err := h.profileUC.SuggestTargetAudiences(c.Request.Context(), c.Param("industry"), c.Param("niche"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"audiences": audiences})
}

// UpdateColors handles PUT /api/branding/colors.
func (h *ProfileHandler) UpdateColors(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Not authorized")
		return
	}
	var req dto.UpdateColorsRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	profile, err := h.profileUC.UpdateBrandColors(c.Request.Context(), userID, req.BrandColors.ToEntity())
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, profile)
}

// UpdateVoice handles PUT /api/branding/voice.
func (h *ProfileHandler) UpdateVoice(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Not authorized")
		return
	}
	var req dto.UpdateVoiceRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	profile, err := h.profileUC.UpdateBusinessVoice(c.Request.Context(), userID, req.BusinessVoice)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, profile)
}

// ExtractColors handles POST /api/branding/extract-colors.
func (h *ProfileHandler) ExtractColors(c *gin.Context) {
	file, err := c.FormFile("logo")
	if err != nil || file == nil {
		ErrorHandler(c, http.StatusBadRequest, "logo file is required")
		return
	}
	path, err := h.saveLogo(c, file)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "failed to store logo")
		return
	}
	colors := h.profileUC.ExtractLogoColors(path)
	SuccessHandler(c, http.StatusOK, dto.ColorsResponse{
		Primary:   colors.Primary,
		Secondary: colors.Secondary,
		Accent:    colors.Accent,
	})
}

func (h *ProfileHandler) saveLogo(c *gin.Context, file *multipart.FileHeader) (string, error) {
	name := h.uuidGen.NewUUID() + strings.ToLower(filepath.Ext(file.Filename))
	path := filepath.Join(h.config.GetUploadsDir(), name)
	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", err
	}
	return path, nil
}

// parseStringList accepts either a JSON array string or a comma-separated list.
func parseStringList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if strings.HasPrefix(raw, "[") {
		var out []string
		if err := json.Unmarshal([]byte(raw), &out); err == nil {
			return out
		}
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
