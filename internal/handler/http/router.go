package http

import (
	"time"

	"github.com/brandkit-io/brandkit-backend/internal/domain/contract"
	"github.com/brandkit-io/brandkit-backend/internal/handler/http/middleware"
	"github.com/brandkit-io/brandkit-backend/internal/usecase"
	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	authHandler     *AuthHandler
	profileHandler  *ProfileHandler
	postHandler     *PostHandler
	aiPostHandler   *AIPostHandler
	templateHandler *TemplateHandler
	adminHandler    *AdminHandler
	authUC          usecasecontract.IAuthUseCase
	jwtService      usecase.JWTService
	config          usecasecontract.IConfigProvider
	logger          usecasecontract.IAppLogger
}

func NewRouter(
	authUC usecasecontract.IAuthUseCase,
	profileUC usecasecontract.IProfileUseCase,
	postUC usecasecontract.IPostUseCase,
	contentUC usecasecontract.IContentUseCase,
	templateUC usecasecontract.ITemplateUseCase,
	seedUC usecasecontract.ISeedUseCase,
	jwtService usecase.JWTService,
	uuidGen contract.IUUIDGenerator,
	config usecasecontract.IConfigProvider,
	logger usecasecontract.IAppLogger,
	storageBackend string,
) *Router {
	return &Router{
		authHandler:     NewAuthHandler(authUC),
		profileHandler:  NewProfileHandler(profileUC, uuidGen, config),
		postHandler:     NewPostHandler(postUC, contentUC, profileUC),
		aiPostHandler:   NewAIPostHandler(contentUC, postUC, profileUC, templateUC),
		templateHandler: NewTemplateHandler(templateUC),
		adminHandler:    NewAdminHandler(seedUC, config, storageBackend),
		authUC:          authUC,
		jwtService:      jwtService,
		config:          config,
		logger:          logger,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	api.GET("/health", r.adminHandler.Health)
	api.GET("/seed", r.adminHandler.Seed)

	// Public routes (no authentication required)
	auth := api.Group("/auth")
	{
		auth.POST("/register", r.authHandler.Register)
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/google", r.authHandler.GoogleLogin)
	}

	api.GET("/profile/industries", r.profileHandler.GetIndustries)

	templates := api.Group("/templates")
	{
		templates.GET("", r.templateHandler.ListTemplates)
		templates.GET("/categories", r.templateHandler.ListCategories)
		templates.GET("/category/:id", r.templateHandler.ListByCategory)
		templates.GET("/search", r.templateHandler.SearchTemplates)
		templates.GET("/:id", r.templateHandler.GetTemplate)
	}

	// Protected routes (authentication required)
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(r.jwtService, r.authUC, r.config, r.logger))
	{
		protected.GET("/auth/me", r.authHandler.Me)

		protected.GET("/profile", r.profileHandler.GetProfile)
		protected.POST("/profile", r.profileHandler.UpsertProfile)
		protected.GET("/profile/target-audiences/:industry/:niche", r.profileHandler.SuggestTargetAudiences)

		protected.POST("/branding/extract-colors", r.profileHandler.ExtractColors)
		protected.PUT("/branding/colors", r.profileHandler.UpdateColors)
		protected.PUT("/branding/voice", r.profileHandler.UpdateVoice)

		protected.GET("/posts", r.postHandler.ListPosts)
		protected.POST("/posts", r.postHandler.CreatePost)
		protected.GET("/posts/scheduled", r.postHandler.ListScheduledPosts)
		protected.POST("/posts/generate", r.postHandler.GeneratePost)
		protected.GET("/posts/:id", r.postHandler.GetPost)
		protected.PUT("/posts/:id", r.postHandler.UpdatePost)
		protected.PUT("/posts/:id/status", r.postHandler.UpdatePostStatus)
		protected.DELETE("/posts/:id", r.postHandler.DeletePost)

		protected.GET("/ai-posts/templates", r.aiPostHandler.ListTemplates)
		protected.POST("/ai-posts/generate", r.aiPostHandler.Generate)
		protected.POST("/ai-posts/preview", r.aiPostHandler.Preview)
		protected.POST("/ai-posts/hashtags", r.aiPostHandler.GenerateHashtags)
		protected.POST("/ai-posts/calendar", r.aiPostHandler.GenerateCalendar)
		protected.POST("/ai-posts/bio", r.aiPostHandler.GenerateBio)
		protected.POST("/ai-posts", r.aiPostHandler.Create)
	}
}
