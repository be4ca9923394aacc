package main

import (
	"context"
	"log"

	handlerHttp "github.com/brandkit-io/brandkit-backend/internal/handler/http"
	"github.com/brandkit-io/brandkit-backend/internal/domain/contract"
	"github.com/brandkit-io/brandkit-backend/internal/infrastructure/branding"
	redisclient "github.com/brandkit-io/brandkit-backend/internal/infrastructure/cache"
	"github.com/brandkit-io/brandkit-backend/internal/infrastructure/config"
	database "github.com/brandkit-io/brandkit-backend/internal/infrastructure/database"
	"github.com/brandkit-io/brandkit-backend/internal/infrastructure/external_services"
	"github.com/brandkit-io/brandkit-backend/internal/infrastructure/filestore"
	"github.com/brandkit-io/brandkit-backend/internal/infrastructure/firebaseauth"
	"github.com/brandkit-io/brandkit-backend/internal/infrastructure/jwt"
	"github.com/brandkit-io/brandkit-backend/internal/infrastructure/logger"
	passwordservice "github.com/brandkit-io/brandkit-backend/internal/infrastructure/password_service"
	"github.com/brandkit-io/brandkit-backend/internal/infrastructure/repository/dualstore"
	filerepo "github.com/brandkit-io/brandkit-backend/internal/infrastructure/repository/filestore"
	"github.com/brandkit-io/brandkit-backend/internal/infrastructure/repository/mongodb"
	"github.com/brandkit-io/brandkit-backend/internal/infrastructure/store"
	"github.com/brandkit-io/brandkit-backend/internal/infrastructure/uuidgen"
	"github.com/brandkit-io/brandkit-backend/internal/infrastructure/validator"
	"github.com/brandkit-io/brandkit-backend/internal/usecase"
	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// repositories groups one repository per collection, regardless of backend.
type repositories struct {
	users      contract.IUserRepository
	profiles   contract.IProfileRepository
	posts      contract.IPostRepository
	industries contract.IIndustryRepository
	templates  contract.ITemplateRepository
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	appLogger := logger.NewStdLogger()

	if appConfig.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	// Storage backend selection: mongo, file, or dual (mongo with per-call
	// flat-file fallback).
	repos, mongoClient := buildRepositories(appConfig, appLogger)
	if mongoClient != nil {
		defer mongoClient.Disconnect()
	}

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtManager := jwt.NewJWTManager(appConfig.JWTSecret)
	jwtService := jwt.NewJWTService(jwtManager)
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()
	aiService := external_services.NewOpenAIService(appConfig.GetAIServiceAPIKey(), appConfig.GetAIModel(), appConfig.GetAITemperature())
	photoService := external_services.NewUnsplashService(appConfig.GetPhotoServiceAccessKey())
	colorExtractor := branding.NewColorExtractor(appLogger)

	var tokenVerifier usecasecontract.ITokenVerifier
	if appConfig.FirebaseCredentialsPath != "" {
		verifier, err := firebaseauth.NewVerifier(context.Background(), appConfig.FirebaseCredentialsPath)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase verifier: %v", err)
		}
		tokenVerifier = verifier
	}

	// Optional Dependency Injection: Redis cache for the template catalog
	var templateCache usecasecontract.ITemplateCache
	if appConfig.RedisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), appConfig.RedisURL)
		if rdb != nil {
			defer redisclient.Close(rdb)
			templateCache = store.NewTemplateCacheStore(rdb)
		}
	}

	// Dependency Injection: Usecases
	contentUsecase := usecase.NewContentUseCase(aiService, appLogger)
	authUsecase := usecase.NewAuthUseCase(repos.users, hasher, uuidGenerator, jwtService, tokenVerifier, appValidator, appLogger)
	profileUsecase := usecase.NewProfileUseCase(repos.profiles, repos.industries, colorExtractor, uuidGenerator, contentUsecase, appValidator, appLogger)
	postUsecase := usecase.NewPostUseCase(repos.posts, repos.profiles, uuidGenerator, appLogger)
	templateUsecase := usecase.NewTemplateUseCase(photoService, templateCache, appLogger)
	seedUsecase := usecase.NewSeedUseCase(repos.industries, repos.templates, repos.users, repos.profiles, templateUsecase, hasher, uuidGenerator, appLogger)

	// The catalog must be assembled before the routes are mounted.
	if err := templateUsecase.Init(context.Background()); err != nil {
		log.Fatalf("Failed to initialize template catalog: %v", err)
	}

	// Initialize Gin router
	if appConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	appRouter := handlerHttp.NewRouter(
		authUsecase, profileUsecase, postUsecase, contentUsecase,
		templateUsecase, seedUsecase, jwtService, uuidGenerator,
		appConfig, appLogger, appConfig.StorageBackend,
	)
	appRouter.SetupRoutes(router)

	// Start the server
	appLogger.Infof("Server running on port %s (storage backend: %s)", appConfig.Port, appConfig.StorageBackend)
	if err := router.Run(":" + appConfig.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildRepositories wires the repository set for the configured backend. In
// dual mode a MongoDB connection failure degrades the process to file-only.
func buildRepositories(appConfig *config.Config, appLogger usecasecontract.IAppLogger) (repositories, *database.MongoDBClient) {
	fileStore := filestore.NewStore(appConfig.DataDir)
	fileRepos := repositories{
		users:      filerepo.NewFileUserRepository(fileStore),
		profiles:   filerepo.NewFileProfileRepository(fileStore),
		posts:      filerepo.NewFilePostRepository(fileStore),
		industries: filerepo.NewFileIndustryRepository(fileStore),
		templates:  filerepo.NewFileTemplateRepository(fileStore),
	}

	if appConfig.StorageBackend == config.BackendFile {
		return fileRepos, nil
	}

	mongoClient, err := database.NewMongoDBClient(appConfig.MongoURI)
	if err != nil {
		if appConfig.StorageBackend == config.BackendMongo {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		appLogger.Warnf("MongoDB unavailable, continuing with flat-file store only: %v", err)
		return fileRepos, nil
	}

	db := mongoClient.Client.Database(appConfig.MongoDBName)
	mongoRepos := repositories{
		users:      mongodb.NewMongoUserRepository(db.Collection("users")),
		profiles:   mongodb.NewMongoProfileRepository(db.Collection("business-profiles")),
		posts:      mongodb.NewMongoPostRepository(db.Collection("posts")),
		industries: mongodb.NewMongoIndustryRepository(db.Collection("industries")),
		templates:  mongodb.NewMongoTemplateRepository(db.Collection("templates")),
	}

	if appConfig.StorageBackend == config.BackendMongo {
		return mongoRepos, mongoClient
	}

	return repositories{
		users:      dualstore.NewDualUserRepository(mongoRepos.users, fileRepos.users, appLogger),
		profiles:   dualstore.NewDualProfileRepository(mongoRepos.profiles, fileRepos.profiles, appLogger),
		posts:      dualstore.NewDualPostRepository(mongoRepos.posts, fileRepos.posts, appLogger),
		industries: dualstore.NewDualIndustryRepository(mongoRepos.industries, fileRepos.industries, appLogger),
		templates:  dualstore.NewDualTemplateRepository(mongoRepos.templates, fileRepos.templates, appLogger),
	}, mongoClient
}
