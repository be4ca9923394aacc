package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/brandkit-io/brandkit-backend/internal/domain/apperror"
	"github.com/brandkit-io/brandkit-backend/internal/domain/contract"
	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
	usecasecontract "github.com/brandkit-io/brandkit-backend/internal/usecase/contract"
)

const (
	demoUserEmail = "demo@brandkit.io"
	demoUserName  = "Demo Baker"
)

// SeedUseCase writes the industry taxonomy, the template library and a demo
// account into the stores. Every write is an upsert or guarded by an existence
// check, so repeated runs converge on the same state.
type SeedUseCase struct {
	industryRepo contract.IIndustryRepository
	templateRepo contract.ITemplateRepository
	userRepo     contract.IUserRepository
	profileRepo  contract.IProfileRepository
	templates    usecasecontract.ITemplateUseCase
	hasher       contract.IHasher
	uuidGen      contract.IUUIDGenerator
	logger       usecasecontract.IAppLogger
}

var _ usecasecontract.ISeedUseCase = (*SeedUseCase)(nil)

func NewSeedUseCase(
	industryRepo contract.IIndustryRepository,
	templateRepo contract.ITemplateRepository,
	userRepo contract.IUserRepository,
	profileRepo contract.IProfileRepository,
	templates usecasecontract.ITemplateUseCase,
	hasher contract.IHasher,
	uuidGen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *SeedUseCase {
	return &SeedUseCase{
		industryRepo: industryRepo,
		templateRepo: templateRepo,
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		templates:    templates,
		hasher:       hasher,
		uuidGen:      uuidGen,
		logger:       logger,
	}
}

func (uc *SeedUseCase) Seed(ctx context.Context) (*usecasecontract.SeedReport, error) {
	report := &usecasecontract.SeedReport{}

	for _, ind := range DefaultIndustries() {
		ind := ind
		if ind.ID == "" {
			ind.ID = uc.uuidGen.NewUUID()
		}
		if err := uc.industryRepo.UpsertIndustry(ctx, &ind); err != nil {
			return nil, fmt.Errorf("failed to seed industry %s: %w", ind.Name, err)
		}
		report.Industries++
	}

	// Reseeding is the natural moment to re-pull stock photos.
	if err := uc.templates.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("failed to refresh template catalog: %w", err)
	}
	catalog, err := uc.templates.ListTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read template catalog: %w", err)
	}
	for _, tpl := range catalog {
		tpl := tpl
		if err := uc.templateRepo.UpsertTemplate(ctx, &tpl); err != nil {
			return nil, fmt.Errorf("failed to seed template %s: %w", tpl.ID, err)
		}
		report.Templates++
	}

	created, err := uc.seedDemoAccount(ctx)
	if err != nil {
		return nil, err
	}
	report.DemoUser = created

	uc.logger.Infof("seed complete: %d industries, %d templates, demo user created=%t",
		report.Industries, report.Templates, report.DemoUser)
	return report, nil
}

// seedDemoAccount creates the demo user and its bakery profile once; later
// runs leave the existing account untouched.
func (uc *SeedUseCase) seedDemoAccount(ctx context.Context) (bool, error) {
	if _, err := uc.userRepo.GetUserByEmail(ctx, demoUserEmail); err == nil {
		return false, nil
	} else if !apperror.IsNotFound(err) {
		return false, fmt.Errorf("failed to check demo user: %w", err)
	}

	hash, err := uc.hasher.HashPassword(uc.uuidGen.NewUUID())
	if err != nil {
		return false, fmt.Errorf("failed to hash demo password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uc.uuidGen.NewUUID(),
		Name:         demoUserName,
		Email:        demoUserEmail,
		PasswordHash: hash,
		Role:         entity.DefaultRole(),
		AuthProvider: providerLocal,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return false, fmt.Errorf("failed to create demo user: %w", err)
	}

	profile := &entity.BusinessProfile{
		ID:           uc.uuidGen.NewUUID(),
		UserID:       user.ID,
		BusinessName: "Sunrise Bakery",
		Industry:     "Food & Beverage",
		Niche:        "Bakeries",
		Logo:         entity.DefaultLogo,
		BrandColors: entity.BrandColors{
			Primary:   "#d97706",
			Secondary: "#fef3c7",
			Accent:    "#78350f",
		},
		BusinessVoice:   []string{"warm", "playful"},
		TargetAudience:  []string{"Local families", "Morning commuters"},
		LocationType:    entity.LocationTypePhysical,
		Location:        entity.Location{Address: "12 Baker Street", City: "Springfield", Country: "USA"},
		SocialPlatforms: []string{string(entity.PlatformInstagram), string(entity.PlatformFacebook)},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.profileRepo.CreateProfile(ctx, profile); err != nil {
		return false, fmt.Errorf("failed to create demo profile: %w", err)
	}
	return true, nil
}
