package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/brandkit-io/brandkit-backend/internal/domain/apperror"
	"github.com/brandkit-io/brandkit-backend/internal/domain/entity"
)

// Shared in-memory fixtures for the usecase tests.

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...interface{}) {}
func (nopLogger) Infof(format string, args ...interface{})  {}
func (nopLogger) Warnf(format string, args ...interface{})  {}
func (nopLogger) Errorf(format string, args ...interface{}) {}
func (nopLogger) Fatalf(format string, args ...interface{}) {}

type seqUUIDGen struct {
	mu sync.Mutex
	n  int
}

func (g *seqUUIDGen) NewUUID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("uuid-%d", g.n)
}

type plainHasher struct{}

func (plainHasher) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) ComparePasswordHash(password, hashedPassword string) error {
	if "hashed:"+password != hashedPassword {
		return errors.New("hash mismatch")
	}
	return nil
}

type lenientValidator struct{}

func (lenientValidator) ValidateEmail(email string) error {
	if !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email: %w", apperror.ErrValidation)
	}
	return nil
}

func (lenientValidator) ValidatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("password too short: %w", apperror.ErrValidation)
	}
	return nil
}

func (lenientValidator) ValidateHexColor(color string) error {
	if !strings.HasPrefix(color, "#") || len(color) != 7 {
		return fmt.Errorf("invalid hex color: %w", apperror.ErrValidation)
	}
	return nil
}

// stubAIService scripts provider behavior per test.
type stubAIService struct {
	configured bool
	response   string
	err        error
	calls      int
}

func (s *stubAIService) GenerateContent(ctx context.Context, prompt string) (string, error) {
	s.calls++
	return s.response, s.err
}

func (s *stubAIService) Configured() bool { return s.configured }

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) CreateUser(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := *user
	r.users[user.ID] = &u
	return nil
}

func (r *memUserRepo) GetUserByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		copy := *u
		return &copy, nil
	}
	return nil, fmt.Errorf("user %s: %w", id, apperror.ErrNotFound)
}

func (r *memUserRepo) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copy := *u
			return &copy, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, apperror.ErrNotFound)
}

func (r *memUserRepo) UpdateUser(_ context.Context, user *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := *user
	r.users[user.ID] = &u
	return user, nil
}

func (r *memUserRepo) DeleteUser(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

type memProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*entity.BusinessProfile
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{profiles: make(map[string]*entity.BusinessProfile)}
}

func (r *memProfileRepo) CreateProfile(_ context.Context, profile *entity.BusinessProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := *profile
	r.profiles[profile.ID] = &p
	return nil
}

func (r *memProfileRepo) GetProfileByID(_ context.Context, id string) (*entity.BusinessProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.profiles[id]; ok {
		copy := *p
		return &copy, nil
	}
	return nil, fmt.Errorf("profile %s: %w", id, apperror.ErrNotFound)
}

func (r *memProfileRepo) GetProfileByUser(_ context.Context, userID string) (*entity.BusinessProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if p.UserID == userID {
			copy := *p
			return &copy, nil
		}
	}
	return nil, fmt.Errorf("profile for user %s: %w", userID, apperror.ErrNotFound)
}

func (r *memProfileRepo) UpdateProfile(_ context.Context, profile *entity.BusinessProfile) (*entity.BusinessProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := *profile
	r.profiles[profile.ID] = &p
	return profile, nil
}

type memPostRepo struct {
	mu    sync.Mutex
	posts map[string]*entity.Post
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: make(map[string]*entity.Post)}
}

func (r *memPostRepo) CreatePost(_ context.Context, post *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := *post
	r.posts[post.ID] = &p
	return nil
}

func (r *memPostRepo) GetPostByID(_ context.Context, id string) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.posts[id]; ok {
		copy := *p
		return &copy, nil
	}
	return nil, fmt.Errorf("post %s: %w", id, apperror.ErrNotFound)
}

func (r *memPostRepo) GetPostsByUser(_ context.Context, userID string) ([]entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Post
	for _, p := range r.posts {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memPostRepo) GetScheduledPosts(_ context.Context, userID string) ([]entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Post
	for _, p := range r.posts {
		if p.UserID == userID && p.Status == entity.PostStatusScheduled {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memPostRepo) UpdatePost(_ context.Context, post *entity.Post) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := *post
	r.posts[post.ID] = &p
	return post, nil
}

func (r *memPostRepo) DeletePost(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return fmt.Errorf("post %s: %w", id, apperror.ErrNotFound)
	}
	delete(r.posts, id)
	return nil
}

type memIndustryRepo struct {
	mu         sync.Mutex
	industries map[string]*entity.Industry
}

func newMemIndustryRepo() *memIndustryRepo {
	return &memIndustryRepo{industries: make(map[string]*entity.Industry)}
}

func (r *memIndustryRepo) UpsertIndustry(_ context.Context, industry *entity.Industry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := *industry
	r.industries[industry.Name] = &i
	return nil
}

func (r *memIndustryRepo) GetIndustries(_ context.Context) ([]entity.Industry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Industry
	for _, i := range r.industries {
		out = append(out, *i)
	}
	return out, nil
}

func (r *memIndustryRepo) GetIndustryByName(_ context.Context, name string) (*entity.Industry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.industries[name]; ok {
		copy := *i
		return &copy, nil
	}
	return nil, fmt.Errorf("industry %s: %w", name, apperror.ErrNotFound)
}

type memTemplateRepo struct {
	mu        sync.Mutex
	templates map[string]*entity.Template
}

func newMemTemplateRepo() *memTemplateRepo {
	return &memTemplateRepo{templates: make(map[string]*entity.Template)}
}

func (r *memTemplateRepo) UpsertTemplate(_ context.Context, template *entity.Template) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := *template
	r.templates[template.ID] = &t
	return nil
}

func (r *memTemplateRepo) GetTemplates(_ context.Context) ([]entity.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Template
	for _, t := range r.templates {
		out = append(out, *t)
	}
	return out, nil
}

func (r *memTemplateRepo) GetTemplateByID(_ context.Context, id string) (*entity.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.templates[id]; ok {
		copy := *t
		return &copy, nil
	}
	return nil, fmt.Errorf("template %s: %w", id, apperror.ErrNotFound)
}

func (r *memTemplateRepo) GetTemplatesByCategory(_ context.Context, category entity.TemplateCategory) ([]entity.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Template
	for _, t := range r.templates {
		if t.Category == category {
			out = append(out, *t)
		}
	}
	return out, nil
}

type staticColorExtractor struct {
	colors entity.BrandColors
}

func (s staticColorExtractor) ExtractColors(path string) entity.BrandColors {
	return s.colors
}
