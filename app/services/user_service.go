package services

import (
	"context"
	"errors"
	"fmt"

	"bloglist/app/auth"
	"bloglist/app/models"
	"bloglist/app/repositories"

	"github.com/rs/zerolog"
)

// UserService handles business logic for users
type UserService struct {
	userRepo repositories.UserRepository
	blogRepo repositories.BlogRepository
	log      zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository, blogRepo repositories.BlogRepository, log zerolog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		blogRepo: blogRepo,
		log:      log,
	}
}

// ListUsers returns every user with their blogs populated
func (s *UserService) ListUsers(ctx context.Context) ([]models.FormattedUser, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	out := make([]models.FormattedUser, 0, len(users))
	for _, user := range users {
		blogs, err := s.blogsOf(ctx, user)
		if err != nil {
			return nil, err
		}
		out = append(out, models.FormatUser(user, blogs))
	}
	return out, nil
}

// GetUser returns one user with their blogs populated
func (s *UserService) GetUser(ctx context.Context, id string) (models.FormattedUser, error) {
	if err := parseID(id); err != nil {
		return models.FormattedUser{}, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return models.FormattedUser{}, ErrNotFound
	}
	if err != nil {
		return models.FormattedUser{}, fmt.Errorf("failed to get user %s: %w", id, err)
	}

	blogs, err := s.blogsOf(ctx, user)
	if err != nil {
		return models.FormattedUser{}, err
	}
	return models.FormatUser(user, blogs), nil
}

// CreateUser registers a new account with a bcrypt password hash
func (s *UserService) CreateUser(ctx context.Context, in *models.UserInput) (models.FormattedUser, error) {
	if err := in.Validate(); err != nil {
		return models.FormattedUser{}, ErrContentMissing
	}
	if err := in.ValidatePassword(); err != nil {
		return models.FormattedUser{}, ErrPasswordTooShort
	}

	_, err := s.userRepo.GetByUsername(ctx, in.Username)
	if err == nil {
		return models.FormattedUser{}, ErrUsernameTaken
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return models.FormattedUser{}, fmt.Errorf("failed to look up username: %w", err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.FormattedUser{}, err
	}

	user := &models.User{
		Username:     in.Username,
		Name:         in.Name,
		PasswordHash: hash,
		Adult:        in.AdultOrDefault(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// lost a race with a concurrent signup
		if errors.Is(err, repositories.ErrDuplicateUsername) {
			return models.FormattedUser{}, ErrUsernameTaken
		}
		return models.FormattedUser{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Info().Str("user", user.ID).Str("username", user.Username).Msg("user created")
	return models.FormatUser(user, nil), nil
}

// blogsOf resolves the user's blog ids. Ids whose blog no longer exists are
// skipped.
func (s *UserService) blogsOf(ctx context.Context, user *models.User) ([]*models.Blog, error) {
	blogs := make([]*models.Blog, 0, len(user.Blogs))
	for _, id := range user.Blogs {
		blog, err := s.blogRepo.GetByID(ctx, id)
		if errors.Is(err, repositories.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to populate blogs of user %s: %w", user.ID, err)
		}
		blogs = append(blogs, blog)
	}
	return blogs, nil
}
