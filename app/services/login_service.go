package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"bloglist/app/auth"
	"bloglist/app/models"
	"bloglist/app/repositories"

	"github.com/rs/zerolog"
)

// LoginService exchanges credentials for a signed token
type LoginService struct {
	userRepo repositories.UserRepository
	tokens   auth.TokenManager
	log      zerolog.Logger

	dummyOnce sync.Once
	dummyHash string
}

// NewLoginService creates a new LoginService
func NewLoginService(userRepo repositories.UserRepository, tokens auth.TokenManager, log zerolog.Logger) *LoginService {
	return &LoginService{
		userRepo: userRepo,
		tokens:   tokens,
		log:      log,
	}
}

// Login verifies the credentials and returns a token carrying the user's id
// and username. Unknown usernames and wrong passwords are indistinguishable.
func (s *LoginService) Login(ctx context.Context, in *models.LoginInput) (*models.LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, in.Username)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user == nil {
		// spend the same bcrypt time as a real comparison
		auth.CheckPassword(in.Password, s.fallbackHash())
		return nil, ErrInvalidCredentials
	}
	if !auth.CheckPassword(in.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.log.Debug().Str("user", user.ID).Msg("login succeeded")
	return &models.LoginResponse{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
	}, nil
}

func (s *LoginService) fallbackHash() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = auth.HashPassword("not-a-real-password")
	})
	return s.dummyHash
}
