package service

import (
	"context"
	"strings"

	"github.com/campus-events/backend/apperr"
	"github.com/campus-events/backend/auth"
	"github.com/campus-events/backend/entity"
	"github.com/campus-events/backend/repository"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepository *repository.UserRepository
	tokens         *auth.TokenManager
}

func NewAuthService(userRepository *repository.UserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{userRepository: userRepository, tokens: tokens}
}

type RegisterUserInput struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     entity.Role `json:"role"`
}

type RegisterVendorInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Organization string `json:"organization"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *AuthService) RegisterUser(ctx context.Context, input RegisterUserInput) (*entity.User, string, error) {
	input.Email = normalizeEmail(input.Email)
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, "", apperr.Validation("name, email and password are required")
	}
	if !input.Role.Valid() || input.Role == entity.RoleVendor {
		return nil, "", apperr.Validation("invalid role %q", input.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user, err := s.userRepository.InsertUser(ctx, &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID, entity.PrincipalUser)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) RegisterVendor(ctx context.Context, input RegisterVendorInput) (*entity.Vendor, string, error) {
	input.Email = normalizeEmail(input.Email)
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, "", apperr.Validation("name, email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	vendor, err := s.userRepository.InsertVendor(ctx, &entity.Vendor{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Organization: strings.TrimSpace(input.Organization),
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(vendor.ID, entity.PrincipalVendor)
	if err != nil {
		return nil, "", err
	}
	return vendor, token, nil
}

// LoginUser verifies credentials against the users collection. Lookup and
// hash mismatch produce the same authentication error, not a not-found.
func (s *AuthService) LoginUser(ctx context.Context, creds Credentials) (*entity.User, string, error) {
	user, err := s.userRepository.FindUserByEmail(ctx, normalizeEmail(creds.Email))
	if err != nil {
		return nil, "", apperr.Authentication("invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		return nil, "", apperr.Authentication("invalid email or password")
	}

	token, err := s.tokens.Issue(user.ID, entity.PrincipalUser)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) LoginVendor(ctx context.Context, creds Credentials) (*entity.Vendor, string, error) {
	vendor, err := s.userRepository.FindVendorByEmail(ctx, normalizeEmail(creds.Email))
	if err != nil {
		return nil, "", apperr.Authentication("invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(vendor.PasswordHash), []byte(creds.Password)) != nil {
		return nil, "", apperr.Authentication("invalid email or password")
	}

	token, err := s.tokens.Issue(vendor.ID, entity.PrincipalVendor)
	if err != nil {
		return nil, "", err
	}
	return vendor, token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
