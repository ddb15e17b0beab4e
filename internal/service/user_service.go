package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"food-ordering-backend/internal/apperr"
	"food-ordering-backend/internal/auth"
	"food-ordering-backend/internal/models"
	"food-ordering-backend/internal/repository"
)

// UserService handles registration, login and admin account management
type UserService struct {
	repo   repository.UserRepository
	tokens *auth.TokenManager
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepository, tokens *auth.TokenManager) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

func validateRegistration(req models.RegisterRequest) error {
	if strings.TrimSpace(req.Username) == "" {
		return apperr.Validation("username is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return apperr.Validation("email is required")
	}
	if len(req.Password) < 6 {
		return apperr.Validation("password must be at least 6 characters")
	}
	return nil
}

// Register creates a new account. Registrations are always CUSTOMER;
// admin accounts are only created by existing admins or the bootstrap.
func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	return s.createUser(ctx, req, models.RoleCustomer)
}

// CreateAdmin creates a new ADMIN account. Callers must already have
// verified the requesting principal is an admin.
func (s *UserService) CreateAdmin(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	return s.createUser(ctx, req, models.RoleAdmin)
}

func (s *UserService) createUser(ctx context.Context, req models.RegisterRequest, role string) (*models.User, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	taken, err := s.repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperr.Storage(err, "failed to check username")
	}
	if taken {
		return nil, apperr.Conflict("username already exists")
	}

	taken, err = s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperr.Storage(err, "failed to check email")
	}
	if taken {
		return nil, apperr.Conflict("email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Storage(err, "failed to hash password")
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hash),
		Role:     role,
	}
	user, err = s.repo.Create(ctx, user)
	if err != nil {
		return nil, apperr.Storage(err, "failed to create user")
	}
	return user, nil
}

// ListUsers returns all accounts. The endpoint exposing this is
// admin-only; password hashes are excluded by the model's JSON tags.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, apperr.Storage(err, "failed to list users")
	}
	return users, nil
}

// Login verifies credentials and returns a signed token
func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.repo.GetByUsername(ctx, req.Username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, apperr.Unauthenticated("invalid username or password")
	}
	if err != nil {
		return nil, apperr.Storage(err, "failed to get user")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, apperr.Unauthenticated("invalid username or password")
	}

	token, err := s.tokens.Generate(user.Username, user.Role)
	if err != nil {
		return nil, apperr.Storage(err, "failed to issue token")
	}

	return &models.LoginResponse{
		Token:    token,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

// EnsureAdmin creates the bootstrap admin account once, at startup,
// when no ADMIN account exists yet. Returns true when it created one.
func (s *UserService) EnsureAdmin(ctx context.Context, username, email, password string) (bool, error) {
	exists, err := s.repo.HasAdmin(ctx)
	if err != nil {
		return false, apperr.Storage(err, "failed to check for admin")
	}
	if exists {
		return false, nil
	}

	_, err = s.createUser(ctx, models.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	}, models.RoleAdmin)
	if err != nil {
		return false, err
	}
	return true, nil
}
