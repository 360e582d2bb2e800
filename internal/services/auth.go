package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/avoronov/digital-library/internal/logger"
	"github.com/avoronov/digital-library/internal/models"
	"github.com/avoronov/digital-library/internal/validation"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.UserDB, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash, role string) (*models.UserDB, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, username, role string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	userRepo  UserReader
	writeRepo UserWriter
	jwtSvc    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userRepo UserReader, writeRepo UserWriter, jwtSvc JWTGenerator) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		writeRepo: writeRepo,
		jwtSvc:    jwtSvc,
	}
}

// Register validates the account fields, checks uniqueness and creates a
// new user with the given role. The password is stored as a bcrypt hash.
func (svc *AuthService) Register(ctx context.Context, username, email, password, role string) (*models.UserDB, error) {
	if !validation.ValidUsername(username) {
		return nil, fmt.Errorf("%w: username must be 3-20 letters, digits or underscores", ErrValidation)
	}
	if !validation.ValidEmail(email) {
		return nil, fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	if !validation.MeetsPasswordPolicy(password) {
		return nil, fmt.Errorf("%w: password must be at least %d characters and contain letters and digits", ErrValidation, validation.MinPasswordLength)
	}
	if role != models.RoleReader && role != models.RoleLibrarian {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}

	existing, err := svc.userRepo.GetByUsernameOrEmail(ctx, username, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("user already exists", "username", username, "email", email)
		return nil, ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	created, err := svc.writeRepo.Save(ctx, username, email, string(hash), role)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return created, nil
}

// Login authenticates a user by username or email and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, identifier, password string) (string, error) {
	user, err := svc.userRepo.GetByIdentifier(ctx, identifier)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "identifier", identifier)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", user.Username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwtSvc.Generate(ctx, user.UserID, user.Username, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
