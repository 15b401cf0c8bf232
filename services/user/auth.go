package user

import (
	"fmt"
	"time"
	"unicode"

	"huzla/models"
	"huzla/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// VerifyPasswordComplexity enforces the directory's password policy: at least
// 8 characters with an upper, a lower, a digit and a special character.
func VerifyPasswordComplexity(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return ErrWeakPassword
	}
	return nil
}

// Register creates a new account, issues a token and primes the auth cache.
func (s *DefaultUserService) Register(input RegisterInput) (*AuthResponse, error) {
	logger := utils.GetLogger()

	role := input.Role
	if role == "" {
		role = models.RoleCustomer
	}
	// Admin accounts are provisioned out of band, never self-assigned.
	if role != models.RoleCustomer && role != models.RoleProvider {
		return nil, ErrInvalidRole
	}

	existing, err := s.Repo.GetByEmail(input.Email)
	if err != nil {
		logger.Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	if err := VerifyPasswordComplexity(input.Password); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	userObj := models.User{
		ID:           uuid.New().String(),
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PhoneNumber:  input.PhoneNumber,
		Address:      input.Address,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	token, err := utils.GenerateToken(userObj.ID, userObj.Email, userObj.Role)
	if err != nil {
		logger.Error("Register: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	userObj.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(&userObj); err != nil {
		logger.Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	utils.CacheAuthToken(userObj.ID, userObj.TokenHash)

	return &AuthResponse{
		ID:        userObj.ID,
		Email:     userObj.Email,
		FirstName: userObj.FirstName,
		LastName:  userObj.LastName,
		Role:      userObj.Role,
		Token:     token,
	}, nil
}

// Authenticate verifies credentials, rotates the session token and refreshes
// the auth cache.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	logger := utils.GetLogger()

	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		logger.Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(userRec.ID, userRec.Email, userRec.Role)
	if err != nil {
		logger.Error("Authenticate: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	userRec.TokenHash = tokenHash
	if err := s.Repo.Update(userRec); err != nil {
		logger.Error("Authenticate: failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	utils.CacheAuthToken(userRec.ID, tokenHash)

	return &AuthResponse{
		ID:        userRec.ID,
		Email:     userRec.Email,
		FirstName: userRec.FirstName,
		LastName:  userRec.LastName,
		Role:      userRec.Role,
		Token:     token,
	}, nil
}
