package user

import (
	"net/http"

	userRepo "huzla/database/repository/user"
	"huzla/models"
	"huzla/utils"
)

var (
	ErrEmailTaken         = utils.NewAppError(http.StatusUnauthorized, "User already exists")
	ErrInvalidCredentials = utils.NewAppError(http.StatusUnauthorized, "Invalid email or password")
	ErrUserNotFound       = utils.NewAppError(http.StatusNotFound, "User not found")
	ErrWeakPassword       = utils.NewAppError(http.StatusBadRequest, "Password must contain at least 8 characters, one uppercase letter, one lowercase letter, one number and one special character")
	ErrInvalidRole        = utils.NewAppError(http.StatusBadRequest, "Role must be either 'customer' or 'provider'")
)

// RegisterInput carries a registration request into the directory.
type RegisterInput struct {
	Email       string          `json:"email" binding:"required,email"`
	Password    string          `json:"password" binding:"required"`
	FirstName   string          `json:"firstName" binding:"required,min=2,max=50"`
	LastName    string          `json:"lastName" binding:"required,min=2,max=50"`
	Role        string          `json:"role"`
	PhoneNumber string          `json:"phoneNumber"`
	Address     *models.Address `json:"address"`
}

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	Token     string `json:"token"`
}

// UserService defines identity directory operations.
type UserService interface {
	Register(input RegisterInput) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GetUserByID(id string) (*models.User, error)
	UpdateProfile(id string, update models.ProfileUpdate) (*models.User, error)
	RevokeToken(id string) error
	GetAllUsers() ([]models.User, error)
}

// DefaultUserService is the standard implementation of UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
