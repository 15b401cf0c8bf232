package user

import (
	"fmt"
	"time"

	"huzla/models"
	"huzla/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UpdateProfile applies the non-nil fields of the update to the user record.
// A nil field means "leave unchanged"; a present value, including an empty
// string, is written as-is. A password change re-hashes.
func (s *DefaultUserService) UpdateProfile(id string, update models.ProfileUpdate) (*models.User, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByID(id)
	if err != nil {
		logger.Error("UpdateProfile: lookup failed", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if existing == nil {
		return nil, ErrUserNotFound
	}

	setFields := bson.M{
		"updatedAt": time.Now(),
	}
	if update.FirstName != nil {
		setFields["firstName"] = *update.FirstName
	}
	if update.LastName != nil {
		setFields["lastName"] = *update.LastName
	}
	if update.Email != nil {
		if *update.Email != existing.Email {
			other, err := s.Repo.GetByEmail(*update.Email)
			if err != nil {
				return nil, fmt.Errorf("failed to check email availability: %w", err)
			}
			if other != nil {
				return nil, ErrEmailTaken
			}
		}
		setFields["email"] = *update.Email
	}
	if update.PhoneNumber != nil {
		setFields["phoneNumber"] = *update.PhoneNumber
	}
	if update.Address != nil {
		setFields["address"] = *update.Address
	}
	if update.Password != nil {
		if err := VerifyPasswordComplexity(*update.Password); err != nil {
			return nil, err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("UpdateProfile: failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("profile update failed, please try again")
		}
		setFields["passwordHash"] = string(hashed)
	}

	if err := s.Repo.UpdateSetDocument(id, setFields); err != nil {
		logger.Error("UpdateProfile: update failed", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("profile update failed: %w", err)
	}

	return s.GetUserByID(id)
}

// RevokeToken clears the user's session token hash and drops the cache entry.
func (s *DefaultUserService) RevokeToken(id string) error {
	if err := s.Repo.UpdateSetDocument(id, bson.M{"tokenHash": "", "updatedAt": time.Now()}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	utils.DropAuthToken(id)
	return nil
}
