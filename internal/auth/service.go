package auth

import (
	"errors"

	"github.com/buckery/backend/internal/database"
	"github.com/buckery/backend/internal/models"
	"github.com/buckery/backend/internal/utils"

	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account disabled")
)

// Authenticate checks username+password. The credential check runs before the
// active-flag check so a disabled account with a correct password is reported
// as disabled, not as bad credentials.
func Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := database.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	return &user, nil
}

// IssueToken returns the user's live token, creating one when none exists.
// The unique index on user_id arbitrates concurrent issuance: a duplicate-key
// failure means another request won the create, so the winner's row is used.
func IssueToken(userID uint) (*models.Token, error) {
	var token models.Token
	err := database.DB.Where("user_id = ?", userID).First(&token).Error
	if err == nil {
		return &token, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	key, err := utils.GenerateTokenKey()
	if err != nil {
		return nil, err
	}

	token = models.Token{Key: key, UserID: userID}
	if err := database.DB.Create(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := database.DB.Where("user_id = ?", userID).First(&token).Error; err != nil {
				return nil, err
			}
			return &token, nil
		}
		return nil, err
	}

	return &token, nil
}

// UserFromToken resolves an opaque token key to its owner.
func UserFromToken(key string) (*models.User, error) {
	var token models.Token
	if err := database.DB.Preload("User").Where("key = ?", key).First(&token).Error; err != nil {
		return nil, err
	}
	if token.User == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return token.User, nil
}

// DeleteTokenByKey revokes a token. Missing tokens are not an error, so
// logout stays idempotent.
func DeleteTokenByKey(key string) error {
	return database.DB.Where("key = ?", key).Delete(&models.Token{}).Error
}
