package user

import (
	"github.com/buckery/backend/internal/database"
	"github.com/buckery/backend/internal/models"
	"github.com/buckery/backend/internal/utils"

	"gorm.io/gorm"
)

func CreateUser(db *gorm.DB, u *models.User) (*models.User, error) {
	hash, err := utils.HashPassword(u.Password)
	if err != nil {
		return nil, err
	}
	u.Password = hash
	if err := db.Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// ListStaff returns staff and admin accounts, newest first.
func ListStaff() ([]models.User, error) {
	var users []models.User
	err := database.DB.
		Where("user_type IN ?", []models.UserType{models.UserTypeAdmin, models.UserTypeStaff}).
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
