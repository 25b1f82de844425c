package user

import (
	"github.com/buckery/backend/internal/database"
	"github.com/buckery/backend/internal/models"
	"github.com/buckery/backend/internal/response"
	"github.com/buckery/backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateStaffHandler(c *fiber.Ctx) error {
	var body struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"nama_lengkap"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Username == "" || body.Email == "" || body.Password == "" || body.FullName == "" {
		return response.ValidationError(c, map[string]string{
			"username":     "username is required",
			"email":        "email is required",
			"password":     "password is required",
			"nama_lengkap": "nama_lengkap is required",
		})
	}

	var existing models.User
	if err := database.DB.Where("username = ? OR email = ?", body.Username, body.Email).First(&existing).Error; err == nil {
		return response.Conflict(c, "Username or email already taken")
	}

	staff := models.User{
		Username: body.Username,
		Email:    body.Email,
		Password: body.Password,
		FullName: body.FullName,
		UserType: models.UserTypeStaff,
		IsActive: true,
		Provider: "local",
	}

	if _, err := CreateUser(database.DB, &staff); err != nil {
		return response.InternalError(c, err)
	}

	return response.Created(c, staff, "Staff account created successfully")
}

func ListStaffHandler(c *fiber.Ctx) error {
	users, err := ListStaff()
	if err != nil {
		return response.InternalError(c, err)
	}

	return response.Success(c, users, "Staff retrieved successfully")
}

func UpdateStaffHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid staff ID", nil)
	}

	var body struct {
		Email    string           `json:"email"`
		FullName string           `json:"nama_lengkap"`
		Password string           `json:"password"`
		UserType *models.UserType `json:"user_type"`
		IsActive *bool            `json:"is_active"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	var staff models.User
	if err := database.DB.
		Where("user_type IN ?", []models.UserType{models.UserTypeAdmin, models.UserTypeStaff}).
		First(&staff, id).Error; err != nil {
		return response.NotFound(c, "Staff account")
	}

	if body.Email != "" && body.Email != staff.Email {
		var existing models.User
		if err := database.DB.Where("email = ? AND id != ?", body.Email, id).First(&existing).Error; err == nil {
			return response.Conflict(c, "Email already taken")
		}
		staff.Email = body.Email
	}

	if body.FullName != "" {
		staff.FullName = body.FullName
	}

	if body.Password != "" {
		hash, err := utils.HashPassword(body.Password)
		if err != nil {
			return response.InternalError(c, err)
		}
		staff.Password = hash
	}

	if body.UserType != nil {
		switch *body.UserType {
		case models.UserTypeAdmin, models.UserTypeStaff, models.UserTypeUser:
			staff.UserType = *body.UserType
		default:
			return response.ValidationError(c, map[string]string{
				"user_type": "user_type must be ADMIN, STAFF or USER",
			})
		}
	}

	if body.IsActive != nil {
		staff.IsActive = *body.IsActive
	}

	// Save path re-derives is_staff/is_superuser from the user type.
	if err := database.DB.Save(&staff).Error; err != nil {
		return response.InternalError(c, err)
	}

	return response.Success(c, staff, "Staff account updated successfully")
}

func GetProfileHandler(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return response.Success(c, user, "Profile retrieved successfully")
}

func UpdateProfileHandler(c *fiber.Ctx) error {
	current := c.Locals("user").(*models.User)

	var body struct {
		Email    string `json:"email"`
		FullName string `json:"nama_lengkap"`
		Phone    string `json:"phone"`
		Address  string `json:"address"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	var user models.User
	if err := database.DB.First(&user, current.ID).Error; err != nil {
		return response.NotFound(c, "User")
	}

	if body.Email != "" && body.Email != user.Email {
		var existing models.User
		if err := database.DB.Where("email = ? AND id != ?", body.Email, user.ID).First(&existing).Error; err == nil {
			return response.Conflict(c, "Email already taken")
		}
		user.Email = body.Email
	}

	if body.FullName != "" {
		user.FullName = body.FullName
	}
	if body.Phone != "" {
		user.Phone = body.Phone
	}
	if body.Address != "" {
		user.Address = body.Address
	}

	if body.Password != "" {
		hash, err := utils.HashPassword(body.Password)
		if err != nil {
			return response.InternalError(c, err)
		}
		user.Password = hash
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return response.InternalError(c, err)
	}

	return response.Success(c, user, "Profile updated successfully")
}
