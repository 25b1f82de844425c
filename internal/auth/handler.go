package auth

import (
	"errors"

	"github.com/buckery/backend/internal/database"
	"github.com/buckery/backend/internal/models"
	"github.com/buckery/backend/internal/response"
	"github.com/buckery/backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

func loginPayload(token *models.Token, user *models.User) fiber.Map {
	return fiber.Map{
		"token":        token.Key,
		"user_type":    user.UserType,
		"username":     user.Username,
		"is_staff":     user.IsStaff,
		"is_superuser": user.IsSuperuser,
	}
}

func RegisterHandler(c *fiber.Ctx) error {
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
	if err := database.DB.Where("username = ?", body.Username).First(&existing).Error; err == nil {
		return response.Conflict(c, "Username already exists")
	}
	if err := database.DB.Where("email = ?", body.Email).First(&existing).Error; err == nil {
		return response.Conflict(c, "Email already registered")
	}

	hashedPassword, err := utils.HashPassword(body.Password)
	if err != nil {
		return response.InternalError(c, err)
	}

	u := models.User{
		Username: body.Username,
		Email:    body.Email,
		Password: hashedPassword,
		FullName: body.FullName,
		UserType: models.UserTypeUser,
		IsActive: true,
		Provider: "local",
	}

	if err := database.DB.Create(&u).Error; err != nil {
		return response.InternalError(c, err)
	}

	token, err := IssueToken(u.ID)
	if err != nil {
		return response.InternalError(c, err)
	}

	return response.Created(c, loginPayload(token, &u), "Registration successful")
}

func UserLoginHandler(c *fiber.Ctx) error {
	return login(c, false)
}

// AdminLoginHandler is the staff/admin-only login variant used by the
// management pages.
func AdminLoginHandler(c *fiber.Ctx) error {
	return login(c, true)
}

func login(c *fiber.Ctx, staffOnly bool) error {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Username == "" || body.Password == "" {
		return response.ValidationError(c, map[string]string{
			"username": "username is required",
			"password": "password is required",
		})
	}

	user, err := Authenticate(body.Username, body.Password)
	if err != nil {
		if errors.Is(err, ErrAccountDisabled) {
			return response.AccountDisabled(c)
		}
		return response.Unauthorized(c, "Invalid username or password")
	}

	if staffOnly && !user.HasStaffAccess() {
		return response.Forbidden(c, "Insufficient permissions for admin access")
	}

	token, err := IssueToken(user.ID)
	if err != nil {
		return response.InternalError(c, err)
	}

	return response.Success(c, loginPayload(token, user), "Login successful")
}

// LogoutHandler deletes the presented token. A missing or unknown token is
// not an error; the response is always success.
func LogoutHandler(c *fiber.Ctx) error {
	key := TokenKeyFromHeader(c)
	if key != "" {
		if err := DeleteTokenByKey(key); err != nil {
			return response.InternalError(c, err)
		}
	}

	return response.Success(c, nil, "Logged out successfully")
}
