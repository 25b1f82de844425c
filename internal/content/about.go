package content

import (
	"github.com/buckery/backend/internal/database"
	"github.com/buckery/backend/internal/models"
	"github.com/buckery/backend/internal/response"
	"github.com/buckery/backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// ========== TESTIMONIALS ==========

func ListTestimonialsHandler(c *fiber.Ctx) error {
	q := database.DB.Order("\"order\", created_at DESC")
	if u, ok := c.Locals("user").(*models.User); !ok || !u.HasStaffAccess() {
		q = q.Where("is_active = ?", true)
	}

	var testimonials []models.Testimonial
	if err := q.Find(&testimonials).Error; err != nil {
		return response.InternalError(c, err)
	}

	return response.Success(c, testimonials, "Testimonials retrieved successfully")
}

func CreateTestimonialHandler(c *fiber.Ctx) error {
	var body struct {
		Username string `json:"username" form:"username"`
		Message  string `json:"message" form:"message"`
		Tagline  string `json:"tagline" form:"tagline"`
		Order    int    `json:"order" form:"order"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Username == "" || body.Message == "" {
		return response.ValidationError(c, map[string]string{
			"username": "username is required",
			"message":  "message is required",
		})
	}

	url, hasFile, imgErr := saveImage(c, "image", utils.FolderTestimonials)
	if hasFile && imgErr != nil {
		return imageError(c, imgErr)
	}

	testimonial := models.Testimonial{
		Username: body.Username,
		Message:  policy.Sanitize(body.Message),
		Tagline:  policy.Sanitize(body.Tagline),
		Image:    url,
		IsActive: true,
		Order:    body.Order,
	}

	if err := database.DB.Create(&testimonial).Error; err != nil {
		return response.InternalError(c, err)
	}

	return response.Created(c, testimonial, "Testimonial created successfully")
}

func UpdateTestimonialHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid testimonial ID", nil)
	}

	var body struct {
		Username string `json:"username" form:"username"`
		Message  string `json:"message" form:"message"`
		Tagline  string `json:"tagline" form:"tagline"`
		Order    *int   `json:"order" form:"order"`
		IsActive *bool  `json:"is_active" form:"is_active"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	var testimonial models.Testimonial
	if err := database.DB.First(&testimonial, id).Error; err != nil {
		return response.NotFound(c, "Testimonial")
	}

	if body.Username != "" {
		testimonial.Username = body.Username
	}
	if body.Message != "" {
		testimonial.Message = policy.Sanitize(body.Message)
	}
	if body.Tagline != "" {
		testimonial.Tagline = policy.Sanitize(body.Tagline)
	}
	if body.Order != nil {
		testimonial.Order = *body.Order
	}
	if body.IsActive != nil {
		testimonial.IsActive = *body.IsActive
	}

	url, hasFile, imgErr := saveImage(c, "image", utils.FolderTestimonials)
	if hasFile {
		if imgErr != nil {
			return imageError(c, imgErr)
		}
		if testimonial.Image != "" {
			utils.DeleteFile(testimonial.Image)
		}
		testimonial.Image = url
	}

	if err := database.DB.Save(&testimonial).Error; err != nil {
		return response.InternalError(c, err)
	}

	return response.Success(c, testimonial, "Testimonial updated successfully")
}

func DeleteTestimonialHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid testimonial ID", nil)
	}

	var testimonial models.Testimonial
	if err := database.DB.First(&testimonial, id).Error; err != nil {
		return response.NotFound(c, "Testimonial")
	}

	if err := database.DB.Delete(&testimonial).Error; err != nil {
		return response.InternalError(c, err)
	}

	return response.NoContent(c)
}

// ========== CONTACT INFORMATION ==========

// The storefront keeps a single contact record; list returns it as a
// one-element slice the way the original API did.
func ListContactInfoHandler(c *fiber.Ctx) error {
	var contacts []models.ContactInformation
	if err := database.DB.Find(&contacts).Error; err != nil {
		return response.InternalError(c, err)
	}
	return response.Success(c, contacts, "Contact information retrieved successfully")
}

func UpsertContactInfoHandler(c *fiber.Ctx) error {
	var body struct {
		Location       string   `json:"location"`
		WhatsappNumber string   `json:"whatsapp_number"`
		PhoneNumber2   string   `json:"phone_number2"`
		Email          string   `json:"email"`
		Instagram      string   `json:"instagram"`
		WeekdayHours   string   `json:"weekday_hours"`
		SaturdayHours  string   `json:"saturday_hours"`
		SundayHours    string   `json:"sunday_hours"`
		Latitude       *float64 `json:"latitude"`
		Longitude      *float64 `json:"longitude"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Location == "" || body.WhatsappNumber == "" || body.Email == "" {
		return response.ValidationError(c, map[string]string{
			"location":        "location is required",
			"whatsapp_number": "whatsapp_number is required",
			"email":           "email is required",
		})
	}

	var contact models.ContactInformation
	err := database.DB.First(&contact).Error
	isNew := err != nil

	contact.Location = body.Location
	contact.WhatsappNumber = body.WhatsappNumber
	contact.PhoneNumber2 = body.PhoneNumber2
	contact.Email = body.Email
	contact.Instagram = body.Instagram
	contact.WeekdayHours = body.WeekdayHours
	contact.SaturdayHours = body.SaturdayHours
	contact.SundayHours = body.SundayHours
	contact.Latitude = body.Latitude
	contact.Longitude = body.Longitude

	if err := database.DB.Save(&contact).Error; err != nil {
		return response.InternalError(c, err)
	}

	if isNew {
		return response.Created(c, contact, "Contact information created successfully")
	}
	return response.Success(c, contact, "Contact information updated successfully")
}
