package content

import (
	"strconv"

	"github.com/buckery/backend/internal/database"
	"github.com/buckery/backend/internal/models"
	"github.com/buckery/backend/internal/response"
	"github.com/buckery/backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.UGCPolicy()

const maxImageSize = 5 * 1024 * 1024

func saveImage(c *fiber.Ctx, field, folder string) (string, bool, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", false, nil
	}

	contentType := file.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		return "", true, fiber.NewError(fiber.StatusBadRequest, field+" must be a JPG or PNG image")
	}
	if file.Size > maxImageSize {
		return "", true, fiber.NewError(fiber.StatusBadRequest, field+" too large")
	}

	url, err := utils.UploadFile(file, folder)
	if err != nil {
		return "", true, err
	}
	return url, true, nil
}

func imageError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return response.BadRequest(c, fe.Message, nil)
	}
	return response.InternalError(c, err)
}

// ========== HERO IMAGES ==========

func ListHeroImagesHandler(c *fiber.Ctx) error {
	var images []models.HeroImage
	q := database.DB.Order("\"order\"")
	if u, ok := c.Locals("user").(*models.User); !ok || !u.HasStaffAccess() {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Find(&images).Error; err != nil {
		return response.InternalError(c, err)
	}
	return response.Success(c, images, "Hero images retrieved successfully")
}

func CreateHeroImageHandler(c *fiber.Ctx) error {
	url, hasFile, err := saveImage(c, "image", utils.FolderHero)
	if !hasFile {
		return response.ValidationError(c, map[string]string{"image": "image is required"})
	}
	if err != nil {
		return imageError(c, err)
	}

	hero := models.HeroImage{
		Image:    url,
		IsActive: true,
	}
	if v := c.FormValue("order"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			hero.Order = n
		}
	}

	if err := database.DB.Create(&hero).Error; err != nil {
		return response.InternalError(c, err)
	}

	return response.Created(c, hero, "Hero image created successfully")
}

func UpdateHeroImageHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid hero image ID", nil)
	}

	var body struct {
		Order    *int  `json:"order" form:"order"`
		IsActive *bool `json:"is_active" form:"is_active"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	var hero models.HeroImage
	if err := database.DB.First(&hero, id).Error; err != nil {
		return response.NotFound(c, "Hero image")
	}

	if body.Order != nil {
		hero.Order = *body.Order
	}
	if body.IsActive != nil {
		hero.IsActive = *body.IsActive
	}

	url, hasFile, imgErr := saveImage(c, "image", utils.FolderHero)
	if hasFile {
		if imgErr != nil {
			return imageError(c, imgErr)
		}
		if hero.Image != "" {
			utils.DeleteFile(hero.Image)
		}
		hero.Image = url
	}

	if err := database.DB.Save(&hero).Error; err != nil {
		return response.InternalError(c, err)
	}

	return response.Success(c, hero, "Hero image updated successfully")
}

func DeleteHeroImageHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid hero image ID", nil)
	}

	var hero models.HeroImage
	if err := database.DB.First(&hero, id).Error; err != nil {
		return response.NotFound(c, "Hero image")
	}

	if err := database.DB.Delete(&hero).Error; err != nil {
		return response.InternalError(c, err)
	}

	return response.NoContent(c)
}

// ========== TIMELINE EVENTS ==========

func ListTimelineEventsHandler(c *fiber.Ctx) error {
	var events []models.TimelineEvent
	if err := database.DB.Order("\"order\", year").Find(&events).Error; err != nil {
		return response.InternalError(c, err)
	}
	return response.Success(c, events, "Timeline events retrieved successfully")
}

func CreateTimelineEventHandler(c *fiber.Ctx) error {
	var body struct {
		Year        string `json:"year" form:"year"`
		Title       string `json:"title" form:"title"`
		Description string `json:"description" form:"description"`
		Order       int    `json:"order" form:"order"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Year == "" || body.Title == "" {
		return response.ValidationError(c, map[string]string{
			"year":  "year is required",
			"title": "title is required",
		})
	}

	url, hasFile, imgErr := saveImage(c, "image", utils.FolderTimeline)
	if hasFile && imgErr != nil {
		return imageError(c, imgErr)
	}

	event := models.TimelineEvent{
		Year:        body.Year,
		Title:       body.Title,
		Description: body.Description,
		Image:       url,
		Order:       body.Order,
	}

	if err := database.DB.Create(&event).Error; err != nil {
		return response.InternalError(c, err)
	}

	return response.Created(c, event, "Timeline event created successfully")
}

func UpdateTimelineEventHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid timeline event ID", nil)
	}

	var body struct {
		Year        string `json:"year" form:"year"`
		Title       string `json:"title" form:"title"`
		Description string `json:"description" form:"description"`
		Order       *int   `json:"order" form:"order"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	var event models.TimelineEvent
	if err := database.DB.First(&event, id).Error; err != nil {
		return response.NotFound(c, "Timeline event")
	}

	if body.Year != "" {
		event.Year = body.Year
	}
	if body.Title != "" {
		event.Title = body.Title
	}
	if body.Description != "" {
		event.Description = body.Description
	}
	if body.Order != nil {
		event.Order = *body.Order
	}

	url, hasFile, imgErr := saveImage(c, "image", utils.FolderTimeline)
	if hasFile {
		if imgErr != nil {
			return imageError(c, imgErr)
		}
		if event.Image != "" {
			utils.DeleteFile(event.Image)
		}
		event.Image = url
	}

	if err := database.DB.Save(&event).Error; err != nil {
		return response.InternalError(c, err)
	}

	return response.Success(c, event, "Timeline event updated successfully")
}

func DeleteTimelineEventHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid timeline event ID", nil)
	}

	var event models.TimelineEvent
	if err := database.DB.First(&event, id).Error; err != nil {
		return response.NotFound(c, "Timeline event")
	}

	if err := database.DB.Delete(&event).Error; err != nil {
		return response.InternalError(c, err)
	}

	return response.NoContent(c)
}

// ========== TEAM MEMBERS ==========

func ListTeamMembersHandler(c *fiber.Ctx) error {
	var members []models.TeamMember
	if err := database.DB.Order("\"order\"").Find(&members).Error; err != nil {
		return response.InternalError(c, err)
	}
	return response.Success(c, members, "Team members retrieved successfully")
}

func CreateTeamMemberHandler(c *fiber.Ctx) error {
	var body struct {
		Name       string            `json:"name" form:"name"`
		Role       string            `json:"role" form:"role"`
		Quote      string            `json:"quote" form:"quote"`
		MemberType models.MemberType `json:"member_type" form:"member_type"`
		Order      int               `json:"order" form:"order"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Name == "" || body.Role == "" {
		return response.ValidationError(c, map[string]string{
			"name": "name is required",
			"role": "role is required",
		})
	}

	if body.MemberType == "" {
		body.MemberType = models.MemberTypeTeam
	}
	if body.MemberType != models.MemberTypeFounder && body.MemberType != models.MemberTypeTeam {
		return response.ValidationError(c, map[string]string{
			"member_type": "member_type must be FOUNDER or TEAM",
		})
	}

	url, hasFile, imgErr := saveImage(c, "image", utils.FolderTeam)
	if hasFile && imgErr != nil {
		return imageError(c, imgErr)
	}

	member := models.TeamMember{
		Name:       body.Name,
		Role:       body.Role,
		Quote:      policy.Sanitize(body.Quote),
		Image:      url,
		MemberType: body.MemberType,
		Order:      body.Order,
	}

	if err := database.DB.Create(&member).Error; err != nil {
		return response.InternalError(c, err)
	}

	return response.Created(c, member, "Team member created successfully")
}

func UpdateTeamMemberHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid team member ID", nil)
	}

	var body struct {
		Name       string            `json:"name" form:"name"`
		Role       string            `json:"role" form:"role"`
		Quote      string            `json:"quote" form:"quote"`
		MemberType models.MemberType `json:"member_type" form:"member_type"`
		Order      *int              `json:"order" form:"order"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	var member models.TeamMember
	if err := database.DB.First(&member, id).Error; err != nil {
		return response.NotFound(c, "Team member")
	}

	if body.Name != "" {
		member.Name = body.Name
	}
	if body.Role != "" {
		member.Role = body.Role
	}
	if body.Quote != "" {
		member.Quote = policy.Sanitize(body.Quote)
	}
	if body.MemberType != "" {
		if body.MemberType != models.MemberTypeFounder && body.MemberType != models.MemberTypeTeam {
			return response.ValidationError(c, map[string]string{
				"member_type": "member_type must be FOUNDER or TEAM",
			})
		}
		member.MemberType = body.MemberType
	}
	if body.Order != nil {
		member.Order = *body.Order
	}

	url, hasFile, imgErr := saveImage(c, "image", utils.FolderTeam)
	if hasFile {
		if imgErr != nil {
			return imageError(c, imgErr)
		}
		if member.Image != "" {
			utils.DeleteFile(member.Image)
		}
		member.Image = url
	}

	if err := database.DB.Save(&member).Error; err != nil {
		return response.InternalError(c, err)
	}

	return response.Success(c, member, "Team member updated successfully")
}

func DeleteTeamMemberHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid team member ID", nil)
	}

	var member models.TeamMember
	if err := database.DB.First(&member, id).Error; err != nil {
		return response.NotFound(c, "Team member")
	}

	if err := database.DB.Delete(&member).Error; err != nil {
		return response.InternalError(c, err)
	}

	return response.NoContent(c)
}
