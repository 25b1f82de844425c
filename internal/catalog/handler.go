package catalog

import (
	"strconv"

	"github.com/buckery/backend/internal/database"
	"github.com/buckery/backend/internal/models"
	"github.com/buckery/backend/internal/response"
	"github.com/buckery/backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

const maxImageSize = 5 * 1024 * 1024

// callerIsStaff reports whether the (optionally authenticated) caller has
// staff access.
func callerIsStaff(c *fiber.Ctx) bool {
	if u, ok := c.Locals("user").(*models.User); ok {
		return u.HasStaffAccess()
	}
	return false
}

func uploadImage(c *fiber.Ctx, field, folder string) (string, error, bool) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil, false
	}

	contentType := file.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		return "", fiber.NewError(fiber.StatusBadRequest, field+" must be a JPG or PNG image"), true
	}
	if file.Size > maxImageSize {
		return "", fiber.NewError(fiber.StatusBadRequest, field+" too large"), true
	}

	url, err := utils.UploadFile(file, folder)
	if err != nil {
		return "", err, true
	}
	return url, nil, true
}

// ========== CATEGORIES ==========

func CreateCategoryHandler(c *fiber.Ctx) error {
	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	if body.Name == "" {
		return response.ValidationError(c, map[string]string{"name": "name is required"})
	}

	category := models.Category{
		Name:        body.Name,
		Description: body.Description,
	}
	if category.Description == "" {
		category.Description = "Default category description"
	}

	if err := database.DB.Create(&category).Error; err != nil {
		return response.InternalError(c, err)
	}

	return response.Created(c, category, "Category created successfully")
}

func ListCategoriesHandler(c *fiber.Ctx) error {
	var categories []models.Category
	if err := database.DB.Order("created_at DESC").Find(&categories).Error; err != nil {
		return response.InternalError(c, err)
	}

	return response.Success(c, categories, "Categories retrieved successfully")
}

func GetCategoryHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid category ID", nil)
	}

	var category models.Category
	if err := database.DB.First(&category, id).Error; err != nil {
		return response.NotFound(c, "Category")
	}

	return response.Success(c, category, "Category retrieved successfully")
}

func UpdateCategoryHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid category ID", nil)
	}

	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	var category models.Category
	if err := database.DB.First(&category, id).Error; err != nil {
		return response.NotFound(c, "Category")
	}

	if body.Name != "" {
		category.Name = body.Name
	}
	if body.Description != "" {
		category.Description = body.Description
	}

	if err := database.DB.Save(&category).Error; err != nil {
		return response.InternalError(c, err)
	}

	return response.Success(c, category, "Category updated successfully")
}

func DeleteCategoryHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid category ID", nil)
	}

	var category models.Category
	if err := database.DB.First(&category, id).Error; err != nil {
		return response.NotFound(c, "Category")
	}

	if err := database.DB.Delete(&category).Error; err != nil {
		return response.InternalError(c, err)
	}

	return response.NoContent(c)
}

// ========== PRODUCTS ==========

func CreateProductHandler(c *fiber.Ctx) error {
	var body struct {
		CategoryID  uint    `json:"category" form:"category"`
		Name        string  `json:"name" form:"name"`
		Price       float64 `json:"price"`
		PriceForm   string  `form:"price"`
		Description string  `json:"description" form:"description"`
		Stock       int     `json:"stock" form:"stock"`
		IsActive    *bool   `json:"is_active" form:"is_active"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	price := body.Price
	if price == 0 && body.PriceForm != "" {
		parsed, err := strconv.ParseFloat(body.PriceForm, 64)
		if err != nil {
			return response.ValidationError(c, map[string]string{"price": "price must be a number"})
		}
		price = parsed
	}

	if body.Name == "" || body.CategoryID == 0 || price <= 0 {
		return response.ValidationError(c, map[string]string{
			"name":     "name is required",
			"category": "category is required",
			"price":    "price must be greater than zero",
		})
	}

	var category models.Category
	if err := database.DB.First(&category, body.CategoryID).Error; err != nil {
		return response.NotFound(c, "Category")
	}

	imageURL, uploadErr, hasFile := uploadImage(c, "image", utils.FolderProducts)
	if hasFile && uploadErr != nil {
		if fe, ok := uploadErr.(*fiber.Error); ok {
			return response.BadRequest(c, fe.Message, nil)
		}
		return response.InternalError(c, uploadErr)
	}

	isActive := true
	if body.IsActive != nil {
		isActive = *body.IsActive
	}

	product := models.Product{
		CategoryID:  body.CategoryID,
		Name:        body.Name,
		Price:       price,
		Description: body.Description,
		Stock:       body.Stock,
		Image:       imageURL,
		IsActive:    isActive,
	}

	if err := database.DB.Create(&product).Error; err != nil {
		return response.InternalError(c, err)
	}

	return response.Created(c, product, "Product created successfully")
}

func ListProductsHandler(c *fiber.Ctx) error {
	q := database.DB.Model(&models.Product{})
	if !callerIsStaff(c) {
		q = q.Where("is_active = ?", true)
	}

	if categoryID := c.QueryInt("category"); categoryID > 0 {
		q = q.Where("category_id = ?", categoryID)
	}

	var products []models.Product
	if err := q.Order("created_at DESC").Find(&products).Error; err != nil {
		return response.InternalError(c, err)
	}

	return response.Success(c, products, "Products retrieved successfully")
}

func GetProductHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid product ID", nil)
	}

	q := database.DB.Model(&models.Product{})
	if !callerIsStaff(c) {
		q = q.Where("is_active = ?", true)
	}

	var product models.Product
	if err := q.First(&product, id).Error; err != nil {
		return response.NotFound(c, "Product")
	}

	return response.Success(c, product, "Product retrieved successfully")
}

func UpdateProductHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid product ID", nil)
	}

	var body struct {
		CategoryID  uint    `json:"category" form:"category"`
		Name        string  `json:"name" form:"name"`
		Price       float64 `json:"price"`
		PriceForm   string  `form:"price"`
		Description string  `json:"description" form:"description"`
		Stock       *int    `json:"stock" form:"stock"`
		IsActive    *bool   `json:"is_active" form:"is_active"`
	}

	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	var product models.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		return response.NotFound(c, "Product")
	}

	if body.CategoryID != 0 {
		var category models.Category
		if err := database.DB.First(&category, body.CategoryID).Error; err != nil {
			return response.NotFound(c, "Category")
		}
		product.CategoryID = body.CategoryID
	}

	if body.Name != "" {
		product.Name = body.Name
	}

	price := body.Price
	if price == 0 && body.PriceForm != "" {
		parsed, err := strconv.ParseFloat(body.PriceForm, 64)
		if err != nil {
			return response.ValidationError(c, map[string]string{"price": "price must be a number"})
		}
		price = parsed
	}
	if price > 0 {
		product.Price = price
	}

	if body.Description != "" {
		product.Description = body.Description
	}
	if body.Stock != nil {
		product.Stock = *body.Stock
	}
	if body.IsActive != nil {
		product.IsActive = *body.IsActive
	}

	imageURL, uploadErr, hasFile := uploadImage(c, "image", utils.FolderProducts)
	if hasFile {
		if uploadErr != nil {
			if fe, ok := uploadErr.(*fiber.Error); ok {
				return response.BadRequest(c, fe.Message, nil)
			}
			return response.InternalError(c, uploadErr)
		}
		if product.Image != "" {
			utils.DeleteFile(product.Image)
		}
		product.Image = imageURL
	}

	if err := database.DB.Save(&product).Error; err != nil {
		return response.InternalError(c, err)
	}

	return response.Success(c, product, "Product updated successfully")
}

func DeleteProductHandler(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid product ID", nil)
	}

	var product models.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		return response.NotFound(c, "Product")
	}

	if err := database.DB.Delete(&product).Error; err != nil {
		return response.InternalError(c, err)
	}

	return response.NoContent(c)
}
