package catalog_test

import (
	"fmt"
	"testing"

	"github.com/buckery/backend/internal/database"
	"github.com/buckery/backend/internal/models"
	"github.com/buckery/backend/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func seedCategory(t *testing.T, name string) *models.Category {
	c := &models.Category{Name: name, Description: name + " description"}
	assert.NoError(t, database.DB.Create(c).Error)
	return c
}

func seedProduct(t *testing.T, categoryID uint, name string, active bool) *models.Product {
	p := &models.Product{
		CategoryID:  categoryID,
		Name:        name,
		Price:       25000,
		Description: name + " description",
		Stock:       10,
		IsActive:    active,
	}
	assert.NoError(t, database.DB.Create(p).Error)
	return p
}

func TestCategoryHandlers(t *testing.T) {
	app := testutils.SetupTestApp(t)

	admin := testutils.CreateTestUser(t, database.DB, "catadmin", "password123", models.UserTypeAdmin)
	adminToken := testutils.GetAuthToken(t, admin.ID)

	t.Run("Error - Anonymous create", func(t *testing.T) {
		body := map[string]interface{}{"name": "Brownies"}

		resp, err := testutils.MakeRequest(app, "POST", "/categories/", body, "")
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.Code)
		testutils.AssertError(t, resp, "UNAUTHORIZED")
	})

	t.Run("Success - Admin creates category", func(t *testing.T) {
		body := map[string]interface{}{
			"name":        "Brownies",
			"description": "Fudgy baked goods",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/categories/", body, adminToken)
		assert.NoError(t, err)
		assert.Equal(t, 201, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		data := result.Data.(map[string]interface{})
		assert.Equal(t, "Brownies", data["name"])
	})

	t.Run("Error - Missing name", func(t *testing.T) {
		body := map[string]interface{}{"description": "nameless"}

		resp, err := testutils.MakeRequest(app, "POST", "/categories/", body, adminToken)
		assert.NoError(t, err)
		assert.Equal(t, 422, resp.Code)
		testutils.AssertError(t, resp, "VALIDATION_ERROR")
	})

	t.Run("Success - Anonymous list", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/categories/", nil, "")
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)
		testutils.AssertSuccess(t, resp)
	})

	t.Run("Success - Update and delete", func(t *testing.T) {
		cat := seedCategory(t, "Cookies")

		body := map[string]interface{}{"description": "Crunchy baked goods"}
		resp, err := testutils.MakeRequest(app, "PUT", fmt.Sprintf("/categories/%d", cat.ID), body, adminToken)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		resp, err = testutils.MakeRequest(app, "DELETE", fmt.Sprintf("/categories/%d", cat.ID), nil, adminToken)
		assert.NoError(t, err)
		assert.Equal(t, 204, resp.Code)

		resp, err = testutils.MakeRequest(app, "GET", fmt.Sprintf("/categories/%d", cat.ID), nil, "")
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.Code)
		testutils.AssertError(t, resp, "NOT_FOUND")
	})
}

func TestProductHandlers(t *testing.T) {
	app := testutils.SetupTestApp(t)

	admin := testutils.CreateTestUser(t, database.DB, "prodadmin", "password123", models.UserTypeAdmin)
	customer := testutils.CreateTestUser(t, database.DB, "shopper", "password123", models.UserTypeUser)

	adminToken := testutils.GetAuthToken(t, admin.ID)
	customerToken := testutils.GetAuthToken(t, customer.ID)

	cat := seedCategory(t, "Bolu")

	t.Run("Success - Admin creates product", func(t *testing.T) {
		body := map[string]interface{}{
			"category":    cat.ID,
			"name":        "Bolu Pandan",
			"price":       45000,
			"description": "Pandan sponge cake",
			"stock":       12,
		}

		resp, err := testutils.MakeRequest(app, "POST", "/products/", body, adminToken)
		assert.NoError(t, err)
		assert.Equal(t, 201, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		data := result.Data.(map[string]interface{})
		assert.Equal(t, "Bolu Pandan", data["name"])
		assert.Equal(t, true, data["is_active"])
	})

	t.Run("Error - Unknown category", func(t *testing.T) {
		body := map[string]interface{}{
			"category": 99999,
			"name":     "Orphan Cake",
			"price":    30000,
		}

		resp, err := testutils.MakeRequest(app, "POST", "/products/", body, adminToken)
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.Code)
		testutils.AssertError(t, resp, "NOT_FOUND")
	})

	t.Run("Error - Customer cannot create", func(t *testing.T) {
		body := map[string]interface{}{
			"category": cat.ID,
			"name":     "Sneaky Cake",
			"price":    1000,
		}

		resp, err := testutils.MakeRequest(app, "POST", "/products/", body, customerToken)
		assert.NoError(t, err)
		assert.Equal(t, 403, resp.Code)
		testutils.AssertError(t, resp, "FORBIDDEN")
	})

	t.Run("Inactive products hidden from non-staff", func(t *testing.T) {
		hidden := seedProduct(t, cat.ID, "Seasonal Stollen", false)

		resp, err := testutils.MakeRequest(app, "GET", "/products/", nil, "")
		assert.NoError(t, err)
		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		for _, entry := range result.Data.([]interface{}) {
			assert.NotEqual(t, "Seasonal Stollen", entry.(map[string]interface{})["name"])
		}

		resp, err = testutils.MakeRequest(app, "GET", fmt.Sprintf("/products/%d", hidden.ID), nil, customerToken)
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.Code)
		testutils.AssertError(t, resp, "NOT_FOUND")

		resp, err = testutils.MakeRequest(app, "GET", fmt.Sprintf("/products/%d", hidden.ID), nil, adminToken)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)
		testutils.AssertSuccess(t, resp)
	})

	t.Run("Filter by category", func(t *testing.T) {
		other := seedCategory(t, "Roti")
		seedProduct(t, other.ID, "Roti Sobek", true)

		resp, err := testutils.MakeRequest(app, "GET", fmt.Sprintf("/products/?category=%d", other.ID), nil, "")
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		list := result.Data.([]interface{})
		assert.Len(t, list, 1)
		assert.Equal(t, "Roti Sobek", list[0].(map[string]interface{})["name"])
	})

	t.Run("Success - Deactivate via update", func(t *testing.T) {
		p := seedProduct(t, cat.ID, "Lapis Legit", true)

		body := map[string]interface{}{"is_active": false}
		resp, err := testutils.MakeRequest(app, "PUT", fmt.Sprintf("/products/%d", p.ID), body, adminToken)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var fresh models.Product
		assert.NoError(t, database.DB.First(&fresh, p.ID).Error)
		assert.False(t, fresh.IsActive)
	})
}
