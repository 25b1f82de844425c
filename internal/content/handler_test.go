package content_test

import (
	"fmt"
	"testing"

	"github.com/buckery/backend/internal/database"
	"github.com/buckery/backend/internal/models"
	"github.com/buckery/backend/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func TestHeroImageHandlers(t *testing.T) {
	app := testutils.SetupTestApp(t)

	admin := testutils.CreateTestUser(t, database.DB, "heroadmin", "password123", models.UserTypeAdmin)
	customer := testutils.CreateTestUser(t, database.DB, "visitor", "password123", models.UserTypeUser)

	adminToken := testutils.GetAuthToken(t, admin.ID)
	customerToken := testutils.GetAuthToken(t, customer.ID)

	t.Run("Error - Create without image", func(t *testing.T) {
		resp, err := testutils.MakeMultipartRequest(app, "POST", "/hero-images/", map[string]string{"order": "1"}, adminToken)
		assert.NoError(t, err)
		assert.Equal(t, 422, resp.Code)
		testutils.AssertError(t, resp, "VALIDATION_ERROR")
	})

	t.Run("Success - Create with image", func(t *testing.T) {
		fields := map[string]string{"order": "2"}
		files := map[string][]byte{"image": []byte("fake image bytes")}

		resp, err := testutils.MakeMultipartRequestWithFile(app, "POST", "/hero-images/", fields, files, adminToken)
		assert.NoError(t, err)
		assert.Equal(t, 201, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		data := result.Data.(map[string]interface{})
		assert.NotEmpty(t, data["image"])
		assert.Equal(t, float64(2), data["order"])
		assert.Equal(t, true, data["is_active"])
	})

	t.Run("Inactive images hidden from non-staff", func(t *testing.T) {
		hidden := &models.HeroImage{Image: "/uploads/hero/hidden.jpg", Order: 9, IsActive: false}
		assert.NoError(t, database.DB.Create(hidden).Error)

		resp, err := testutils.MakeRequest(app, "GET", "/hero-images/", nil, customerToken)
		assert.NoError(t, err)
		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		for _, entry := range result.Data.([]interface{}) {
			assert.Equal(t, true, entry.(map[string]interface{})["is_active"])
		}

		resp, err = testutils.MakeRequest(app, "GET", "/hero-images/", nil, adminToken)
		assert.NoError(t, err)
		var staffResult testutils.StandardResponse
		testutils.ParseResponse(t, resp, &staffResult)
		assert.Greater(t, len(staffResult.Data.([]interface{})), len(result.Data.([]interface{})))
	})

	t.Run("Success - Deactivate via update", func(t *testing.T) {
		hero := &models.HeroImage{Image: "/uploads/hero/toggle.jpg", IsActive: true}
		assert.NoError(t, database.DB.Create(hero).Error)

		body := map[string]interface{}{"is_active": false}
		resp, err := testutils.MakeRequest(app, "PUT", fmt.Sprintf("/hero-images/%d", hero.ID), body, adminToken)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var fresh models.HeroImage
		assert.NoError(t, database.DB.First(&fresh, hero.ID).Error)
		assert.False(t, fresh.IsActive)
	})
}

func TestTimelineEventHandlers(t *testing.T) {
	app := testutils.SetupTestApp(t)

	admin := testutils.CreateTestUser(t, database.DB, "historian", "password123", models.UserTypeAdmin)
	adminToken := testutils.GetAuthToken(t, admin.ID)

	t.Run("Success - Create and list ordered", func(t *testing.T) {
		for _, ev := range []map[string]interface{}{
			{"year": "2021", "title": "First oven", "description": "Home kitchen", "order": 2},
			{"year": "2019", "title": "Founded", "description": "Started baking", "order": 1},
		} {
			resp, err := testutils.MakeRequest(app, "POST", "/timeline-events/", ev, adminToken)
			assert.NoError(t, err)
			assert.Equal(t, 201, resp.Code)
		}

		resp, err := testutils.MakeRequest(app, "GET", "/timeline-events/", nil, "")
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		list := result.Data.([]interface{})
		assert.Len(t, list, 2)
		assert.Equal(t, "Founded", list[0].(map[string]interface{})["title"])
	})

	t.Run("Error - Anonymous create", func(t *testing.T) {
		body := map[string]interface{}{"year": "2024", "title": "Sneaky"}

		resp, err := testutils.MakeRequest(app, "POST", "/timeline-events/", body, "")
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.Code)
		testutils.AssertError(t, resp, "UNAUTHORIZED")
	})
}

func TestTeamMemberHandlers(t *testing.T) {
	app := testutils.SetupTestApp(t)

	admin := testutils.CreateTestUser(t, database.DB, "hr", "password123", models.UserTypeAdmin)
	adminToken := testutils.GetAuthToken(t, admin.ID)

	t.Run("Success - Create founder", func(t *testing.T) {
		body := map[string]interface{}{
			"name":        "Ibu Ratna",
			"role":        "Head Baker",
			"quote":       "Bake with love",
			"member_type": "FOUNDER",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/team-members/", body, adminToken)
		assert.NoError(t, err)
		assert.Equal(t, 201, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		data := result.Data.(map[string]interface{})
		assert.Equal(t, "FOUNDER", data["member_type"])
	})

	t.Run("Success - Public list", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/team-members/", nil, "")
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)
		testutils.AssertSuccess(t, resp)
	})
}

func TestTestimonialHandlers(t *testing.T) {
	app := testutils.SetupTestApp(t)

	admin := testutils.CreateTestUser(t, database.DB, "curator", "password123", models.UserTypeAdmin)
	adminToken := testutils.GetAuthToken(t, admin.ID)

	t.Run("Success - Create strips markup", func(t *testing.T) {
		body := map[string]interface{}{
			"username": "happybuyer",
			"message":  `Enak banget!<script>alert("xss")</script>`,
			"tagline":  "Repeat customer",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/testimonials/", body, adminToken)
		assert.NoError(t, err)
		assert.Equal(t, 201, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		data := result.Data.(map[string]interface{})
		assert.NotContains(t, data["message"], "<script>")
		assert.Contains(t, data["message"], "Enak banget!")
	})

	t.Run("Error - Missing message", func(t *testing.T) {
		body := map[string]interface{}{"username": "quiet"}

		resp, err := testutils.MakeRequest(app, "POST", "/testimonials/", body, adminToken)
		assert.NoError(t, err)
		assert.Equal(t, 422, resp.Code)
		testutils.AssertError(t, resp, "VALIDATION_ERROR")
	})

	t.Run("Hidden testimonials excluded from public list", func(t *testing.T) {
		hidden := &models.Testimonial{Username: "ghostwriter", Message: "Hidden review", IsActive: false}
		assert.NoError(t, database.DB.Create(hidden).Error)

		resp, err := testutils.MakeRequest(app, "GET", "/testimonials/", nil, "")
		assert.NoError(t, err)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		for _, entry := range result.Data.([]interface{}) {
			assert.NotEqual(t, "ghostwriter", entry.(map[string]interface{})["username"])
		}
	})
}

func TestContactInfoHandlers(t *testing.T) {
	app := testutils.SetupTestApp(t)

	admin := testutils.CreateTestUser(t, database.DB, "frontdesk", "password123", models.UserTypeAdmin)
	adminToken := testutils.GetAuthToken(t, admin.ID)

	t.Run("Success - First upsert creates the record", func(t *testing.T) {
		body := map[string]interface{}{
			"location":        "Jl. Raya Bogor No. 12",
			"whatsapp_number": "081234567890",
			"email":           "hello@buckery.id",
			"instagram":       "@buckery.id",
			"weekday_hours":   "08.00-20.00",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/contact-info/", body, adminToken)
		assert.NoError(t, err)
		assert.Equal(t, 201, resp.Code)
	})

	t.Run("Success - Second upsert updates in place", func(t *testing.T) {
		body := map[string]interface{}{
			"location":        "Jl. Raya Bogor No. 99",
			"whatsapp_number": "081234567890",
			"email":           "hello@buckery.id",
		}

		resp, err := testutils.MakeRequest(app, "PUT", "/contact-info/", body, adminToken)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var count int64
		database.DB.Model(&models.ContactInformation{}).Count(&count)
		assert.Equal(t, int64(1), count)

		var contact models.ContactInformation
		assert.NoError(t, database.DB.First(&contact).Error)
		assert.Equal(t, "Jl. Raya Bogor No. 99", contact.Location)
	})

	t.Run("Success - Public list returns one element", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/contact-info/", nil, "")
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		assert.Len(t, result.Data.([]interface{}), 1)
	})
}
