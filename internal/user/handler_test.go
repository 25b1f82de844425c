package user_test

import (
	"fmt"
	"testing"

	"github.com/buckery/backend/internal/database"
	"github.com/buckery/backend/internal/models"
	"github.com/buckery/backend/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func TestStaffManagement(t *testing.T) {
	app := testutils.SetupTestApp(t)

	admin := testutils.CreateTestUser(t, database.DB, "superadmin", "password123", models.UserTypeAdmin)
	staff := testutils.CreateTestUser(t, database.DB, "barista", "password123", models.UserTypeStaff)
	customer := testutils.CreateTestUser(t, database.DB, "regular", "password123", models.UserTypeUser)

	adminToken := testutils.GetAuthToken(t, admin.ID)
	staffToken := testutils.GetAuthToken(t, staff.ID)
	customerToken := testutils.GetAuthToken(t, customer.ID)

	t.Run("Error - Customer cannot create staff", func(t *testing.T) {
		body := map[string]interface{}{
			"username":     "newstaff",
			"email":        "newstaff@example.com",
			"password":     "password123",
			"nama_lengkap": "New Staff",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/auth/staff/create", body, customerToken)
		assert.NoError(t, err)
		assert.Equal(t, 403, resp.Code)
		testutils.AssertError(t, resp, "FORBIDDEN")
	})

	t.Run("Error - Staff cannot create staff", func(t *testing.T) {
		body := map[string]interface{}{
			"username":     "newstaff",
			"email":        "newstaff@example.com",
			"password":     "password123",
			"nama_lengkap": "New Staff",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/auth/staff/create", body, staffToken)
		assert.NoError(t, err)
		assert.Equal(t, 403, resp.Code)
		testutils.AssertError(t, resp, "FORBIDDEN")
	})

	t.Run("Success - Admin creates staff", func(t *testing.T) {
		body := map[string]interface{}{
			"username":     "newstaff",
			"email":        "newstaff@example.com",
			"password":     "password123",
			"nama_lengkap": "New Staff",
		}

		resp, err := testutils.MakeRequest(app, "POST", "/auth/staff/create", body, adminToken)
		assert.NoError(t, err)
		assert.Equal(t, 201, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		data := result.Data.(map[string]interface{})
		assert.Equal(t, "STAFF", data["user_type"])
		assert.Equal(t, true, data["is_staff"])
		assert.Equal(t, false, data["is_superuser"])
	})

	t.Run("Success - Staff list has no customers", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/auth/staff/list", nil, adminToken)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		list := result.Data.([]interface{})
		assert.Len(t, list, 3)

		for _, entry := range list {
			userType := entry.(map[string]interface{})["user_type"]
			assert.NotEqual(t, "USER", userType)
		}
	})

	t.Run("Success - Promote staff to admin re-derives flags", func(t *testing.T) {
		body := map[string]interface{}{"user_type": "ADMIN"}

		resp, err := testutils.MakeRequest(app, "PUT", fmt.Sprintf("/auth/staff/update/%d", staff.ID), body, adminToken)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var fresh models.User
		assert.NoError(t, database.DB.First(&fresh, staff.ID).Error)
		assert.Equal(t, models.UserTypeAdmin, fresh.UserType)
		assert.True(t, fresh.IsStaff)
		assert.True(t, fresh.IsSuperuser)
	})

	t.Run("Error - Unknown role on update", func(t *testing.T) {
		body := map[string]interface{}{"user_type": "OWNER"}

		resp, err := testutils.MakeRequest(app, "PUT", fmt.Sprintf("/auth/staff/update/%d", staff.ID), body, adminToken)
		assert.NoError(t, err)
		assert.Equal(t, 422, resp.Code)
		testutils.AssertError(t, resp, "VALIDATION_ERROR")
	})

	t.Run("Error - Update targets staff accounts only", func(t *testing.T) {
		body := map[string]interface{}{"nama_lengkap": "Renamed"}

		resp, err := testutils.MakeRequest(app, "PUT", fmt.Sprintf("/auth/staff/update/%d", customer.ID), body, adminToken)
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.Code)
		testutils.AssertError(t, resp, "NOT_FOUND")
	})
}

func TestProfileHandlers(t *testing.T) {
	app := testutils.SetupTestApp(t)

	u := testutils.CreateTestUser(t, database.DB, "selfie", "password123", models.UserTypeUser)
	token := testutils.GetAuthToken(t, u.ID)

	t.Run("Error - Anonymous profile fetch", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/user/profile/", nil, "")
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.Code)
		testutils.AssertError(t, resp, "UNAUTHORIZED")
	})

	t.Run("Success - Fetch own profile", func(t *testing.T) {
		resp, err := testutils.MakeRequest(app, "GET", "/user/profile/", nil, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var result testutils.StandardResponse
		testutils.ParseResponse(t, resp, &result)
		data := result.Data.(map[string]interface{})
		assert.Equal(t, "selfie", data["username"])
		assert.NotContains(t, data, "password")
	})

	t.Run("Success - Update phone and address", func(t *testing.T) {
		body := map[string]interface{}{
			"phone":   "081299988877",
			"address": "Jl. Kenanga No. 7",
		}

		resp, err := testutils.MakeRequest(app, "PUT", "/user/profile/", body, token)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.Code)

		var fresh models.User
		assert.NoError(t, database.DB.First(&fresh, u.ID).Error)
		assert.Equal(t, "081299988877", fresh.Phone)
		assert.Equal(t, "Jl. Kenanga No. 7", fresh.Address)
	})
}
