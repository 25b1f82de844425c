package auth_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/buckery/backend/internal/database"
	"github.com/buckery/backend/internal/models"
	"github.com/buckery/backend/internal/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func requestWithHeader(t *testing.T, app *fiber.App, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/user/profile/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)

	rec := httptest.NewRecorder()
	rec.Code = resp.StatusCode
	io.Copy(rec.Body, resp.Body)
	resp.Body.Close()
	return rec
}

func TestTokenProtected(t *testing.T) {
	app := testutils.SetupTestApp(t)

	u := testutils.CreateTestUser(t, database.DB, "guarded", "password123", models.UserTypeUser)
	key := testutils.GetAuthToken(t, u.ID)

	t.Run("Success - Valid token header", func(t *testing.T) {
		rec := requestWithHeader(t, app, "Token "+key)
		assert.Equal(t, 200, rec.Code)
	})

	t.Run("Error - Missing header", func(t *testing.T) {
		rec := requestWithHeader(t, app, "")
		assert.Equal(t, 401, rec.Code)
		testutils.AssertError(t, rec, "UNAUTHORIZED")
	})

	t.Run("Error - Wrong scheme", func(t *testing.T) {
		rec := requestWithHeader(t, app, "Bearer "+key)
		assert.Equal(t, 401, rec.Code)
		testutils.AssertError(t, rec, "UNAUTHORIZED")
	})

	t.Run("Error - Unknown key", func(t *testing.T) {
		rec := requestWithHeader(t, app, "Token 0000000000000000000000000000000000000000")
		assert.Equal(t, 401, rec.Code)
		testutils.AssertError(t, rec, "UNAUTHORIZED")
	})

	t.Run("Error - Account disabled mid-session", func(t *testing.T) {
		u.IsActive = false
		assert.NoError(t, database.DB.Save(u).Error)

		rec := requestWithHeader(t, app, "Token "+key)
		assert.Equal(t, 403, rec.Code)
		testutils.AssertError(t, rec, "ACCOUNT_DISABLED")
	})

	t.Run("Error - Token row deleted revokes access", func(t *testing.T) {
		u.IsActive = true
		assert.NoError(t, database.DB.Save(u).Error)

		assert.NoError(t, database.DB.Where("user_id = ?", u.ID).Delete(&models.Token{}).Error)

		rec := requestWithHeader(t, app, "Token "+key)
		assert.Equal(t, 401, rec.Code)
		testutils.AssertError(t, rec, "UNAUTHORIZED")
	})
}
