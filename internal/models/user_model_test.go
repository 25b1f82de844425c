package models_test

import (
	"testing"

	"github.com/buckery/backend/internal/models"
	"github.com/buckery/backend/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func TestUserRoleFlags(t *testing.T) {
	db := testutils.TestDB(t)

	cases := []struct {
		userType    models.UserType
		isStaff     bool
		isSuperuser bool
	}{
		{models.UserTypeAdmin, true, true},
		{models.UserTypeStaff, true, false},
		{models.UserTypeUser, false, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.userType), func(t *testing.T) {
			u := &models.User{
				Username: "flags_" + string(tc.userType),
				Email:    string(tc.userType) + "@example.com",
				Password: "hashed",
				FullName: "Flag Check",
				UserType: tc.userType,
				IsActive: true,
				// Opposite of what the hook must produce.
				IsStaff:     !tc.isStaff,
				IsSuperuser: !tc.isSuperuser,
			}
			assert.NoError(t, db.Create(u).Error)

			var fresh models.User
			assert.NoError(t, db.First(&fresh, u.ID).Error)
			assert.Equal(t, tc.isStaff, fresh.IsStaff)
			assert.Equal(t, tc.isSuperuser, fresh.IsSuperuser)
		})
	}
}

func TestUserRoleFlagsRederivedOnUpdate(t *testing.T) {
	db := testutils.TestDB(t)

	u := &models.User{
		Username: "promoted",
		Email:    "promoted@example.com",
		Password: "hashed",
		FullName: "Promotion Check",
		UserType: models.UserTypeUser,
		IsActive: true,
	}
	assert.NoError(t, db.Create(u).Error)
	assert.False(t, u.IsStaff)

	u.UserType = models.UserTypeAdmin
	assert.NoError(t, db.Save(u).Error)

	var fresh models.User
	assert.NoError(t, db.First(&fresh, u.ID).Error)
	assert.True(t, fresh.IsStaff)
	assert.True(t, fresh.IsSuperuser)
}

func TestUnknownUserTypeCoerced(t *testing.T) {
	db := testutils.TestDB(t)

	u := &models.User{
		Username: "mystery",
		Email:    "mystery@example.com",
		Password: "hashed",
		FullName: "Mystery Role",
		UserType: models.UserType("WIZARD"),
		IsActive: true,
	}
	assert.NoError(t, db.Create(u).Error)

	var fresh models.User
	assert.NoError(t, db.First(&fresh, u.ID).Error)
	assert.Equal(t, models.UserTypeUser, fresh.UserType)
	assert.False(t, fresh.IsStaff)
	assert.False(t, fresh.IsSuperuser)
}
