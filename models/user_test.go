package models

import (
	"github.com/rubineta/claims-api/api"
)

func (ms *ModelSuite) Test_User_SetAndVerifyPassword() {
	var user User
	ms.NoError(user.SetPassword("labai-slaptas-1"))
	ms.NotEqual("labai-slaptas-1", user.HashedPassword, "password must not be stored in plain text")

	ms.NoError(user.VerifyPassword("labai-slaptas-1"))

	err := user.VerifyPassword("neteisingas")
	ms.Error(err)

	appErr, ok := err.(*api.AppError)
	ms.True(ok)
	ms.Equal(api.ErrorInvalidCredentials, appErr.Key)
	ms.Equal(api.CategoryUnauthorized, appErr.Category)
}

func (ms *ModelSuite) Test_User_Create() {
	user := User{Email: "Ona@Example.com", Role: api.UserRoleQuality}
	ms.NoError(user.SetPassword("labai-slaptas-1"))
	ms.NoError(user.Create(ms.DB))

	ms.Equal("ona@example.com", user.Email, "email should be lowercased")
	ms.False(user.CreatedAt.IsZero(), "created_at should be set on insert")
	ms.False(user.UpdatedAt.IsZero(), "updated_at should be set on insert")

	var found User
	ms.NoError(found.FindByID(ms.DB, user.ID))
	ms.False(found.CreatedAt.IsZero())
}

func (ms *ModelSuite) Test_User_FindByEmail() {
	user := CreateUserFixtures(ms.DB, 1).Users[0]

	var found User
	ms.NoError(found.FindByEmail(ms.DB, user.Email))
	ms.Equal(user.ID, found.ID)

	var notFound User
	err := notFound.FindByEmail(ms.DB, "nobody@example.com")
	ms.Error(err)

	appErr, ok := err.(*api.AppError)
	ms.True(ok)
	ms.Equal(api.ErrorInvalidCredentials, appErr.Key, "a missing user must look like bad credentials")
}

func (ms *ModelSuite) Test_User_Name() {
	user := User{FirstName: "Ona", LastName: "Onaitė"}
	ms.Equal("Ona Onaitė", user.Name())
}

func (ms *ModelSuite) Test_User_IsAdmin() {
	ms.True((&User{Role: api.UserRoleAdmin}).IsAdmin())
	ms.False((&User{Role: api.UserRoleQuality}).IsAdmin())
}

func (ms *ModelSuite) Test_User_Create_InvalidRole() {
	user := User{Email: "x@example.com", Role: "boss"}
	ms.NoError(user.SetPassword("slaptas"))
	ms.Error(user.Create(ms.DB), "unknown role should fail validation")
}
