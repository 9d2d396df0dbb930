package models

import (
	"errors"
	"strings"
	"time"

	"github.com/gobuffalo/pop/v6"
	"github.com/gobuffalo/validate/v3"
	"github.com/gofrs/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rubineta/claims-api/api"
	"github.com/rubineta/claims-api/domain"
)

type Users []User

// User is an administrative account: quality-team staff or an admin. These
// are seeded by the db:seed grift, no route creates them.
type User struct {
	ID             uuid.UUID    `db:"id"`
	Email          string       `db:"email" validate:"required,email"`
	HashedPassword string       `db:"hashed_password" validate:"required"`
	FirstName      string       `db:"first_name"`
	LastName       string       `db:"last_name"`
	Role           api.UserRole `db:"role" validate:"userRole"`
	CreatedAt      time.Time    `db:"created_at"`
	UpdatedAt      time.Time    `db:"updated_at"`
}

// Validate gets run every time you call a "pop.Validate*" method.
func (u *User) Validate(tx *pop.Connection) (*validate.Errors, error) {
	return validateModel(u), nil
}

// Create stores the User data as a new record in the database.
func (u *User) Create(tx *pop.Connection) error {
	u.Email = strings.ToLower(u.Email)
	return create(tx, u)
}

func (u *User) GetID() uuid.UUID {
	return u.ID
}

func (u *User) FindByID(tx *pop.Connection, id uuid.UUID) error {
	return find(tx, u, id)
}

func (u *User) FindByEmail(tx *pop.Connection, email string) error {
	if err := tx.Where("email = ?", strings.ToLower(email)).First(u); err != nil {
		if !domain.IsOtherThanNoRows(err) {
			return api.NewAppError(err, api.ErrorInvalidCredentials, api.CategoryUnauthorized)
		}
		return appErrorFromDB(err, api.ErrorQueryFailure)
	}
	return nil
}

// SetPassword replaces the stored hash with a bcrypt hash of the given password.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return api.NewAppError(err, api.ErrorSaveFailure, api.CategoryInternal)
	}
	u.HashedPassword = string(hash)
	return nil
}

// VerifyPassword compares the given password against the stored bcrypt hash.
func (u *User) VerifyPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password)); err != nil {
		return api.NewAppError(
			errors.New("invalid email or password"),
			api.ErrorInvalidCredentials,
			api.CategoryUnauthorized,
		)
	}
	return nil
}

// Name joins the first and last names for display
func (u *User) Name() string {
	return strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
}

func (u *User) IsAdmin() bool {
	return u.Role == api.UserRoleAdmin
}

func (u *Users) All(tx *pop.Connection) error {
	err := tx.Order("email asc").All(u)
	return appErrorFromDB(err, api.ErrorQueryFailure)
}

func (u *User) ConvertToAPI() api.User {
	return api.User{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
	}
}

func (u *Users) ConvertToAPI() api.Users {
	out := make(api.Users, len(*u))
	for i, uu := range *u {
		out[i] = uu.ConvertToAPI()
	}
	return out
}
