package api

import (
	"github.com/gofrs/uuid"
)

type UserRole string

const (
	UserRoleAdmin   = UserRole("admin")
	UserRoleQuality = UserRole("quality")
)

type Users []User

type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      UserRole  `json:"role"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
