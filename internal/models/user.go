package models

import (
	"github.com/go-playground/validator/v10"
)

// User holds account identity. Only the bcrypt hash of the password is
// ever stored; the raw password exists solely inside the registration
// and login requests.
type User struct {
	ID           int64  `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
}

// Registration is the validated form input for account creation. The
// password cap matches the bcrypt input limit.
type Registration struct {
	Username string `json:"username" validate:"required,min=3,max=80"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

func (r *Registration) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
