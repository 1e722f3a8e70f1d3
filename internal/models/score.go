package models

import (
	"github.com/go-playground/validator/v10"
)

// Score is one completed quiz attempt. Rows are append-only: created
// once when a submission is graded, never updated or deleted.
type Score struct {
	ID     int64 `db:"id" json:"id"`
	Score  int   `db:"score" json:"score" validate:"gte=0"`
	UserID int64 `db:"user_id" json:"user_id" validate:"required"`
}

func (s *Score) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}
