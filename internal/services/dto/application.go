package dto

type ApplyRequest struct {
	UserID   uint   `json:"user_id" validate:"required"`
	Position string `json:"position" validate:"required"`
	Company  string `json:"company" validate:"required"`
}
