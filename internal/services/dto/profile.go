package dto

type SaveProfileRequest struct {
	UserID     uint    `json:"user_id" validate:"required"`
	Phone      string  `json:"phone"`
	University string  `json:"university"`
	Course     string  `json:"course"`
	Year       int     `json:"year"`
	GPA        float64 `json:"gpa"`
	Skills     string  `json:"skills"`
	Interests  string  `json:"interests"`
}
