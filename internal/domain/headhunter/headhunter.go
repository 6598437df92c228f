package headhunter

import "time"

type Headhunter struct {
	HeadhunterID int       `json:"headhunter_id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	AreaID       int       `json:"area_id"`
	Role         string    `json:"role"`
	AreaName     string    `json:"area_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateInput struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	AreaID   int    `json:"area_id"`
	Role     string `json:"role,omitempty"`
	Password string `json:"password"`
}

type UpdateInput struct {
	Name   *string `json:"name,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Email  *string `json:"email,omitempty"`
	AreaID *int    `json:"area_id,omitempty"`
	Role   *string `json:"role,omitempty"`
}
