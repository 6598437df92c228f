package candidate

import "time"

type Gender string

const (
	GenderMale   Gender = "NAM"
	GenderFemale Gender = "NU"
	GenderOther  Gender = "KHAC"
)

type Candidate struct {
	CandidateID    int       `json:"candidate_id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	YearOfBirth    int       `json:"year_of_birth"`
	Gender         Gender    `json:"gender"`
	Education      string    `json:"education"`
	Source         string    `json:"source"`
	ExpertiseID    int       `json:"expertise_id"`
	FieldID        int       `json:"field_id"`
	AreaID         int       `json:"area_id"`
	LevelID        int       `json:"level_id"`
	HeadhunterID   int       `json:"headhunter_id"`
	ExpertiseName  string    `json:"expertise_name,omitempty"`
	FieldName      string    `json:"field_name,omitempty"`
	AreaName       string    `json:"area_name,omitempty"`
	LevelName      string    `json:"level_name,omitempty"`
	HeadhunterName string    `json:"headhunter_name,omitempty"`
	Note           string    `json:"note"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateInput struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	YearOfBirth  int    `json:"year_of_birth"`
	Gender       Gender `json:"gender"`
	Education    string `json:"education"`
	Source       string `json:"source"`
	ExpertiseID  int    `json:"expertise_id"`
	FieldID      int    `json:"field_id"`
	AreaID       int    `json:"area_id"`
	LevelID      int    `json:"level_id"`
	HeadhunterID int    `json:"headhunter_id"`
	Note         string `json:"note"`
}

type UpdateInput struct {
	Name         *string `json:"name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Email        *string `json:"email,omitempty"`
	YearOfBirth  *int    `json:"year_of_birth,omitempty"`
	Gender       *Gender `json:"gender,omitempty"`
	Education    *string `json:"education,omitempty"`
	Source       *string `json:"source,omitempty"`
	ExpertiseID  *int    `json:"expertise_id,omitempty"`
	FieldID      *int    `json:"field_id,omitempty"`
	AreaID       *int    `json:"area_id,omitempty"`
	LevelID      *int    `json:"level_id,omitempty"`
	HeadhunterID *int    `json:"headhunter_id,omitempty"`
	Note         *string `json:"note,omitempty"`
}
