// Package catalog holds the reference lists used to classify candidates and
// projects: expertises, business fields, areas and seniority levels.
package catalog

import "time"

type Expertise struct {
	ExpertiseID int       `json:"expertise_id"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Field struct {
	FieldID   int       `json:"field_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Area struct {
	AreaID    int       `json:"area_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Level struct {
	LevelID   int       `json:"level_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
