package customer

import "time"

type Customer struct {
	CustomerID          int       `json:"customer_id"`
	Name                string    `json:"name"`
	FieldID             int       `json:"field_id"`
	RepresentativeName  string    `json:"representative_name"`
	RepresentativePhone string    `json:"representative_phone"`
	RepresentativeEmail string    `json:"representative_email"`
	RepresentativeRole  string    `json:"representative_role"`
	FieldName           string    `json:"field_name,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type CreateInput struct {
	Name                string `json:"name"`
	FieldID             int    `json:"field_id"`
	RepresentativeName  string `json:"representative_name"`
	RepresentativePhone string `json:"representative_phone"`
	RepresentativeEmail string `json:"representative_email"`
	RepresentativeRole  string `json:"representative_role"`
}

type UpdateInput struct {
	Name                *string `json:"name,omitempty"`
	FieldID             *int    `json:"field_id,omitempty"`
	RepresentativeName  *string `json:"representative_name,omitempty"`
	RepresentativePhone *string `json:"representative_phone,omitempty"`
	RepresentativeEmail *string `json:"representative_email,omitempty"`
	RepresentativeRole  *string `json:"representative_role,omitempty"`
}
