package project

import "time"

type Status string

const (
	StatusSearching    Status = "TIMKIEMUNGVIEN"
	StatusInterviewing Status = "UNGVIENPHONGVAN"
	StatusTrialing     Status = "UNGVIENTHUVIEC"
	StatusOnHold       Status = "TAMNGUNG"
	StatusCancelled    Status = "HUY"
	StatusCompleted    Status = "HOANTHANH"
)

var AllStatuses = []Status{
	StatusSearching,
	StatusInterviewing,
	StatusTrialing,
	StatusOnHold,
	StatusCancelled,
	StatusCompleted,
}

// Active reports whether the project is still recruiting.
func (s Status) Active() bool {
	switch s {
	case StatusSearching, StatusInterviewing, StatusTrialing:
		return true
	default:
		return false
	}
}

type Type string

const (
	TypeFixed    Type = "CODINH"
	TypeSeasonal Type = "THOIVU"
)

type Project struct {
	ProjectID        int       `json:"project_id"`
	Name             string    `json:"name"`
	StartDate        string    `json:"start_date"`
	EndDate          string    `json:"end_date"`
	Budget           float64   `json:"budget"`
	BudgetCurrency   string    `json:"budget_currency"`
	Type             Type      `json:"type"`
	RequiredRecruits int       `json:"required_recruits"`
	Recruited        int       `json:"recruited"`
	Status           Status    `json:"status"`
	CustomerID       int       `json:"customer_id"`
	ExpertiseID      int       `json:"expertise_id"`
	AreaID           int       `json:"area_id"`
	LevelID          int       `json:"level_id"`
	CustomerName     string    `json:"customer_name,omitempty"`
	ExpertiseName    string    `json:"expertise_name,omitempty"`
	AreaName         string    `json:"area_name,omitempty"`
	LevelName        string    `json:"level_name,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// DisplayName renders "[customer] expertise" when both joins are present,
// falling back to the raw project name.
func (p Project) DisplayName() string {
	if p.CustomerName != "" && p.ExpertiseName != "" {
		return "[" + p.CustomerName + "] " + p.ExpertiseName
	}
	if p.Name != "" {
		return p.Name
	}
	return "Chưa có tên"
}

type CreateInput struct {
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	Budget           float64 `json:"budget"`
	BudgetCurrency   string  `json:"budget_currency"`
	Type             Type    `json:"type"`
	RequiredRecruits int     `json:"required_recruits"`
	Recruited        int     `json:"recruited"`
	Status           Status  `json:"status"`
	CustomerID       int     `json:"customer_id"`
	ExpertiseID      int     `json:"expertise_id"`
	AreaID           int     `json:"area_id"`
	LevelID          int     `json:"level_id"`
}

type UpdateInput struct {
	Name             *string  `json:"name,omitempty"`
	StartDate        *string  `json:"start_date,omitempty"`
	EndDate          *string  `json:"end_date,omitempty"`
	Budget           *float64 `json:"budget,omitempty"`
	BudgetCurrency   *string  `json:"budget_currency,omitempty"`
	Type             *Type    `json:"type,omitempty"`
	RequiredRecruits *int     `json:"required_recruits,omitempty"`
	Recruited        *int     `json:"recruited,omitempty"`
	Status           *Status  `json:"status,omitempty"`
	CustomerID       *int     `json:"customer_id,omitempty"`
	ExpertiseID      *int     `json:"expertise_id,omitempty"`
	AreaID           *int     `json:"area_id,omitempty"`
	LevelID          *int     `json:"level_id,omitempty"`
}
