package nominee

import "time"

type Status string

const (
	StatusProposed    Status = "DECU"
	StatusInterview   Status = "PHONGVAN"
	StatusNegotiation Status = "THUONGLUONG"
	StatusTrial       Status = "THUVIEC"
	StatusRejected    Status = "TUCHOI"
	StatusContracted  Status = "KYHOPDONG"
)

// AllStatuses lists the pipeline stages in board-column order.
var AllStatuses = []Status{
	StatusProposed,
	StatusInterview,
	StatusNegotiation,
	StatusTrial,
	StatusRejected,
	StatusContracted,
}

func (s Status) Valid() bool {
	switch s {
	case StatusProposed, StatusInterview, StatusNegotiation, StatusTrial, StatusRejected, StatusContracted:
		return true
	default:
		return false
	}
}

// Label returns the Vietnamese display title used for the board column.
func (s Status) Label() string {
	switch s {
	case StatusProposed:
		return "Đề cử"
	case StatusInterview:
		return "Phỏng vấn"
	case StatusNegotiation:
		return "Thương lượng"
	case StatusTrial:
		return "Thử việc"
	case StatusRejected:
		return "Từ chối"
	case StatusContracted:
		return "Ký hợp đồng"
	default:
		return string(s)
	}
}

// Nominee is one candidate's application to one project.
// Name fields are server-side projections for display only.
type Nominee struct {
	NomineeID         int       `json:"nominee_id"`
	CandidateID       int       `json:"candidate_id"`
	ProjectID         int       `json:"project_id"`
	Status            Status    `json:"status"`
	Campaign          string    `json:"campaign"`
	YearsOfExperience int       `json:"years_of_experience"`
	SalaryExpectation float64   `json:"salary_expectation"`
	NoticePeriod      int       `json:"notice_period"`
	NomineeName       string    `json:"nominee_name,omitempty"`
	ProjectName       string    `json:"project_name,omitempty"`
	HeadhunterName    string    `json:"headhunter_name,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type CreateInput struct {
	CandidateID       int     `json:"candidate_id"`
	ProjectID         int     `json:"project_id"`
	Status            Status  `json:"status"`
	Campaign          string  `json:"campaign"`
	YearsOfExperience int     `json:"years_of_experience"`
	SalaryExpectation float64 `json:"salary_expectation"`
	NoticePeriod      int     `json:"notice_period"`
}

// UpdateInput is a partial update; nil fields are omitted from the request
// body, so a drag move sends {"status": ...} alone.
type UpdateInput struct {
	CandidateID       *int     `json:"candidate_id,omitempty"`
	ProjectID         *int     `json:"project_id,omitempty"`
	Status            *Status  `json:"status,omitempty"`
	Campaign          *string  `json:"campaign,omitempty"`
	YearsOfExperience *int     `json:"years_of_experience,omitempty"`
	SalaryExpectation *float64 `json:"salary_expectation,omitempty"`
	NoticePeriod      *int     `json:"notice_period,omitempty"`
}

// StatusUpdate builds the single-field patch issued by a board drag.
func StatusUpdate(status Status) UpdateInput {
	return UpdateInput{Status: &status}
}
