package handlers

import (
	"encoding/json"
	"net/http"

	"talentboard/internal/board"
	"talentboard/internal/common"
	"talentboard/internal/domain/nominee"
	"talentboard/internal/http/middleware"
	"talentboard/internal/http/response"
	"talentboard/internal/session"
)

type BoardHandler struct {
	boards *board.Registry
}

func NewBoardHandler(boards *board.Registry) *BoardHandler {
	return &BoardHandler{boards: boards}
}

func (h *BoardHandler) caller(r *http.Request) (string, *session.Session, error) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		return "", nil, common.NewError(common.CodeUnauthorized, "not authenticated", nil)
	}
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		return "", nil, common.NewError(common.CodeUnauthorized, "not authenticated", nil)
	}
	return sessionID, sess, nil
}

type boardView struct {
	ProjectID int            `json:"project_id"`
	Columns   []board.Column `json:"columns"`
}

// Open loads the board for a project: full nominee fetch plus the candidate
// join, then registers it for the session.
func (h *BoardHandler) Open(w http.ResponseWriter, r *http.Request, projectID int) {
	sessionID, sess, err := h.caller(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	opened, err := h.boards.Open(r.Context(), sessionID, sess, projectID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, boardView{ProjectID: projectID, Columns: opened.Columns()})
}

// Get renders the current column partition of an open board.
func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request, projectID int) {
	sessionID, _, err := h.caller(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	opened, err := h.boards.Get(sessionID, projectID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, boardView{ProjectID: projectID, Columns: opened.Columns()})
}

type moveRequest struct {
	NomineeID int            `json:"nominee_id"`
	Status    nominee.Status `json:"status"`
}

// Move is the drop of a drag gesture: it forwards the status-change intent
// to the board's CompleteDrag. A move onto the current column is a no-op
// and still succeeds.
func (h *BoardHandler) Move(w http.ResponseWriter, r *http.Request, projectID int) {
	sessionID, _, err := h.caller(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, common.NewError(common.CodeValidation, "invalid request body", err))
		return
	}
	if req.NomineeID <= 0 {
		response.Error(w, common.NewError(common.CodeValidation, "nominee_id is required", nil))
		return
	}
	if !req.Status.Valid() {
		response.Error(w, common.NewError(common.CodeValidation, "unknown pipeline status", nil))
		return
	}
	opened, err := h.boards.Get(sessionID, projectID)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := opened.CompleteDrag(r.Context(), req.NomineeID, req.Status); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, boardView{ProjectID: projectID, Columns: opened.Columns()})
}

type nominateRequest struct {
	CandidateID       int            `json:"candidate_id"`
	Status            nominee.Status `json:"status"`
	Campaign          string         `json:"campaign"`
	YearsOfExperience int            `json:"years_of_experience"`
	SalaryExpectation float64        `json:"salary_expectation"`
	NoticePeriod      int            `json:"notice_period"`
}

// Nominate creates a nominee for the open project and appends the card
// without a board reload.
func (h *BoardHandler) Nominate(w http.ResponseWriter, r *http.Request, projectID int) {
	sessionID, _, err := h.caller(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req nominateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, common.NewError(common.CodeValidation, "invalid request body", err))
		return
	}
	if req.CandidateID <= 0 {
		response.Error(w, common.NewError(common.CodeValidation, "candidate_id is required", nil))
		return
	}
	if req.Campaign == "" {
		response.Error(w, common.NewError(common.CodeValidation, "campaign is required", nil))
		return
	}
	if req.YearsOfExperience < 0 || req.SalaryExpectation < 0 || req.NoticePeriod < 0 {
		response.Error(w, common.NewError(common.CodeValidation, "experience, salary and notice period must not be negative", nil))
		return
	}
	opened, err := h.boards.Get(sessionID, projectID)
	if err != nil {
		response.Error(w, err)
		return
	}
	card, err := opened.Nominate(r.Context(), nominee.CreateInput{
		CandidateID:       req.CandidateID,
		ProjectID:         projectID,
		Status:            req.Status,
		Campaign:          req.Campaign,
		YearsOfExperience: req.YearsOfExperience,
		SalaryExpectation: req.SalaryExpectation,
		NoticePeriod:      req.NoticePeriod,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, card)
}

// Remove deletes a nominee from the board and upstream.
func (h *BoardHandler) Remove(w http.ResponseWriter, r *http.Request, projectID, nomineeID int) {
	sessionID, _, err := h.caller(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	opened, err := h.boards.Get(sessionID, projectID)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := opened.Remove(r.Context(), nomineeID); err != nil {
		response.Error(w, err)
		return
	}
	response.Message(w, http.StatusOK, "nominee removed", nil)
}

// Close unregisters the board; late responses from in-flight updates are
// dropped afterwards.
func (h *BoardHandler) Close(w http.ResponseWriter, r *http.Request, projectID int) {
	sessionID, _, err := h.caller(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	h.boards.Close(sessionID, projectID)
	response.Message(w, http.StatusOK, "board closed", nil)
}
