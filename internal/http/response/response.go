// Package response writes the gateway's JSON envelopes and maps errors to
// HTTP statuses.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"talentboard/internal/api"
	"talentboard/internal/board"
	"talentboard/internal/common"
)

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type errorBody struct {
	Detail string `json:"detail"`
}

func JSON(w http.ResponseWriter, status int, data any) {
	write(w, status, envelope{Success: true, Data: data})
}

func Message(w http.ResponseWriter, status int, message string, data any) {
	write(w, status, envelope{Success: true, Message: message, Data: data})
}

// Error renders err as {detail} with the HTTP status implied by its type:
// upstream api.Error statuses pass through (transport failures become 502),
// coded errors map per code, everything else is a 500.
func Error(w http.ResponseWriter, err error) {
	var upstream *api.Error
	if errors.As(err, &upstream) {
		status := upstream.Status
		if status == 0 {
			status = http.StatusBadGateway
		}
		write(w, status, errorBody{Detail: upstream.Detail})
		return
	}
	if errors.Is(err, board.ErrNotOpen) {
		write(w, http.StatusNotFound, errorBody{Detail: "board not open"})
		return
	}
	if errors.Is(err, board.ErrClosed) {
		write(w, http.StatusConflict, errorBody{Detail: "board closed"})
		return
	}

	status := statusOf(common.CodeOf(err))
	detail := common.MessageOf(err)
	if detail == "" {
		detail = http.StatusText(status)
	}
	write(w, status, errorBody{Detail: detail})
}

func statusOf(code common.Code) int {
	switch code {
	case common.CodeValidation:
		return http.StatusBadRequest
	case common.CodeUnauthorized:
		return http.StatusUnauthorized
	case common.CodeForbidden:
		return http.StatusForbidden
	case common.CodeNotFound:
		return http.StatusNotFound
	case common.CodeConflict:
		return http.StatusConflict
	case common.CodeRateLimited:
		return http.StatusTooManyRequests
	case common.CodeUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func write(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
