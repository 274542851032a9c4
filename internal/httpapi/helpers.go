package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"cryptoquiz/internal/quiz"
)

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, quiz.ErrNoSelection):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "no option selected"})
	case errors.Is(err, quiz.ErrSessionClosed):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "session already completed"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "request failed"})
	}
}

// snapshotState reads the current view under the session lock.
func snapshotState(live *liveSession) sessionStateResponse {
	state := sessionStateResponse{
		SessionID: live.id,
		Completed: live.session.Finished(),
	}
	if state.Completed {
		result := *live.view.result
		state.Result = &result
		return state
	}
	state.Question = &questionResponse{
		Number:  live.view.number,
		Text:    live.view.question,
		Options: live.view.options,
	}
	return state
}
