package httpapi

import "cryptoquiz/internal/quiz"

type questionResponse struct {
	Number  int      `json:"number"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

type sessionStateResponse struct {
	SessionID string            `json:"session_id"`
	Completed bool              `json:"completed"`
	Question  *questionResponse `json:"question,omitempty"`
	Result    *quiz.Result      `json:"result,omitempty"`
}

type selectionRequest struct {
	Option string `json:"option"`
}

type errorResponse struct {
	Error string `json:"error"`
}
