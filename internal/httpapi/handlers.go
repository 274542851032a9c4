package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func (a *API) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	live, err := a.sessions.create(a.deck)
	if err != nil {
		a.log.WithError(err).Error("failed to create session")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to create session"})
		return
	}

	a.log.WithField("session_id", live.id).Info("session created")

	live.mu.Lock()
	state := snapshotState(live)
	live.mu.Unlock()

	writeJSON(w, http.StatusCreated, state)
}

func (a *API) HandleQuestion(w http.ResponseWriter, r *http.Request) {
	live, ok := a.sessions.get(chi.URLParam(r, "session_id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "session not found"})
		return
	}

	live.mu.Lock()
	state := snapshotState(live)
	live.mu.Unlock()

	writeJSON(w, http.StatusOK, state)
}

func (a *API) HandleSelect(w http.ResponseWriter, r *http.Request) {
	live, ok := a.sessions.get(chi.URLParam(r, "session_id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "session not found"})
		return
	}

	defer r.Body.Close()
	var request selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if request.Option == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "option is required"})
		return
	}

	live.mu.Lock()
	err := live.session.Select(request.Option)
	live.mu.Unlock()
	if err != nil {
		writeSessionError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	live, ok := a.sessions.get(chi.URLParam(r, "session_id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "session not found"})
		return
	}

	live.mu.Lock()
	err := live.session.Submit()
	var state sessionStateResponse
	if err == nil {
		state = snapshotState(live)
	}
	live.mu.Unlock()

	if err != nil {
		writeSessionError(w, err)
		return
	}

	if state.Completed {
		a.log.WithFields(logrus.Fields{
			"session_id": live.id,
			"score":      state.Result.Score,
			"total":      state.Result.Total,
		}).Info("session completed")
	}

	writeJSON(w, http.StatusOK, state)
}
