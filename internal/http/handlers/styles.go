package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dravidKumar007/hair-Cut-Model/internal/domain"
	"github.com/dravidKumar007/hair-Cut-Model/internal/state"
)

// Styles lists the suggested options per axis.
func (a *App) Styles(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, a.Catalog)
}

// State returns the session's current view state.
func (a *App) State(w http.ResponseWriter, r *http.Request) {
	st := a.Sessions.State(a.sessionID(r))
	a.json(w, http.StatusOK, viewStateDTO(st))
}

// UpdateSelection replaces the three style axes for the session.
func (a *App) UpdateSelection(w http.ResponseWriter, r *http.Request) {
	var sel domain.Selection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	st := a.Sessions.Apply(a.sessionID(r), state.SetSelection{Selection: sel})
	a.json(w, http.StatusOK, viewStateDTO(st))
}

// Reset returns the session to its initial state.
func (a *App) Reset(w http.ResponseWriter, r *http.Request) {
	st := a.Sessions.Apply(a.sessionID(r), state.Reset{})
	a.json(w, http.StatusOK, viewStateDTO(st))
}
