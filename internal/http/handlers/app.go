package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dravidKumar007/hair-Cut-Model/internal/auth"
	"github.com/dravidKumar007/hair-Cut-Model/internal/domain"
	"github.com/dravidKumar007/hair-Cut-Model/internal/infra"
	"github.com/dravidKumar007/hair-Cut-Model/internal/middleware"
	"github.com/dravidKumar007/hair-Cut-Model/internal/state"
	"github.com/dravidKumar007/hair-Cut-Model/internal/transform"
)

// App carries the dependencies shared by every handler.
type App struct {
	Config   *infra.Config
	Logger   infra.Logger
	Sessions *state.Store
	Pipeline *transform.Pipeline
	Catalog  domain.Catalog
	Auth     *auth.Client
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, kind, message string) {
	a.json(w, code, errorResponse{Error: kind, Message: message})
}

func (a *App) sessionID(r *http.Request) string {
	return middleware.SessionIDFromContext(r.Context())
}

// stateDTO is the wire form of the session's view state. The photo bytes
// themselves never leave the server; the UI renders the preview data URI.
type stateDTO struct {
	Selection domain.Selection `json:"selection"`
	HasPhoto  bool             `json:"has_photo"`
	Preview   string           `json:"preview,omitempty"`
	Loading   bool             `json:"loading"`
	Error     string           `json:"error,omitempty"`
	Output    string           `json:"output,omitempty"`
}

func viewStateDTO(st state.ViewState) stateDTO {
	return stateDTO{
		Selection: st.Selection,
		HasPhoto:  st.Photo != nil,
		Preview:   st.Preview,
		Loading:   st.Loading,
		Error:     st.Error,
		Output:    st.Output,
	}
}
