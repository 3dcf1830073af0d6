package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dravidKumar007/hair-Cut-Model/internal/domain"
	"github.com/dravidKumar007/hair-Cut-Model/internal/transform"
)

// Transform runs one submission against the configured backend. Only one
// submission per session may be in flight.
func (a *App) Transform(w http.ResponseWriter, r *http.Request) {
	st, err := a.Pipeline.Run(r.Context(), a.Sessions, a.sessionID(r))
	if err != nil {
		a.error(w, http.StatusConflict, "in_flight", err.Error())
		return
	}
	if st.Error != "" {
		status := http.StatusBadGateway
		if st.Error == domain.ErrNoPhoto.Error() {
			status = http.StatusBadRequest
		}
		a.json(w, status, viewStateDTO(st))
		return
	}
	a.json(w, http.StatusOK, viewStateDTO(st))
}

// ResultDownload exports the output image as an attachment named from the
// hairstyle selection and the current time.
func (a *App) ResultDownload(w http.ResponseWriter, r *http.Request) {
	st := a.Sessions.State(a.sessionID(r))
	if st.Output == "" {
		a.error(w, http.StatusNotFound, "not_found", "no result to download")
		return
	}

	data, mime, err := transform.DecodeDataURI(st.Output)
	if err != nil {
		a.Logger.Error().Err(err).Msg("download: stored output is not a data URI")
		a.error(w, http.StatusInternalServerError, "internal", "result is not downloadable")
		return
	}

	filename := transform.DownloadFilename(st.Selection, time.Now())
	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
