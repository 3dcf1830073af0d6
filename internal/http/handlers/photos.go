package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/dravidKumar007/hair-Cut-Model/internal/capture"
	"github.com/dravidKumar007/hair-Cut-Model/internal/domain"
	"github.com/dravidKumar007/hair-Cut-Model/internal/state"
)

const maxUploadBytes = 10 << 20

// PhotoUpload accepts a photo from the file picker or a drag-and-drop. A
// non-image upload surfaces an inline error and leaves any previously
// selected photo untouched.
func (a *App) PhotoUpload(w http.ResponseWriter, r *http.Request) {
	sid := a.sessionID(r)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid multipart payload")
		return
	}
	file, header, err := r.FormFile("photo")
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "photo file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "failed to read photo")
		return
	}
	if len(data) > maxUploadBytes {
		a.error(w, http.StatusRequestEntityTooLarge, "too_large", "photo exceeds the 10 MB limit")
		return
	}

	img, preview, err := capture.Select(data, header.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, domain.ErrNotImage) {
			st := a.Sessions.Apply(sid, state.SetError{Message: err.Error()})
			a.Logger.Debug().
				Str("source", r.FormValue("source")).
				Str("filename", header.Filename).
				Msg("photo rejected: not an image")
			a.json(w, http.StatusUnsupportedMediaType, viewStateDTO(st))
			return
		}
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	st := a.Sessions.Apply(sid, state.SetPhoto{Image: img, Preview: preview})
	a.json(w, http.StatusOK, viewStateDTO(st))
}

// PhotoClear drops the current photo selection.
func (a *App) PhotoClear(w http.ResponseWriter, r *http.Request) {
	st := a.Sessions.Apply(a.sessionID(r), state.ClearPhoto{})
	a.json(w, http.StatusOK, viewStateDTO(st))
}
