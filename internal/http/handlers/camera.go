package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dravidKumar007/hair-Cut-Model/internal/capture"
	"github.com/dravidKumar007/hair-Cut-Model/internal/state"
)

type cameraDTO struct {
	State    capture.CameraState `json:"state"`
	Error    string              `json:"error,omitempty"`
	Released bool                `json:"released"`
}

func cameraStateDTO(cam *capture.Camera) cameraDTO {
	dto := cameraDTO{State: cam.State(), Released: cam.Released()}
	if err := cam.Err(); err != nil {
		dto.Error = err.Error()
	}
	return dto
}

// CameraOpen starts a camera acquisition for the session. A camera stuck in
// its terminal error state is replaced so the user can try again.
func (a *App) CameraOpen(w http.ResponseWriter, r *http.Request) {
	sid := a.sessionID(r)
	cam := a.Sessions.Camera(sid)
	if cam.State() == capture.StateError {
		cam = a.Sessions.ReplaceCamera(sid)
	}
	if err := cam.Open(); err != nil {
		a.error(w, http.StatusConflict, "camera_state", err.Error())
		return
	}
	a.json(w, http.StatusOK, cameraStateDTO(cam))
}

// CameraFrame records the latest preview frame streamed by the client.
func (a *App) CameraFrame(w http.ResponseWriter, r *http.Request) {
	cam := a.Sessions.Camera(a.sessionID(r))
	data, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes+1))
	if err != nil || len(data) == 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "frame payload is required")
		return
	}
	if len(data) > maxUploadBytes {
		a.error(w, http.StatusRequestEntityTooLarge, "too_large", "frame exceeds the 10 MB limit")
		return
	}
	if err := cam.Frame(data, r.Header.Get("Content-Type")); err != nil {
		status := http.StatusUnsupportedMediaType
		if errors.Is(err, capture.ErrCameraState) {
			status = http.StatusConflict
		}
		a.error(w, status, "camera_frame", err.Error())
		return
	}
	a.json(w, http.StatusOK, cameraStateDTO(cam))
}

type cameraFailRequest struct {
	Reason capture.FailReason `json:"reason"`
}

// CameraFail records that stream acquisition failed in the browser. The
// reason maps to a distinct user-facing message which also lands in the view
// state.
func (a *App) CameraFail(w http.ResponseWriter, r *http.Request) {
	sid := a.sessionID(r)
	var req cameraFailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	cam := a.Sessions.Camera(sid)
	if err := cam.Fail(req.Reason); err != nil {
		a.error(w, http.StatusConflict, "camera_state", err.Error())
		return
	}
	a.Sessions.Apply(sid, state.SetError{Message: cam.Err().Error()})
	a.json(w, http.StatusOK, cameraStateDTO(cam))
}

// CameraCapture snapshots the current frame, selects it as the session photo
// and closes the camera.
func (a *App) CameraCapture(w http.ResponseWriter, r *http.Request) {
	sid := a.sessionID(r)
	cam := a.Sessions.Camera(sid)
	shot, err := cam.Capture()
	if err != nil {
		status := http.StatusConflict
		if errors.Is(err, capture.ErrNoFrame) {
			status = http.StatusUnprocessableEntity
		}
		a.error(w, status, "camera_capture", err.Error())
		return
	}

	img, preview, err := capture.Select(shot.Data, shot.MIME)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", err.Error())
		return
	}
	st := a.Sessions.Apply(sid, state.SetPhoto{Image: img, Preview: preview})
	a.json(w, http.StatusOK, viewStateDTO(st))
}

// CameraClose cancels the camera from any state, releasing everything.
func (a *App) CameraClose(w http.ResponseWriter, r *http.Request) {
	cam := a.Sessions.Camera(a.sessionID(r))
	cam.Close()
	a.json(w, http.StatusOK, cameraStateDTO(cam))
}
