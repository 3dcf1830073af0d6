package state

import (
	"github.com/dravidKumar007/hair-Cut-Model/internal/capture"
	"github.com/dravidKumar007/hair-Cut-Model/internal/domain"
)

// ViewState is the serializable record of everything the UI renders for one
// session: the style selection, the selected photo with its preview, the
// in-flight flag, the inline error and the output image. All transitions go
// through Apply so there is no implicit shared mutable state.
type ViewState struct {
	Selection domain.Selection       `json:"selection"`
	Photo     *capture.SelectedImage `json:"-"`
	Preview   string                 `json:"preview,omitempty"`
	Loading   bool                   `json:"loading"`
	Error     string                 `json:"error,omitempty"`
	Output    string                 `json:"output,omitempty"`
}

// NewViewState returns the initial state: every axis on its sentinel, no
// photo, nothing in flight.
func NewViewState() ViewState {
	return ViewState{Selection: domain.DefaultSelection()}
}

// Action is a single user-visible state transition.
type Action interface {
	apply(ViewState) ViewState
}

// Apply returns the state after the action. It never mutates its input.
func Apply(s ViewState, a Action) ViewState {
	return a.apply(s)
}

// SetPhoto stores a freshly selected image and its preview, clearing any
// stale error.
type SetPhoto struct {
	Image   capture.SelectedImage
	Preview string
}

func (a SetPhoto) apply(s ViewState) ViewState {
	img := a.Image
	s.Photo = &img
	s.Preview = a.Preview
	s.Error = ""
	return s
}

// ClearPhoto drops the current selection and preview.
type ClearPhoto struct{}

func (ClearPhoto) apply(s ViewState) ViewState {
	s.Photo = nil
	s.Preview = ""
	return s
}

// SetSelection replaces the three style axes.
type SetSelection struct {
	Selection domain.Selection
}

func (a SetSelection) apply(s ViewState) ViewState {
	s.Selection = a.Selection.Normalize()
	return s
}

// SetError surfaces an inline message without touching the rest of the state.
type SetError struct {
	Message string
}

func (a SetError) apply(s ViewState) ViewState {
	s.Error = a.Message
	return s
}

// SubmitStarted marks a submission in flight. A second submission while one
// is pending is ignored; the UI keeps a single request in flight.
type SubmitStarted struct{}

func (SubmitStarted) apply(s ViewState) ViewState {
	if s.Loading {
		return s
	}
	s.Loading = true
	s.Error = ""
	return s
}

// SubmitSucceeded stores the output image and clears the in-flight flag.
type SubmitSucceeded struct {
	Output string
}

func (a SubmitSucceeded) apply(s ViewState) ViewState {
	s.Loading = false
	s.Output = a.Output
	s.Error = ""
	return s
}

// SubmitFailed clears the in-flight flag and surfaces the failure inline.
// The previous output, if any, is kept so the user does not lose a result to
// a failed retry.
type SubmitFailed struct {
	Message string
}

func (a SubmitFailed) apply(s ViewState) ViewState {
	s.Loading = false
	s.Error = a.Message
	return s
}

// Reset returns the session to its initial state.
type Reset struct{}

func (Reset) apply(ViewState) ViewState {
	return NewViewState()
}
