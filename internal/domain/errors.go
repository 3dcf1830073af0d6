package domain

import "errors"

var (
	// ErrNoPhoto is returned when a transform is requested before any photo
	// has been selected.
	ErrNoPhoto = errors.New("please select a photo first")

	// ErrNotImage rejects files whose MIME type is not image/*.
	ErrNotImage = errors.New("please choose an image file")

	// ErrSubmitInFlight rejects a transform while the session already has
	// one loading.
	ErrSubmitInFlight = errors.New("a transform is already in progress")

	// ErrNoAPIKey is returned by the direct backend when no Gemini key is
	// configured.
	ErrNoAPIKey = errors.New("gemini api key is not configured")

	// ErrNoImageReturned is returned when the model response carries no
	// inline image part.
	ErrNoImageReturned = errors.New("no image returned")
)
