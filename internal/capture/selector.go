package capture

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/dravidKumar007/hair-Cut-Model/internal/domain"
)

// SelectedImage is the in-memory photo fed to the transform call. It lives
// only for the duration of a session and is never persisted.
type SelectedImage struct {
	Data []byte
	MIME string
}

// DataURI renders the image as a base64 data URI usable directly as an <img>
// source.
func (img SelectedImage) DataURI() string {
	return "data:" + img.MIME + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}

// Select validates a user-supplied file from any capture source (picker,
// drop, camera snapshot) and derives the preview data URI. When the declared
// MIME type is empty the content is sniffed. Non-image files are rejected so
// callers can keep their previous selection untouched.
func Select(data []byte, declaredMIME string) (SelectedImage, string, error) {
	mime := strings.TrimSpace(declaredMIME)
	if mime == "" || mime == "application/octet-stream" {
		mime = http.DetectContentType(data)
	}
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	if len(data) == 0 || !strings.HasPrefix(mime, "image/") {
		return SelectedImage{}, "", domain.ErrNotImage
	}
	img := SelectedImage{Data: data, MIME: mime}
	return img, img.DataURI(), nil
}
