package capture

import (
	"errors"
	"strings"
	"testing"

	"github.com/dravidKumar007/hair-Cut-Model/internal/domain"
)

func TestSelectRejectsNonImage(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		mime string
	}{
		{name: "declared text", data: []byte("hello"), mime: "text/plain"},
		{name: "declared pdf", data: []byte("%PDF-1.4"), mime: "application/pdf"},
		{name: "sniffed text", data: []byte("just some words"), mime: ""},
		{name: "empty file", data: nil, mime: "image/png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Select(tt.data, tt.mime)
			if !errors.Is(err, domain.ErrNotImage) {
				t.Fatalf("Select() error = %v, want ErrNotImage", err)
			}
		})
	}
}

func TestSelectAcceptsImage(t *testing.T) {
	img, preview, err := Select([]byte{0x01, 0x02, 0x03}, "image/jpeg")
	if err != nil {
		t.Fatalf("Select() unexpected error: %v", err)
	}
	if img.MIME != "image/jpeg" {
		t.Fatalf("MIME = %q, want image/jpeg", img.MIME)
	}
	if !strings.HasPrefix(preview, "data:image/jpeg;base64,") {
		t.Fatalf("preview is not a data URI: %q", preview)
	}
}

func TestSelectSniffsWhenUndeclared(t *testing.T) {
	png := pngBytes(t, 2, 2)
	img, _, err := Select(png, "")
	if err != nil {
		t.Fatalf("Select() unexpected error: %v", err)
	}
	if img.MIME != "image/png" {
		t.Fatalf("MIME = %q, want image/png", img.MIME)
	}
}

func TestSelectStripsMIMEParameters(t *testing.T) {
	img, _, err := Select([]byte{0xff, 0xd8, 0xff}, "image/jpeg; charset=binary")
	if err != nil {
		t.Fatalf("Select() unexpected error: %v", err)
	}
	if img.MIME != "image/jpeg" {
		t.Fatalf("MIME = %q, want image/jpeg", img.MIME)
	}
}
