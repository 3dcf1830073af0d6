package transform

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/dravidKumar007/hair-Cut-Model/internal/domain"
)

// DecodeDataURI splits an image data URI into its raw bytes and MIME type.
func DecodeDataURI(uri string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return nil, "", fmt.Errorf("not a data URI")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", fmt.Errorf("malformed data URI")
	}
	mime := strings.TrimSuffix(meta, ";base64")
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("decode data URI: %w", err)
	}
	return data, mime, nil
}

// DownloadFilename names the exported result after the current hairstyle
// selection and a timestamp, e.g. hairstyle-buzz-cut-20260831-153045.png.
func DownloadFilename(sel domain.Selection, now time.Time) string {
	return fmt.Sprintf("hairstyle-%s-%s.png", styleSlug(sel.Hairstyle), now.Format("20060102-150405"))
}

func styleSlug(style string) string {
	if domain.IsDefault(style) {
		return "default"
	}
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(style) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
		if b.Len() >= 40 {
			break
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "custom"
	}
	return slug
}
