package transform

import (
	"context"

	"github.com/dravidKumar007/hair-Cut-Model/internal/capture"
)

// Backend turns a photo plus an instruction into an edited image. The direct
// Gemini client and the auth-provider relay both satisfy it; the pipeline
// never knows which one it is talking to.
type Backend interface {
	Transform(ctx context.Context, img capture.SelectedImage, instruction string) (string, error)
}
