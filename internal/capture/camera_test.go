package capture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 40), G: uint8(y * 40), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestCameraHappyPath(t *testing.T) {
	cam := NewCamera()
	if cam.State() != StateClosed || !cam.Released() {
		t.Fatalf("new camera must start closed and released")
	}

	if err := cam.Open(); err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if cam.State() != StateRequesting {
		t.Fatalf("state = %q, want requesting", cam.State())
	}

	if err := cam.Frame(pngBytes(t, 4, 3), "image/png"); err != nil {
		t.Fatalf("Frame() error: %v", err)
	}
	if cam.State() != StateReady {
		t.Fatalf("state = %q, want ready after first frame", cam.State())
	}

	shot, err := cam.Capture()
	if err != nil {
		t.Fatalf("Capture() error: %v", err)
	}
	if shot.MIME != "image/jpeg" {
		t.Fatalf("snapshot MIME = %q, want image/jpeg", shot.MIME)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(shot.Data))
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if cfg.Width != 4 || cfg.Height != 3 {
		t.Fatalf("snapshot is %dx%d, want native 4x3", cfg.Width, cfg.Height)
	}
	if cam.State() != StateClosed || !cam.Released() {
		t.Fatalf("capture must close and release the camera")
	}
}

func TestCameraFailReasons(t *testing.T) {
	tests := []struct {
		reason FailReason
		want   error
	}{
		{FailDenied, ErrPermissionDenied},
		{FailNoDevice, ErrNoDevice},
		{FailUnsupported, ErrUnsupported},
	}
	for _, tt := range tests {
		t.Run(string(tt.reason), func(t *testing.T) {
			cam := NewCamera()
			if err := cam.Open(); err != nil {
				t.Fatalf("Open() error: %v", err)
			}
			if err := cam.Fail(tt.reason); err != nil {
				t.Fatalf("Fail() error: %v", err)
			}
			if cam.State() != StateError {
				t.Fatalf("state = %q, want error", cam.State())
			}
			if !errors.Is(cam.Err(), tt.want) {
				t.Fatalf("Err() = %v, want %v", cam.Err(), tt.want)
			}
			if !cam.Released() {
				t.Fatalf("failed acquisition must leave no active stream")
			}
		})
	}
}

func TestCameraCloseReleasesFromEveryState(t *testing.T) {
	t.Run("requesting", func(t *testing.T) {
		cam := NewCamera()
		_ = cam.Open()
		cam.Close()
		if cam.State() != StateClosed || !cam.Released() {
			t.Fatalf("close from requesting: state=%q released=%v", cam.State(), cam.Released())
		}
	})
	t.Run("ready", func(t *testing.T) {
		cam := NewCamera()
		_ = cam.Open()
		_ = cam.Frame(pngBytes(t, 2, 2), "image/png")
		cam.Close()
		if cam.State() != StateClosed || !cam.Released() {
			t.Fatalf("close from ready: state=%q released=%v", cam.State(), cam.Released())
		}
	})
	t.Run("error stays terminal", func(t *testing.T) {
		cam := NewCamera()
		_ = cam.Open()
		_ = cam.Fail(FailDenied)
		cam.Close()
		if cam.State() != StateError {
			t.Fatalf("close must not clear the terminal error state")
		}
		if !cam.Released() {
			t.Fatalf("camera must stay released")
		}
	})
	t.Run("idempotent", func(t *testing.T) {
		cam := NewCamera()
		cam.Close()
		cam.Close()
		if cam.State() != StateClosed || !cam.Released() {
			t.Fatalf("double close must be a no-op")
		}
	})
}

func TestCameraInvalidTransitions(t *testing.T) {
	cam := NewCamera()
	if _, err := cam.Capture(); !errors.Is(err, ErrCameraState) {
		t.Fatalf("Capture() on closed camera: err = %v, want ErrCameraState", err)
	}
	if err := cam.Frame(pngBytes(t, 2, 2), "image/png"); !errors.Is(err, ErrCameraState) {
		t.Fatalf("Frame() on closed camera: err = %v, want ErrCameraState", err)
	}
	if err := cam.Fail(FailDenied); !errors.Is(err, ErrCameraState) {
		t.Fatalf("Fail() on closed camera: err = %v, want ErrCameraState", err)
	}

	_ = cam.Open()
	if err := cam.Open(); !errors.Is(err, ErrCameraState) {
		t.Fatalf("double Open(): err = %v, want ErrCameraState", err)
	}
}

func TestCameraFrameRejectsNonImage(t *testing.T) {
	cam := NewCamera()
	_ = cam.Open()
	if err := cam.Frame([]byte("not a frame"), "text/plain"); err == nil {
		t.Fatalf("Frame() with non-image payload must fail")
	}
	if cam.State() != StateRequesting {
		t.Fatalf("bad frame must not advance the state, got %q", cam.State())
	}
}
