package capture

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"sync"

	_ "image/gif"
	_ "image/png"
)

// Camera models the lifecycle of one live-camera acquisition:
//
//	closed -> requesting -> ready -> closed
//
// with a terminal error state reachable from requesting. The browser owns the
// actual getUserMedia stream; this side is the authority on the lifecycle and
// guarantees the buffered preview frame is released on every exit transition,
// including sweeper teardown of an abandoned session.
type Camera struct {
	mu       sync.Mutex
	state    CameraState
	frame    []byte
	failure  error
	released bool
}

// CameraState names the lifecycle states of a Camera.
type CameraState string

const (
	StateClosed     CameraState = "closed"
	StateRequesting CameraState = "requesting"
	StateReady      CameraState = "ready"
	StateError      CameraState = "error"
)

// FailReason identifies why stream acquisition failed in the browser.
type FailReason string

const (
	FailDenied      FailReason = "denied"
	FailNoDevice    FailReason = "notfound"
	FailUnsupported FailReason = "unsupported"
)

var (
	ErrPermissionDenied = errors.New("camera permission was denied")
	ErrNoDevice         = errors.New("no camera device was found")
	ErrUnsupported      = errors.New("camera capture is not supported in this browser")
	ErrCameraState      = errors.New("camera is not in a valid state for this operation")
	ErrNoFrame          = errors.New("no camera frame available to capture")
)

const snapshotJPEGQuality = 92

// NewCamera returns a camera in the closed state with nothing acquired.
func NewCamera() *Camera {
	return &Camera{state: StateClosed, released: true}
}

// Open transitions closed -> requesting and marks the handle acquired.
func (c *Camera) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateClosed {
		return ErrCameraState
	}
	c.state = StateRequesting
	c.released = false
	return nil
}

// Frame records the latest preview frame. The first decoded frame flips
// requesting -> ready; later frames replace the buffer in place.
func (c *Camera) Frame(data []byte, mime string) error {
	img, _, err := Select(data, mime)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.state {
	case StateRequesting:
		c.state = StateReady
	case StateReady:
	default:
		return ErrCameraState
	}
	c.frame = img.Data
	return nil
}

// Fail moves requesting -> error with a reason-specific message and releases
// everything acquired so far.
func (c *Camera) Fail(reason FailReason) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateRequesting {
		return ErrCameraState
	}
	switch reason {
	case FailDenied:
		c.failure = ErrPermissionDenied
	case FailNoDevice:
		c.failure = ErrNoDevice
	default:
		c.failure = ErrUnsupported
	}
	c.state = StateError
	c.release()
	return nil
}

// Capture snapshots the buffered frame at its native resolution, re-encodes
// it as a compressed JPEG and closes the camera. The returned image goes
// through Select like any other capture source.
func (c *Camera) Capture() (SelectedImage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateReady {
		return SelectedImage{}, ErrCameraState
	}
	frame := c.frame
	c.state = StateClosed
	c.release()
	if len(frame) == 0 {
		return SelectedImage{}, ErrNoFrame
	}

	decoded, _, err := image.Decode(bytes.NewReader(frame))
	if err != nil {
		return SelectedImage{}, ErrNoFrame
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, decoded, &jpeg.Options{Quality: snapshotJPEGQuality}); err != nil {
		return SelectedImage{}, err
	}
	return SelectedImage{Data: buf.Bytes(), MIME: "image/jpeg"}, nil
}

// Close cancels the camera from any state. It is idempotent and always
// releases the buffered frame; a terminal error state keeps its failure.
func (c *Camera) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateError {
		c.state = StateClosed
	}
	c.release()
}

// State returns the current lifecycle state.
func (c *Camera) State() CameraState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err returns the acquisition failure, if any.
func (c *Camera) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failure
}

// Released reports whether all acquired resources have been let go.
func (c *Camera) Released() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.released
}

// release must be called with the mutex held.
func (c *Camera) release() {
	c.frame = nil
	c.released = true
}
