package transform

import (
	"context"

	"github.com/dravidKumar007/hair-Cut-Model/internal/domain"
	"github.com/dravidKumar007/hair-Cut-Model/internal/infra"
	"github.com/dravidKumar007/hair-Cut-Model/internal/prompt"
	"github.com/dravidKumar007/hair-Cut-Model/internal/state"
)

// Pipeline is the submission path: validate the selection, compose the
// instruction, make exactly one backend call and fold the outcome back into
// the session state. The loading flag is cleared on every completion path,
// including panics unwinding through Run.
type Pipeline struct {
	backend Backend
	logger  infra.Logger
}

// NewPipeline wires a pipeline to its transform backend.
func NewPipeline(backend Backend, logger infra.Logger) *Pipeline {
	return &Pipeline{backend: backend, logger: logger}
}

// Run executes one submission for the session and returns the resulting view
// state. The loading flag is claimed atomically through the store; when
// another submission already holds it, Run returns the untouched state with
// domain.ErrSubmitInFlight and never reaches the backend.
func (p *Pipeline) Run(ctx context.Context, sessions *state.Store, sessionID string) (state.ViewState, error) {
	st, started := sessions.BeginSubmit(sessionID)
	if !started {
		return st, domain.ErrSubmitInFlight
	}

	completed := false
	defer func() {
		if !completed {
			sessions.Apply(sessionID, state.SubmitFailed{Message: "the transform was interrupted, please try again"})
		}
	}()

	if st.Photo == nil {
		completed = true
		return sessions.Apply(sessionID, state.SubmitFailed{Message: domain.ErrNoPhoto.Error()}), nil
	}

	instruction := prompt.Compose(st.Selection)
	output, err := p.backend.Transform(ctx, *st.Photo, instruction)
	completed = true
	if err != nil {
		p.logger.Warn().Err(err).Msg("transform: backend call failed")
		return sessions.Apply(sessionID, state.SubmitFailed{Message: err.Error()}), nil
	}

	p.logger.Info().Int("prompt_bytes", len(instruction)).Msg("transform: image generated")
	return sessions.Apply(sessionID, state.SubmitSucceeded{Output: output}), nil
}
