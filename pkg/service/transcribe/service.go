package transcribe

import (
	"context"
	"io"

	"github.com/intellimed/scribe/pkg/domain/interfaces"
	"github.com/intellimed/scribe/pkg/utils/logging"
)

// Source indicates which path produced a transcript
type Source string

const (
	// SourceProvider means the external speech-to-text provider answered
	SourceProvider Source = "provider"
	// SourceFallback means the provider failed and the canned demo
	// transcript was substituted
	SourceFallback Source = "fallback"
)

// Result is a transcript tagged with its origin so callers and tests can
// tell the degraded path from the real one.
type Result struct {
	Transcript string
	Source     Source
}

// Fallback reports whether the demo transcript was substituted
func (r Result) Fallback() bool {
	return r.Source == SourceFallback
}

// Service wraps a Transcriber with the demo fallback policy: provider
// failures degrade to a canned transcript instead of propagating. The
// policy applies to transcription only; note generation has no such
// fallback because fabricated clinical content is unacceptable.
type Service struct {
	transcriber interfaces.Transcriber
}

// New creates a transcription service over the given provider client
func New(transcriber interfaces.Transcriber) *Service {
	return &Service{transcriber: transcriber}
}

// Transcribe converts audio to text, substituting the demo transcript when
// the provider call fails or no provider is configured. The provider error
// is logged, never returned.
func (s *Service) Transcribe(ctx context.Context, filename string, audio io.Reader) Result {
	if s.transcriber == nil {
		logging.From(ctx).Debug("no transcription provider configured, using fallback transcript")
		return Result{Transcript: FallbackTranscript, Source: SourceFallback}
	}

	text, err := s.transcriber.Transcribe(ctx, filename, audio)
	return applyFallback(ctx, text, err)
}

// applyFallback is the visible policy function mapping a provider outcome to
// a tagged result
func applyFallback(ctx context.Context, text string, err error) Result {
	if err != nil {
		logging.From(ctx).Warn("transcription provider failed, using fallback transcript",
			"error", err.Error(),
		)
		return Result{Transcript: FallbackTranscript, Source: SourceFallback}
	}
	return Result{Transcript: text, Source: SourceProvider}
}
