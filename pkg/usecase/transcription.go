package usecase

import (
	"context"
	"io"
	"path"

	"github.com/google/uuid"

	"github.com/intellimed/scribe/pkg/service/transcribe"
)

// TranscriptionUseCase handles audio upload transcription
type TranscriptionUseCase struct {
	transcriber *transcribe.Service
}

func NewTranscriptionUseCase(svc *transcribe.Service) *TranscriptionUseCase {
	return &TranscriptionUseCase{transcriber: svc}
}

// TranscriptionResult pairs a tagged transcript with the server-assigned
// recording reference for the uploaded audio
type TranscriptionResult struct {
	transcribe.Result
	RecordingRef string
}

// TranscribeAudio converts uploaded audio into a transcript. A provider
// failure degrades to the demo fallback transcript rather than erroring;
// the result is tagged with which path was taken.
func (uc *TranscriptionUseCase) TranscribeAudio(ctx context.Context, filename string, audio io.Reader) (*TranscriptionResult, error) {
	if uc.transcriber == nil {
		return nil, ErrTranscriberNotConfigured
	}

	ext := path.Ext(filename)
	if ext == "" {
		ext = ".wav"
	}
	ref := "recordings/" + uuid.NewString() + ext

	result := uc.transcriber.Transcribe(ctx, filename, audio)

	return &TranscriptionResult{
		Result:       result,
		RecordingRef: ref,
	}, nil
}
