package http

import (
	"net/http"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/intellimed/scribe/pkg/domain/model"
)

// maxUploadSize caps uploaded audio at 10MB, enforced before any provider
// call
const maxUploadSize = 10 << 20

func (s *Server) uploadAudio(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		handleError(ctx, w, goerr.Wrap(model.ErrInvalidInput, "failed to parse multipart form",
			goerr.V("cause", err.Error())))
		return
	}

	file, header, err := r.FormFile("audioFile")
	if err != nil {
		handleError(ctx, w, goerr.Wrap(model.ErrInvalidInput, "no audio file uploaded"))
		return
	}
	defer file.Close() //nolint:errcheck // read-only handle

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "audio/") {
		handleError(ctx, w, goerr.Wrap(model.ErrInvalidInput, "uploaded file is not audio",
			goerr.V("contentType", contentType)))
		return
	}

	result, err := s.uc.Transcription.TranscribeAudio(ctx, header.Filename, file)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]string{
		"transcript":   result.Transcript,
		"recordingUrl": result.RecordingRef,
		"source":       string(result.Source),
	})
}
