package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/intellimed/scribe/pkg/domain/model"
	"github.com/intellimed/scribe/pkg/utils/errutil"
	"github.com/intellimed/scribe/pkg/utils/logging"
)

// respondJSON writes v as a JSON response with the given status code
func respondJSON(ctx context.Context, w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.From(ctx).Error("failed to encode response", "error", err.Error())
	}
}

// handleError maps domain errors onto the HTTP taxonomy: invalid input to
// 400, missing records to 404, everything else to 500 with the underlying
// message included.
func handleError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
	case errors.Is(err, model.ErrNotFound):
		errutil.HandleHTTP(ctx, w, err, http.StatusNotFound)
	default:
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
	}
}

// decodeJSON decodes a request body into v, mapping malformed payloads to
// the validation error class
func decodeJSON(r io.Reader, v any) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return goerr.Wrap(model.ErrInvalidInput, "malformed JSON request body",
			goerr.V("cause", err.Error()))
	}
	return nil
}
