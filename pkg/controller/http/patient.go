package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/intellimed/scribe/pkg/domain/model"
)

// parseID extracts a positive int64 path parameter
func parseID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, goerr.Wrap(model.ErrInvalidInput, "invalid id parameter",
			goerr.V("param", name),
			goerr.V("value", raw),
		)
	}
	return id, nil
}

func (s *Server) createPatient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input model.PatientInput
	if err := decodeJSON(r.Body, &input); err != nil {
		handleError(ctx, w, err)
		return
	}

	patient, err := s.uc.Patient.CreatePatient(ctx, &input)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, patient)
}

func (s *Server) listPatients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	patients, err := s.uc.Patient.ListPatients(ctx)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, patients)
}

func (s *Server) getPatient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseID(r, "id")
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	patient, err := s.uc.Patient.GetPatient(ctx, id)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, patient)
}

func (s *Server) listPatientConversations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseID(r, "id")
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	conversations, err := s.uc.Conversation.ListByPatient(ctx, id)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, conversations)
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseID(r, "id")
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	user, err := s.uc.User.GetUser(ctx, id)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, user)
}
