package http

import (
	"net/http"

	"github.com/intellimed/scribe/pkg/domain/model"
	"github.com/intellimed/scribe/pkg/domain/types"
	"github.com/intellimed/scribe/pkg/usecase"
)

type generateSOAPRequest struct {
	Transcript     string           `json:"transcript"`
	ConversationID int64            `json:"conversationId,omitempty"`
	Format         types.NoteFormat `json:"format,omitempty"`
	Detail         types.NoteDetail `json:"detail,omitempty"`
}

type generateSOAPResponse struct {
	ID         int64  `json:"id,omitempty"`
	Subjective string `json:"subjective"`
	Objective  string `json:"objective"`
	Assessment string `json:"assessment"`
	Plan       string `json:"plan"`
}

func (s *Server) generateSOAPNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req generateSOAPRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		handleError(ctx, w, err)
		return
	}

	result, err := s.uc.SOAP.GenerateSOAP(ctx, &usecase.GenerateSOAPInput{
		Transcript:     req.Transcript,
		ConversationID: req.ConversationID,
		Format:         req.Format,
		Detail:         req.Detail,
	})
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	resp := generateSOAPResponse{
		Subjective: result.Sections.Subjective,
		Objective:  result.Sections.Objective,
		Assessment: result.Sections.Assessment,
		Plan:       result.Sections.Plan,
	}

	// Persisted notes get 201 and carry the new id
	if result.Persisted {
		resp.ID = result.Note.ID
		respondJSON(ctx, w, http.StatusCreated, resp)
		return
	}

	respondJSON(ctx, w, http.StatusOK, resp)
}

func (s *Server) getSOAPNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseID(r, "id")
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	note, err := s.uc.SOAP.GetSOAPNote(ctx, id)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, note)
}

func (s *Server) updateSOAPNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseID(r, "id")
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	var patch model.SOAPNotePatch
	if err := decodeJSON(r.Body, &patch); err != nil {
		handleError(ctx, w, err)
		return
	}

	note, err := s.uc.SOAP.UpdateSOAPNote(ctx, id, &patch)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, note)
}
