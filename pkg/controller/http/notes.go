package http

import (
	"net/http"

	"github.com/intellimed/scribe/pkg/domain/model"
	"github.com/intellimed/scribe/pkg/domain/types"
)

type generateNoteRequest struct {
	SOAPNoteID int64  `json:"soapNoteId"`
	Subjective string `json:"subjective"`
	Objective  string `json:"objective"`
	Assessment string `json:"assessment"`
	Plan       string `json:"plan"`
}

type generateNoteResponse struct {
	ID      int64          `json:"id"`
	Content string         `json:"content"`
	Kind    types.NoteKind `json:"type"`
}

func (s *Server) generateChartSummary(w http.ResponseWriter, r *http.Request) {
	s.generateAdditionalNote(w, r, types.NoteKindChartSummary)
}

func (s *Server) checkClinicalGuidelines(w http.ResponseWriter, r *http.Request) {
	s.generateAdditionalNote(w, r, types.NoteKindClinicalGuidelines)
}

func (s *Server) generateMedicalCodes(w http.ResponseWriter, r *http.Request) {
	s.generateAdditionalNote(w, r, types.NoteKindMedicalCodes)
}

func (s *Server) generateAdditionalNote(w http.ResponseWriter, r *http.Request, kind types.NoteKind) {
	ctx := r.Context()

	var req generateNoteRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		handleError(ctx, w, err)
		return
	}

	sections := model.SOAPSections{
		Subjective: req.Subjective,
		Objective:  req.Objective,
		Assessment: req.Assessment,
		Plan:       req.Plan,
	}

	note, err := s.uc.Additional.GenerateAdditionalNote(ctx, kind, req.SOAPNoteID, sections)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, generateNoteResponse{
		ID:      note.ID,
		Content: note.Content,
		Kind:    note.Kind,
	})
}

func (s *Server) listAdditionalNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseID(r, "soapNoteId")
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	notes, err := s.uc.Additional.ListAdditionalNotes(ctx, id)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, notes)
}
