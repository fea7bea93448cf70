package http

import (
	"net/http"

	"github.com/intellimed/scribe/pkg/domain/model"
)

func (s *Server) createConversation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input model.ConversationInput
	if err := decodeJSON(r.Body, &input); err != nil {
		handleError(ctx, w, err)
		return
	}

	conversation, err := s.uc.Conversation.CreateConversation(ctx, &input)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, conversation)
}

func (s *Server) getConversation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseID(r, "id")
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	conversation, err := s.uc.Conversation.GetConversation(ctx, id)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, conversation)
}

func (s *Server) createTranscriptSegment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input model.TranscriptSegmentInput
	if err := decodeJSON(r.Body, &input); err != nil {
		handleError(ctx, w, err)
		return
	}

	segment, err := s.uc.Segment.CreateSegment(ctx, &input)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, segment)
}

func (s *Server) listTranscriptSegments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := parseID(r, "id")
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	segments, err := s.uc.Segment.ListByConversation(ctx, id)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, segments)
}
