package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/intellimed/scribe/pkg/domain/interfaces"
	"github.com/intellimed/scribe/pkg/domain/model"
	"github.com/intellimed/scribe/pkg/domain/types"
)

// SOAPUseCase handles SOAP note generation, retrieval and patching
type SOAPUseCase struct {
	repo      interfaces.Repository
	generator interfaces.NoteGenerator
}

func NewSOAPUseCase(repo interfaces.Repository, generator interfaces.NoteGenerator) *SOAPUseCase {
	return &SOAPUseCase{repo: repo, generator: generator}
}

// GenerateSOAPInput carries a SOAP generation request. ConversationID zero
// means generate-only; non-zero persists the result against that
// conversation.
type GenerateSOAPInput struct {
	Transcript     string
	ConversationID int64
	Format         types.NoteFormat
	Detail         types.NoteDetail
}

// Validate checks the request shape
func (x *GenerateSOAPInput) Validate() error {
	var fields []string
	if x.Transcript == "" {
		fields = append(fields, "transcript")
	}
	if x.Format != "" && !x.Format.IsValid() {
		fields = append(fields, "format")
	}
	if x.Detail != "" && !x.Detail.IsValid() {
		fields = append(fields, "detail")
	}
	if len(fields) > 0 {
		return goerr.Wrap(model.ErrInvalidInput, "invalid SOAP generation request",
			goerr.V(model.FieldsKey, fields))
	}
	return nil
}

// GenerateSOAPResult is the outcome of a generation request. Note is nil
// unless the sections were persisted.
type GenerateSOAPResult struct {
	Sections  model.SOAPSections
	Note      *model.SOAPNote
	Persisted bool
}

// GenerateSOAP converts a transcript into SOAP sections via the note
// generator, persisting them when a conversation id is supplied. Generation
// failures surface as errors; there is no fallback for clinical content.
func (uc *SOAPUseCase) GenerateSOAP(ctx context.Context, input *GenerateSOAPInput) (*GenerateSOAPResult, error) {
	if uc.generator == nil {
		return nil, ErrGeneratorNotConfigured
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sections, err := uc.generator.GenerateSOAP(ctx, input.Transcript, input.Format, input.Detail)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate SOAP notes",
			goerr.V(ConversationIDKey, input.ConversationID),
		)
	}

	result := &GenerateSOAPResult{Sections: *sections}

	if input.ConversationID != 0 {
		note, err := uc.repo.SOAPNote().Create(ctx, &model.SOAPNoteInput{
			ConversationID: input.ConversationID,
			Subjective:     sections.Subjective,
			Objective:      sections.Objective,
			Assessment:     sections.Assessment,
			Plan:           sections.Plan,
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to persist SOAP note",
				goerr.V(ConversationIDKey, input.ConversationID),
			)
		}
		result.Note = note
		result.Persisted = true
	}

	return result, nil
}

// GetSOAPNote retrieves a SOAP note by ID
func (uc *SOAPUseCase) GetSOAPNote(ctx context.Context, id int64) (*model.SOAPNote, error) {
	return uc.repo.SOAPNote().Get(ctx, id)
}

// UpdateSOAPNote applies a partial update to a SOAP note. Only fields
// present in the patch overwrite stored values; a patch carrying no fields
// is rejected.
func (uc *SOAPUseCase) UpdateSOAPNote(ctx context.Context, id int64, patch *model.SOAPNotePatch) (*model.SOAPNote, error) {
	if patch == nil || patch.IsEmpty() {
		return nil, goerr.Wrap(model.ErrInvalidInput, "SOAP note patch carries no fields",
			goerr.V(SOAPNoteIDKey, id))
	}

	updated, err := uc.repo.SOAPNote().Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	return updated, nil
}
