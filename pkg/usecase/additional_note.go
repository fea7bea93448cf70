package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/intellimed/scribe/pkg/domain/interfaces"
	"github.com/intellimed/scribe/pkg/domain/model"
	"github.com/intellimed/scribe/pkg/domain/types"
)

// AdditionalNoteUseCase handles secondary AI-generated artifacts derived
// from SOAP notes: chart summaries, guideline checks, billing codes.
// Repeated generation of the same kind appends; nothing is overwritten.
type AdditionalNoteUseCase struct {
	repo      interfaces.Repository
	generator interfaces.NoteGenerator
}

func NewAdditionalNoteUseCase(repo interfaces.Repository, generator interfaces.NoteGenerator) *AdditionalNoteUseCase {
	return &AdditionalNoteUseCase{repo: repo, generator: generator}
}

// GenerateAdditionalNote generates content of the given kind from the SOAP
// sections and persists it as an AdditionalNote. Generation failures surface
// as errors; clinical content is never fabricated locally.
func (uc *AdditionalNoteUseCase) GenerateAdditionalNote(ctx context.Context, kind types.NoteKind, soapNoteID int64, sections model.SOAPSections) (*model.AdditionalNote, error) {
	if uc.generator == nil {
		return nil, ErrGeneratorNotConfigured
	}
	if soapNoteID == 0 {
		return nil, goerr.Wrap(model.ErrInvalidInput, "invalid additional note request",
			goerr.V(model.FieldsKey, []string{"soapNoteId"}))
	}

	var content string
	var err error
	switch kind {
	case types.NoteKindChartSummary:
		content, err = uc.generator.GenerateChartSummary(ctx, sections)
	case types.NoteKindClinicalGuidelines:
		content, err = uc.generator.CheckClinicalGuidelines(ctx, sections)
	case types.NoteKindMedicalCodes:
		content, err = uc.generator.GenerateMedicalCodes(ctx, sections)
	default:
		return nil, goerr.Wrap(model.ErrInvalidInput, "invalid additional note kind",
			goerr.V(model.FieldsKey, []string{"type"}),
			goerr.V("kind", kind),
		)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate additional note",
			goerr.V(SOAPNoteIDKey, soapNoteID),
			goerr.V("kind", kind),
		)
	}

	created, err := uc.repo.AdditionalNote().Create(ctx, &model.AdditionalNoteInput{
		SOAPNoteID: soapNoteID,
		Kind:       kind,
		Content:    content,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to persist additional note",
			goerr.V(SOAPNoteIDKey, soapNoteID),
		)
	}

	return created, nil
}

// GenerateAllAdditionalNotes generates one note of every kind from the same
// SOAP sections, running the provider calls concurrently. All-or-nothing:
// if any generation fails, nothing is persisted.
func (uc *AdditionalNoteUseCase) GenerateAllAdditionalNotes(ctx context.Context, soapNoteID int64, sections model.SOAPSections) ([]*model.AdditionalNote, error) {
	if uc.generator == nil {
		return nil, ErrGeneratorNotConfigured
	}
	if soapNoteID == 0 {
		return nil, goerr.Wrap(model.ErrInvalidInput, "invalid additional note request",
			goerr.V(model.FieldsKey, []string{"soapNoteId"}))
	}

	kinds := types.AllNoteKinds()
	contents := make([]string, len(kinds))

	eg, ctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		eg.Go(func() error {
			var content string
			var err error
			switch kind {
			case types.NoteKindChartSummary:
				content, err = uc.generator.GenerateChartSummary(ctx, sections)
			case types.NoteKindClinicalGuidelines:
				content, err = uc.generator.CheckClinicalGuidelines(ctx, sections)
			case types.NoteKindMedicalCodes:
				content, err = uc.generator.GenerateMedicalCodes(ctx, sections)
			}
			if err != nil {
				return goerr.Wrap(err, "failed to generate additional note",
					goerr.V("kind", kind))
			}
			contents[i] = content
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// Persist sequentially in kind order so ids are deterministic
	notes := make([]*model.AdditionalNote, 0, len(kinds))
	for i, kind := range kinds {
		created, err := uc.repo.AdditionalNote().Create(ctx, &model.AdditionalNoteInput{
			SOAPNoteID: soapNoteID,
			Kind:       kind,
			Content:    contents[i],
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to persist additional note",
				goerr.V(SOAPNoteIDKey, soapNoteID),
			)
		}
		notes = append(notes, created)
	}

	return notes, nil
}

// ListAdditionalNotes retrieves all additional notes for a SOAP note
func (uc *AdditionalNoteUseCase) ListAdditionalNotes(ctx context.Context, soapNoteID int64) ([]*model.AdditionalNote, error) {
	return uc.repo.AdditionalNote().ListBySOAPNote(ctx, soapNoteID)
}
