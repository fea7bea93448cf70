package interfaces

import (
	"context"
	"io"

	"github.com/intellimed/scribe/pkg/domain/model"
	"github.com/intellimed/scribe/pkg/domain/types"
)

// Transcriber converts captured audio into transcript text. Implementations
// wrap an external speech-to-text provider.
type Transcriber interface {
	// Transcribe sends the audio stream to the provider and returns the
	// transcript text. The filename hints the container format to the
	// provider.
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)
}

// NoteGenerator produces clinical documentation from transcripts and SOAP
// notes via an external chat-completion provider. All methods are hard-fail:
// a provider error surfaces as an error, never as fabricated content.
type NoteGenerator interface {
	// GenerateSOAP converts a conversation transcript into the four SOAP
	// sections. Format and detail shape the instruction text only.
	GenerateSOAP(ctx context.Context, transcript string, format types.NoteFormat, detail types.NoteDetail) (*model.SOAPSections, error)

	// GenerateChartSummary produces a brief reference summary of the note
	GenerateChartSummary(ctx context.Context, sections model.SOAPSections) (string, error)

	// CheckClinicalGuidelines reviews the note against clinical guidelines
	CheckClinicalGuidelines(ctx context.Context, sections model.SOAPSections) (string, error)

	// GenerateMedicalCodes suggests CPT and ICD-10 codes for the note
	GenerateMedicalCodes(ctx context.Context, sections model.SOAPSections) (string, error)
}
