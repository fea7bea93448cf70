package interfaces

import (
	"context"

	"github.com/intellimed/scribe/pkg/domain/model"
)

// AdditionalNoteRepository defines the interface for AdditionalNote data
// access. Notes are append-only; there is no update or delete.
type AdditionalNoteRepository interface {
	// Create creates a new additional note with auto-generated ID
	Create(ctx context.Context, input *model.AdditionalNoteInput) (*model.AdditionalNote, error)

	// Get retrieves an additional note by ID
	Get(ctx context.Context, id int64) (*model.AdditionalNote, error)

	// ListBySOAPNote retrieves all additional notes for a SOAP note in
	// creation order
	ListBySOAPNote(ctx context.Context, soapNoteID int64) ([]*model.AdditionalNote, error)
}
