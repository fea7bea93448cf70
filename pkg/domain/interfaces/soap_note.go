package interfaces

import (
	"context"

	"github.com/intellimed/scribe/pkg/domain/model"
)

// SOAPNoteRepository defines the interface for SOAPNote data access
type SOAPNoteRepository interface {
	// Create creates a new SOAP note with auto-generated ID and timestamps
	Create(ctx context.Context, input *model.SOAPNoteInput) (*model.SOAPNote, error)

	// Get retrieves a SOAP note by ID
	Get(ctx context.Context, id int64) (*model.SOAPNote, error)

	// GetByConversation retrieves the SOAP note for a conversation.
	// Returns nil, nil when the conversation has no note.
	GetByConversation(ctx context.Context, conversationID int64) (*model.SOAPNote, error)

	// Update applies a partial update. Only fields present in the patch
	// overwrite stored values; UpdatedAt advances on every call.
	Update(ctx context.Context, id int64, patch *model.SOAPNotePatch) (*model.SOAPNote, error)
}
