package interfaces

import (
	"context"
	"time"

	"github.com/intellimed/scribe/pkg/domain/model"
)

// ConversationRepository defines the interface for Conversation data access
type ConversationRepository interface {
	// Create creates a new conversation with auto-generated ID and the given
	// recorded timestamp
	Create(ctx context.Context, input *model.ConversationInput, recordedAt time.Time) (*model.Conversation, error)

	// Get retrieves a conversation by ID
	Get(ctx context.Context, id int64) (*model.Conversation, error)

	// ListByPatient retrieves all conversations for a specific patient
	ListByPatient(ctx context.Context, patientID int64) ([]*model.Conversation, error)
}
