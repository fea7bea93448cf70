package interfaces

import (
	"context"

	"github.com/intellimed/scribe/pkg/domain/model"
)

// TranscriptSegmentRepository defines the interface for TranscriptSegment
// data access
type TranscriptSegmentRepository interface {
	// Create creates a new transcript segment with auto-generated ID
	Create(ctx context.Context, input *model.TranscriptSegmentInput) (*model.TranscriptSegment, error)

	// Get retrieves a transcript segment by ID
	Get(ctx context.Context, id int64) (*model.TranscriptSegment, error)

	// ListByConversation retrieves all segments for a conversation in
	// ascending start-time order regardless of insertion order
	ListByConversation(ctx context.Context, conversationID int64) ([]*model.TranscriptSegment, error)
}
