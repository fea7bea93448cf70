package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/intellimed/scribe/pkg/domain/interfaces"
	"github.com/intellimed/scribe/pkg/domain/model"
)

// SegmentUseCase handles timestamped transcript segments
type SegmentUseCase struct {
	repo interfaces.Repository
}

func NewSegmentUseCase(repo interfaces.Repository) *SegmentUseCase {
	return &SegmentUseCase{repo: repo}
}

// CreateSegment validates and stores a transcript segment
func (uc *SegmentUseCase) CreateSegment(ctx context.Context, input *model.TranscriptSegmentInput) (*model.TranscriptSegment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := uc.repo.TranscriptSegment().Create(ctx, input)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create transcript segment")
	}

	return created, nil
}

// ListByConversation retrieves segments for a conversation in ascending
// start-time order
func (uc *SegmentUseCase) ListByConversation(ctx context.Context, conversationID int64) ([]*model.TranscriptSegment, error) {
	return uc.repo.TranscriptSegment().ListByConversation(ctx, conversationID)
}
