package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/intellimed/scribe/pkg/domain/model"
)

type transcriptSegmentRepository struct {
	mu       sync.RWMutex
	segments map[int64]*model.TranscriptSegment
	nextID   int64
}

func newTranscriptSegmentRepository() *transcriptSegmentRepository {
	return &transcriptSegmentRepository{
		segments: make(map[int64]*model.TranscriptSegment),
		nextID:   1,
	}
}

func copyTranscriptSegment(s *model.TranscriptSegment) *model.TranscriptSegment {
	copied := *s
	return &copied
}

func (r *transcriptSegmentRepository) Create(ctx context.Context, input *model.TranscriptSegmentInput) (*model.TranscriptSegment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := &model.TranscriptSegment{
		ConversationID: input.ConversationID,
		Speaker:        input.Speaker,
		Content:        input.Content,
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
	}
	created.ID = r.nextID
	r.nextID++

	r.segments[created.ID] = created
	return copyTranscriptSegment(created), nil
}

func (r *transcriptSegmentRepository) Get(ctx context.Context, id int64) (*model.TranscriptSegment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, exists := r.segments[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "transcript segment not found", goerr.V("id", id))
	}

	return copyTranscriptSegment(s), nil
}

func (r *transcriptSegmentRepository) ListByConversation(ctx context.Context, conversationID int64) ([]*model.TranscriptSegment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.TranscriptSegment, 0)
	for _, s := range r.segments {
		if s.ConversationID == conversationID {
			result = append(result, copyTranscriptSegment(s))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].StartTime < result[j].StartTime
	})

	return result, nil
}
