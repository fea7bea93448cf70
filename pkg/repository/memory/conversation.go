package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/intellimed/scribe/pkg/domain/model"
)

type conversationRepository struct {
	mu            sync.RWMutex
	conversations map[int64]*model.Conversation
	nextID        int64
}

func newConversationRepository() *conversationRepository {
	return &conversationRepository{
		conversations: make(map[int64]*model.Conversation),
		nextID:        1,
	}
}

func copyConversation(c *model.Conversation) *model.Conversation {
	copied := *c
	return &copied
}

func (r *conversationRepository) Create(ctx context.Context, input *model.ConversationInput, recordedAt time.Time) (*model.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := &model.Conversation{
		PatientID:    input.PatientID,
		UserID:       input.UserID,
		RecordingURL: input.RecordingURL,
		Transcript:   input.Transcript,
		RecordedAt:   recordedAt.UTC(),
	}
	created.ID = r.nextID
	r.nextID++

	r.conversations[created.ID] = created
	return copyConversation(created), nil
}

func (r *conversationRepository) Get(ctx context.Context, id int64) (*model.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.conversations[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "conversation not found", goerr.V("id", id))
	}

	return copyConversation(c), nil
}

func (r *conversationRepository) ListByPatient(ctx context.Context, patientID int64) ([]*model.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Conversation, 0)
	for _, c := range r.conversations {
		if c.PatientID == patientID {
			result = append(result, copyConversation(c))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}
