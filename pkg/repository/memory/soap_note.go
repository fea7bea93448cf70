package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/intellimed/scribe/pkg/domain/model"
)

type soapNoteRepository struct {
	mu     sync.RWMutex
	notes  map[int64]*model.SOAPNote
	nextID int64
}

func newSOAPNoteRepository() *soapNoteRepository {
	return &soapNoteRepository{
		notes:  make(map[int64]*model.SOAPNote),
		nextID: 1,
	}
}

func copySOAPNote(n *model.SOAPNote) *model.SOAPNote {
	copied := *n
	return &copied
}

func (r *soapNoteRepository) Create(ctx context.Context, input *model.SOAPNoteInput) (*model.SOAPNote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := &model.SOAPNote{
		ConversationID: input.ConversationID,
		Subjective:     input.Subjective,
		Objective:      input.Objective,
		Assessment:     input.Assessment,
		Plan:           input.Plan,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created.ID = r.nextID
	r.nextID++

	r.notes[created.ID] = created
	return copySOAPNote(created), nil
}

func (r *soapNoteRepository) Get(ctx context.Context, id int64) (*model.SOAPNote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, exists := r.notes[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "SOAP note not found", goerr.V("id", id))
	}

	return copySOAPNote(n), nil
}

func (r *soapNoteRepository) GetByConversation(ctx context.Context, conversationID int64) (*model.SOAPNote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, n := range r.notes {
		if n.ConversationID == conversationID {
			return copySOAPNote(n), nil
		}
	}

	return nil, nil
}

func (r *soapNoteRepository) Update(ctx context.Context, id int64, patch *model.SOAPNotePatch) (*model.SOAPNote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, exists := r.notes[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "SOAP note not found", goerr.V("id", id))
	}

	if patch.Subjective != nil {
		n.Subjective = *patch.Subjective
	}
	if patch.Objective != nil {
		n.Objective = *patch.Objective
	}
	if patch.Assessment != nil {
		n.Assessment = *patch.Assessment
	}
	if patch.Plan != nil {
		n.Plan = *patch.Plan
	}
	n.UpdatedAt = time.Now().UTC()

	return copySOAPNote(n), nil
}
