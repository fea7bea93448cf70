package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/intellimed/scribe/pkg/domain/model"
)

type additionalNoteRepository struct {
	mu     sync.RWMutex
	notes  map[int64]*model.AdditionalNote
	nextID int64
}

func newAdditionalNoteRepository() *additionalNoteRepository {
	return &additionalNoteRepository{
		notes:  make(map[int64]*model.AdditionalNote),
		nextID: 1,
	}
}

func copyAdditionalNote(n *model.AdditionalNote) *model.AdditionalNote {
	copied := *n
	return &copied
}

func (r *additionalNoteRepository) Create(ctx context.Context, input *model.AdditionalNoteInput) (*model.AdditionalNote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := &model.AdditionalNote{
		SOAPNoteID: input.SOAPNoteID,
		Kind:       input.Kind,
		Content:    input.Content,
		CreatedAt:  time.Now().UTC(),
	}
	created.ID = r.nextID
	r.nextID++

	r.notes[created.ID] = created
	return copyAdditionalNote(created), nil
}

func (r *additionalNoteRepository) Get(ctx context.Context, id int64) (*model.AdditionalNote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, exists := r.notes[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "additional note not found", goerr.V("id", id))
	}

	return copyAdditionalNote(n), nil
}

func (r *additionalNoteRepository) ListBySOAPNote(ctx context.Context, soapNoteID int64) ([]*model.AdditionalNote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.AdditionalNote, 0)
	for _, n := range r.notes {
		if n.SOAPNoteID == soapNoteID {
			result = append(result, copyAdditionalNote(n))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}
