package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/intellimed/scribe/pkg/domain/interfaces"
	"github.com/intellimed/scribe/pkg/domain/model"
)

// ConversationUseCase handles recording session records. Conversations are
// immutable after creation; referenced patient and user ids are not checked
// for existence (advisory integrity, preserved from the original design).
type ConversationUseCase struct {
	repo interfaces.Repository
}

func NewConversationUseCase(repo interfaces.Repository) *ConversationUseCase {
	return &ConversationUseCase{repo: repo}
}

// CreateConversation validates and stores a new conversation, stamping the
// recorded timestamp server-side
func (uc *ConversationUseCase) CreateConversation(ctx context.Context, input *model.ConversationInput) (*model.Conversation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := uc.repo.Conversation().Create(ctx, input, time.Now())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create conversation")
	}

	return created, nil
}

// GetConversation retrieves a conversation by ID
func (uc *ConversationUseCase) GetConversation(ctx context.Context, id int64) (*model.Conversation, error) {
	return uc.repo.Conversation().Get(ctx, id)
}

// ListByPatient retrieves all conversations for a patient
func (uc *ConversationUseCase) ListByPatient(ctx context.Context, patientID int64) ([]*model.Conversation, error) {
	return uc.repo.Conversation().ListByPatient(ctx, patientID)
}
