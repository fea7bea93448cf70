package usecase

import (
	"context"

	"github.com/intellimed/scribe/pkg/domain/interfaces"
	"github.com/intellimed/scribe/pkg/domain/model"
)

// UserUseCase handles clinician account lookup. Accounts are seeded at
// startup; there is no creation path through the API.
type UserUseCase struct {
	repo interfaces.Repository
}

func NewUserUseCase(repo interfaces.Repository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetUser retrieves a user by ID
func (uc *UserUseCase) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return uc.repo.User().Get(ctx, id)
}
