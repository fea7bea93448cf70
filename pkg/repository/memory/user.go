package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/intellimed/scribe/pkg/domain/model"
)

type userRepository struct {
	mu     sync.RWMutex
	users  map[int64]*model.User
	nextID int64
}

func newUserRepository() *userRepository {
	return &userRepository{
		users:  make(map[int64]*model.User),
		nextID: 1,
	}
}

func copyUser(u *model.User) *model.User {
	copied := *u
	return &copied
}

// seed inserts a record at construction time, before the repository is
// shared, assigning the next id.
func (r *userRepository) seed(u *model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyUser(u)
	created.ID = r.nextID
	r.nextID++
	r.users[created.ID] = created
}

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyUser(user)
	created.ID = r.nextID
	r.nextID++

	r.users[created.ID] = created
	return copyUser(created), nil
}

func (r *userRepository) Get(ctx context.Context, id int64) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, exists := r.users[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "user not found", goerr.V("id", id))
	}

	return copyUser(u), nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return copyUser(u), nil
		}
	}

	return nil, nil
}
