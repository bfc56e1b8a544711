package state_repo

import (
	"context"
	"sync"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
)

// MemStateRepo 單機或測試用，Load/Save都回傳value copy
type MemStateRepo struct {
	mu     sync.RWMutex
	states map[string]*model.SessionState
}

func NewMemStateRepo() *MemStateRepo {
	return &MemStateRepo{states: make(map[string]*model.SessionState)}
}

func (r *MemStateRepo) Load(ctx context.Context, sessionID string) (*model.SessionState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.states[sessionID]
	if !ok {
		return model.NewSessionState(), nil
	}
	return state.Clone(), nil
}

func (r *MemStateRepo) Save(ctx context.Context, sessionID string, state *model.SessionState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.states[sessionID] = state.Clone()
	return nil
}

func (r *MemStateRepo) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.states, sessionID)
	return nil
}

var _ IStateRepository = (*MemStateRepo)(nil)
