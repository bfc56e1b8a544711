package service

import (
	"context"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/state_repo"
)

type ISessionService interface {
	Reset(ctx context.Context, sessionID string) error
}

// SessionService session層級的操作，目前只有整個狀態的重置
// 購物車、訂單歷史、登入狀態一次清掉，下次Load會拿到全新的空狀態
type SessionService struct {
	stateRepo state_repo.IStateRepository
}

func NewSessionService(stateRepo state_repo.IStateRepository) *SessionService {
	return &SessionService{stateRepo: stateRepo}
}

func (s *SessionService) Reset(ctx context.Context, sessionID string) error {
	return s.stateRepo.Delete(ctx, sessionID)
}

var _ ISessionService = (*SessionService)(nil)
