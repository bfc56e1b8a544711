package state_repo

import (
	"context"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
)

// IStateRepository session狀態blob的存取邊界
// 核心store不直接碰持久化，由外層在每次狀態轉換後呼叫Save
type IStateRepository interface {
	// Load session不存在時回傳全新的空狀態，不回傳錯誤
	Load(ctx context.Context, sessionID string) (*model.SessionState, error)
	Save(ctx context.Context, sessionID string, state *model.SessionState) error
	Delete(ctx context.Context, sessionID string) error
}
