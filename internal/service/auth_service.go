package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/state_repo"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type IAuthService interface {
	Login(ctx context.Context, sessionID, username, password string) (model.AuthState, error)
	Logout(ctx context.Context, sessionID string) error
	Session(ctx context.Context, sessionID string) (model.AuthState, error)
}

const demoRole = "admin"

// AuthService demo專用，單一寫死的帳密，不是安全邊界
// 之後若要換成真正的認證機制，替換此介面實作即可，不會動到購物車與訂單
type AuthService struct {
	stateRepo state_repo.IStateRepository
	username  string
	password  string
}

func NewAuthService(stateRepo state_repo.IStateRepository, username, password string) *AuthService {
	return &AuthService{stateRepo: stateRepo, username: username, password: password}
}

// Login 帳密不符回傳ErrInvalidCredentials，session維持未登入
func (s *AuthService) Login(ctx context.Context, sessionID, username, password string) (model.AuthState, error) {
	if username != s.username || password != s.password {
		return model.AuthState{}, ErrInvalidCredentials
	}

	state, err := s.stateRepo.Load(ctx, sessionID)
	if err != nil {
		return model.AuthState{}, err
	}

	state.Auth = model.AuthState{
		Authenticated: true,
		Username:      username,
		Role:          demoRole,
	}

	if err := s.stateRepo.Save(ctx, sessionID, state); err != nil {
		return model.AuthState{}, err
	}
	return state.Auth, nil
}

// Logout 無條件清除登入狀態
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	state, err := s.stateRepo.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	state.Auth = model.AuthState{}
	return s.stateRepo.Save(ctx, sessionID, state)
}

func (s *AuthService) Session(ctx context.Context, sessionID string) (model.AuthState, error) {
	state, err := s.stateRepo.Load(ctx, sessionID)
	if err != nil {
		return model.AuthState{}, err
	}
	return state.Auth, nil
}

var _ IAuthService = (*AuthService)(nil)
