package service

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
)

var (
	ErrUserNotExist = errors.New("user is not exist")
	ErrInvalidRole  = errors.New("invalid user role")
)

const usersPerPage = 5

// RoleFilterAll 不過濾角色
const RoleFilterAll = "All"

type UserPage struct {
	Users      []model.User `json:"users"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	TotalUsers int          `json:"total_users"`
	TotalPages int          `json:"total_pages"`
}

type IUserService interface {
	FilterUsers(searchTerm, roleFilter string, page int) UserPage
	AddUser(name, email string, role model.UserRole, status model.UserStatus) (model.User, error)
	UpdateUser(user model.User) (model.User, error)
	DeleteUser(id string) error
	ToggleStatus(id string) (model.User, error)
	Reset()
}

// UserService admin demo用的in-memory使用者清單
// 啟動時seed固定mock資料，不持久化，與訂單購物車完全無關
type UserService struct {
	mu    sync.RWMutex
	users []model.User
}

func NewUserService() *UserService {
	s := &UserService{}
	s.Reset()
	return s
}

// Reset 還原成seed資料
func (s *UserService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = seedUsers()
}

// FilterUsers 名稱與email不分大小寫子字串比對，角色為完全比對
// page超出範圍會被夾回合法值，呼叫端在條件變更時應回到第1頁
func (s *UserService) FilterUsers(searchTerm, roleFilter string, page int) UserPage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term := strings.ToLower(strings.TrimSpace(searchTerm))
	filtered := make([]model.User, 0, len(s.users))
	for _, user := range s.users {
		if term != "" &&
			!strings.Contains(strings.ToLower(user.Name), term) &&
			!strings.Contains(strings.ToLower(user.Email), term) {
			continue
		}
		if roleFilter != "" && roleFilter != RoleFilterAll && string(user.Role) != roleFilter {
			continue
		}
		filtered = append(filtered, user)
	}

	totalPages := (len(filtered) + usersPerPage - 1) / usersPerPage
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * usersPerPage
	end := start + usersPerPage
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return UserPage{
		Users:      filtered[start:end],
		Page:       page,
		PageSize:   usersPerPage,
		TotalUsers: len(filtered),
		TotalPages: totalPages,
	}
}

func (s *UserService) AddUser(name, email string, role model.UserRole, status model.UserStatus) (model.User, error) {
	if !role.Valid() {
		return model.User{}, ErrInvalidRole
	}
	if status == "" {
		status = model.StatusActive
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := model.User{
		ID:        strconv.FormatInt(time.Now().UnixNano(), 10),
		Name:      name,
		Email:     email,
		Role:      role,
		Status:    status,
		CreatedAt: time.Now().Format("2006-01-02"),
	}
	s.users = append([]model.User{user}, s.users...)
	return user, nil
}

func (s *UserService) UpdateUser(user model.User) (model.User, error) {
	if !user.Role.Valid() {
		return model.User{}, ErrInvalidRole
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == user.ID {
			// 建立日期不可改
			user.CreatedAt = s.users[i].CreatedAt
			s.users[i] = user
			return user, nil
		}
	}
	return model.User{}, ErrUserNotExist
}

func (s *UserService) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return ErrUserNotExist
}

func (s *UserService) ToggleStatus(id string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			if s.users[i].Status == model.StatusActive {
				s.users[i].Status = model.StatusInactive
			} else {
				s.users[i].Status = model.StatusActive
			}
			return s.users[i], nil
		}
	}
	return model.User{}, ErrUserNotExist
}

func seedUsers() []model.User {
	return []model.User{
		{ID: "1", Name: "John Doe", Email: "john.doe@example.com", Role: model.RoleAdmin, Status: model.StatusActive, CreatedAt: "2024-01-15"},
		{ID: "2", Name: "Jane Smith", Email: "jane.smith@example.com", Role: model.RoleEditor, Status: model.StatusActive, CreatedAt: "2024-01-20"},
		{ID: "3", Name: "Mike Johnson", Email: "mike.johnson@example.com", Role: model.RoleViewer, Status: model.StatusInactive, CreatedAt: "2024-01-25"},
		{ID: "4", Name: "Sarah Wilson", Email: "sarah.wilson@example.com", Role: model.RoleEditor, Status: model.StatusActive, CreatedAt: "2024-02-01"},
		{ID: "5", Name: "David Brown", Email: "david.brown@example.com", Role: model.RoleViewer, Status: model.StatusInactive, CreatedAt: "2024-02-05"},
		{ID: "6", Name: "Lisa Davis", Email: "lisa.davis@example.com", Role: model.RoleAdmin, Status: model.StatusActive, CreatedAt: "2024-02-10"},
		{ID: "7", Name: "Tom Anderson", Email: "tom.anderson@example.com", Role: model.RoleViewer, Status: model.StatusInactive, CreatedAt: "2024-02-15"},
		{ID: "8", Name: "Emily Taylor", Email: "emily.taylor@example.com", Role: model.RoleEditor, Status: model.StatusActive, CreatedAt: "2024-02-20"},
	}
}

var _ IUserService = (*UserService)(nil)
