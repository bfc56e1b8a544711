package model

// admin demo用的使用者資料，與 Product/Order/Cart 沒有關聯
// 每次啟動以mock資料重新seed，不做持久化

type UserRole string

const (
	RoleAdmin  UserRole = "Admin"
	RoleEditor UserRole = "Editor"
	RoleViewer UserRole = "Viewer"
)

type UserStatus string

const (
	StatusActive   UserStatus = "Active"
	StatusInactive UserStatus = "Inactive"
)

type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      UserRole   `json:"role"`
	Status    UserStatus `json:"status"`
	CreatedAt string     `json:"created_at"`
}

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}
