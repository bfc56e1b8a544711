package model

// AuthState demo用登入狀態，不是真正的安全機制
type AuthState struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
	Role          string `json:"role,omitempty"`
}

// SessionState 單一session的所有持久化狀態，序列化成一個blob儲存
// 商品目錄與admin使用者清單刻意不在此，每次session重新取得
type SessionState struct {
	Cart   Cart      `json:"cart"`
	Orders []Order   `json:"orders"` // 最新的排最前面
	Auth   AuthState `json:"auth"`
}

func NewSessionState() *SessionState {
	return &SessionState{
		Cart:   NewCart(),
		Orders: []Order{},
	}
}

// Clone 回傳value copy，repo存取時使用，避免共享底層slice
func (s SessionState) Clone() *SessionState {
	clone := s
	clone.Cart = s.Cart.Clone()
	clone.Orders = make([]Order, len(s.Orders))
	for i, order := range s.Orders {
		clone.Orders[i] = order
		clone.Orders[i].Items = CloneItems(order.Items)
	}
	return &clone
}
