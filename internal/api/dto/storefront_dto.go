package dto

type AddCartItemDTO struct {
	ProductID int `json:"product_id"`
}

type SetQuantityDTO struct {
	Quantity int `json:"quantity"`
}

type CheckoutDTO struct {
	FullName        string `json:"full_name"`
	ShippingAddress string `json:"shipping_address"`
	PhoneNumber     string `json:"phone_number"`
}

type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"` //密碼明文，demo專用
}

type AddUserDTO struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

type UpdateUserDTO struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}
