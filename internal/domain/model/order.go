package model

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const OrderStatusCompleted = "completed" // 目前訂單沒有狀態轉換，建立即完成

// CustomerInfo 結帳時由客戶填寫的收件資訊
type CustomerInfo struct {
	FullName        string `json:"full_name"`
	ShippingAddress string `json:"shipping_address"`
	PhoneNumber     string `json:"phone_number"`
}

var (
	fullNamePattern    = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	phoneNumberPattern = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)
)

// ValidationErrors 逐欄位的驗證錯誤，key為欄位名稱
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

// Validate 驗證規則與結帳表單一致，回傳nil表示通過
func (c CustomerInfo) Validate() ValidationErrors {
	errs := ValidationErrors{}

	name := strings.TrimSpace(c.FullName)
	switch {
	case len(name) < 2:
		errs["full_name"] = "full name must be at least 2 characters"
	case len(name) > 50:
		errs["full_name"] = "full name must be less than 50 characters"
	case !fullNamePattern.MatchString(name):
		errs["full_name"] = "full name can only contain letters and spaces"
	}

	address := strings.TrimSpace(c.ShippingAddress)
	switch {
	case len(address) < 10:
		errs["shipping_address"] = "shipping address must be at least 10 characters"
	case len(address) > 200:
		errs["shipping_address"] = "shipping address must be less than 200 characters"
	}

	phone := strings.TrimSpace(c.PhoneNumber)
	switch {
	case len(phone) < 10:
		errs["phone_number"] = "phone number must be at least 10 digits"
	case len(phone) > 15:
		errs["phone_number"] = "phone number must be less than 15 digits"
	case !phoneNumberPattern.MatchString(phone):
		errs["phone_number"] = "phone number contains invalid characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// OrderTotals 金額試算結果，結帳與購物車預覽共用同一份計算
type OrderTotals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Shipping   decimal.Decimal `json:"shipping"`
	Tax        decimal.Decimal `json:"tax"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// Order 建立後即不可變，Items為結帳當下購物車內容的value copy
type Order struct {
	OrderID      string          `json:"order_id"`
	CustomerInfo CustomerInfo    `json:"customer_info"`
	Items        []CartItem      `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Shipping     decimal.Decimal `json:"shipping"`
	Tax          decimal.Decimal `json:"tax"`
	Total        decimal.Decimal `json:"total"`
	OrderDate    time.Time       `json:"order_date"`
	Status       string          `json:"status"`
}

// NewOrderID 時間戳加亂數後綴，僅盡力保證唯一
func NewOrderID(now time.Time) string {
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}
