package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validCustomerInfo() CustomerInfo {
	return CustomerInfo{
		FullName:        "John Doe",
		ShippingAddress: "123 Main Street, Springfield",
		PhoneNumber:     "0912-345-678",
	}
}

func TestCustomerInfoValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*CustomerInfo)
		wantField string
	}{
		{"valid", func(c *CustomerInfo) {}, ""},
		{"name too short", func(c *CustomerInfo) { c.FullName = "A" }, "full_name"},
		{"name too long", func(c *CustomerInfo) { c.FullName = strings.Repeat("a", 51) }, "full_name"},
		{"name with digits", func(c *CustomerInfo) { c.FullName = "John 3rd" }, "full_name"},
		{"address too short", func(c *CustomerInfo) { c.ShippingAddress = "short" }, "shipping_address"},
		{"address too long", func(c *CustomerInfo) { c.ShippingAddress = strings.Repeat("a", 201) }, "shipping_address"},
		{"phone too short", func(c *CustomerInfo) { c.PhoneNumber = "12345" }, "phone_number"},
		{"phone too long", func(c *CustomerInfo) { c.PhoneNumber = strings.Repeat("1", 16) }, "phone_number"},
		{"phone with letters", func(c *CustomerInfo) { c.PhoneNumber = "0912abc5678" }, "phone_number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := validCustomerInfo()
			tt.modify(&info)

			errs := info.Validate()
			if tt.wantField == "" {
				assert.Nil(t, errs)
				return
			}
			assert.NotNil(t, errs)
			assert.Contains(t, errs, tt.wantField)
		})
	}
}

func TestCustomerInfoValidateCollectsAllFields(t *testing.T) {
	errs := CustomerInfo{}.Validate()
	assert.Len(t, errs, 3)
	assert.Contains(t, errs.Error(), "full_name")
}

func TestNewOrderID(t *testing.T) {
	now := time.Now()
	id := NewOrderID(now)

	assert.True(t, strings.HasPrefix(id, "ORD-"))
	parts := strings.SplitN(id, "-", 3)
	assert.Len(t, parts, 3)
	assert.Len(t, parts[2], 8)

	// 同一時間點產生的id也不應相同
	assert.NotEqual(t, id, NewOrderID(now))
}
