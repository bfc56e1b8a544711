package service

import (
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/shopspring/decimal"
)

var (
	freeShippingThreshold = decimal.NewFromInt(50)
	shippingFee           = decimal.RequireFromString("5.99")
	taxRate               = decimal.RequireFromString("0.08")
)

// ComputeTotals 計算小計、運費、稅與總金額，純函式
// 購物車預覽與結帳必須共用此計算，避免顯示金額與訂單金額不一致
//
// 規則:
//   - 小計超過50免運，恰好50仍收5.99
//   - 稅率固定8%
//   - 總金額 = round(小計 + 運費 + 未捨入的稅, 2)
func ComputeTotals(cart model.Cart) model.OrderTotals {
	subtotal := cart.Total

	shipping := shippingFee
	if subtotal.GreaterThan(freeShippingThreshold) {
		shipping = decimal.Zero
	}

	rawTax := subtotal.Mul(taxRate)

	return model.OrderTotals{
		Subtotal:   subtotal,
		Shipping:   shipping,
		Tax:        rawTax.Round(2),
		GrandTotal: subtotal.Add(shipping).Add(rawTax).Round(2),
	}
}
