package model

import "github.com/shopspring/decimal"

// CartItem 一個商品在購物車內只會有一筆，Quantity 必定 >= 1
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart 購物車，Items 依加入順序排列
// ItemCount 與 Total 為衍生欄位，每次變更後重新計算，不可單獨修改
type Cart struct {
	Items     []CartItem      `json:"items"`
	ItemCount int             `json:"item_count"`
	Total     decimal.Decimal `json:"total"`
}

func NewCart() Cart {
	return Cart{Items: []CartItem{}, Total: decimal.Zero}
}

// AddItem 已存在則數量+1，否則加到最後一筆，數量為1
func (c *Cart) AddItem(product Product) {
	for i := range c.Items {
		if c.Items[i].Product.ID == product.ID {
			c.Items[i].Quantity++
			c.recompute()
			return
		}
	}
	c.Items = append(c.Items, CartItem{Product: product, Quantity: 1})
	c.recompute()
}

// RemoveItem 不存在則不做任何事，移除不影響其他商品順序
func (c *Cart) RemoveItem(productID int) {
	items := c.Items[:0]
	for _, item := range c.Items {
		if item.Product.ID != productID {
			items = append(items, item)
		}
	}
	c.Items = items
	c.recompute()
}

// SetQuantity quantity <= 0 視同 RemoveItem，沒有數量上限
func (c *Cart) SetQuantity(productID int, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items[i].Quantity = quantity
			break
		}
	}
	c.recompute()
}

func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.recompute()
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clone 回傳value copy，之後購物車變更不會影響副本
func (c Cart) Clone() Cart {
	clone := c
	clone.Items = CloneItems(c.Items)
	return clone
}

// CloneItems CartItem 內容皆為value type，複製slice即為深拷貝
func CloneItems(items []CartItem) []CartItem {
	cloned := make([]CartItem, len(items))
	copy(cloned, items)
	return cloned
}

func (c *Cart) recompute() {
	count := 0
	total := decimal.Zero
	for _, item := range c.Items {
		count += item.Quantity
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	c.ItemCount = count
	c.Total = total.Round(2)
}
