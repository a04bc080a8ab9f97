package model

// カートの明細。商品1つと数量を結びつける。
// 明細が存在する間、Quantityは必ず1以上。
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int64   `json:"quantity"`
}

// LineTotal は読み出しのたびに計算する（別に保存しない）。
func (l CartLine) LineTotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}
