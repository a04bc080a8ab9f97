package model

// カタログの商品。スナップショット内でIDは一意。
// 構築後は不変。カートはカタログ所有のデータを共有参照するだけ。
type Product struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}
