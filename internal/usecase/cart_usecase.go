package usecase

import (
	"context"
	"sync"

	"app/internal/domain/model"
	"app/internal/repository"
)

// CartUsecase はカタログとカートを束ねる。
// プレゼンテーション層が話す相手はここだけ。
// カートの持ち主は1人だが、HTTP経由で呼ばれるためミューテックスで直列化する。
type CartUsecase struct {
	catalog repository.ProductCatalog

	mu   sync.Mutex
	cart *model.Cart
}

// DI
func NewCartUsecase(catalog repository.ProductCatalog, cart *model.Cart) *CartUsecase {
	return &CartUsecase{
		catalog: catalog,
		cart:    cart,
	}
}

// 表示用の集計。毎回カートから計算し直す（キャッシュしない）。
type CartView struct {
	Items     []model.CartLine `json:"items"`
	Total     float64          `json:"total"`
	ItemCount int64            `json:"item_count"`
}

// チェックアウトのスナップショット（クリア直前の内容）
type CheckoutResult struct {
	Items []model.CartLine `json:"items"`
	Total float64          `json:"total"`
}

// ListProducts はカタログの再取得を発火する唯一の入口。
// 取得失敗（*catalog.FetchError）はそのまま呼び出し側へ返す。
func (u *CartUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	return u.catalog.FetchAll(ctx)
}

// AddToCart は商品IDをカタログで解決してからカートに追加する。
// 未解決ならカートは変更しない（コアとしては黙ってno-op）。
// 解決できたかどうかだけ返すので、上のレイヤは404を返すこともできる。
func (u *CartUsecase) AddToCart(productID string) bool {
	p, ok := u.catalog.GetByID(productID)
	if !ok {
		return false
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.cart.AddItem(p)
	return true
}

// RemoveFromCart は明細削除。無ければno-op。
func (u *CartUsecase) RemoveFromCart(productID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.cart.RemoveItem(productID)
}

// ChangeQuantity は数量変更。0以下になった明細は消える。無ければno-op。
func (u *CartUsecase) ChangeQuantity(productID string, delta int64) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.cart.AdjustQuantity(productID, delta)
}

// View は現在のカートの表示用集計。
func (u *CartUsecase) View() CartView {
	u.mu.Lock()
	defer u.mu.Unlock()
	return CartView{
		Items:     u.cart.Items(),
		Total:     u.cart.Total(),
		ItemCount: u.cart.ItemCount(),
	}
}

// Checkout はクリア直前の内容をスナップショットしてからカートを空にする。
// 読み取りとクリアの間に他の変更は割り込めない。
// 戻り値はクリア前の内容であって、クリア後の状態ではない。
func (u *CartUsecase) Checkout() CheckoutResult {
	u.mu.Lock()
	defer u.mu.Unlock()

	snapshot := CheckoutResult{
		Items: u.cart.Items(),
		Total: u.cart.Total(),
	}
	u.cart.Clear()
	return snapshot
}
