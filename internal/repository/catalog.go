package repository

import (
	"context"

	"app/internal/domain/model"
)

// ProductCatalog はカタログの取得と参照だけを約束。
type ProductCatalog interface {
	// FetchAll はリモートから全商品を取得し、スナップショットを丸ごと置き換える。
	// 失敗時はスナップショットを変更せずエラーを返す（リトライはしない）。
	FetchAll(ctx context.Context) ([]model.Product, error)

	// GetByID は現在のスナップショットだけを引く。フェッチは発火しない。
	// 見つからない場合は ok=false（エラーではない）。
	GetByID(productID string) (model.Product, bool)
}
