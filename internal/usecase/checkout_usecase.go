package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	"app/internal/shipping"

	"go.uber.org/zap"
)

// 注文IDの採番
type IDGenerator interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}

// 郵便番号から住所を引く外部コラボレータ
type PostalLookup interface {
	Lookup(ctx context.Context, postalCode string) (shipping.Address, error)
}

// CheckoutUsecase はカートのドレインと送料・住所解決をまとめて注文にする。
// 送料計算も住所検索もスナップショットを変更しない。
type CheckoutUsecase struct {
	cartUC *CartUsecase
	postal PostalLookup
	idGen  IDGenerator
	clock  Clock
	logger *zap.Logger
}

// DI
func NewCheckoutUsecase(
	cartUC *CartUsecase,
	postal PostalLookup,
	idGen IDGenerator,
	clock Clock,
	logger *zap.Logger,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		cartUC: cartUC,
		postal: postal,
		idGen:  idGen,
		clock:  clock,
		logger: logger,
	}
}

type PlaceOrderInput struct {
	PostalCode string
}

type PlaceOrderOutput struct {
	Order       model.Order       `json:"order"`
	ShippingFee float64           `json:"shipping_fee"`
	GrandTotal  float64           `json:"grand_total"`
	Address     *shipping.Address `json:"address,omitempty"`
}

// PlaceOrder は空でないカートをドレインして注文スナップショットを作る。
// 住所検索の失敗は注文を止めない（住所なしで続行してログに残す）。
func (u *CheckoutUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (PlaceOrderOutput, error) {
	if u.cartUC.View().ItemCount == 0 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "cart is empty")
	}

	var addr *shipping.Address
	if in.PostalCode != "" {
		a, err := u.postal.Lookup(ctx, in.PostalCode)
		if err != nil {
			u.logger.Warn("postal lookup failed",
				zap.String("postal_code", in.PostalCode),
				zap.Error(err))
		} else {
			addr = &a
		}
	}

	snap := u.cartUC.Checkout()
	fee := shipping.FeeFor(snap.Total)

	order := model.Order{
		ID:       u.idGen.NewID(),
		Items:    snap.Items,
		Total:    snap.Total,
		PlacedAt: u.clock.Now(),
	}

	u.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.Int("lines", len(order.Items)),
		zap.Float64("total", order.Total),
		zap.Float64("shipping_fee", fee))

	return PlaceOrderOutput{
		Order:       order,
		ShippingFee: fee,
		GrandTotal:  snap.Total + fee,
		Address:     addr,
	}, nil
}
