package model_test

import (
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

var (
	apple  = model.Product{ID: "1", Title: "apple", Price: 10.00, Image: "https://example.com/apple.png"}
	banana = model.Product{ID: "2", Title: "banana", Price: 5.00, Image: "https://example.com/banana.png"}
	cherry = model.Product{ID: "3", Title: "cherry", Price: 2.50, Image: "https://example.com/cherry.png"}
)

func TestCart_AddItem_SameProductMergesIntoOneLine(t *testing.T) {
	c := model.NewCart()

	c.AddItem(apple)
	c.AddItem(apple)

	items := c.Items()
	assert.Equal(t, 1, len(items))
	assert.Equal(t, int64(2), items[0].Quantity)
	assert.Equal(t, apple, items[0].Product)
}

func TestCart_AddItem_PreservesInsertionOrder(t *testing.T) {
	c := model.NewCart()

	c.AddItem(apple)
	c.AddItem(banana)
	c.AddItem(cherry)
	// 既存明細の更新で位置は動かない
	c.AddItem(apple)

	items := c.Items()
	assert.Equal(t, 3, len(items))
	assert.Equal(t, "1", items[0].Product.ID)
	assert.Equal(t, "2", items[1].Product.ID)
	assert.Equal(t, "3", items[2].Product.ID)
	assert.Equal(t, int64(2), items[0].Quantity)
}

func TestCart_AdjustQuantity_NeverKeepsZeroOrNegative(t *testing.T) {
	c := model.NewCart()
	c.AddItem(apple)
	c.AddItem(apple)

	c.AdjustQuantity("1", -1)
	items := c.Items()
	assert.Equal(t, 1, len(items))
	assert.Equal(t, int64(1), items[0].Quantity)

	// 0以下になったら明細ごと消える（0でクランプしない）
	c.AdjustQuantity("1", -1)
	assert.Equal(t, 0, len(c.Items()))
	assert.Equal(t, int64(0), c.ItemCount())
}

func TestCart_AdjustQuantity_LargeNegativeDeltaDeletesLine(t *testing.T) {
	c := model.NewCart()
	c.AddItem(apple)
	c.AddItem(apple)
	c.AddItem(apple)

	c.AdjustQuantity("1", -100)
	assert.Equal(t, 0, len(c.Items()))
}

func TestCart_AdjustQuantity_PositiveDelta(t *testing.T) {
	c := model.NewCart()
	c.AddItem(apple)

	c.AdjustQuantity("1", 4)
	items := c.Items()
	assert.Equal(t, int64(5), items[0].Quantity)
	assert.Equal(t, 50.00, c.Total())
}

func TestCart_TotalAndItemCount(t *testing.T) {
	c := model.NewCart()
	assert.Equal(t, 0.0, c.Total())
	assert.Equal(t, int64(0), c.ItemCount())

	c.AddItem(apple)
	c.AddItem(apple)
	c.AddItem(banana)

	// 10*2 + 5*1
	assert.Equal(t, 25.00, c.Total())
	assert.Equal(t, int64(3), c.ItemCount())
}

func TestCart_RemoveItem_AbsentIDIsNoop(t *testing.T) {
	c := model.NewCart()
	c.AddItem(apple)

	c.RemoveItem("999")
	c.AdjustQuantity("999", -1)

	assert.Equal(t, 1, len(c.Items()))
	assert.Equal(t, 10.00, c.Total())
	assert.Equal(t, int64(1), c.ItemCount())
}

func TestCart_RemoveItem_ReindexesFollowingLines(t *testing.T) {
	c := model.NewCart()
	c.AddItem(apple)
	c.AddItem(banana)
	c.AddItem(cherry)

	c.RemoveItem("2")

	items := c.Items()
	assert.Equal(t, 2, len(items))
	assert.Equal(t, "1", items[0].Product.ID)
	assert.Equal(t, "3", items[1].Product.ID)

	// 削除後も残りの明細を正しく触れること
	c.AdjustQuantity("3", 1)
	assert.Equal(t, int64(2), c.Items()[1].Quantity)
}

func TestCart_Clear(t *testing.T) {
	c := model.NewCart()
	c.AddItem(apple)
	c.AddItem(banana)

	c.Clear()

	assert.Equal(t, 0, len(c.Items()))
	assert.Equal(t, 0.0, c.Total())
	assert.Equal(t, int64(0), c.ItemCount())

	// クリア後も普通に使える
	c.AddItem(cherry)
	assert.Equal(t, 1, len(c.Items()))
}

func TestCart_Items_ReturnsCopy(t *testing.T) {
	c := model.NewCart()
	c.AddItem(apple)

	before := c.Items()
	c.AddItem(apple)

	// 先に取った明細は呼び出し時点のまま
	assert.Equal(t, int64(1), before[0].Quantity)
	assert.Equal(t, int64(2), c.Items()[0].Quantity)
}

// 仕様シナリオ: 追加2回→数量-1→数量-1で明細消滅
func TestCart_Scenario_AddTwiceThenDecrementTwice(t *testing.T) {
	c := model.NewCart()

	c.AddItem(apple)
	c.AddItem(apple)
	assert.Equal(t, 1, len(c.Items()))
	assert.Equal(t, int64(2), c.Items()[0].Quantity)
	assert.Equal(t, 20.00, c.Total())

	c.AdjustQuantity("1", -1)
	assert.Equal(t, int64(1), c.Items()[0].Quantity)
	assert.Equal(t, 10.00, c.Total())

	c.AdjustQuantity("1", -1)
	assert.Equal(t, 0, len(c.Items()))
	assert.Equal(t, 0.0, c.Total())
	assert.Equal(t, int64(0), c.ItemCount())
}

func TestCartLine_LineTotal(t *testing.T) {
	l := model.CartLine{Product: cherry, Quantity: 4}
	assert.Equal(t, 10.00, l.LineTotal())
}
