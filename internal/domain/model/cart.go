package model

// Cart は選択中の商品の集まり。
// 商品IDごとに明細は1つ、追加された順序を保持する。
// 数量が0以下になった明細は保持せず削除する。
type Cart struct {
	lines []CartLine
	index map[string]int // productID -> linesの位置
}

func NewCart() *Cart {
	return &Cart{
		index: make(map[string]int),
	}
}

// AddItem は同じ商品なら数量+1（位置は変えない）、無ければ末尾に数量1で追加。
func (c *Cart) AddItem(p Product) {
	if i, ok := c.index[p.ID]; ok {
		c.lines[i].Quantity++
		return
	}
	c.index[p.ID] = len(c.lines)
	c.lines = append(c.lines, CartLine{Product: p, Quantity: 1})
}

// RemoveItem は明細を削除。無ければ何もしない。
func (c *Cart) RemoveItem(productID string) {
	i, ok := c.index[productID]
	if !ok {
		return
	}
	c.deleteAt(i)
}

// AdjustQuantity は数量にdeltaを加算。結果が0以下なら明細ごと削除。
// 明細が無ければ何もしない。
func (c *Cart) AdjustQuantity(productID string, delta int64) {
	i, ok := c.index[productID]
	if !ok {
		return
	}
	q := c.lines[i].Quantity + delta
	if q <= 0 {
		c.deleteAt(i)
		return
	}
	c.lines[i].Quantity = q
}

// Items は現在の明細を追加順で返す。
// 戻り値はコピーなので、以後カートを変更しても呼び出し時点の内容のまま。
func (c *Cart) Items() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total は全明細のLineTotalの合計。空なら0。
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.LineTotal()
	}
	return total
}

// ItemCount は数量の合計（明細数ではない）。空なら0。
func (c *Cart) ItemCount() int64 {
	var n int64
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Clear は全明細を削除する。
func (c *Cart) Clear() {
	c.lines = nil
	c.index = make(map[string]int)
}

func (c *Cart) deleteAt(i int) {
	delete(c.index, c.lines[i].Product.ID)
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	// 後ろにずれた明細の位置を引き直す
	for j := i; j < len(c.lines); j++ {
		c.index[c.lines[j].Product.ID] = j
	}
}
