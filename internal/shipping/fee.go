package shipping

// 送料。しきい値以上で送料無料。
const (
	FreeShippingThreshold = 10000.0
	baseFee               = 500.0
)

// FeeFor は小計に対する送料を返す。スナップショットには触らない。
func FeeFor(subtotal float64) float64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return baseFee
}
