package model

import "time"

// Order はチェックアウトで確定した注文スナップショット。
// クリア直前のカート内容をそのまま写したもので、以後変更されない。
type Order struct {
	ID       string     `json:"id"`
	Items    []CartLine `json:"items"`
	Total    float64    `json:"total"`
	PlacedAt time.Time  `json:"placed_at"`
}
