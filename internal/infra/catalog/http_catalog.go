package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"app/internal/domain/model"

	"go.uber.org/zap"
)

// FetchError はリモート取得の失敗（通信・ステータス・パース）を包む。
// 呼び出し側へそのまま伝播させ、リトライ方針は呼び出し側に委ねる。
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("catalog fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// リモートのidは数値でも文字列でも来るので、両方を受けて文字列に正規化する。
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be number or string: %w", err)
	}
	*f = flexID(n.String())
	return nil
}

// リモートのJSON配列の1レコード
type record struct {
	ID    flexID  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// HTTPCatalog は ProductCatalog のHTTP実装。
// 取得成功時にだけスナップショットを1回の代入で置き換える。
type HTTPCatalog struct {
	url    string
	client *http.Client
	logger *zap.Logger

	mu       sync.RWMutex
	products []model.Product
	byID     map[string]model.Product
}

func NewHTTPCatalog(url string, timeout time.Duration, logger *zap.Logger) *HTTPCatalog {
	return &HTTPCatalog{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
		byID:   make(map[string]model.Product),
	}
}

// FetchAll はリモートのJSON配列を取得して全件置き換える。
// 失敗時は既存のスナップショット（空かもしれない）をそのまま残す。
// 取得が重なった場合は後勝ち。
func (c *HTTPCatalog) FetchAll(ctx context.Context) ([]model.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &FetchError{URL: c.url, Err: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: c.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: c.url, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var records []record
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&records); err != nil {
		return nil, &FetchError{URL: c.url, Err: err}
	}

	products := make([]model.Product, 0, len(records))
	byID := make(map[string]model.Product, len(records))
	for i, r := range records {
		if r.ID == "" {
			return nil, &FetchError{URL: c.url, Err: fmt.Errorf("record %d: missing id", i)}
		}
		if r.Price < 0 {
			return nil, &FetchError{URL: c.url, Err: fmt.Errorf("record %d: negative price", i)}
		}
		p := model.Product{
			ID:    string(r.ID),
			Title: r.Title,
			Price: r.Price,
			Image: r.Image,
		}
		products = append(products, p)
		byID[p.ID] = p
	}

	// パース完了後にまとめて差し替える
	c.mu.Lock()
	c.products = products
	c.byID = byID
	c.mu.Unlock()

	c.logger.Info("catalog snapshot replaced",
		zap.String("url", c.url),
		zap.Int("count", len(products)))

	return products, nil
}

// GetByID は現在のスナップショットを引くだけ。フェッチしない。
func (c *HTTPCatalog) GetByID(productID string) (model.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.byID[productID]
	return p, ok
}
