package shipping

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var ErrPostalCodeNotFound = errors.New("postal code not found")

// 郵便番号から引いた住所
type Address struct {
	PostalCode string `json:"postal_code"`
	Prefecture string `json:"prefecture"`
	City       string `json:"city"`
	Town       string `json:"town"`
}

// PostalClient は外部の郵便番号検索APIを叩くクライアント。
// グローバルなコールバックではなく、ctxに紐づく同期的なリクエスト/レスポンスで返す。
type PostalClient struct {
	baseURL string
	client  *http.Client
}

func NewPostalClient(baseURL string, timeout time.Duration) *PostalClient {
	return &PostalClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// zipcloud形式のレスポンス
type postalResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Results []struct {
		Zipcode  string `json:"zipcode"`
		Address1 string `json:"address1"`
		Address2 string `json:"address2"`
		Address3 string `json:"address3"`
	} `json:"results"`
}

// Lookup は郵便番号1件を住所に解決する。
func (c *PostalClient) Lookup(ctx context.Context, postalCode string) (Address, error) {
	u := c.baseURL + "?zipcode=" + url.QueryEscape(postalCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Address{}, fmt.Errorf("postal lookup: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Address{}, fmt.Errorf("postal lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Address{}, fmt.Errorf("postal lookup: unexpected status %d", resp.StatusCode)
	}

	var body postalResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Address{}, fmt.Errorf("postal lookup: %w", err)
	}
	if body.Status != http.StatusOK {
		return Address{}, fmt.Errorf("postal lookup: api status %d: %s", body.Status, body.Message)
	}
	if len(body.Results) == 0 {
		return Address{}, ErrPostalCodeNotFound
	}

	r := body.Results[0]
	return Address{
		PostalCode: r.Zipcode,
		Prefecture: r.Address1,
		City:       r.Address2,
		Town:       r.Address3,
	}, nil
}
