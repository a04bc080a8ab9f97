package shipping_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"app/internal/shipping"

	"github.com/stretchr/testify/assert"
)

func TestPostalClient_Lookup_Found(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1000001", r.URL.Query().Get("zipcode"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": 200,
			"message": null,
			"results": [
				{"zipcode": "1000001", "address1": "東京都", "address2": "千代田区", "address3": "千代田"}
			]
		}`))
	}))
	defer srv.Close()

	c := shipping.NewPostalClient(srv.URL, 5*time.Second)

	addr, err := c.Lookup(context.Background(), "1000001")
	assert.NoError(t, err)
	assert.Equal(t, shipping.Address{
		PostalCode: "1000001",
		Prefecture: "東京都",
		City:       "千代田区",
		Town:       "千代田",
	}, addr)
}

func TestPostalClient_Lookup_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": 200, "message": null, "results": null}`))
	}))
	defer srv.Close()

	c := shipping.NewPostalClient(srv.URL, 5*time.Second)

	_, err := c.Lookup(context.Background(), "0000000")
	assert.True(t, errors.Is(err, shipping.ErrPostalCodeNotFound))
}

func TestPostalClient_Lookup_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": 400, "message": "invalid zipcode", "results": null}`))
	}))
	defer srv.Close()

	c := shipping.NewPostalClient(srv.URL, 5*time.Second)

	_, err := c.Lookup(context.Background(), "bad")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, shipping.ErrPostalCodeNotFound))
}

func TestFeeFor(t *testing.T) {
	assert.Equal(t, 500.0, shipping.FeeFor(0))
	assert.Equal(t, 500.0, shipping.FeeFor(9999.99))
	// しきい値ちょうどから無料
	assert.Equal(t, 0.0, shipping.FeeFor(shipping.FreeShippingThreshold))
	assert.Equal(t, 0.0, shipping.FeeFor(25000))
}
