package upc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(Options{APIKey: "s3cret", BaseURL: srv.URL + "/", Timeout: 2 * time.Second})
}

func TestLookupCode_Product(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/code/012345678905", r.URL.Path)
		assert.Equal(t, "s3cret", r.URL.Query().Get("key"))
		_, _ = w.Write([]byte(`{"code":"012345678905","product":{"name":"Widget","imageUrl":"http://x/y.jpg"}}`))
	})

	res, err := c.LookupCode(context.Background(), "012345678905")
	require.NoError(t, err)
	require.NotNil(t, res.Product)
	require.NotNil(t, res.Product.ImageURL)
	assert.Equal(t, "http://x/y.jpg", *res.Product.ImageURL)
	assert.Equal(t, "Widget", res.Product.Name)
}

func TestLookupCode_OptionalFields(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		hasProduct bool
	}{
		{"no product key", `{"code":"1"}`, false},
		{"null product", `{"product":null}`, false},
		{"empty product", `{"product":{}}`, true},
		{"null image", `{"product":{"imageUrl":null}}`, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			})
			res, err := c.LookupCode(context.Background(), "1")
			require.NoError(t, err)
			assert.Equal(t, tc.hasProduct, res.Product != nil)
			if res.Product != nil {
				assert.Nil(t, res.Product.ImageURL)
			}
		})
	}
}

func TestLookupCode_NotFound(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	})

	res, err := c.LookupCode(context.Background(), "1")
	require.NoError(t, err)
	assert.Nil(t, res.Product)
}

func TestLookupCode_ServerError(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.LookupCode(context.Background(), "1")
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusTooManyRequests, se.Code)
}

func TestLookupCode_BadJSON(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})

	_, err := c.LookupCode(context.Background(), "1")
	assert.ErrorContains(t, err, "decoding response")
}

func TestLookupCode_TransportErrorHidesKey(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := NewClient(Options{APIKey: "s3cret", BaseURL: srv.URL, Timeout: time.Second})

	_, err := c.LookupCode(context.Background(), "1")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "s3cret")
}
