package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productJSON = `{"id":1,"title":"Hat","price":9.99,"description":"A hat","category":"clothing","image":"https://img.example/hat.png"}`

func TestProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products", r.URL.Path)
		w.Write([]byte("[" + productJSON + "]"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	products, err := c.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Hat", products[0].Title)
	assert.Equal(t, "9.99", products[0].Price.String())
}

func TestProductByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/1", r.URL.Path)
		w.Write([]byte(productJSON))
	}))
	defer srv.Close()

	c := New(srv.URL)
	product, err := c.Product(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, 1, product.ID)
}

func TestProductMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the demo API answers 200 with an empty body for unknown ids
	}))
	defer srv.Close()

	c := New(srv.URL)
	product, err := c.Product(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestUpstreamFailureDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	products, err := c.Products(context.Background())
	assert.Error(t, err)
	assert.Empty(t, products)
}
