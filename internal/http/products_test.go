package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type listResponse struct {
	Products []struct {
		ID       int64   `json:"id"`
		Name     string  `json:"name"`
		Category string  `json:"category"`
		Brand    string  `json:"brand"`
		Price    float64 `json:"price"`
		Featured bool    `json:"featured"`
	} `json:"products"`
	Count int `json:"count"`
}

func TestListingDefaultShowsWholeCatalogFeaturedFirst(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/products", nil))
	if err != nil {
		t.Fatal(err)
	}
	var body listResponse
	decodeBody(t, resp, &body)
	if body.Count != 12 {
		t.Fatalf("want all 12 products, got %d", body.Count)
	}
	for i := 0; i < 4; i++ {
		if !body.Products[i].Featured {
			t.Fatalf("featured products must lead the default order, pos %d", i)
		}
	}
}

func TestListingFilterCombination(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/products?q=apple&category=Laptops", nil))
	if err != nil {
		t.Fatal(err)
	}
	var body listResponse
	decodeBody(t, resp, &body)
	if body.Count != 1 || body.Products[0].Name != "MacBook Air M1" {
		t.Fatalf("want only MacBook Air M1, got %+v", body.Products)
	}
}

func TestListingSortAndPriceRange(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/products?min_price=400&max_price=700&sort=price-asc", nil))
	if err != nil {
		t.Fatal(err)
	}
	var body listResponse
	decodeBody(t, resp, &body)
	if body.Count == 0 {
		t.Fatal("range should match products")
	}
	for i, p := range body.Products {
		if p.Price < 400 || p.Price > 700 {
			t.Fatalf("product %d outside range: %v", p.ID, p.Price)
		}
		if i > 0 && p.Price < body.Products[i-1].Price {
			t.Fatal("price-asc order broken")
		}
	}
}

func TestListingRejectsBadQuery(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/products?q=%3Cscript%3E", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400 for invalid keyword, got %d", resp.StatusCode)
	}
}

func TestProductDetailAndAvailability(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/products/4", nil))
	if err != nil {
		t.Fatal(err)
	}
	var body struct {
		Product struct {
			Name string `json:"name"`
		} `json:"product"`
		Availability struct {
			Status string `json:"status"`
		} `json:"availability"`
	}
	decodeBody(t, resp, &body)
	if body.Product.Name != "Sony WH-1000XM4" {
		t.Fatalf("bad detail: %+v", body)
	}
	if body.Availability.Status != "IN_STOCK" {
		t.Fatalf("stock 12 must be IN_STOCK, got %s", body.Availability.Status)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/products/999", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404 for unknown product, got %d", resp.StatusCode)
	}
}

func TestFacetsEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/facets", nil))
	if err != nil {
		t.Fatal(err)
	}
	var body struct {
		Categories []string `json:"categories"`
		Brands     []string `json:"brands"`
		PriceMin   float64  `json:"priceMin"`
		PriceMax   float64  `json:"priceMax"`
	}
	decodeBody(t, resp, &body)
	if len(body.Categories) != 5 { // Smartphones, Laptops, Tablets, Audio, Wearables
		t.Fatalf("want 5 categories, got %v", body.Categories)
	}
	if body.PriceMin != 199.99 || body.PriceMax != 899.99 {
		t.Fatalf("bad price bounds: %v..%v", body.PriceMin, body.PriceMax)
	}
}
