package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFavoritesFlow(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(postForm("/api/v1/favorites", "product_id=3", ""))
	if err != nil {
		t.Fatal(err)
	}
	sid := extractCookie(resp, "sid")

	resp, err = app.Test(postForm("/api/v1/favorites", "product_id=7", sid))
	if err != nil {
		t.Fatal(err)
	}
	var body struct {
		IDs []int64 `json:"ids"`
	}
	decodeBody(t, resp, &body)
	if len(body.IDs) != 2 || body.IDs[0] != 3 || body.IDs[1] != 7 {
		t.Fatalf("want [3 7], got %v", body.IDs)
	}

	req := httptest.NewRequest("DELETE", "/api/v1/favorites", strings.NewReader("product_id=3"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	decodeBody(t, resp, &body)
	if len(body.IDs) != 1 || body.IDs[0] != 7 {
		t.Fatalf("want [7], got %v", body.IDs)
	}
}
