package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"

	"ecycle/internal/http/handlers"
	"ecycle/internal/repos"
)

// newTestApp wires the API routes against a fresh in-memory database.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	deps := handlers.NewDeps(db)

	app := fiber.New()
	api := app.Group("/api/v1")
	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Detail)
	api.Get("/facets", deps.ProductHandler.Facets)
	api.Get("/availability", deps.ProductHandler.Availability)
	api.Get("/cart", deps.CartHandler.View)
	api.Post("/cart", deps.CartHandler.Add)
	api.Patch("/cart/:id", deps.CartHandler.Update)
	api.Delete("/cart/:id", deps.CartHandler.Remove)
	api.Delete("/cart", deps.CartHandler.Clear)
	api.Get("/theme", deps.ThemeHandler.Get)
	api.Post("/theme/toggle", deps.ThemeHandler.Toggle)
	api.Get("/favorites", deps.FavoritesHandler.List)
	api.Post("/favorites", deps.FavoritesHandler.Save)
	api.Delete("/favorites", deps.FavoritesHandler.Unsave)
	api.Post("/sell/estimate", deps.SellHandler.Estimate)
	api.Post("/sell/submit", deps.SellHandler.Submit)
	return app
}

func decodeBody(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if err := json.Unmarshal(b, into); err != nil {
		t.Fatalf("decode %s: %v", string(b), err)
	}
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}
