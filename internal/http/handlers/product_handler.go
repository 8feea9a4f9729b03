package handlers

import (
	"ecycle/internal/domain"
	applog "ecycle/internal/log"
	"ecycle/internal/services"
	"ecycle/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// List runs the filter engine over the catalog. The spec starts from the
// reset defaults (full price range, featured sort) and each query param that
// validates overrides one field; an invalid param is a 400, not a silent
// ignore.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	catalog, err := h.Catalog.Catalog()
	if err != nil {
		applog.Error(c, "products.list.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load products")
	}

	spec := services.DefaultSpec(catalog)

	if raw := c.Query("q"); raw != "" {
		q, ok := validate.Q(raw)
		if !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "q", "value": raw})
			return jsonError(c, fiber.StatusBadRequest, "enter a valid keyword (letters/numbers only)")
		}
		spec.Search = q
	}
	for _, f := range []struct {
		param string
		dst   *string
	}{
		{"category", &spec.Category},
		{"brand", &spec.Brand},
		{"condition", &spec.Condition},
	} {
		if raw := c.Query(f.param); raw != "" {
			v, ok := validate.Facet(raw)
			if !ok {
				applog.Security(c, "validation.fail", map[string]any{"field": f.param})
				return jsonError(c, fiber.StatusBadRequest, "invalid filter")
			}
			*f.dst = v
		}
	}
	if raw := c.Query("min_price"); raw != "" {
		v, ok := validate.Price(raw)
		if !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "min_price"})
			return jsonError(c, fiber.StatusBadRequest, "invalid price bound")
		}
		spec.PriceMin = v
	}
	if raw := c.Query("max_price"); raw != "" {
		v, ok := validate.Price(raw)
		if !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "max_price"})
			return jsonError(c, fiber.StatusBadRequest, "invalid price bound")
		}
		spec.PriceMax = v
	}
	spec.SortBy = services.SortKeyFromString(c.Query("sort"))

	products := services.Visible(catalog, spec)
	return c.JSON(fiber.Map{
		"products": products,
		"count":    len(products),
		"spec":     spec,
	})
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ProductID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return jsonError(c, fiber.StatusNotFound, "this item is no longer available")
	}
	p, err := h.Catalog.Get(id)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "this item is no longer available")
	}
	return c.JSON(fiber.Map{
		"product":      p,
		"availability": services.CheckAvailability(p.Stock),
	})
}

func (h *ProductHandler) Facets(c *fiber.Ctx) error {
	catalog, err := h.Catalog.Catalog()
	if err != nil {
		applog.Error(c, "products.facets.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load filters")
	}
	return c.JSON(services.Facets(catalog))
}

// Availability answers the listing page's stock badge poll.
func (h *ProductHandler) Availability(c *fiber.Ctx) error {
	id, ok := validate.ProductID(c.Query("product_id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "missing product_id")
	}
	p, err := h.Catalog.Get(id)
	if err != nil {
		return c.JSON(domain.Availability{Status: "OUT_OF_STOCK"})
	}
	return c.JSON(services.CheckAvailability(p.Stock))
}
