package handlers

import (
	"ecycle/internal/domain"
	applog "ecycle/internal/log"
	"ecycle/internal/services"
	"ecycle/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Cart    *services.CartService
	Catalog *services.CatalogService
}

func (h *CartHandler) view(c *fiber.Ctx, cs *services.CartStore) error {
	return c.JSON(fiber.Map{
		"items":     cs.Lines(),
		"total":     cs.Total(),
		"itemCount": cs.ItemCount(),
	})
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	sid := ensureSID(c)
	return h.view(c, h.Cart.ForSession(sid))
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ProductID(c.FormValue("product_id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "missing product_id")
	}
	qty := validate.Qty(c.FormValue("qty"))

	p, err := h.Catalog.Get(id)
	if err != nil {
		applog.Error(c, "cart.add.fail", err, map[string]any{"product": id})
		return jsonError(c, fiber.StatusNotFound, "this item is no longer available")
	}

	cs := h.Cart.ForSession(sid)
	cs.Add(domain.CartLine{
		ProductID:     p.ID,
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
		Brand:         p.Brand,
		Condition:     p.Condition,
	}, qty)
	applog.Audit(c, "cart.add", map[string]any{"product": id, "qty": qty})
	return h.view(c, cs)
}

func (h *CartHandler) Update(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ProductID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "missing product id")
	}
	qty, ok := validate.Quantity(c.FormValue("qty"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid quantity")
	}
	// Below 1 the store leaves the cart untouched; the response reflects that.
	cs := h.Cart.ForSession(sid)
	cs.UpdateQuantity(id, qty)
	return h.view(c, cs)
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ProductID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "missing product id")
	}
	cs := h.Cart.ForSession(sid)
	cs.Remove(id)
	applog.Audit(c, "cart.remove", map[string]any{"product": id})
	return h.view(c, cs)
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	sid := ensureSID(c)
	cs := h.Cart.ForSession(sid)
	cs.Clear()
	applog.Audit(c, "cart.clear", nil)
	return h.view(c, cs)
}
