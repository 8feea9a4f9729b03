package handlers

import (
	applog "ecycle/internal/log"
	"ecycle/internal/services"
	"ecycle/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type FavoritesHandler struct {
	Favs *services.FavoritesService
}

func (h *FavoritesHandler) List(c *fiber.Ctx) error {
	sid := ensureSID(c)
	return c.JSON(fiber.Map{"ids": h.Favs.ForSession(sid).List()})
}

func (h *FavoritesHandler) Save(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ProductID(c.FormValue("product_id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "missing product_id")
	}
	h.Favs.ForSession(sid).Save(id)
	applog.Audit(c, "favorites.save", map[string]any{"product": id})
	return c.JSON(fiber.Map{"ids": h.Favs.ForSession(sid).List()})
}

func (h *FavoritesHandler) Unsave(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ProductID(c.FormValue("product_id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "missing product_id")
	}
	h.Favs.ForSession(sid).Unsave(id)
	applog.Audit(c, "favorites.unsave", map[string]any{"product": id})
	return c.JSON(fiber.Map{"ids": h.Favs.ForSession(sid).List()})
}
