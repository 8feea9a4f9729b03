package handlers

import (
	"ecycle/internal/services"

	"github.com/gofiber/fiber/v2"
)

type ThemeHandler struct {
	Theme *services.ThemeService
}

func themeJSON(c *fiber.Ctx, ts *services.ThemeStore) error {
	return c.JSON(fiber.Map{"mode": ts.Mode(), "isDark": ts.IsDark()})
}

// Get resolves the session's mode. The first request may carry the ambient
// prefers-dark signal (prefers_dark=true|false); it is only consulted when no
// persisted preference exists.
func (h *ThemeHandler) Get(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var ambient *bool
	switch c.Query("prefers_dark") {
	case "true":
		v := true
		ambient = &v
	case "false":
		v := false
		ambient = &v
	}
	ts := h.Theme.ForSession(sid)
	ts.Initialize(ambient)
	return themeJSON(c, ts)
}

func (h *ThemeHandler) Toggle(c *fiber.Ctx) error {
	sid := ensureSID(c)
	ts := h.Theme.ForSession(sid)
	ts.Initialize(nil)
	ts.Toggle()
	return themeJSON(c, ts)
}
