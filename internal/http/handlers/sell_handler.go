package handlers

import (
	"ecycle/internal/domain"
	applog "ecycle/internal/log"
	"ecycle/internal/services"
	"ecycle/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type SellHandler struct {
	Sell *services.SellService
}

type estimateRequest struct {
	Category  string `json:"category"`
	Condition string `json:"condition"`
	Age       int    `json:"age"`
}

// Estimate quotes a trade-in value as the wizard's device details change.
// The estimate is null until both category and condition are chosen.
func (h *SellHandler) Estimate(c *fiber.Ctx) error {
	var req estimateRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.Age < 1 {
		applog.Security(c, "validation.fail", map[string]any{"field": "age"})
		return jsonError(c, fiber.StatusBadRequest, "age must be at least 1 year")
	}
	if req.Category != "" {
		if _, ok := validate.Token(req.Category); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "category"})
			return jsonError(c, fiber.StatusBadRequest, "invalid category")
		}
	}
	if req.Condition != "" {
		if _, ok := validate.Token(req.Condition); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "condition"})
			return jsonError(c, fiber.StatusBadRequest, "invalid condition")
		}
	}

	est, ok := h.Sell.Quote(req.Category, req.Condition, req.Age)
	if !ok {
		return c.JSON(fiber.Map{"estimate": nil})
	}
	return c.JSON(fiber.Map{"estimate": est})
}

// Submit is the wizard's terminal transition. Contact fields are checked
// here; device fields went through Estimate while the seller filled them in.
func (h *SellHandler) Submit(c *fiber.Ctx) error {
	var form domain.SubmissionForm
	if err := c.BodyParser(&form); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if _, ok := validate.Name(form.FirstName); !ok {
		return jsonError(c, fiber.StatusBadRequest, "enter your first name")
	}
	if _, ok := validate.Name(form.LastName); !ok {
		return jsonError(c, fiber.StatusBadRequest, "enter your last name")
	}
	if _, ok := validate.Email(form.Email); !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "email"})
		return jsonError(c, fiber.StatusBadRequest, "enter a valid email")
	}
	if form.Age < 1 {
		return jsonError(c, fiber.StatusBadRequest, "age must be at least 1 year")
	}

	step := h.Sell.Submit(form)
	return c.JSON(fiber.Map{"step": step.String()})
}
