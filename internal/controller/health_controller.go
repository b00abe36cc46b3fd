package controller

import (
	"ai-shopassist-be/internal/pkg/serverutils"
	"ai-shopassist-be/pkg/catalog"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Check(ctx *fiber.Ctx) error
}

type healthController struct {
	index *catalog.Index
}

func NewHealthController(index *catalog.Index) IHealthController {
	return &healthController{index: index}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/health/v1")
	h.Get("", c.Check)
}

func (c *healthController) Check(ctx *fiber.Ctx) error {
	res := fiber.Map{
		"status":        "ok",
		"catalog_ready": c.index.Ready(),
		"product_count": c.index.Size(),
	}
	return ctx.JSON(serverutils.SuccessResponse("Success health check", res))
}
