package controller

import (
	"teaching-assistant-be/internal/config"
	"teaching-assistant-be/pkg/vectorstore"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Root(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	cfg         *config.Config
	vectorCache *vectorstore.Cache
}

func NewHealthController(cfg *config.Config, vectorCache *vectorstore.Cache) IHealthController {
	return &healthController{
		cfg:         cfg,
		vectorCache: vectorCache,
	}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Root)
	r.Get("/health", c.Health)
}

func (c *healthController) Root(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"message": "Teaching Assistant API is running",
	})
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"status":          "healthy",
		"gemini_api_key":  c.cfg.Keys.GoogleGemini != "",
		"search_api_key":  c.cfg.Keys.GoogleSearch != "",
		"vector_backend":  c.vectorCache.HasBackend(),
		"sessions_active": c.vectorCache.Len(),
	})
}
