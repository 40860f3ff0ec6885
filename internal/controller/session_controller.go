package controller

import (
	"teaching-assistant-be/internal/dto"
	"teaching-assistant-be/internal/pkg/serverutils"
	"teaching-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router, apiKey string)
	Create(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Sources(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService service.ISessionService
}

func NewSessionController(sessionService service.ISessionService) ISessionController {
	return &sessionController{
		sessionService: sessionService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router, apiKey string) {
	h := r.Group("/sessions")
	h.Use(serverutils.ApiKeyMiddleware(apiKey))
	h.Post("", c.Create)
	h.Get("", c.Index)
	h.Get(":session_id", c.Show)
	h.Delete(":session_id", c.Delete)

	// The sources listing lives under its own prefix, matching the
	// public API shape.
	s := r.Group("/sources")
	s.Use(serverutils.ApiKeyMiddleware(apiKey))
	s.Get(":session_id", c.Sources)
}

func (c *sessionController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil && len(ctx.Body()) > 0 {
		return err
	}

	res, err := c.sessionService.CreateSession(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *sessionController) Index(ctx *fiber.Ctx) error {
	res, err := c.sessionService.GetAllSessions(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list sessions", res))
}

func (c *sessionController) Show(ctx *fiber.Ctx) error {
	res, err := c.sessionService.GetSession(ctx.Context(), ctx.Params("session_id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}

func (c *sessionController) Sources(ctx *fiber.Ctx) error {
	res, err := c.sessionService.GetSessionSources(ctx.Context(), ctx.Params("session_id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list session sources", res))
}

func (c *sessionController) Delete(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("session_id")
	if err := c.sessionService.DeleteSession(ctx.Context(), sessionId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete session", fiber.Map{
		"session_id": sessionId,
	}))
}
