package controller

import (
	"io"

	"teaching-assistant-be/internal/dto"
	"teaching-assistant-be/internal/pkg/serverutils"
	"teaching-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router, apiKey string)
	ProcessDocument(ctx *fiber.Ctx) error
	ProcessURL(ctx *fiber.Ctx) error
}

type documentController struct {
	documentService service.IDocumentService
}

func NewDocumentController(documentService service.IDocumentService) IDocumentController {
	return &documentController{
		documentService: documentService,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router, apiKey string) {
	h := r.Group("/process")
	h.Use(serverutils.ApiKeyMiddleware(apiKey))
	h.Post("/document", c.ProcessDocument)
	h.Post("/url", c.ProcessURL)
}

// ProcessDocument accepts a multipart upload ("file" field) plus an
// optional "session_id" form field.
func (c *documentController) ProcessDocument(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "missing file upload")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	res, err := c.documentService.ProcessDocument(ctx.Context(), ctx.FormValue("session_id"), fileHeader.Filename, data)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *documentController) ProcessURL(ctx *fiber.Ctx) error {
	var req dto.ProcessURLRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.documentService.ProcessURL(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
