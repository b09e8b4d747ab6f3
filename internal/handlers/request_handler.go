package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shareit/internal/dto"
	"shareit/internal/middleware"
	"shareit/internal/services"
)

// RequestHandler handles HTTP requests for the request board.
type RequestHandler struct {
	service *services.RequestService
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(service *services.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// RegisterRoutes registers the request-board routes with the Fiber app. Every
// route requires the identity header.
func (h *RequestHandler) RegisterRoutes(router fiber.Router) {
	requests := router.Group("/requests", middleware.Identity())
	requests.Get("/all", h.HandleGetAllRequests)
	requests.Get("/", h.HandleGetOwnRequests)
	requests.Get("/:requestId", h.HandleGetRequestByID)
	requests.Post("/", h.HandleCreateRequest)
}

func (h *RequestHandler) HandleCreateRequest(c *fiber.Ctx) error {
	var req dto.NewRequestDto
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	request, err := h.service.AddRequest(middleware.UserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(request)
}

func (h *RequestHandler) HandleGetOwnRequests(c *fiber.Ctx) error {
	requests, err := h.service.GetRequestsByRequestor(middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(requests)
}

func (h *RequestHandler) HandleGetAllRequests(c *fiber.Ctx) error {
	requests, err := h.service.GetAllOthers(middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(requests)
}

func (h *RequestHandler) HandleGetRequestByID(c *fiber.Ctx) error {
	requestID, err := paramID(c, "requestId")
	if err != nil {
		return respondError(c, err)
	}
	request, err := h.service.GetRequestByID(middleware.UserID(c), requestID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(request)
}
