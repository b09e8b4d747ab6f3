// Package gateway is the thin validation tier in front of the server: it
// checks the identity header and request shapes, then forwards the request
// unchanged and returns the server's response verbatim.
package gateway

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/proxy"

	"shareit/internal/dto"
	"shareit/internal/middleware"
	"shareit/internal/models"
)

// Handler validates incoming requests and proxies them to the server.
type Handler struct {
	serverURL string
	validate  *validator.Validate
}

// NewHandler creates a gateway handler forwarding to serverURL.
func NewHandler(serverURL string) *Handler {
	return &Handler{
		serverURL: serverURL,
		validate:  validator.New(),
	}
}

// RegisterRoutes registers the full public surface with the Fiber app.
func (h *Handler) RegisterRoutes(router fiber.Router) {
	users := router.Group("/users")
	users.Get("/", h.forward)
	users.Get("/:userId", h.forward)
	users.Post("/", h.validateCreateUser, h.forward)
	users.Patch("/:userId", h.validateUpdateUser, h.forward)
	users.Delete("/:userId", h.forward)

	items := router.Group("/items", middleware.Identity())
	items.Get("/search", h.forward)
	items.Get("/", h.forward)
	items.Get("/:itemId", h.forward)
	items.Post("/", h.validateCreateItem, h.forward)
	items.Patch("/:itemId", h.validateUpdateItem, h.forward)
	items.Post("/:itemId/comment", h.validateCreateComment, h.forward)

	requests := router.Group("/requests", middleware.Identity())
	requests.Get("/all", h.forward)
	requests.Get("/", h.forward)
	requests.Get("/:requestId", h.forward)
	requests.Post("/", h.validateCreateRequest, h.forward)

	bookings := router.Group("/bookings", middleware.Identity())
	bookings.Get("/owner", h.validateStateParam, h.forward)
	bookings.Get("/", h.validateStateParam, h.forward)
	bookings.Get("/:bookingId", h.forward)
	bookings.Post("/", h.validateCreateBooking, h.forward)
	bookings.Patch("/:bookingId", h.validateApproveParam, h.forward)
}

// forward proxies the request to the server, preserving method, body, headers
// and query string.
func (h *Handler) forward(c *fiber.Ctx) error {
	return proxy.Do(c, h.serverURL+c.OriginalURL())
}

func (h *Handler) validateCreateUser(c *fiber.Ctx) error {
	var req dto.NewUserRequest
	if handled, err := h.validateBody(c, &req); handled {
		return err
	}
	return c.Next()
}

func (h *Handler) validateUpdateUser(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if handled, err := h.validateBody(c, &req); handled {
		return err
	}
	return c.Next()
}

func (h *Handler) validateCreateItem(c *fiber.Ctx) error {
	var req dto.NewItemRequest
	if handled, err := h.validateBody(c, &req); handled {
		return err
	}
	return c.Next()
}

func (h *Handler) validateUpdateItem(c *fiber.Ctx) error {
	var req dto.UpdateItemRequest
	if handled, err := h.validateBody(c, &req); handled {
		return err
	}
	return c.Next()
}

func (h *Handler) validateCreateComment(c *fiber.Ctx) error {
	var req dto.NewCommentRequest
	if handled, err := h.validateBody(c, &req); handled {
		return err
	}
	return c.Next()
}

func (h *Handler) validateCreateRequest(c *fiber.Ctx) error {
	var req dto.NewRequestDto
	if handled, err := h.validateBody(c, &req); handled {
		return err
	}
	return c.Next()
}

// validateCreateBooking checks the booking window on top of the struct tags:
// the start must not lie in the past, the end must be in the future and the
// window must be non-empty.
func (h *Handler) validateCreateBooking(c *fiber.Ctx) error {
	var req dto.NewBookingRequest
	if handled, err := h.validateBody(c, &req); handled {
		return err
	}

	start, err := dto.ParseTime(req.Start)
	if err != nil {
		return badRequest(c, fmt.Sprintf("Invalid booking start date: %s", req.Start))
	}
	end, err := dto.ParseTime(req.End)
	if err != nil {
		return badRequest(c, fmt.Sprintf("Invalid booking end date: %s", req.End))
	}

	now := time.Now()
	if start.Before(now) {
		return badRequest(c, "Invalid booking start date")
	}
	if !end.After(now) {
		return badRequest(c, "Invalid booking end date")
	}
	if !end.After(start) {
		return badRequest(c, "Booking end date should be after start date")
	}
	return c.Next()
}

// validateStateParam rejects unknown state filters. The server would fall
// back to ALL; the gateway is the strict tier.
func (h *Handler) validateStateParam(c *fiber.Ctx) error {
	state := c.Query("state", string(models.FilterAll))
	if _, ok := models.ParseStateFilter(state); !ok {
		return badRequest(c, "Unknown state: "+state)
	}
	return c.Next()
}

func (h *Handler) validateApproveParam(c *fiber.Ctx) error {
	if _, err := strconv.ParseBool(c.Query("approved")); err != nil {
		return badRequest(c, "Query parameter approved must be a boolean")
	}
	return c.Next()
}

// validateBody parses the request body into req and runs the struct tags.
// When the request is rejected it writes the error response and reports
// handled=true; callers then stop the chain.
func (h *Handler) validateBody(c *fiber.Ctx, req any) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		return true, badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return true, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}
	return false, nil
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}
