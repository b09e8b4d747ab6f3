package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"shareit/internal/dto"
	"shareit/internal/middleware"
	"shareit/internal/models"
	"shareit/internal/services"
)

// BookingHandler handles HTTP requests for the booking engine.
type BookingHandler struct {
	service *services.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *services.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes registers the booking routes with the Fiber app. Every route
// requires the identity header.
func (h *BookingHandler) RegisterRoutes(router fiber.Router) {
	bookings := router.Group("/bookings", middleware.Identity())
	bookings.Get("/owner", h.HandleGetBookingsByOwner)
	bookings.Get("/", h.HandleGetBookingsByUser)
	bookings.Get("/:bookingId", h.HandleGetBookingByID)
	bookings.Post("/", h.HandleCreateBooking)
	bookings.Patch("/:bookingId", h.HandleApproveBooking)
}

func (h *BookingHandler) HandleCreateBooking(c *fiber.Ctx) error {
	var req dto.NewBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	booking, err := h.service.AddBooking(middleware.UserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(booking)
}

func (h *BookingHandler) HandleApproveBooking(c *fiber.Ctx) error {
	bookingID, err := paramID(c, "bookingId")
	if err != nil {
		return respondError(c, err)
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Query parameter approved must be a boolean"})
	}
	booking, err := h.service.ApproveBooking(middleware.UserID(c), bookingID, approved)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(booking)
}

func (h *BookingHandler) HandleGetBookingByID(c *fiber.Ctx) error {
	bookingID, err := paramID(c, "bookingId")
	if err != nil {
		return respondError(c, err)
	}
	booking, err := h.service.GetBookingByID(middleware.UserID(c), bookingID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(booking)
}

func (h *BookingHandler) HandleGetBookingsByUser(c *fiber.Ctx) error {
	// Unrecognized state values deliberately fall back to ALL here; the
	// gateway is the strict tier.
	filter, _ := models.ParseStateFilter(c.Query("state", string(models.FilterAll)))
	bookings, err := h.service.GetBookingsByUser(middleware.UserID(c), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(bookings)
}

func (h *BookingHandler) HandleGetBookingsByOwner(c *fiber.Ctx) error {
	filter, _ := models.ParseStateFilter(c.Query("state", string(models.FilterAll)))
	bookings, err := h.service.GetBookingsByOwner(middleware.UserID(c), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(bookings)
}
