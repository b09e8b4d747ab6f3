package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shareit/internal/dto"
	"shareit/internal/middleware"
	"shareit/internal/services"
)

// ItemHandler handles HTTP requests for the item catalog and comments.
type ItemHandler struct {
	service *services.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service *services.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

// RegisterRoutes registers the item routes with the Fiber app. Every route
// requires the identity header.
func (h *ItemHandler) RegisterRoutes(router fiber.Router) {
	items := router.Group("/items", middleware.Identity())
	items.Get("/search", h.HandleSearchItems)
	items.Get("/", h.HandleGetItemsOfOwner)
	items.Get("/:itemId", h.HandleGetItemByID)
	items.Post("/", h.HandleCreateItem)
	items.Patch("/:itemId", h.HandleUpdateItem)
	items.Post("/:itemId/comment", h.HandleAddComment)
}

func (h *ItemHandler) HandleGetItemByID(c *fiber.Ctx) error {
	itemID, err := paramID(c, "itemId")
	if err != nil {
		return respondError(c, err)
	}
	item, err := h.service.GetItemByID(itemID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

func (h *ItemHandler) HandleGetItemsOfOwner(c *fiber.Ctx) error {
	items, err := h.service.GetItemsByOwner(middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

func (h *ItemHandler) HandleSearchItems(c *fiber.Ctx) error {
	items, err := h.service.SearchItems(c.Query("text"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

func (h *ItemHandler) HandleCreateItem(c *fiber.Ctx) error {
	var req dto.NewItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Available == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Available should be not empty"})
	}
	item, err := h.service.AddItem(middleware.UserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *ItemHandler) HandleUpdateItem(c *fiber.Ctx) error {
	itemID, err := paramID(c, "itemId")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	item, err := h.service.UpdateItem(middleware.UserID(c), itemID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

func (h *ItemHandler) HandleAddComment(c *fiber.Ctx) error {
	itemID, err := paramID(c, "itemId")
	if err != nil {
		return respondError(c, err)
	}
	var req dto.NewCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	comment, err := h.service.AddComment(middleware.UserID(c), itemID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}
