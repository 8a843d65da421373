package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vlad-d/RiseOnBack/internal/events"
	"github.com/vlad-d/RiseOnBack/internal/services"
)

// FlowHandler exposes the outer app-flow coordinator: launch/login gates,
// resolved state, and the full reset.
type FlowHandler struct {
	flow *services.AppFlow
	hub  *events.Hub
}

func NewFlowHandler(flow *services.AppFlow, hub *events.Hub) *FlowHandler {
	return &FlowHandler{flow: flow, hub: hub}
}

func (h *FlowHandler) State(c *fiber.Ctx) error {
	flags, err := h.flow.State(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read app state"})
	}
	return c.JSON(fiber.Map{
		"state": h.flow.Resolve(c.Context()),
		"flags": flags,
	})
}

func (h *FlowHandler) Launch(c *fiber.Ctx) error {
	state, err := h.flow.MarkLaunched(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update app state"})
	}
	return c.JSON(fiber.Map{"state": state})
}

func (h *FlowHandler) Login(c *fiber.Ctx) error {
	state, err := h.flow.Login(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update app state"})
	}
	return c.JSON(fiber.Map{"state": state})
}

func (h *FlowHandler) Logout(c *fiber.Ctx) error {
	state, err := h.flow.Logout(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update app state"})
	}
	return c.JSON(fiber.Map{"state": state})
}

// Reset clears the flags and the stored profile and returns to splash.
func (h *FlowHandler) Reset(c *fiber.Ctx) error {
	state, err := h.flow.Reset(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reset app state"})
	}
	if h.hub != nil {
		h.hub.Publish(events.Event{Type: events.TypeProfileDeleted})
	}
	return c.JSON(fiber.Map{"state": state})
}
