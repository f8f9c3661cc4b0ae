package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/team-pulse/internal/api/dto"
	"github.com/spec-kit/team-pulse/internal/domain"
	"github.com/spec-kit/team-pulse/internal/service"
)

// AnnouncementsHandler exposes announcement endpoints. Reads are open to
// any authenticated caller; writes are restricted to admins at the router.
type AnnouncementsHandler struct {
	announcements *service.AnnouncementService
}

// NewAnnouncementsHandler constructs handler.
func NewAnnouncementsHandler(announcements *service.AnnouncementService) *AnnouncementsHandler {
	return &AnnouncementsHandler{announcements: announcements}
}

// List handles GET /api/announcements. The all=true parameter includes
// inactive and expired entries for the admin console.
func (h *AnnouncementsHandler) List(c *fiber.Ctx) error {
	var announcements []domain.Announcement
	var err error
	if c.Query("all") == "true" {
		announcements, err = h.announcements.ListAll(c.Context())
	} else {
		announcements, err = h.announcements.ListVisible(c.Context(), time.Now())
	}
	if err != nil {
		return err
	}

	out := make([]dto.AnnouncementResponse, 0, len(announcements))
	for _, announcement := range announcements {
		out = append(out, dto.NewAnnouncementResponse(announcement))
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"announcements": out}})
}

// Create handles POST /api/announcements.
func (h *AnnouncementsHandler) Create(c *fiber.Ctx) error {
	var req dto.AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	announcement, err := h.announcements.Create(c.Context(), announcementInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"announcement": dto.NewAnnouncementResponse(*announcement)}})
}

// Update handles PUT /api/announcements/:id.
func (h *AnnouncementsHandler) Update(c *fiber.Ctx) error {
	var req dto.AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	announcement, err := h.announcements.Update(c.Context(), c.Params("id"), announcementInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"announcement": dto.NewAnnouncementResponse(*announcement)}})
}

// Toggle handles POST /api/announcements/:id/toggle.
func (h *AnnouncementsHandler) Toggle(c *fiber.Ctx) error {
	announcement, err := h.announcements.Toggle(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"announcement": dto.NewAnnouncementResponse(*announcement)}})
}

// Delete handles DELETE /api/announcements/:id.
func (h *AnnouncementsHandler) Delete(c *fiber.Ctx) error {
	if err := h.announcements.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}

func announcementInput(req dto.AnnouncementRequest) service.AnnouncementInput {
	return service.AnnouncementInput{
		Message:     req.Message,
		HTMLContent: req.HTMLContent,
		Priority:    req.Priority,
		Theme:       req.Theme,
		Active:      req.Active,
		ExpiresAt:   req.ExpiresAt,
	}
}
