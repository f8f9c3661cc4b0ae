package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/team-pulse/internal/api/dto"
	"github.com/spec-kit/team-pulse/internal/auth"
	"github.com/spec-kit/team-pulse/internal/domain"
	"github.com/spec-kit/team-pulse/internal/roster"
	"github.com/spec-kit/team-pulse/internal/view"
)

// MembersHandler exposes the roster and its derived views.
type MembersHandler struct {
	store       *roster.Store
	coordinator *roster.Coordinator
}

// NewMembersHandler constructs handler.
func NewMembersHandler(store *roster.Store, coordinator *roster.Coordinator) *MembersHandler {
	return &MembersHandler{store: store, coordinator: coordinator}
}

// List handles GET /api/members with optional q, sort and dir parameters.
func (h *MembersHandler) List(c *fiber.Ctx) error {
	members := h.store.Snapshot()
	members = view.Search(members, c.Query("q"))

	state := view.SortState{
		Key: view.SortKey(c.Query("sort", string(view.SortByLastUpdated))),
		Dir: view.Direction(c.Query("dir", string(view.Descending))),
	}
	members = view.SortMembers(members, state)

	responses := make([]dto.MemberResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, dto.NewMemberResponse(m))
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"members": responses}})
}

// Projects handles GET /api/projects.
func (h *MembersHandler) Projects(c *fiber.Ctx) error {
	groups := view.GroupByProject(h.store.Snapshot())

	out := make([]fiber.Map, 0, len(groups))
	for _, group := range groups {
		members := make([]dto.MemberResponse, 0, len(group.Members))
		for _, m := range group.Members {
			members = append(members, dto.NewMemberResponse(m))
		}
		out = append(out, fiber.Map{"project": group.Project, "members": members})
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"projects": out}})
}

// Workloads handles GET /api/projects/workloads.
func (h *MembersHandler) Workloads(c *fiber.Ctx) error {
	workloads := view.ProjectWorkloads(h.store.Snapshot())

	out := make([]fiber.Map, 0, len(workloads))
	for _, w := range workloads {
		out = append(out, fiber.Map{
			"project":        w.Project,
			"score":          w.Score,
			"category":       w.Category,
			"active_members": w.ActiveMembers,
		})
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"workloads": out}})
}

// Create handles POST /api/members.
func (h *MembersHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.MemberCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	member, done, err := h.coordinator.Create(c.Context(), principal.Actor(), roster.CreateInput{
		Name:     req.Name,
		Position: domain.Position(req.Position),
	})
	if err != nil {
		return err
	}
	if err := <-done; err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": fiber.Map{"member": dto.NewMemberResponse(member)}})
}

// Patch handles PATCH /api/members/:id with a single-field update.
func (h *MembersHandler) Patch(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req dto.MemberPatchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	patch, err := patchFromRequest(req)
	if err != nil {
		return err
	}

	id := c.Params("id")
	done, err := h.coordinator.Mutate(c.Context(), principal.Actor(), id, patch)
	if err != nil {
		return err
	}
	if err := <-done; err != nil {
		return err
	}

	member, _ := h.store.Lookup(id)
	return c.JSON(fiber.Map{"data": fiber.Map{"member": dto.NewMemberResponse(member)}})
}

// Delete handles DELETE /api/members/:id.
func (h *MembersHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	done, err := h.coordinator.Delete(c.Context(), principal.Actor(), c.Params("id"))
	if err != nil {
		return err
	}
	if err := <-done; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}

func patchFromRequest(req dto.MemberPatchRequest) (roster.FieldPatch, error) {
	switch req.Field {
	case "name":
		if req.Name == nil {
			return nil, fiber.NewError(http.StatusBadRequest, "name value required")
		}
		return roster.NamePatch{Name: *req.Name}, nil
	case "position":
		if req.Position == nil {
			return nil, fiber.NewError(http.StatusBadRequest, "position value required")
		}
		return roster.PositionPatch{Position: domain.Position(*req.Position)}, nil
	case "status":
		if req.Status == nil {
			return nil, fiber.NewError(http.StatusBadRequest, "status value required")
		}
		return roster.StatusPatch{Status: domain.Status(*req.Status)}, nil
	case "projects":
		if req.Projects == nil {
			return nil, fiber.NewError(http.StatusBadRequest, "projects value required")
		}
		return roster.ProjectsPatchFromString(*req.Projects), nil
	case "customization":
		return roster.CustomizationPatch{Customization: req.Customization}, nil
	case "vacation":
		onVacation := false
		if req.IsOnVacation != nil {
			onVacation = *req.IsOnVacation
		}
		return roster.VacationPatch{
			Start:      req.VacationStart,
			End:        req.VacationEnd,
			OnVacation: onVacation,
		}, nil
	default:
		return nil, fiber.NewError(http.StatusBadRequest, "unknown field")
	}
}
