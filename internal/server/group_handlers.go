// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"quill/internal/models"
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetGroups handles GET /api/groups
func (s *Server) GetGroups(c *fiber.Ctx) error {
	page := parsePagination(c, 20)

	groups, err := s.groupService.ListGroups(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(groups)
}

// GetGroup handles GET /api/groups/:slug
func (s *Server) GetGroup(c *fiber.Ctx) error {
	group, err := s.groupService.GetGroup(c.Context(), c.Params("slug"))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(group)
}

// GetGroupPosts handles GET /api/groups/:slug/posts
func (s *Server) GetGroupPosts(c *fiber.Ctx) error {
	page := parsePagination(c, 10)

	group, posts, err := s.postService.ListGroupPosts(c.Context(), c.Params("slug"), page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"group": group,
		"posts": posts,
	})
}

// CreateGroup handles POST /api/admin/groups
func (s *Server) CreateGroup(c *fiber.Ctx) error {
	var req struct {
		Title       string `json:"title"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	group, err := s.groupService.CreateGroup(c.Context(), service.CreateGroupInput{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(group)
}

// UpdateGroup handles PUT /api/admin/groups/:id
func (s *Server) UpdateGroup(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	group, err := s.groupService.UpdateGroup(c.Context(), service.UpdateGroupInput{
		GroupID:     id,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(group)
}

// DeleteGroup handles DELETE /api/admin/groups/:id
func (s *Server) DeleteGroup(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.groupService.DeleteGroup(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
