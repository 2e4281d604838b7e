// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"quill/internal/models"
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts
// @Summary List posts
// @Description Newest-first page of all posts
// @Tags posts
// @Produce json
// @Success 200 {array} models.Post
// @Router /posts [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	page := parsePagination(c, 10)

	posts, err := s.postService.ListPosts(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(posts)
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Text      string `json:"text"`
		GroupID   *uint  `json:"group_id,omitempty"`
		ImagePath string `json:"image_path,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	imagePath, err := normalizeImagePath(s.config.MediaRoot, req.ImagePath)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	// The author is always the authenticated caller, never a field of the
	// request body.
	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		AuthorID:  userID,
		Text:      req.Text,
		GroupID:   req.GroupID,
		ImagePath: imagePath,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetUserPost handles GET /api/users/:username/posts/:id
//
// The post view carries the post together with its comments in insertion
// order, like the rendered post page did.
func (s *Server) GetUserPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c, 50)

	post, err := s.postService.GetUserPost(c.Context(), c.Params("username"), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	comments, err := s.commentService.ListComments(c.Context(), c.Params("username"), id, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"post":     post,
		"comments": comments,
	})
}

// UpdateUserPost handles PUT /api/users/:username/posts/:id
//
// Edits by anyone other than the author are acknowledged with the unchanged
// post rather than rejected, so a stale client editing a reassigned URL sees
// the current content.
func (s *Server) UpdateUserPost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Text      string  `json:"text"`
		GroupID   *uint   `json:"group_id,omitempty"`
		ImagePath *string `json:"image_path,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	// A null or omitted image_path keeps the current image; an empty string
	// clears it.
	if req.ImagePath != nil {
		p, err := normalizeImagePath(s.config.MediaRoot, *req.ImagePath)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest, err)
		}
		req.ImagePath = &p
	}

	out, err := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		EditorID:  userID,
		Username:  c.Params("username"),
		PostID:    id,
		Text:      req.Text,
		GroupID:   req.GroupID,
		ImagePath: req.ImagePath,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"post":    out.Post,
		"applied": out.Applied,
	})
}

// DeleteUserPost handles DELETE /api/users/:username/posts/:id
func (s *Server) DeleteUserPost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), userID, c.Params("username"), id); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetFeed handles GET /api/feed
func (s *Server) GetFeed(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	page := parsePagination(c, 10)

	posts, err := s.postService.ListFeed(c.Context(), userID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(posts)
}
