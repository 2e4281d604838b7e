// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"quill/internal/models"
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetComments handles GET /api/users/:username/posts/:id/comments
func (s *Server) GetComments(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c, 50)

	comments, err := s.commentService.ListComments(c.Context(), c.Params("username"), id, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(comments)
}

// AddComment handles POST /api/users/:username/posts/:id/comments
//
// A blank comment is not an error: the submission is acknowledged with
// stored=false and nothing is written, so the client simply re-renders the
// post page.
func (s *Server) AddComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	out, err := s.commentService.AddComment(c.Context(), service.AddCommentInput{
		AuthorID: userID,
		Username: c.Params("username"),
		PostID:   id,
		Text:     req.Text,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	if !out.Stored {
		return c.JSON(fiber.Map{
			"stored": false,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"stored":  true,
		"comment": out.Comment,
	})
}
