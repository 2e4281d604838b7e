// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/users/:username
func (s *Server) GetProfile(c *fiber.Ctx) error {
	viewerID, _ := s.optionalUserID(c)

	profile, err := s.userService.GetProfile(c.Context(), c.Params("username"), viewerID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(profile)
}

// GetProfilePosts handles GET /api/users/:username/posts
func (s *Server) GetProfilePosts(c *fiber.Ctx) error {
	page := parsePagination(c, 10)

	author, posts, err := s.postService.ListAuthorPosts(c.Context(), c.Params("username"), page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"author": author,
		"posts":  posts,
	})
}
