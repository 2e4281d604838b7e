// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"github.com/gofiber/fiber/v2"
)

// FollowUser handles POST /api/users/:username/follow
//
// Following yourself or an author you already follow responds 200 with
// created=false; the relation set is unchanged.
func (s *Server) FollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	out, err := s.followService.Follow(c.Context(), userID, c.Params("username"))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"author":  out.Author,
		"created": out.Created,
	})
}

// UnfollowUser handles DELETE /api/users/:username/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	author, err := s.followService.Unfollow(c.Context(), userID, c.Params("username"))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"author": author,
	})
}
