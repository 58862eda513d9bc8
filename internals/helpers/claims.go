package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Identidade do chamador extraída do JWT pelo middleware de auth.
// 401 quando não há login; o papel vem da claim "tag".

func GetUserEmailFromToken(c *fiber.Ctx) (string, error) {
	v := c.Locals("user_email")
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Usuário não autenticado")
	}
	return strings.ToLower(strings.TrimSpace(s)), nil
}

func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	v := c.Locals("user_role")
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Usuário não autenticado")
	}
	return strings.TrimSpace(s), nil
}
