package helper

import "github.com/gofiber/fiber/v2"

// FromFiberError converte o erro devolvido por um service (normalmente
// *fiber.Error) no envelope JSON padrão. Qualquer outro erro vira 500.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}
