package auth

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"agendai_backend/internals/configs"
	helper "agendai_backend/internals/helpers"
)

// AuthMiddleware valida o access token e guarda a identidade em Locals:
// user_email (claim sub) e user_role (claim tag).
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Token ausente")
		}
		helper.SetRawAccessToken(c, tokenString)

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET vazio")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Falha ao parsear token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] Exp validation:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		if typ, _ := claims["type"].(string); typ != "access" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Tipo de token inválido")
		}

		sub, _ := claims["sub"].(string)
		sub = strings.TrimSpace(sub)
		if sub == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token sem identidade")
		}
		c.Locals("user_email", strings.ToLower(sub))

		if tag, _ := claims["tag"].(string); tag != "" {
			c.Locals("user_role", tag)
		}

		return c.Next()
	}
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Token sem expiração")
	}
	var exp int64
	switch v := expRaw.(type) {
	case float64:
		exp = int64(v)
	case int64:
		exp = v
	default:
		return fiber.NewError(fiber.StatusUnauthorized, "Claim exp inválida")
	}
	if time.Now().Add(-leeway).Unix() > exp {
		return fiber.NewError(fiber.StatusUnauthorized, "Token expirado")
	}
	return nil
}
