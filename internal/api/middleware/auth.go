package middleware

import (
	"strings"

	"github.com/aryadee/smart-bank/internal/config"
	"github.com/aryadee/smart-bank/internal/constants"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Protected returns a middleware that requires a valid session token on
// the request. The parsed token lands in c.Locals("user").
func Protected(cfg config.Auth) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{Key: []byte(cfg.Secret)},
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if strings.Contains(err.Error(), "missing or malformed") ||
		err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeInvalidRequestBody,
			"message": "missing or malformed session token",
		})
	}

	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"code":    constants.ErrCodeInvalidCredentials,
		"message": "invalid or expired session token",
	})
}

// AdminOnly rejects requests whose session token lacks the admin claim.
// It must run after Protected.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !IsAdmin(c) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"code":    constants.ErrCodeForbidden,
				"message": constants.GetErrorMessage(constants.ErrCodeForbidden),
			})
		}
		return c.Next()
	}
}

// SessionAccountNo extracts the authenticated account number from the
// token stored by Protected.
func SessionAccountNo(c *fiber.Ctx) string {
	claims, ok := sessionClaims(c)
	if !ok {
		return ""
	}
	accountNo, _ := claims["account_no"].(string)
	return accountNo
}

func IsAdmin(c *fiber.Ctx) bool {
	claims, ok := sessionClaims(c)
	if !ok {
		return false
	}
	admin, _ := claims["admin"].(bool)
	return admin
}

func sessionClaims(c *fiber.Ctx) (jwt.MapClaims, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return nil, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	return claims, ok
}
