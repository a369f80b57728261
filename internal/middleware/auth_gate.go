package middleware

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/noah-isme/formation-api/internal/utils"
)

// Messages returned by the auth gate.
const (
	MessageNoToken      = "Access denied, no token provided"
	MessageInvalidToken = "Invalid token"
)

// Locals keys populated by AuthGate.
const (
	LocalClaims   = "claims"
	LocalUserID   = "user_id"
	LocalUserRole = "user_role"
)

// AuthGate verifies the token carried by the Authorization header. The header
// holds the raw token; a leading "Bearer " scheme is tolerated.
func AuthGate(secret string) fiber.Handler {
	key := []byte(secret)

	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c.Get(fiber.HeaderAuthorization))
		if tokenString == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, MessageNoToken)
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return key, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			return utils.SendError(c, fiber.StatusUnauthorized, MessageInvalidToken)
		}

		c.Locals(LocalClaims, claims)
		if userID := extractUserIDFromClaims(claims); userID != nil {
			c.Locals(LocalUserID, *userID)
		}
		if role := extractUserRoleFromClaims(claims); role != "" {
			c.Locals(LocalUserRole, role)
		}

		return c.Next()
	}
}

// ClaimsFromContext returns the claims stored by AuthGate.
func ClaimsFromContext(c *fiber.Ctx) (jwt.MapClaims, bool) {
	claims, ok := c.Locals(LocalClaims).(jwt.MapClaims)
	return claims, ok
}

func extractToken(header string) string {
	value := strings.TrimSpace(header)
	const bearer = "bearer "
	if len(value) >= len(bearer) && strings.EqualFold(value[:len(bearer)], bearer) {
		value = strings.TrimSpace(value[len(bearer):])
	}
	return value
}

func extractUserIDFromClaims(claims jwt.MapClaims) *uint {
	keys := []string{"sub", "user_id", "id"}
	for _, key := range keys {
		if value, ok := claims[key]; ok {
			if normalized, err := normalizeUserID(value); err == nil {
				return &normalized
			}
		}
	}

	return nil
}

func normalizeUserID(value interface{}) (uint, error) {
	switch v := value.(type) {
	case float64:
		if v < 0 {
			return 0, fmt.Errorf("invalid subject")
		}
		return uint(v), nil
	case string:
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, err
		}
		return uint(parsed), nil
	default:
		return 0, fmt.Errorf("unsupported subject type")
	}
}

func extractUserRoleFromClaims(claims jwt.MapClaims) string {
	if value, ok := claims["role"].(string); ok {
		return strings.ToLower(strings.TrimSpace(value))
	}
	return ""
}
