package jwtPkg

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const (
	ServiceTokenSecret = "JWT_SERVICE_TOKEN_SECRET"
	WriteScope         = "blogs:write"
	ServiceSubject     = "camonk-portal"
)

var ErrSecretNotSet = errors.New("jwt secret not configured")

func Sign(data map[string]interface{}, expiresIn time.Duration, secretEnvKey string) (string, int64, error) {
	expiredAt := time.Now().Add(expiresIn).Unix()

	secret := os.Getenv(secretEnvKey)
	if secret == "" {
		return "", 0, fmt.Errorf("%s: %w", secretEnvKey, ErrSecretNotSet)
	}

	claims := jwt.MapClaims{}
	claims["exp"] = expiredAt
	claims["iat"] = time.Now().Unix()

	for k, v := range data {
		claims[k] = v
	}

	logrus.WithField("claims", claims).Debug("Creating token with claims")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		logrus.WithError(err).Error("Failed to sign token")
		return "", 0, err
	}

	return signed, expiredAt, nil
}

// ServiceTokenEnabled reports whether writes between portal and blog API are signed.
func ServiceTokenEnabled() bool {
	return os.Getenv(ServiceTokenSecret) != ""
}

// NewServiceTokenSource mints a fresh write-scoped token on every call.
func NewServiceTokenSource(ttl time.Duration) func() (string, error) {
	return func() (string, error) {
		token, _, err := Sign(map[string]interface{}{
			"sub":   ServiceSubject,
			"scope": WriteScope,
		}, ttl, ServiceTokenSecret)
		return token, err
	}
}

func VerifyTokenHeader(c *fiber.Ctx, secretEnvKey string) (*jwt.Token, error) {
	log := logrus.WithField("func", "VerifyTokenHeader")

	header := c.Get("Authorization")
	if header == "" {
		log.Debug("Empty Authorization header")
		return nil, errors.New("empty Authorization header")
	}

	accessToken, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		log.Debug("Invalid Authorization format")
		return nil, errors.New("invalid Authorization format")
	}

	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return nil, errors.New("empty token")
	}

	secret := os.Getenv(secretEnvKey)
	if secret == "" {
		log.Error("JWT secret environment variable not set")
		return nil, ErrSecretNotSet
	}

	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		log.WithError(err).Debug("Failed to parse JWT token")
		return nil, err
	}

	return token, nil
}

// HasScope reports whether the token's scope claim, a space separated list, contains scope.
func HasScope(token *jwt.Token, scope string) bool {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	raw, ok := claims["scope"].(string)
	if !ok {
		return false
	}
	for _, s := range strings.Fields(raw) {
		if s == scope {
			return true
		}
	}
	return false
}
