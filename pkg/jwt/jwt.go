package jwt

import (
	"errors"
	"fmt"
	"time"

	"gamecatalog/admin/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token fails signature or claim validation.
var ErrInvalidToken = errors.New("invalid token")

// GenerateToken creates a new JWT for a given admin ID.
func GenerateToken(adminID uint) (string, error) {
	if config.AppConfig == nil || config.AppConfig.JWTSecret == "" {
		return "", errors.New("jwt secret is not configured")
	}

	claims := jwt.MapClaims{
		"sub": adminID,
		"exp": time.Now().Add(time.Hour * 12).Unix(), // Token expires in 12 hours
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// ParseToken validates tokenString and returns the admin ID it was issued for.
func ParseToken(tokenString string) (uint, error) {
	if config.AppConfig == nil || config.AppConfig.JWTSecret == "" {
		return 0, ErrInvalidToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return 0, ErrInvalidToken
	}
	return uint(sub), nil
}
