package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// GuestPrefix префикс subject гостевых токенов
const GuestPrefix = "guest:"

var (
	ErrInvalidTokenPayload = errors.New("invalid token payload")
	ErrEmptySecret         = errors.New("jwt secret is empty")
)

// GenerateJWT подписывает HS256 токен с sub/iat/exp и дополнительными claims
func GenerateJWT(subject string, extra map[string]interface{}, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	for k, v := range extra {
		claims[k] = v
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseJWT проверяет подпись и срок действия
func ParseJWT(tokenStr, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidTokenPayload
	}
	return claims, nil
}

// SubjectFromClaims возвращает непустой sub
func SubjectFromClaims(claims jwt.MapClaims) (string, error) {
	sub, _ := claims["sub"].(string)
	if strings.TrimSpace(sub) == "" {
		return "", ErrInvalidTokenPayload
	}
	return sub, nil
}

// TokenTTL оставшееся время жизни токена по claim exp
func TokenTTL(claims jwt.MapClaims) time.Duration {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return 0
	}
	return time.Until(time.Unix(int64(exp), 0))
}

// PrincipalType guest или user
func PrincipalType(subject string) string {
	if strings.HasPrefix(subject, GuestPrefix) {
		return "guest"
	}
	return "user"
}
