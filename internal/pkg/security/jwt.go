package security

import (
	"Faceoff/internal/api/config"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// CallerClaims 身份服务签发的 Token 载荷，本服务只校验不签发
type CallerClaims struct {
	CallerID string `json:"caller_id"`
	jwt.RegisteredClaims
}

// ValidateToken 验证 Token 字符串并解析出 Claims
func ValidateToken(tokenString string) (*CallerClaims, error) {
	claims := &CallerClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.Cfg.JWT.Secret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("token parse failed: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token invalid or expired")
	}

	if claims.CallerID == "" {
		return nil, errors.New("token missing caller id")
	}

	return claims, nil
}
