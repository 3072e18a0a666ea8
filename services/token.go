package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"main/utils"
)

var ErrInvalidToken = errors.New("invalid token")

// GenerateToken issues a short-lived access token for the user.
func GenerateToken(userID string) (string, error) {
	return signToken(userID, "access", time.Duration(utils.JWTExpirationTime)*time.Second)
}

// GenerateRefreshToken issues the long-lived refresh token.
func GenerateRefreshToken(userID string) (string, error) {
	return signToken(userID, "refresh", time.Duration(utils.RefreshTokenExpirationTime)*time.Second)
}

func signToken(userID string, tokenType string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"type":    tokenType,
		"iss":     "arthub",
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(utils.JWTSecretKey))
}

// ValidateToken parses the token, checks signature and expiry, and
// returns the user ID it was issued for.
func ValidateToken(tokenString string) (string, error) {
	return validateToken(tokenString, "access")
}

// ValidateRefreshToken is ValidateToken for refresh tokens.
func ValidateRefreshToken(tokenString string) (string, error) {
	return validateToken(tokenString, "refresh")
}

func validateToken(tokenString string, wantType string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(utils.JWTSecretKey), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != wantType {
		return "", ErrInvalidToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", ErrInvalidToken
	}
	return userID, nil
}
