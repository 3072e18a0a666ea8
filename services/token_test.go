package services

import (
	"testing"

	"main/utils"
)

func setupJWT(t *testing.T) {
	t.Helper()
	utils.JWTSecretKey = "test_secret_key"
	utils.JWTExpirationTime = 3600
	utils.RefreshTokenExpirationTime = 604800
}

func TestTokens(t *testing.T) {
	setupJWT(t)

	t.Run("access token round trip", func(t *testing.T) {
		token, err := GenerateToken("u1")
		if err != nil {
			t.Fatalf("GenerateToken: %v", err)
		}

		userID, err := ValidateToken(token)
		if err != nil {
			t.Fatalf("ValidateToken: %v", err)
		}
		if userID != "u1" {
			t.Errorf("userID = %s, want u1", userID)
		}
	})

	t.Run("refresh token round trip", func(t *testing.T) {
		token, err := GenerateRefreshToken("u1")
		if err != nil {
			t.Fatalf("GenerateRefreshToken: %v", err)
		}

		userID, err := ValidateRefreshToken(token)
		if err != nil {
			t.Fatalf("ValidateRefreshToken: %v", err)
		}
		if userID != "u1" {
			t.Errorf("userID = %s, want u1", userID)
		}
	})

	t.Run("token types do not cross", func(t *testing.T) {
		access, _ := GenerateToken("u1")
		refresh, _ := GenerateRefreshToken("u1")

		if _, err := ValidateToken(refresh); err == nil {
			t.Error("refresh token accepted as access token")
		}
		if _, err := ValidateRefreshToken(access); err == nil {
			t.Error("access token accepted as refresh token")
		}
	})

	t.Run("tampered token rejected", func(t *testing.T) {
		token, _ := GenerateToken("u1")
		if _, err := ValidateToken(token + "x"); err == nil {
			t.Error("tampered token accepted")
		}
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		token, _ := GenerateToken("u1")
		utils.JWTSecretKey = "different_secret"
		defer func() { utils.JWTSecretKey = "test_secret_key" }()

		if _, err := ValidateToken(token); err == nil {
			t.Error("token signed with old secret accepted")
		}
	})
}
