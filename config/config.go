package config

import (
	"main/utils"
)

type ServerConfig struct {
	Port              string
	MaxRequestSize    int64
	MaxActiveSessions int
}

func LoadServerConfig() ServerConfig {
	return ServerConfig{
		Port: utils.GetEnvAsString("PORT", "8080"),
		// Posts carry inline base64 images.
		MaxRequestSize:    int64(utils.GetEnvAsInt("MAX_REQUEST_SIZE", 16<<20)),
		MaxActiveSessions: utils.GetEnvAsInt("MAX_ACTIVE_SESSIONS", 5),
	}
}

type TokenizerConfig struct {
	BaseURL string
}

func LoadTokenizerConfig() TokenizerConfig {
	return TokenizerConfig{
		BaseURL: utils.GetEnvAsString("TOKENIZER_URL", "http://localhost:5000"),
	}
}
