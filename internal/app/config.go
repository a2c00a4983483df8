package app

import (
	"strings"
	"time"

	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/utils"
)

type Config struct {
	Port            string
	StorageDriver   string
	JWTSecretKey    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	AllowOrigins    []string
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8080", log)
	storageDriver := utils.GetEnv("STORAGE_DRIVER", "postgres", log)
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTLSeconds := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
	allowOrigins := utils.GetEnv("CORS_ALLOW_ORIGINS", "", log)

	cfg := Config{
		Port:            port,
		StorageDriver:   strings.ToLower(storageDriver),
		JWTSecretKey:    jwtSecretKey,
		AccessTokenTTL:  time.Duration(accessTokenTTLSeconds) * time.Second,
		RefreshTokenTTL: time.Duration(refreshTokenTTLSeconds) * time.Second,
	}
	if allowOrigins != "" {
		for _, origin := range strings.Split(allowOrigins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowOrigins = append(cfg.AllowOrigins, origin)
			}
		}
	}
	return cfg
}
