package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"main/services"
	"main/utils"
)

// HealthHandler reports process and dependency health.
func HealthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	mongoOK := utils.MongoClient != nil && utils.MongoClient.Ping(ctx, nil) == nil
	redisOK := utils.RedisClient != nil && utils.RedisClient.Ping(ctx).Err() == nil
	cacheOK := services.GlobalSessionCache != nil && services.GlobalSessionCache.IsConnected()

	status := "ok"
	if !mongoOK || !redisOK {
		status = "degraded"
	}

	utils.Success(c, gin.H{
		"status":        status,
		"mongo":         mongoOK,
		"redis":         redisOK,
		"session_cache": cacheOK,
		"cpu_percent":   utils.GetCPUUsage(),
	})
}
