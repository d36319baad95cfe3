package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sebastianArmero/TiendaGeyaseBackend-sub001/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// QueueStatus is the part of worker.Dispatcher the health check reads.
type QueueStatus interface {
	Pending(ctx context.Context) (int64, error)
	BreakerState() infra.CBState
}

// Health returns a JSON health check response.
// Checks Redis connectivity and reports the snapshot backlog; never exposes
// credentials or internals.
func Health(rdb *redis.Client, queue QueueStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		redisStatus := "connected"
		if rdb.Ping(ctx).Err() != nil {
			redisStatus = "error"
		}

		body := gin.H{
			"redis":   redisStatus,
			"breaker": queue.BreakerState().String(),
		}
		if pending, err := queue.Pending(ctx); err == nil {
			body["snapshots_pendientes"] = pending
		}

		status := http.StatusOK
		if redisStatus != "connected" {
			status = http.StatusServiceUnavailable
		}
		body["ok"] = status == http.StatusOK

		c.JSON(status, body)
	}
}
