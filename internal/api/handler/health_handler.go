package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const probeTimeout = 2 * time.Second

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness handles GET /health: is the process alive?
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// HealthDependenciesHandler probes the storage backends for readiness.
type HealthDependenciesHandler struct {
	db  *mongo.Database
	rdb *redis.Client
}

func NewHealthDependenciesHandler(db *mongo.Database, rdb *redis.Client) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{db: db, rdb: rdb}
}

// Readiness handles GET /health/ready: are the dependencies up?
func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	deps := map[string]string{"mongo": "ok", "redis": "ok"}
	healthy := true

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), probeTimeout)
		if err := h.db.Client().Ping(ctx, readpref.Primary()); err != nil {
			deps["mongo"] = err.Error()
			healthy = false
		}
		cancel()
	}

	if h.rdb != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), probeTimeout)
		if err := h.rdb.Ping(ctx).Err(); err != nil {
			deps["redis"] = err.Error()
			healthy = false
		}
		cancel()
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, deps)
}
