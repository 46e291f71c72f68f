package routes

import (
	"net/http"

	"wastetrack-be/controllers"
	"wastetrack-be/middlewares"
	"wastetrack-be/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Options carries the optional pieces of the router. A nil Redis client
// disables the submission limit.
type Options struct {
	CORSOrigins      []string
	Redis            *redis.Client
	SubmitLimitQueue string
	SubmitLimit      int
}

// NewRouter wires middleware and every route group onto a fresh engine.
func NewRouter(svc *services.ComplaintService, opts Options) (*gin.Engine, error) {
	if err := controllers.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestID(), middlewares.RequestLogger())
	if len(opts.CORSOrigins) > 0 {
		r.Use(middlewares.CORS(opts.CORSOrigins))
	}

	// both surfaces count against the same per-client key
	apiLimiter := middlewares.SubmitRateLimiter(opts.Redis, opts.SubmitLimitQueue, opts.SubmitLimit, middlewares.JSONLimitExceeded)
	portalLimiter := middlewares.SubmitRateLimiter(opts.Redis, opts.SubmitLimitQueue, opts.SubmitLimit, controllers.PortalLimitExceeded)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	ComplaintRoutes(r, svc, apiLimiter)
	VehicleRoutes(r, svc)
	ViewRoutes(r, svc)
	if err := PortalRoutes(r, svc, portalLimiter); err != nil {
		return nil, err
	}
	return r, nil
}
