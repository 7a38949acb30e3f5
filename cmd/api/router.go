package api

import (
	"net/http"

	authDelivery "posts-backend/internal/auth/delivery"
	postDelivery "posts-backend/internal/post/delivery"
	userDelivery "posts-backend/internal/user/delivery"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router builds the gin engine with middleware and all routes mounted.
func (h *Handler) Router() *gin.Engine {
	if h.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(), Metrics(), cors.New(h.corsConfig()))

	h.SetupRoutes(r)
	return r
}

func (h *Handler) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Content-Length", "Accept", "Authorization"}

	for _, origin := range h.config.CORSAllowedOrigins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = h.config.CORSAllowedOrigins
	cfg.AllowCredentials = true
	return cfg
}

func (h *Handler) SetupRoutes(r *gin.Engine) {
	authHandler := authDelivery.NewAuthHandler(h.authUsecase)
	postHandler := postDelivery.NewPostHandler(h.postUsecase)
	userHandler := userDelivery.NewUserHandler(h.userUsecase)
	requireAuth := authDelivery.AuthMiddleware(h.authUsecase)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		// Health check (no auth required)
		v1.GET("/healthcheck", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"project_name": h.config.ProjectName,
				"version":      h.config.Version,
				"health":       true,
			})
		})

		authHandler.RegisterRoutes(v1)
		postHandler.RegisterRoutes(v1, requireAuth)
		userHandler.RegisterRoutes(v1, requireAuth)
	}
}
