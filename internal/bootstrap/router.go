package bootstrap

import (
	"time"

	httpapi "github.com/GoSim-25-26J-441/project-verification/internal/api/http"
	"github.com/GoSim-25-26J-441/project-verification/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/project-verification/internal/api/http/routes"
	"github.com/GoSim-25-26J-441/project-verification/internal/verification/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	Store          httpapi.Pinger
	Service        *service.VerificationService
	RateLimitRPS   float64
	RateLimitBurst int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "X-Request-Id", middleware.CallerHeader},
		ExposeHeaders:   []string{"X-Request-Id"},
		MaxAge:          12 * time.Hour,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store)
	healthHandler.RegisterRoutes(r)

	var limiter *middleware.RateLimiter
	if dep.RateLimitRPS > 0 {
		limiter = middleware.NewRateLimiter(dep.RateLimitRPS, dep.RateLimitBurst)
	}

	routes.RegisterV1(r, routes.V1Deps{
		Service:     dep.Service,
		RateLimiter: limiter,
	})

	return r
}
