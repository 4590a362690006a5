package routes

import (
	"github.com/GoSim-25-26J-441/project-verification/internal/api/http/middleware"
	verificationhttp "github.com/GoSim-25-26J-441/project-verification/internal/verification/http"
	"github.com/GoSim-25-26J-441/project-verification/internal/verification/service"

	"github.com/gin-gonic/gin"
)

type V1Deps struct {
	Service     *service.VerificationService
	RateLimiter *middleware.RateLimiter
}

func RegisterV1(r *gin.Engine, dep V1Deps) {
	api := r.Group("/api/v1")
	if dep.RateLimiter != nil {
		api.Use(dep.RateLimiter.Middleware())
	}

	verificationhttp.New(dep.Service).Register(api)
}
