package http

import "github.com/gin-gonic/gin"

// Register attaches project verification routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	projects := rg.Group("/projects")
	projects.POST("", h.RegisterProject)
	projects.GET("", h.ListProjects)
	projects.GET("/:id", h.GetProject)
	projects.GET("/:id/approved", h.IsProjectApproved)
	projects.PUT("/:id/evaluation", h.EvaluateProject)
	projects.POST("/:id/finalize", h.FinalizeVerification)

	rg.GET("/registry", h.RegistryInfo)
}
