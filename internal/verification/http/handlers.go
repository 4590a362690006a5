package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/GoSim-25-26J-441/project-verification/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/project-verification/internal/verification/domain"
	"github.com/gin-gonic/gin"
)

// RegisterProject registers a new pending project owned by the caller
func (h *Handler) RegisterProject(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ProjectID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.svc.Register(c.Request.Context(), req.ProjectID, caller)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, projectResp{OK: true, Project: p})
}

// EvaluateProject records the administrator's scores
func (h *Handler) EvaluateProject(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	var req evaluateReq
	if err := c.ShouldBindJSON(&req); err != nil || req.TechnicalScore == nil || req.FinancialScore == nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "technical_score and financial_score are required"})
		return
	}

	p, err := h.svc.Evaluate(c.Request.Context(), c.Param("id"), *req.TechnicalScore, *req.FinancialScore, caller)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, projectResp{OK: true, Project: p})
}

// FinalizeVerification approves or rejects a pending project
func (h *Handler) FinalizeVerification(c *gin.Context) {
	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	p, err := h.svc.Finalize(c.Request.Context(), c.Param("id"), caller)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, projectResp{OK: true, Project: p})
}

// IsProjectApproved answers false for unknown projects rather than 404
func (h *Handler) IsProjectApproved(c *gin.Context) {
	projectID := c.Param("id")

	approved, err := h.svc.IsApproved(c.Request.Context(), projectID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, approvedResp{OK: true, ProjectID: projectID, Approved: approved})
}

// GetProject returns a single project
func (h *Handler) GetProject(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, projectResp{OK: true, Project: p})
}

// ListProjects returns every project in registration order
func (h *Handler) ListProjects(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

// RegistryInfo exposes admin, thresholds, per-status counts and metrics
func (h *Handler) RegistryInfo(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, registryResp{
		OK:         true,
		Admin:      h.svc.Admin(),
		Thresholds: h.svc.Thresholds(),
		Stats:      stats,
		Metrics:    h.svc.Metrics(),
	})
}

func requireCaller(c *gin.Context) (string, bool) {
	caller := strings.TrimSpace(c.GetHeader(middleware.CallerHeader))
	if caller == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "caller not identified"})
		return "", false
	}
	return caller, true
}

func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrDuplicateProject), errors.Is(err, domain.ErrAlreadyFinalized):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	c.JSON(status, errorResp{OK: false, Error: msg, Code: domain.CodeOf(err)})
}
