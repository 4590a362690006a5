package http

import "github.com/GoSim-25-26J-441/project-verification/internal/verification/service"

// Handler bundles the dependencies for project verification endpoints.
type Handler struct {
	svc *service.VerificationService
}

func New(svc *service.VerificationService) *Handler {
	return &Handler{svc: svc}
}
