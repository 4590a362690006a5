package http

import (
	"github.com/GoSim-25-26J-441/project-verification/internal/verification/domain"
	"github.com/GoSim-25-26J-441/project-verification/internal/verification/service"
)

type registerReq struct {
	ProjectID string `json:"project_id"`
}

// Scores are pointers so a missing field is a bad request rather than a zero score.
type evaluateReq struct {
	TechnicalScore *int64 `json:"technical_score"`
	FinancialScore *int64 `json:"financial_score"`
}

type projectResp struct {
	OK      bool            `json:"ok"`
	Project *domain.Project `json:"project"`
}

type approvedResp struct {
	OK        bool   `json:"ok"`
	ProjectID string `json:"project_id"`
	Approved  bool   `json:"approved"`
}

type errorResp struct {
	OK    bool        `json:"ok"`
	Error string      `json:"error"`
	Code  domain.Code `json:"code"`
}

type registryResp struct {
	OK         bool                    `json:"ok"`
	Admin      string                  `json:"admin"`
	Thresholds domain.Thresholds       `json:"thresholds"`
	Stats      domain.Stats            `json:"stats"`
	Metrics    service.MetricsSnapshot `json:"metrics"`
}
