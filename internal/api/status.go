package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse 시스템 상태 응답
type StatusResponse struct {
	Status   string `json:"status"`
	BaseDate string `json:"base_date"` // 검증 기준일
	RunCount int    `json:"run_count"` // 기록된 검증 실행 수
}

// GetStatus 시스템 상태 조회
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	runs, err := h.store.ListRuns(1000)
	count := 0
	if err == nil {
		count = len(runs)
	}

	c.JSON(http.StatusOK, StatusResponse{
		Status:   "ok",
		BaseDate: h.pipe.BaseDate().Format("2006-01-02"),
		RunCount: count,
	})
}
