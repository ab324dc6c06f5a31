package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// History 최근 검증 실행 이력 조회
// GET /api/history?limit=20
func (h *Handler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	runs, err := h.store.ListRuns(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "이력 조회에 실패했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"runs": runs})
}
