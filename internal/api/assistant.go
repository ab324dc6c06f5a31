package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AssistantRequest 검증 도우미 질의
type AssistantRequest struct {
	Question       string `json:"question"`
	TotalRecords   int    `json:"total_records"`
	InvalidRecords int    `json:"invalid_records"`
	ErrorCount     int    `json:"error_count"`
	WarningCount   int    `json:"warning_count"`
}

// Assistant 검증 도우미 스텁
// POST /api/assistant
// 외부 AI 연동 전까지의 결정적 응답. 같은 입력에는 항상 같은 답을 준다.
func (h *Handler) Assistant(c *gin.Context) {
	var req AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "요청 본문이 올바르지 않습니다"})
		return
	}

	var b strings.Builder
	b.WriteString("[분석 요약] ")
	if req.TotalRecords == 0 {
		b.WriteString("검증된 레코드가 없습니다. 먼저 명부 파일을 검증해 주세요.")
	} else {
		fmt.Fprintf(&b, "전체 %d건 중 오류 행 %d건, 오류 %d건, 경고 %d건이 확인되었습니다. ",
			req.TotalRecords, req.InvalidRecords, req.ErrorCount, req.WarningCount)
		switch {
		case req.ErrorCount > 0:
			b.WriteString("[권고사항] 오류 항목은 K-IFRS 1019 평가에서 제외되거나 왜곡을 일으킬 수 있으므로 원본 명부를 수정한 뒤 다시 검증하세요.")
		case req.WarningCount > 0:
			b.WriteString("[권고사항] 경고 항목은 맥락상 이상치입니다. 사원번호 기준으로 원본 데이터를 확인해 주세요.")
		default:
			b.WriteString("[권고사항] 지적 사항이 없습니다. 평가 절차를 진행해도 좋습니다.")
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"question": req.Question,
		"answer":   b.String(),
	})
}
