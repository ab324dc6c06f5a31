package api

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rostercheck/internal/parser"
	"rostercheck/internal/service/excel"
)

// openWorkbook 업로드 파일 검사 후 워크북 로드
func openWorkbook(c *gin.Context) (*excel.Workbook, *multipart.FileHeader, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "업로드 파일을 찾을 수 없습니다"})
		return nil, nil, false
	}

	name := strings.ToLower(fileHeader.Filename)
	if !strings.HasSuffix(name, ".xlsx") && !strings.HasSuffix(name, ".xls") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "엑셀 파일만 업로드 가능합니다 (.xlsx, .xls)"})
		return nil, nil, false
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "업로드 파일을 열 수 없습니다"})
		return nil, nil, false
	}
	defer f.Close()

	wb, err := excel.Load(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "엑셀 파일을 읽을 수 없습니다"})
		return nil, nil, false
	}
	return wb, fileHeader, true
}

// Upload 시트 해석 미리보기 (검증 없이 시트/레코드 수만)
// POST /api/upload
func (h *Handler) Upload(c *gin.Context) {
	wb, fileHeader, ok := openWorkbook(c)
	if !ok {
		return
	}

	counts, err := h.pipe.Preview(wb)
	if err != nil {
		var missing *parser.MissingRosterError
		if errors.As(err, &missing) {
			c.JSON(http.StatusBadRequest, gin.H{"error": missing.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "파일 처리 중 오류가 발생했습니다"})
		return
	}

	total := 0
	for _, sc := range counts {
		total += sc.Records
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "파일이 성공적으로 업로드되었습니다",
		"filename":      fileHeader.Filename,
		"sheets":        counts,
		"total_records": total,
	})
}

// Validate 전체 검증 실행
// POST /api/validate
// 필수 명부 미해석은 400, 셀 단위 문제는 리포트의 Finding 으로 반환한다.
func (h *Handler) Validate(c *gin.Context) {
	wb, fileHeader, ok := openWorkbook(c)
	if !ok {
		return
	}

	runID := uuid.New().String()
	started := time.Now()
	if err := h.store.CreateRun(runID, fileHeader.Filename, fileHeader.Size); err != nil {
		// 이력 기록 실패가 검증을 막지는 않는다
		runID = ""
	}

	rep, err := h.pipe.Run(wb)
	if err != nil {
		if runID != "" {
			_ = h.store.CompleteRun(runID, 0, 0, 0, 0, 0, "rejected", err.Error(), time.Since(started))
		}
		var missing *parser.MissingRosterError
		if errors.As(err, &missing) {
			c.JSON(http.StatusBadRequest, gin.H{"error": missing.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "검증 중 오류가 발생했습니다"})
		return
	}

	if runID != "" {
		_ = h.store.CompleteRun(runID, rep.TotalRecords, rep.ValidRecords, rep.InvalidRecords,
			len(rep.Errors), len(rep.Warnings), "completed", "", time.Since(started))
	}

	c.JSON(http.StatusOK, gin.H{
		"message":            "검증이 완료되었습니다",
		"filename":           fileHeader.Filename,
		"run_id":             runID,
		"validation_results": rep,
	})
}
